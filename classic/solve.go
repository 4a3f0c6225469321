package classic

import (
	"fmt"

	"github.com/katalvlaran/hanoi/tower"
)

// solver carries the mutable state of one solve.
type solver struct {
	opts  Options
	state tower.State
	moves []tower.Move
}

// Solve moves the top n disks of src onto dst using aux, starting from s.
// Disks larger than n are left where they are.
//
// Complexity: O(2^n) moves, each O(N) for the copied pegs; O(n) recursion depth.
// The returned move list holds 2^n − 1 entries.
func Solve(s tower.State, n int, src, aux, dst tower.PegID, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := checkPegs(src, aux, dst); err != nil {
		return nil, err
	}
	if n < 1 || n > s.N() {
		return nil, fmt.Errorf("%w: n=%d for %d disks", tower.ErrInvalidDiskCount, n, s.N())
	}
	if err := checkCanonical(s, n, src); err != nil {
		return nil, err
	}

	sv := &solver{opts: o, state: s}
	if count, err := MoveCount(n); err == nil && count <= 1<<20 {
		sv.moves = make([]tower.Move, 0, count)
	}
	if err := sv.solve(n, src, aux, dst); err != nil {
		return nil, err
	}
	return &Result{Final: sv.state, Moves: sv.moves}, nil
}

// solve is the textbook recursion.
func (sv *solver) solve(n int, src, aux, dst tower.PegID) error {
	if n == 1 {
		return sv.move(src, dst)
	}
	if err := sv.solve(n-1, src, dst, aux); err != nil {
		return err
	}
	if err := sv.move(src, dst); err != nil {
		return err
	}
	return sv.solve(n-1, aux, src, dst)
}

// move applies one transfer, displays the result and runs the hook.
func (sv *solver) move(from, to tower.PegID) error {
	select {
	case <-sv.opts.Ctx.Done():
		return sv.opts.Ctx.Err()
	default:
	}

	m := tower.Move{From: from, To: to}
	next, out, err := sv.state.Apply(m)
	if err != nil {
		return err
	}
	if out != tower.Applied {
		// unreachable when the precondition held
		return fmt.Errorf("%w: %s refused at move %d", ErrNotCanonical, m, len(sv.moves)+1)
	}
	sv.state = next
	sv.moves = append(sv.moves, m)
	sv.opts.Sink.Display(next)
	if err := sv.opts.OnMove(len(sv.moves), m, next); err != nil {
		return fmt.Errorf("classic: OnMove error at move %d: %w", len(sv.moves), err)
	}
	return nil
}

// checkPegs requires three valid, pairwise distinct pegs.
func checkPegs(src, aux, dst tower.PegID) error {
	for _, p := range []tower.PegID{src, aux, dst} {
		if !p.Valid() {
			return fmt.Errorf("%w: %d", tower.ErrUnknownPeg, int(p))
		}
	}
	if src == aux || src == dst || aux == dst {
		return fmt.Errorf("%w: src=%s aux=%s dst=%s", tower.ErrInvalidPegPair, src, aux, dst)
	}
	return nil
}

// checkCanonical requires the top n disks of src to be 1..n, top first.
func checkCanonical(s tower.State, n int, src tower.PegID) error {
	disks := s.Disks(src)
	if len(disks) < n {
		return fmt.Errorf("%w: %s holds %d disks, need %d", ErrNotCanonical, src, len(disks), n)
	}
	for i := 0; i < n; i++ {
		if disks[i] != tower.Disk(i+1) {
			return fmt.Errorf("%w: %s position %d holds disk %d", ErrNotCanonical, src, i, disks[i])
		}
	}
	return nil
}
