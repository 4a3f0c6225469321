package hanoi

import (
	"fmt"

	"github.com/katalvlaran/hanoi/classic"
	"github.com/katalvlaran/hanoi/restore"
	"github.com/katalvlaran/hanoi/tower"
	"github.com/katalvlaran/hanoi/walk"
)

// Result is the outcome of Solve.
type Result struct {
	// Restoration is nil when the input was already canonical.
	Restoration *restore.Result
	// Solution is the classical solve from the canonical state.
	Solution *classic.Result
}

// Final returns the solved state: every disk on peg-3.
func (r *Result) Final() tower.State { return r.Solution.Final }

// Moves returns the classical solution's moves.
func (r *Result) Moves() []tower.Move { return r.Solution.Moves }

// NewState returns the canonical state for n disks, or an arbitrary one
// shuffled by walk.Arbitrary with the configured source.
func NewState(n int, arbitrary bool, opts ...Option) (tower.State, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return tower.State{}, err
	}
	if !arbitrary {
		return tower.NewCanonical(n)
	}
	return walk.Arbitrary(n, o.Source)
}

// Move applies one move request; illegal moves return s unchanged.
func Move(s tower.State, from, to tower.PegID) (tower.State, error) {
	return s.Move(from, to)
}

// Display sends s to sink.
func Display(s tower.State, sink tower.Sink) {
	if sink != nil {
		sink.Display(s)
	}
}

// Solve moves every disk onto peg-3. A canonical s goes straight to the
// classical solver; anything else is restored to canonical first.
func Solve(s tower.State, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("hanoi: %w", err)
	}

	if s.IsCanonical() {
		sol, err := classic.Solve(s, s.N(), tower.Peg1, tower.Peg2, tower.Peg3,
			classic.WithContext(o.Ctx), classic.WithSink(o.Sink))
		if err != nil {
			return nil, fmt.Errorf("hanoi: %w", err)
		}
		return &Result{Solution: sol}, nil
	}

	res, err := restore.Restore(s, o.Source, o.restoreOptions()...)
	if err != nil {
		return nil, fmt.Errorf("hanoi: %w", err)
	}
	return &Result{Restoration: res, Solution: res.Solution}, nil
}
