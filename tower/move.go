package tower

// allMoves lists the six ordered peg pairs. Its order is part of the
// contract of LegalMoves and of random move selection.
var allMoves = [6]Move{
	{Peg1, Peg2}, {Peg1, Peg3},
	{Peg2, Peg1}, {Peg2, Peg3},
	{Peg3, Peg1}, {Peg3, Peg2},
}

// AllMoves returns the six ordered (From, To) pairs with From != To,
// in the order 1→2, 1→3, 2→1, 2→3, 3→1, 3→2.
func AllMoves() [6]Move {
	return allMoves
}

// Legal reports whether m would transfer a disk. Invalid requests
// (unknown or identical pegs) are never legal.
func (s State) Legal(m Move) bool {
	if m.Validate() != nil {
		return false
	}
	d, ok := s.Top(m.From)
	if !ok {
		return false
	}
	dst, ok := s.Top(m.To)
	return !ok || dst > d
}

// LegalMoves returns the legal moves from s in AllMoves order.
func (s State) LegalMoves() []Move {
	out := make([]Move, 0, 3)
	for _, m := range allMoves {
		if s.Legal(m) {
			out = append(out, m)
		}
	}
	return out
}

// Move transfers the top disk of from onto to when that is legal,
// and returns s unchanged otherwise. The receiver is never modified.
// It fails only for unknown pegs or from == to.
func (s State) Move(from, to PegID) (State, error) {
	next, _, err := s.Apply(Move{From: from, To: to})
	return next, err
}

// Apply is Move with the Outcome reported.
//
// Rules, in order:
//  1. From empty → NoOp.
//  2. To empty → Applied.
//  3. top(To) > top(From) → Applied.
//  4. otherwise → NoOp.
func (s State) Apply(m Move) (State, Outcome, error) {
	if err := m.Validate(); err != nil {
		return s, NoOp, err
	}
	if !s.Legal(m) {
		return s, NoOp, nil
	}

	fi, ti := m.From.index(), m.To.index()
	src := s.pegs[fi]
	d := src[len(src)-1]

	next := State{n: s.n, pegs: s.pegs}
	next.pegs[fi] = append([]Disk(nil), src[:len(src)-1]...)
	dst := make([]Disk, len(s.pegs[ti]), len(s.pegs[ti])+1)
	copy(dst, s.pegs[ti])
	next.pegs[ti] = append(dst, d)

	return next, Applied, nil
}
