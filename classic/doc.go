// Package classic implements the recursive Towers of Hanoi solver for states
// whose top n disks on the source peg are already in canonical order.
//
// Algorithm
//
//	solve(n, src, aux, dst):
//	  n == 1: move src→dst
//	  n  > 1: solve(n-1, src, dst, aux); move src→dst; solve(n-1, aux, src, dst)
//
// The solver performs exactly 2^n − 1 moves (MoveCount), which is minimal,
// and emits every resulting state to the configured tower.Sink once, in move order.
//
// Options
//
//   - WithContext(ctx): checked before every move; cancellation aborts the solve.
//   - WithSink(s):      display collaborator (default tower.Discard).
//   - WithOnMove(fn):   hook after every move; a returned error aborts the solve.
//
// Errors
//
//   - tower.ErrInvalidDiskCount if n is not in 1..state.N().
//   - tower.ErrInvalidPegPair   if src, aux and dst are not three distinct pegs.
//   - tower.ErrUnknownPeg       for a peg outside Peg1..Peg3.
//   - ErrNotCanonical           if the top n disks of src are not 1..n.
//   - Wrapped OnMove hook errors and context errors.
package classic
