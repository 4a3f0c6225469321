// Package tower models the Towers of Hanoi game state: three named pegs,
// N uniquely sized disks, and the single move primitive that mutates them.
//
// What
//
//   - State: an immutable value holding three pegs (Peg1, Peg2, Peg3) and N.
//   - Move:  a (From, To) request; State.Move applies it if and only if it is legal.
//   - Sink:  the display collaborator receiving every state to render.
//
// Legality
//
//	A move is legal when From is non-empty and either To is empty or the top
//	disk of To is strictly larger than the top disk of From. Illegal requests
//	are silent no-ops: the input state is returned unchanged. State.Apply
//	reports the Outcome (Applied or NoOp) for callers that need to tell them apart.
//
// Invariants
//
//   - Disk conservation: the pegs together hold exactly {1..N}, no duplicates.
//   - Ordering: strictly increasing size top-to-bottom on every peg. This is not
//     enforced by FromPegs, but every legal move preserves it.
//
// Errors
//
//   - ErrInvalidDiskCount  if N <= 0.
//   - ErrInvalidPegPair    if From == To.
//   - ErrUnknownPeg        if a PegID is not one of Peg1, Peg2, Peg3.
//   - ErrDiskSet           if FromPegs receives a multiset other than {1..N}.
//
// Complexity
//
//   - Move: O(N) time and memory (the two touched pegs are copied, the third is shared).
//   - Equal, Key, Validate: O(N).
package tower
