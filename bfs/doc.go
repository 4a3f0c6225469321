// Package bfs provides breadth-first search over the Towers of Hanoi state
// graph, where vertices are tower.State values and edges are legal moves.
//
// What
//
//   - Explore states in non-decreasing move distance from a start state.
//   - Returns a BFSResult containing:
//   - Order:  visit sequence (state keys)
//   - Depth:  map from state key → distance (moves) from start
//   - Parent: map from state key → predecessor key in the BFS tree
//   - Via:    map from state key → the move that reached it
//   - States: map from state key → tower.State
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a state is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Stops early once a Target state is dequeued (WithTarget).
//
// Why
//
//	ShortestPath finds a minimal legal-move sequence between two states. It is
//	the bounded, deterministic alternative to the randomized restoration walk.
//
// Determinism
//
//	Neighbors are generated with tower.State.LegalMoves, which follows the fixed
//	order 1→2, 1→3, 2→1, 2→3, 3→1, 3→2, so the visit sequence is reproducible.
//
// Complexity (N disks, 3^N states, at most 3 legal moves each)
//
//   - Time:   O(3^N · N)
//   - Memory: O(3^N · N)
//
// Usage
//
//	path, err := bfs.ShortestPath(from, to, bfs.WithMaxDepth(64))
//	if errors.Is(err, bfs.ErrNoPath) {
//	    // not reachable within the depth limit
//	}
//
// Errors
//
//   - ErrInvalidState     if the start state fails tower.State.Validate.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ErrStateNotFound    from PathTo for a state that was never reached.
//   - ErrNoPath           from ShortestPath when the target is unreachable.
//   - Wrapped user-supplied hook errors from OnVisit, and context errors.
package bfs
