// Package hanoi solves the Towers of Hanoi puzzle from the canonical stack
// or from an arbitrary reachable configuration.
//
// What is in the box?
//
//	tower/   — game state, the single legal-move primitive, display sinks
//	walk/    — injected randomness, random legal moves, arbitrary states
//	classic/ — the recursive 2^N − 1 move solver
//	restore/ — randomized (or BFS) restoration to canonical, then classic
//	bfs/     — breadth-first search over the legal-move state graph
//
// Flow
//
//	NewState(n, arbitrary) ──► Solve ──┬─ canonical ─────────────► classic.Solve
//	                                   └─ otherwise ─► restore.Restore ─► classic.Solve
//
// Every state produced along the way is sent to a tower.Sink, in move order.
//
// Quick example:
//
//	s, _ := hanoi.NewState(3, false)
//	res, _ := hanoi.Solve(s, hanoi.WithSink(tower.NewTextSink(os.Stdout)))
//	fmt.Println(len(res.Moves())) // 7
package hanoi
