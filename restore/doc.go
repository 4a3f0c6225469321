// Package restore brings an arbitrary tower state back to the canonical
// all-on-peg-1 configuration and then hands off to the classical solver.
//
// Random walk (default)
//
//	Current, Original := start; History := []; Target := canonical(N)
//	loop:
//	  Next := walk.Walk(Current, 1)
//	  Next == Target:   display History..., display Next, classic.Solve(Next)
//	  Next == Original: new epoch, History := [] (bounds memory across cycles)
//	  otherwise:        History += Next; Current := Next
//
// There is no heuristic and, by default, no bound: termination is probabilistic.
// WithMaxSteps adds a step budget (ErrStepBudget) and WithContext adds cancellation.
//
// BFS
//
//	WithStrategy(StrategyBFS) replaces the walk with a shortest legal-move path
//	from the bfs package, bounded by WithMaxDepth. When the bounded search finds
//	nothing the random walk runs instead.
//
// Logging
//
//	Epoch resets are logged at Debug and completion at Info through a
//	logrus.FieldLogger (WithLogger); the default logger discards everything.
package restore
