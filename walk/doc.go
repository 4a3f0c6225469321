// Package walk drives random legal-move walks over tower states.
//
// A random move draws one of the six ordered peg pairs uniformly and hands it
// to tower.State.Move; illegal draws are no-ops, so three or four of the
// six pairs are wasted depending on the state. Walk chains k such moves,
// and Arbitrary shuffles a canonical state with ShuffleFactor·n of them.
//
// Determinism
//
//	Randomness is an injected Source, never a package-level generator.
//	NewSource(seed) returns a *rand.Rand with a fixed seed policy, so the
//	same seed yields the same walk on every platform.
//
// Concurrency
//
//	*rand.Rand is not goroutine-safe. Give every puzzle session its own Source.
package walk
