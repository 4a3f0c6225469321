package walk

import (
	"fmt"

	"github.com/katalvlaran/hanoi/tower"
)

// ShuffleFactor is the number of random moves per disk applied by Arbitrary.
const ShuffleFactor = 200

// RandomMove draws one of the six ordered peg pairs uniformly from src and
// applies it to s. The drawn move and its outcome are returned alongside the
// resulting state; a NoOp outcome means the state is unchanged.
// A nil src uses the default seeded stream.
func RandomMove(s tower.State, src Source) (tower.State, tower.Move, tower.Outcome) {
	moves := tower.AllMoves()
	m := moves[orDefault(src).Intn(len(moves))]
	// pairs from AllMoves are always valid, so Apply cannot fail here
	next, out, _ := s.Apply(m)
	return next, m, out
}

// Walk applies RandomMove exactly k times, threading the state forward,
// and returns the final state. k <= 0 returns s.
func Walk(s tower.State, k int, src Source) tower.State {
	src = orDefault(src)
	for i := 0; i < k; i++ {
		s, _, _ = RandomMove(s, src)
	}
	return s
}

// Arbitrary returns a state reached from canonical(n) by ShuffleFactor·n
// random moves. The distribution is biased and may be canonical itself.
func Arbitrary(n int, src Source) (tower.State, error) {
	s, err := tower.NewCanonical(n)
	if err != nil {
		return tower.State{}, fmt.Errorf("walk: arbitrary state: %w", err)
	}
	return Walk(s, ShuffleFactor*n, src), nil
}
