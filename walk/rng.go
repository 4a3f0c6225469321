package walk

import "math/rand"

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// Source is the random capability a walk needs. *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform value in [0, n). n is always > 0.
	Intn(n int) int
}

// NewSource returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func NewSource(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// orDefault substitutes the default stream for a nil Source.
func orDefault(src Source) Source {
	if src == nil {
		return NewSource(0)
	}
	return src
}

// Sequence replays a fixed list of draws, cycling when exhausted.
// Each draw v is reduced modulo n. It makes walks fully scriptable.
type Sequence struct {
	Draws []int
	pos   int
}

// NewSequence returns a Sequence over draws.
func NewSequence(draws ...int) *Sequence {
	return &Sequence{Draws: draws}
}

// Intn returns the next draw modulo n, or 0 when Draws is empty.
func (q *Sequence) Intn(n int) int {
	if len(q.Draws) == 0 {
		return 0
	}
	v := q.Draws[q.pos%len(q.Draws)]
	q.pos++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Used reports how many draws have been consumed.
func (q *Sequence) Used() int { return q.pos }
