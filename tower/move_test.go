package tower_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hanoi/tower"
)

func TestMove_InvalidRequests(t *testing.T) {
	s, _ := tower.NewCanonical(3)

	_, err := s.Move(tower.Peg1, tower.Peg1)
	assert.ErrorIs(t, err, tower.ErrInvalidPegPair)

	_, err = s.Move(tower.Peg1, tower.PegID(9))
	assert.ErrorIs(t, err, tower.ErrUnknownPeg)

	_, err = s.Move(tower.PegID(0), tower.Peg2)
	assert.ErrorIs(t, err, tower.ErrUnknownPeg)

	assert.False(t, s.Legal(tower.Move{From: tower.Peg2, To: tower.Peg2}))
}

func TestMove_EmptySourceIsNoOp(t *testing.T) {
	s, _ := tower.NewCanonical(3)
	next, out, err := s.Apply(tower.Move{From: tower.Peg2, To: tower.Peg3})
	require.NoError(t, err)
	assert.Equal(t, tower.NoOp, out)
	assert.True(t, next.Equal(s))
}

func TestMove_OntoEmptyPeg(t *testing.T) {
	s, _ := tower.NewCanonical(3)
	next, out, err := s.Apply(tower.Move{From: tower.Peg1, To: tower.Peg3})
	require.NoError(t, err)
	assert.Equal(t, tower.Applied, out)
	assert.Equal(t, []tower.Disk{2, 3}, next.Disks(tower.Peg1))
	assert.Equal(t, []tower.Disk{1}, next.Disks(tower.Peg3))

	// receiver untouched
	assert.True(t, s.IsCanonical())
}

func TestMove_OntoLargerDisk(t *testing.T) {
	s := mustPegs(t, []tower.Disk{2, 3}, []tower.Disk{1}, nil)
	next, out, err := s.Apply(tower.Move{From: tower.Peg2, To: tower.Peg1})
	require.NoError(t, err)
	assert.Equal(t, tower.Applied, out)
	assert.True(t, next.IsCanonical())
}

func TestMove_OntoSmallerDiskIsNoOp(t *testing.T) {
	// top(to)=1 is smaller than top(from)=2
	s := mustPegs(t, []tower.Disk{2, 3}, []tower.Disk{1}, nil)
	next, out, err := s.Apply(tower.Move{From: tower.Peg1, To: tower.Peg2})
	require.NoError(t, err)
	assert.Equal(t, tower.NoOp, out)
	assert.True(t, next.Equal(s))

	// boundary: top(to) = top(from) - 1
	s = mustPegs(t, []tower.Disk{3}, []tower.Disk{2}, []tower.Disk{1})
	next, err = s.Move(tower.Peg1, tower.Peg2)
	require.NoError(t, err)
	assert.True(t, next.Equal(s))
}

func TestMove_SharedPegsNotClobbered(t *testing.T) {
	// Two successors of the same state must not alias each other's pegs.
	s := mustPegs(t, []tower.Disk{3}, []tower.Disk{1}, []tower.Disk{2})
	a, err := s.Move(tower.Peg2, tower.Peg1)
	require.NoError(t, err)
	b, err := s.Move(tower.Peg2, tower.Peg3)
	require.NoError(t, err)

	assert.Equal(t, []tower.Disk{1, 3}, a.Disks(tower.Peg1))
	assert.Equal(t, []tower.Disk{2}, a.Disks(tower.Peg3))
	assert.Equal(t, []tower.Disk{3}, b.Disks(tower.Peg1))
	assert.Equal(t, []tower.Disk{1, 2}, b.Disks(tower.Peg3))
}

func TestLegalMoves(t *testing.T) {
	s, _ := tower.NewCanonical(3)
	assert.Equal(t, []tower.Move{
		{From: tower.Peg1, To: tower.Peg2},
		{From: tower.Peg1, To: tower.Peg3},
	}, s.LegalMoves())

	s = mustPegs(t, []tower.Disk{3}, []tower.Disk{1}, []tower.Disk{2})
	assert.Equal(t, []tower.Move{
		{From: tower.Peg2, To: tower.Peg1},
		{From: tower.Peg2, To: tower.Peg3},
		{From: tower.Peg3, To: tower.Peg1},
	}, s.LegalMoves())
}

// TestMove_InvariantsExhaustive applies every ordered pair to every state
// reachable from canonical(4) and checks conservation and ordering.
func TestMove_InvariantsExhaustive(t *testing.T) {
	start, _ := tower.NewCanonical(4)
	seen := map[string]bool{start.Key(): true}
	queue := []tower.State{start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, m := range tower.AllMoves() {
			next, out, err := s.Apply(m)
			require.NoError(t, err)
			require.NoError(t, next.Validate())
			require.True(t, next.Ordered(), "ordering broken by %s from\n%s", m, s)
			if out == tower.NoOp {
				require.True(t, next.Equal(s))
				continue
			}
			if !seen[next.Key()] {
				seen[next.Key()] = true
				queue = append(queue, next)
			}
		}
	}
	// every ordered placement of 4 disks on 3 pegs is reachable
	assert.Len(t, seen, 81)
}
