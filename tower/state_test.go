package tower_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hanoi/tower"
)

// mustPegs builds a state from top-first pegs or fails the test.
func mustPegs(t *testing.T, p1, p2, p3 []tower.Disk) tower.State {
	t.Helper()
	s, err := tower.FromPegs(p1, p2, p3)
	require.NoError(t, err)
	return s
}

func TestNewCanonical_InvalidCount(t *testing.T) {
	for _, n := range []int{0, -1, -42} {
		_, err := tower.NewCanonical(n)
		assert.ErrorIs(t, err, tower.ErrInvalidDiskCount, "n=%d", n)
	}
}

func TestNewCanonical_Layout(t *testing.T) {
	s, err := tower.NewCanonical(4)
	require.NoError(t, err)

	assert.Equal(t, 4, s.N())
	assert.Equal(t, []tower.Disk{1, 2, 3, 4}, s.Disks(tower.Peg1))
	assert.Empty(t, s.Disks(tower.Peg2))
	assert.Empty(t, s.Disks(tower.Peg3))
	assert.True(t, s.IsCanonical())
	assert.True(t, s.Ordered())
	assert.NoError(t, s.Validate())

	top, ok := s.Top(tower.Peg1)
	assert.True(t, ok)
	assert.Equal(t, tower.Disk(1), top)
	_, ok = s.Top(tower.Peg2)
	assert.False(t, ok)
}

func TestFromPegs_Errors(t *testing.T) {
	_, err := tower.FromPegs(nil, nil, nil)
	assert.ErrorIs(t, err, tower.ErrInvalidDiskCount)

	_, err = tower.FromPegs([]tower.Disk{1, 1}, nil, nil)
	assert.ErrorIs(t, err, tower.ErrDiskSet)

	_, err = tower.FromPegs([]tower.Disk{1}, []tower.Disk{3}, nil)
	assert.ErrorIs(t, err, tower.ErrDiskSet)

	_, err = tower.FromPegs([]tower.Disk{0}, nil, nil)
	assert.ErrorIs(t, err, tower.ErrDiskSet)
}

func TestFromPegs_Unordered(t *testing.T) {
	// Ordering is not a type invariant; FromPegs accepts it but Ordered reports it.
	s := mustPegs(t, []tower.Disk{2, 1}, nil, []tower.Disk{3})
	assert.NoError(t, s.Validate())
	assert.False(t, s.Ordered())
	assert.False(t, s.IsCanonical())
}

func TestState_EqualAndKey(t *testing.T) {
	a := mustPegs(t, []tower.Disk{3}, []tower.Disk{1, 2}, nil)
	b := mustPegs(t, []tower.Disk{3}, []tower.Disk{1, 2}, nil)
	c := mustPegs(t, []tower.Disk{3}, nil, []tower.Disk{1, 2})

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Key(), c.Key())

	// Same peg contents but different disk counts never compare equal.
	one, _ := tower.NewCanonical(1)
	two, _ := tower.NewCanonical(2)
	assert.False(t, one.Equal(two))
}

func TestState_KeyDistinguishesOrder(t *testing.T) {
	a := mustPegs(t, []tower.Disk{1, 2}, nil, nil)
	b := mustPegs(t, []tower.Disk{2, 1}, nil, nil)
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestState_DisksIsCopy(t *testing.T) {
	s, _ := tower.NewCanonical(3)
	d := s.Disks(tower.Peg1)
	d[0] = 99
	assert.Equal(t, []tower.Disk{1, 2, 3}, s.Disks(tower.Peg1))
}

func TestState_UnknownPeg(t *testing.T) {
	s, _ := tower.NewCanonical(2)
	assert.Nil(t, s.Disks(tower.PegID(7)))
	assert.Zero(t, s.Len(tower.PegID(0)))
	_, ok := s.Top(tower.PegID(4))
	assert.False(t, ok)
}

func TestState_String(t *testing.T) {
	s := mustPegs(t, []tower.Disk{3}, nil, []tower.Disk{1, 2})
	want := "peg-1: [3]\npeg-2: []\npeg-3: [1 2]"
	assert.Equal(t, want, s.String())
}
