package tower

import (
	"fmt"
	"strconv"
	"strings"
)

// State is an immutable game state. The zero value is not usable;
// build states with NewCanonical or FromPegs.
type State struct {
	n int
	// pegs[i] holds peg i's disks bottom-first, so the top is the last element.
	// Slices are never written after construction; moves allocate new ones.
	pegs [3][]Disk
}

// NewCanonical returns the canonical state for n disks: all of them on Peg1,
// disk n at the bottom and disk 1 on top, Peg2 and Peg3 empty.
func NewCanonical(n int) (State, error) {
	if n <= 0 {
		return State{}, fmt.Errorf("%w: n=%d", ErrInvalidDiskCount, n)
	}
	bottom := make([]Disk, n)
	for i := 0; i < n; i++ {
		bottom[i] = Disk(n - i)
	}
	return State{n: n, pegs: [3][]Disk{bottom, nil, nil}}, nil
}

// FromPegs builds a state from three top-first disk sequences.
// The pegs must hold every disk 1..N exactly once, where N is the total count;
// ordering within a peg is not checked (see Ordered).
func FromPegs(p1, p2, p3 []Disk) (State, error) {
	n := len(p1) + len(p2) + len(p3)
	if n == 0 {
		return State{}, fmt.Errorf("%w: n=0", ErrInvalidDiskCount)
	}
	s := State{n: n}
	seen := make([]bool, n+1)
	for i, top := range [3][]Disk{p1, p2, p3} {
		bottom := make([]Disk, len(top))
		for j, d := range top {
			if d < 1 || int(d) > n {
				return State{}, fmt.Errorf("%w: disk %d out of range 1..%d", ErrDiskSet, d, n)
			}
			if seen[d] {
				return State{}, fmt.Errorf("%w: duplicate disk %d", ErrDiskSet, d)
			}
			seen[d] = true
			bottom[len(top)-1-j] = d
		}
		s.pegs[i] = bottom
	}
	return s, nil
}

// N returns the disk count.
func (s State) N() int { return s.n }

// Len returns how many disks sit on peg p (0 for an unknown peg).
func (s State) Len(p PegID) int {
	if !p.Valid() {
		return 0
	}
	return len(s.pegs[p.index()])
}

// Disks returns a top-first copy of peg p's disks.
func (s State) Disks(p PegID) []Disk {
	if !p.Valid() {
		return nil
	}
	bottom := s.pegs[p.index()]
	out := make([]Disk, len(bottom))
	for i, d := range bottom {
		out[len(bottom)-1-i] = d
	}
	return out
}

// Top returns the top disk of p and false when p is empty or unknown.
func (s State) Top(p PegID) (Disk, bool) {
	if !p.Valid() {
		return 0, false
	}
	bottom := s.pegs[p.index()]
	if len(bottom) == 0 {
		return 0, false
	}
	return bottom[len(bottom)-1], true
}

// Equal reports whether s and o have the same disk count and peg contents.
func (s State) Equal(o State) bool {
	if s.n != o.n {
		return false
	}
	for i := range s.pegs {
		a, b := s.pegs[i], o.pegs[i]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

// IsCanonical reports whether every disk sits on Peg1 in decreasing size
// from bottom to top.
func (s State) IsCanonical() bool {
	if s.n == 0 || len(s.pegs[0]) != s.n {
		return false
	}
	for i, d := range s.pegs[0] {
		if d != Disk(s.n-i) {
			return false
		}
	}
	return true
}

// Ordered reports whether every peg is strictly increasing in size
// from top to bottom.
func (s State) Ordered() bool {
	for _, bottom := range s.pegs {
		for i := 1; i < len(bottom); i++ {
			if bottom[i] >= bottom[i-1] {
				return false
			}
		}
	}
	return true
}

// Validate checks disk conservation: the pegs hold exactly {1..N}.
//
// Complexity: O(N) time, O(N) extra space for the seen set.
func (s State) Validate() error {
	if s.n <= 0 {
		return fmt.Errorf("%w: n=%d", ErrInvalidDiskCount, s.n)
	}
	seen := make([]bool, s.n+1)
	count := 0
	for _, bottom := range s.pegs {
		for _, d := range bottom {
			if d < 1 || int(d) > s.n || seen[d] {
				return fmt.Errorf("%w: bad disk %d", ErrDiskSet, d)
			}
			seen[d] = true
			count++
		}
	}
	if count != s.n {
		return fmt.Errorf("%w: found %d of %d disks", ErrDiskSet, count, s.n)
	}
	return nil
}

// Key returns a compact identity usable as a map key.
// Equal states have equal keys and vice versa.
//
// Complexity: O(N) time, one string allocation of O(N) bytes.
func (s State) Key() string {
	var b strings.Builder
	b.Grow(s.n*3 + 3)
	for i, bottom := range s.pegs {
		if i > 0 {
			b.WriteByte('|')
		}
		for j, d := range bottom {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(int(d)))
		}
	}
	return b.String()
}

// String renders one line per peg, top disk first, e.g.
//
//	peg-1: [1 2 3]
//	peg-2: []
//	peg-3: []
func (s State) String() string {
	var b strings.Builder
	for i, p := range Pegs {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %v", p, s.Disks(p))
	}
	return b.String()
}
