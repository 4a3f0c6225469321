// Package tower defines the disks, pegs, moves and sentinel errors of the game.
package tower

import (
	"errors"
	"fmt"
)

// Sentinel errors for state construction and moves.
var (
	// ErrInvalidDiskCount is returned when a disk count is not positive.
	ErrInvalidDiskCount = errors.New("tower: disk count must be positive")

	// ErrInvalidPegPair is returned when a move names the same peg twice.
	ErrInvalidPegPair = errors.New("tower: source and destination pegs must differ")

	// ErrUnknownPeg is returned for a PegID outside Peg1..Peg3.
	ErrUnknownPeg = errors.New("tower: unknown peg")

	// ErrDiskSet is returned when pegs do not hold exactly the disks {1..N}.
	ErrDiskSet = errors.New("tower: pegs must hold each disk 1..N exactly once")

	// ErrEmptyRecorder is returned by Recorder.Last before any state was recorded.
	ErrEmptyRecorder = errors.New("tower: recorder is empty")
)

// Disk is a disk identity; a larger value is a larger disk.
type Disk int

// PegID names one of the three fixed pegs.
type PegID int

const (
	// Peg1 is the canonical starting peg.
	Peg1 PegID = iota + 1
	// Peg2 is the middle peg.
	Peg2
	// Peg3 is the canonical destination peg.
	Peg3
)

// Pegs lists the peg identities in display order.
var Pegs = [3]PegID{Peg1, Peg2, Peg3}

// Valid reports whether p is one of Peg1, Peg2, Peg3.
func (p PegID) Valid() bool {
	return p >= Peg1 && p <= Peg3
}

// String renders p as "peg-1", "peg-2" or "peg-3".
func (p PegID) String() string {
	if !p.Valid() {
		return fmt.Sprintf("peg(%d)", int(p))
	}
	return fmt.Sprintf("peg-%d", int(p))
}

// index maps a valid peg to its storage slot.
func (p PegID) index() int {
	return int(p - Peg1)
}

// Move is a request to transfer the top disk of From onto To.
type Move struct {
	From PegID
	To   PegID
}

// Validate checks that both pegs exist and differ.
func (m Move) Validate() error {
	if !m.From.Valid() {
		return fmt.Errorf("%w: from=%d", ErrUnknownPeg, int(m.From))
	}
	if !m.To.Valid() {
		return fmt.Errorf("%w: to=%d", ErrUnknownPeg, int(m.To))
	}
	if m.From == m.To {
		return fmt.Errorf("%w: %s", ErrInvalidPegPair, m.From)
	}
	return nil
}

// String renders m as "peg-1->peg-3".
func (m Move) String() string {
	return m.From.String() + "->" + m.To.String()
}

// Outcome tells whether a move request changed the state.
type Outcome int

const (
	// NoOp means the move was illegal and the state is unchanged.
	NoOp Outcome = iota
	// Applied means the top disk was transferred.
	Applied
)

// String returns "noop" or "applied".
func (o Outcome) String() string {
	if o == Applied {
		return "applied"
	}
	return "noop"
}
