package classic

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hanoi/tower"
)

var (
	// ErrNotCanonical is returned when the source peg does not start with disks 1..n.
	ErrNotCanonical = errors.New("classic: source peg is not in canonical order")

	// ErrTooManyDisks is returned by MoveCount when 2^n − 1 overflows uint64.
	ErrTooManyDisks = errors.New("classic: move count overflows for n > 64")
)

// Option configures Solve.
type Option func(*Options)

// Options holds the solver's collaborators.
type Options struct {
	// Ctx allows cancellation between moves.
	Ctx context.Context

	// Sink receives the state after every move.
	Sink tower.Sink

	// OnMove is called after every move with its 1-based index.
	OnMove func(index int, m tower.Move, s tower.State) error
}

// DefaultOptions returns background context, a discarding sink and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Sink:   tower.Discard,
		OnMove: func(int, tower.Move, tower.State) error { return nil },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSink sets the display collaborator.
func WithSink(s tower.Sink) Option {
	return func(o *Options) {
		if s != nil {
			o.Sink = s
		}
	}
}

// WithOnMove registers a per-move hook.
func WithOnMove(fn func(index int, m tower.Move, s tower.State) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMove = fn
		}
	}
}

// Result is the outcome of a classical solve.
type Result struct {
	// Final is the state after the last move.
	Final tower.State
	// Moves lists every move in the order performed.
	Moves []tower.Move
}

// MoveCount returns 2^n − 1, the minimal number of moves for n disks.
func MoveCount(n int) (uint64, error) {
	switch {
	case n < 0:
		return 0, fmt.Errorf("%w: n=%d", tower.ErrInvalidDiskCount, n)
	case n > 64:
		return 0, fmt.Errorf("%w: n=%d", ErrTooManyDisks, n)
	case n == 64:
		return ^uint64(0), nil
	}
	return (uint64(1) << uint(n)) - 1, nil
}
