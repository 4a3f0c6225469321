package restore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hanoi/classic"
	"github.com/katalvlaran/hanoi/tower"
)

var (
	// ErrStepBudget is returned when the random walk exceeds MaxSteps.
	ErrStepBudget = errors.New("restore: step budget exhausted")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("restore: invalid option supplied")
)

// Strategy selects how the canonical state is found.
type Strategy int

const (
	// StrategyRandomWalk is the unbounded epoch-resetting random walk.
	StrategyRandomWalk Strategy = iota
	// StrategyBFS finds a shortest path, falling back to the random walk.
	StrategyBFS
)

// String returns "random" or "bfs".
func (s Strategy) String() string {
	switch s {
	case StrategyRandomWalk:
		return "random"
	case StrategyBFS:
		return "bfs"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy maps "random" and "bfs" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "random", "":
		return StrategyRandomWalk, nil
	case "bfs":
		return StrategyBFS, nil
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
}

// Option configures Restore.
type Option func(*Options)

// Options holds parameters and collaborators of a restoration.
type Options struct {
	// Ctx allows cancellation between walk steps.
	Ctx context.Context

	// Sink receives the restoration path and then every classical move.
	Sink tower.Sink

	// Logger receives structured progress records.
	Logger logrus.FieldLogger

	// Strategy selects random walk or BFS.
	Strategy Strategy

	// MaxSteps, if > 0, bounds the number of random draws. 0 means unbounded.
	MaxSteps int

	// MaxDepth bounds the BFS strategy. 0 means no limit.
	MaxDepth int

	// OnEpoch is called when the walk returns to the epoch's starting state.
	OnEpoch func(epoch, steps int)

	// internal error recorded during option parsing
	err error
}

// discardLogger is the default: a logrus logger writing nowhere.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// DefaultOptions returns an unbounded random walk with a discarding sink and logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Sink:     tower.Discard,
		Logger:   discardLogger(),
		Strategy: StrategyRandomWalk,
		OnEpoch:  func(int, int) {},
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

// WithLogger sets the structured logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStrategy selects the search strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyRandomWalk && s != StrategyBFS {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithMaxSteps bounds the random walk.
//
//	n > 0: at most n draws
//	n == 0: unbounded
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithMaxDepth bounds the BFS strategy; negative values are rejected.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnEpoch registers a hook for epoch resets.
func WithOnEpoch(fn func(epoch, steps int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEpoch = fn
		}
	}
}

// Result is the outcome of a restoration followed by the classical solve.
type Result struct {
	// Path holds the displayed restoration states; the last one is canonical.
	Path []tower.State
	// Steps counts random draws (random walk) or moves (BFS).
	Steps int
	// Epochs counts epochs started, including the first.
	Epochs int
	// Strategy is the strategy that produced Path.
	Strategy Strategy
	// Solution is the classical solve run from the canonical state.
	Solution *classic.Result
}

// Final returns the state after the classical solve.
func (r *Result) Final() tower.State {
	return r.Solution.Final
}
