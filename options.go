package hanoi

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hanoi/restore"
	"github.com/katalvlaran/hanoi/tower"
	"github.com/katalvlaran/hanoi/walk"
)

// ErrOptionViolation is returned by NewState and Solve when an invalid Option is supplied.
var ErrOptionViolation = errors.New("hanoi: invalid option supplied")

// Option configures NewState and Solve.
// If an Option is invalid, it is recorded and surfaced as ErrOptionViolation
// before any work is done, whatever the input state.
type Option func(*Options)

// Options gathers the collaborators forwarded to walk, classic and restore.
type Options struct {
	Ctx      context.Context
	Source   walk.Source
	Sink     tower.Sink
	Logger   logrus.FieldLogger
	Strategy restore.Strategy
	MaxSteps int
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns background context, the default seeded source,
// a discarding sink, no logger and the unbounded random walk.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Sink:     tower.Discard,
		Strategy: restore.StrategyRandomWalk,
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

// WithSource injects the random source used by arbitrary states and restoration.
func WithSource(src walk.Source) Option {
	return func(o *Options) {
		if src != nil {
			o.Source = src
		}
	}
}

// WithSeed is WithSource(walk.NewSource(seed)). Every call to NewState or
// Solve given this option starts a fresh stream from seed, so callers that
// shuffle and then solve should share one source through WithSource instead.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Source = walk.NewSource(seed)
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

// WithLogger sets the logger handed to restore.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStrategy selects the restoration strategy.
func WithStrategy(s restore.Strategy) Option {
	return func(o *Options) {
		if s != restore.StrategyRandomWalk && s != restore.StrategyBFS {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithMaxSteps bounds the restoration random walk (0 = unbounded, < 0 invalid).
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithMaxDepth bounds the BFS restoration strategy (0 = no limit, < 0 invalid).
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// buildOptions applies opts over the defaults and reports the first invalid one.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Source == nil {
		o.Source = walk.NewSource(0)
	}
	return o, nil
}

// restoreOptions translates o for restore.Restore; restore validates the values.
func (o Options) restoreOptions() []restore.Option {
	ro := []restore.Option{
		restore.WithContext(o.Ctx),
		restore.WithSink(o.Sink),
		restore.WithStrategy(o.Strategy),
		restore.WithMaxSteps(o.MaxSteps),
		restore.WithMaxDepth(o.MaxDepth),
	}
	if o.Logger != nil {
		ro = append(ro, restore.WithLogger(o.Logger))
	}
	return ro
}
