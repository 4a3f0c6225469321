// Package bfs provides tunable options and error definitions
// for breadth-first search over tower states.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hanoi/tower"
)

// Sentinel errors for BFS execution.
var (
	// ErrInvalidState is returned when the start state is malformed.
	ErrInvalidState = errors.New("bfs: invalid start state")

	// ErrStateNotFound is returned by PathTo for a state BFS never reached.
	ErrStateNotFound = errors.New("bfs: state not reached")

	// ErrNoPath is returned by ShortestPath when the target is unreachable.
	ErrNoPath = errors.New("bfs: no path between states")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state is enqueued, before visiting.
	OnEnqueue func(s tower.State, depth int)

	// OnDequeue is called immediately before visiting a state.
	OnDequeue func(s tower.State, depth int)

	// OnVisit is called when visiting a state. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(s tower.State, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Target, if set, ends the search as soon as it is dequeued.
	Target *tower.State

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no target (full exploration)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(tower.State, int) {},
		OnDequeue: func(tower.State, int) {},
		OnVisit:   func(tower.State, int) error { return nil },
		MaxDepth:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(s tower.State, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(s tower.State, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(s tower.State, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithTarget stops the search once t is dequeued.
func WithTarget(t tower.State) Option {
	return func(o *BFSOptions) {
		o.Target = &t
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: state keys visited, in visit sequence.
//   - Depth: map from state key to its distance (in moves) from the start.
//   - Parent: map from state key to its predecessor in the BFS tree.
//   - Via: map from state key to the move applied to its parent.
//   - States: map from state key to the state itself.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
	Via    map[string]tower.Move
	States map[string]tower.State
}

// PathTo reconstructs the states from the start state to dest, inclusive.
// Returns ErrStateNotFound if dest was not reached.
func (r *BFSResult) PathTo(dest tower.State) ([]tower.State, error) {
	key := dest.Key()
	if _, ok := r.Depth[key]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrStateNotFound, key)
	}
	// build reversed path
	path := []tower.State{}
	for cur := key; ; {
		path = append(path, r.States[cur])
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// MovesTo returns the moves leading from the start state to dest.
func (r *BFSResult) MovesTo(dest tower.State) ([]tower.Move, error) {
	path, err := r.PathTo(dest)
	if err != nil {
		return nil, err
	}
	moves := make([]tower.Move, 0, len(path)-1)
	for _, s := range path[1:] {
		moves = append(moves, r.Via[s.Key()])
	}
	return moves, nil
}
