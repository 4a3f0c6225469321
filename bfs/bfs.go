// Package bfs provides breadth-first search over tower states,
// returning move distances, parent links, and visit order.
//
// BFS explores states in increasing distance from a start state,
// with optional hooks, depth limiting, and an early-stop target.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hanoi/tower"
)

// errTargetReached ends the main loop once the target is dequeued.
var errTargetReached = errors.New("bfs: target reached")

// queueItem pairs a state with its BFS depth.
type queueItem struct {
	state tower.State
	key   string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts      BFSOptions
	ctx       context.Context
	queue     []queueItem
	visited   map[string]bool
	targetKey string
	res       *BFSResult
}

// BFS runs breadth-first search from start over the legal-move graph,
// applying any number of functional Options.
// Returns ErrInvalidState for a malformed start, ErrOptionViolation for bad
// options, or any user-supplied hook error.
func BFS(start tower.State, opts ...Option) (*BFSResult, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	w := &walker{
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, 64),
		visited: make(map[string]bool, 64),
		res: &BFSResult{
			Order:  make([]string, 0, 64),
			Depth:  make(map[string]int, 64),
			Parent: make(map[string]string, 64),
			Via:    make(map[string]tower.Move, 64),
			States: make(map[string]tower.State, 64),
		},
	}
	if o.Target != nil {
		w.targetKey = o.Target.Key()
	}

	// Seed queue with start state (no parent)
	w.enqueue(start, start.Key(), 0, "", tower.Move{})
	// Main loop
	if err := w.loop(); err != nil && !errors.Is(err, errTargetReached) {
		return w.res, err
	}
	return w.res, nil
}

// ShortestPath returns the states of a minimal legal-move path from -> to,
// both inclusive. from and to must have the same disk count.
func ShortestPath(from, to tower.State, opts ...Option) ([]tower.State, error) {
	if from.N() != to.N() {
		return nil, fmt.Errorf("%w: %d disks vs %d", ErrNoPath, from.N(), to.N())
	}
	// never append into the caller's backing array
	all := make([]Option, 0, len(opts)+1)
	all = append(append(all, opts...), WithTarget(to))
	res, err := BFS(from, all...)
	if err != nil {
		return nil, err
	}
	path, err := res.PathTo(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, err)
	}
	return path, nil
}

// enqueue marks key visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(s tower.State, key string, d int, parent string, via tower.Move) {
	w.visited[key] = true
	w.res.Depth[key] = d
	w.res.States[key] = s
	if parent != "" {
		w.res.Parent[key] = parent
		w.res.Via[key] = via
	}
	w.opts.OnEnqueue(s, d)
	w.queue = append(w.queue, queueItem{state: s, key: key, depth: d})
}

// loop processes the queue until empty, error, target, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.targetKey != "" && item.key == w.targetKey {
			return errTargetReached
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.state, item.depth)
	return item
}

// visit records the state in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.key)
	if err := w.opts.OnVisit(item.state, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.key, err)
	}
	return nil
}

// enqueueNeighbors applies every legal move, honors MaxDepth,
// and enqueues each unseen successor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, m := range item.state.LegalMoves() {
		// LegalMoves only yields valid, applicable moves
		next, _, _ := item.state.Apply(m)
		key := next.Key()
		if !w.visited[key] {
			w.enqueue(next, key, nextDepth, item.key, m)
		}
	}
}
