package restore

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hanoi/bfs"
	"github.com/katalvlaran/hanoi/classic"
	"github.com/katalvlaran/hanoi/tower"
	"github.com/katalvlaran/hanoi/walk"
)

// search carries the per-call state of the random walk.
type search struct {
	opts     Options
	src      walk.Source
	target   tower.State
	current  tower.State
	original tower.State
	history  []tower.State
	steps    int
	epochs   int
}

// Restore finds a legal-move path from s to the canonical state, displays it,
// and then solves the canonical state onto peg-3 with the classical solver.
// src drives the random walk; nil uses the default seeded stream.
func Restore(s tower.State, src walk.Source, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}
	target, err := tower.NewCanonical(s.N())
	if err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}
	if src == nil {
		src = walk.NewSource(0)
	}

	log := o.Logger.WithFields(logrus.Fields{"disks": s.N(), "strategy": o.Strategy.String()})

	var res *Result
	if o.Strategy == StrategyBFS {
		res, err = shortest(s, target, o)
		if errors.Is(err, bfs.ErrNoPath) {
			log.WithField("max_depth", o.MaxDepth).Info("bounded search found no path, falling back to random walk")
			err = nil
			res = nil
		}
		if err != nil {
			return nil, err
		}
	}
	if res == nil {
		sr := &search{opts: o, src: src, target: target, current: s, original: s, epochs: 1}
		if res, err = sr.run(log); err != nil {
			return nil, err
		}
	}

	for _, st := range res.Path {
		o.Sink.Display(st)
	}
	log.WithFields(logrus.Fields{
		"steps":    res.Steps,
		"epochs":   res.Epochs,
		"path_len": len(res.Path),
	}).Info("canonical state restored")

	canon := res.Path[len(res.Path)-1]
	sol, err := classic.Solve(canon, canon.N(), tower.Peg1, tower.Peg2, tower.Peg3,
		classic.WithContext(o.Ctx), classic.WithSink(o.Sink))
	if err != nil {
		return nil, fmt.Errorf("restore: classical hand-off: %w", err)
	}
	res.Solution = sol
	return res, nil
}

// run performs the random walk until Target is hit, the budget runs out,
// or the context is cancelled.
//
// Complexity: O(N) per step; the number of steps is unbounded unless
// MaxSteps is set. Memory is O(N·|History|), reset at every epoch.
func (sr *search) run(log logrus.FieldLogger) (*Result, error) {
	for {
		select {
		case <-sr.opts.Ctx.Done():
			return nil, sr.opts.Ctx.Err()
		default:
		}
		if sr.opts.MaxSteps > 0 && sr.steps >= sr.opts.MaxSteps {
			return nil, fmt.Errorf("%w: %d steps over %d epochs", ErrStepBudget, sr.steps, sr.epochs)
		}

		next := walk.Walk(sr.current, 1, sr.src)
		sr.steps++

		switch {
		case next.Equal(sr.target):
			path := append(sr.history, next)
			return &Result{Path: path, Steps: sr.steps, Epochs: sr.epochs, Strategy: StrategyRandomWalk}, nil

		case next.Equal(sr.original):
			log.WithFields(logrus.Fields{
				"epoch":     sr.epochs,
				"steps":     sr.steps,
				"discarded": len(sr.history),
			}).Debug("walk returned to epoch start")
			sr.opts.OnEpoch(sr.epochs, sr.steps)
			sr.epochs++
			sr.original = next
			sr.current = next
			sr.history = nil

		default:
			sr.history = append(sr.history, next)
			sr.current = next
		}
	}
}

// shortest runs the BFS strategy and returns the path without the start state.
func shortest(s, target tower.State, o Options) (*Result, error) {
	path, err := bfs.ShortestPath(s, target, bfs.WithContext(o.Ctx), bfs.WithMaxDepth(o.MaxDepth))
	if err != nil {
		return nil, err
	}
	if len(path) == 1 {
		// s is canonical already; display it once so the path ends on Target
		return &Result{Path: path, Epochs: 1, Strategy: StrategyBFS}, nil
	}
	return &Result{Path: path[1:], Steps: len(path) - 1, Epochs: 1, Strategy: StrategyBFS}, nil
}
