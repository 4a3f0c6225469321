// Command hanoi solves a Towers of Hanoi puzzle and prints every state.
//
//	hanoi -n 4
//	hanoi -n 4 --arbitrary --seed 7 --strategy bfs
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hanoi"
	"github.com/katalvlaran/hanoi/restore"
	"github.com/katalvlaran/hanoi/tower"
	"github.com/katalvlaran/hanoi/walk"
)

var log = logrus.New()

type config struct {
	disks     int
	arbitrary bool
	seed      int64
	strategy  string
	maxSteps  int
	maxDepth  int
	timeout   time.Duration
	quiet     bool
	verbose   bool

	// source overrides the seeded stream; tests use it to count draws.
	source walk.Source
}

// newRootCmd builds the command with its own config so it can be executed repeatedly.
func newRootCmd(stdout io.Writer) *cobra.Command {
	c := &config{}
	cmd := &cobra.Command{
		Use:   "hanoi",
		Short: "Solve a Towers of Hanoi puzzle",
		Long: `Solve a Towers of Hanoi puzzle from the canonical stack or from a
randomly shuffled state, printing every state along the way.

Examples:
  hanoi -n 4
  hanoi -n 5 --arbitrary --seed 7
  hanoi -n 6 --arbitrary --strategy bfs --quiet -v`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(c, stdout)
		},
	}

	cmd.Flags().IntVarP(&c.disks, "disks", "n", 3, "Number of disks")
	cmd.Flags().BoolVarP(&c.arbitrary, "arbitrary", "a", false, "Start from a randomly shuffled state")
	cmd.Flags().Int64VarP(&c.seed, "seed", "s", 0, "Random seed (0 = derive from the clock)")
	cmd.Flags().StringVar(&c.strategy, "strategy", "random", "Restoration strategy: random or bfs")
	cmd.Flags().IntVar(&c.maxSteps, "max-steps", 0, "Random walk step budget (0 = unbounded)")
	cmd.Flags().IntVar(&c.maxDepth, "max-depth", 0, "BFS depth limit (0 = none)")
	cmd.Flags().DurationVar(&c.timeout, "timeout", 0, "Abort after this long (0 = never)")
	cmd.Flags().BoolVarP(&c.quiet, "quiet", "q", false, "Do not print states")
	cmd.Flags().BoolVarP(&c.verbose, "verbose", "v", false, "Debug logging")

	return cmd
}

// runSolve applies logging flags and runs the solve.
func runSolve(c *config, stdout io.Writer) error {
	if c.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if c.seed == 0 {
		c.seed = time.Now().UnixNano()
	}
	_, err := run(*c, stdout)
	return err
}

// run is the testable core: it builds one random stream for both the
// shuffle and the restoration, then solves and reports.
func run(c config, stdout io.Writer) (*hanoi.Result, error) {
	strategy, err := restore.ParseStrategy(c.strategy)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var sink tower.Sink = tower.NewTextSink(stdout)
	if c.quiet {
		sink = tower.Discard
	}

	src := c.source
	if src == nil {
		src = walk.NewSource(c.seed)
	}

	opts := []hanoi.Option{
		hanoi.WithContext(ctx),
		hanoi.WithSource(src),
		hanoi.WithSink(sink),
		hanoi.WithLogger(log),
		hanoi.WithStrategy(strategy),
		hanoi.WithMaxSteps(c.maxSteps),
		hanoi.WithMaxDepth(c.maxDepth),
	}

	s, err := hanoi.NewState(c.disks, c.arbitrary, opts...)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"disks":     c.disks,
		"arbitrary": c.arbitrary,
		"canonical": s.IsCanonical(),
		"seed":      c.seed,
	}).Info("starting")
	hanoi.Display(s, sink)

	start := time.Now()
	res, err := hanoi.Solve(s, opts...)
	if err != nil {
		return nil, err
	}

	fields := logrus.Fields{
		"moves":   len(res.Moves()),
		"elapsed": time.Since(start).Round(time.Millisecond),
	}
	if res.Restoration != nil {
		fields["restore_steps"] = res.Restoration.Steps
		fields["restore_epochs"] = res.Restoration.Epochs
	}
	log.WithFields(fields).Info("solved")
	return res, nil
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hanoi:", err)
		os.Exit(1)
	}
}
