package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hanoi"
	"github.com/katalvlaran/hanoi/restore"
	"github.com/katalvlaran/hanoi/tower"
	"github.com/katalvlaran/hanoi/walk"
)

func init() {
	log.SetOutput(io.Discard)
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func TestExecute_Canonical(t *testing.T) {
	out, err := execute(t, "-n", "2", "--seed", "1")
	require.NoError(t, err)
	// initial state plus 3 moves
	assert.Equal(t, 4, strings.Count(out, tower.Separator))
}

func TestExecute_ArbitraryBFS(t *testing.T) {
	out, err := execute(t, "--disks", "3", "-a", "-s", "4", "--strategy", "bfs")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "peg-3: [1 2 3]\n"+tower.Separator+"\n"))
}

func TestExecute_Quiet(t *testing.T) {
	out, err := execute(t, "-n", "3", "-q")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExecute_Errors(t *testing.T) {
	_, err := execute(t, "--strategy", "astar")
	assert.ErrorIs(t, err, restore.ErrOptionViolation)

	_, err = execute(t, "-n", "0", "-s", "1")
	assert.ErrorIs(t, err, tower.ErrInvalidDiskCount)

	_, err = execute(t, "--max-steps", "-1", "-s", "1")
	assert.ErrorIs(t, err, hanoi.ErrOptionViolation)

	_, err = execute(t, "extra")
	assert.Error(t, err)

	_, err = execute(t, "--no-such-flag")
	assert.Error(t, err)
}

// countingSource wraps a seeded stream and counts draws.
type countingSource struct {
	src  walk.Source
	used int
}

func (c *countingSource) Intn(n int) int {
	c.used++
	return c.src.Intn(n)
}

// TestRun_OneStreamForShuffleAndRestore checks that the restoration walk
// continues the shuffle's random stream instead of restarting it.
func TestRun_OneStreamForShuffleAndRestore(t *testing.T) {
	src := &countingSource{src: walk.NewSource(7)}
	res, err := run(config{disks: 3, arbitrary: true, strategy: "random", quiet: true, source: src}, io.Discard)
	require.NoError(t, err)

	want := walk.ShuffleFactor * 3
	if res.Restoration != nil {
		want += res.Restoration.Steps
	}
	assert.Equal(t, want, src.used)
}
