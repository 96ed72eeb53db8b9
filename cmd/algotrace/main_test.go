package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/engine"
	"github.com/katalvlaran/algotrace/playback"
	"github.com/katalvlaran/algotrace/validate"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	for _, k := range engine.Kinds() {
		assert.Contains(t, out, k.String())
	}
	assert.Contains(t, out, "2..16 values")
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "bubble-sort", "5,3,1,4,2")
	require.NoError(t, err)
	assert.Contains(t, out, "Array is sorted")
	assert.Contains(t, out, "bubble-sort: ")

	out, err = execute(t, "run", "linear-search", "4 8 15", "--target", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 8 at index 1")

	out, err = execute(t, "run", "factorial", "3", "--format", "pretty")
	require.NoError(t, err)
	assert.Contains(t, out, "CallStack:")
}

func TestRun_Random(t *testing.T) {
	out, err := execute(t, "run", "bubble-sort", "--random", "--seed", "7")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "input: ["), out)
	assert.Contains(t, out, "Array is sorted")

	again, err := execute(t, "run", "bubble-sort", "--random", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, strings.SplitN(out, "\n", 2)[0], strings.SplitN(again, "\n", 2)[0])

	out, err = execute(t, "run", "binary-search", "-r", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "target=")

	out, err = execute(t, "step", "factorial", "--random", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "input: n=")

	_, err = execute(t, "run", "bfs", "--random")
	assert.ErrorIs(t, err, engine.ErrNotApplicable)

	_, err = execute(t, "run", "bubble-sort", "1,2", "--random")
	assert.Error(t, err)
	_, err = execute(t, "run", "bubble-sort")
	assert.Error(t, err)
}

func TestRun_Rejects(t *testing.T) {
	_, err := execute(t, "run", "binary-search", "5,3,9", "-t", "3")
	assert.ErrorIs(t, err, validate.ErrOrdering)

	_, err = execute(t, "run", "bogo-sort", "1")
	assert.ErrorIs(t, err, engine.ErrUnknownKind)

	_, err = execute(t, "run", "bubble-sort", "1", "--format", "xml")
	assert.Error(t, err)

	_, err = execute(t, "run", "bfs", "A-B", "--start", "Z")
	assert.Error(t, err)
}

func TestStep(t *testing.T) {
	out, err := execute(t, "step", "bubble-sort", "3 1 2", "--at", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "step 2/6  swapped"), out)

	out, err = execute(t, "step", "dfs", "A-B B-C", "--start", "B", "--at", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "finish")
	assert.Contains(t, out, "Finish B")
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithms:\n  bubble-sort: {min_size: 1, max_size: 2}\n"), 0o600))

	_, err := execute(t, "--config", path, "run", "bubble-sort", "3,2,1")
	assert.ErrorIs(t, err, validate.ErrSize)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "list")
	assert.Error(t, err)
}

func TestPlay(t *testing.T) {
	e, err := engine.New()
	require.NoError(t, err)
	tr, err := e.Run(engine.InsertionSort, engine.Input{Sequence: validate.Sequence{2, 1}})
	require.NoError(t, err)

	var buf bytes.Buffer
	cur := playback.New(tr)
	require.NoError(t, play(context.Background(), &buf, cur, time.Millisecond, 3))
	assert.True(t, cur.AtEnd())
	assert.Equal(t, tr.Len(), strings.Count(buf.String(), "step "))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	buf.Reset()
	cur.Reset()
	assert.ErrorIs(t, play(ctx, &buf, cur, time.Hour, 3), context.Canceled)
	assert.Equal(t, 0, cur.Position(), "one step is shown before the first tick")
}
