package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clitest "github.com/leapstack-labs/minic/internal/cli/testutil"
	"github.com/leapstack-labs/minic/internal/testutil"
	"github.com/leapstack-labs/minic/pkg/compiler"
)

func TestWatchAndCompile_InitialCompile(t *testing.T) {
	dir := clitest.WriteSources(t, map[string]string{"w.mc": "int w = 1"})
	c := compiler.New(compiler.Config{Logger: testutil.NewTestLogger(t)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var results []*compiler.Result
	err := watchAndCompile(ctx, filepath.Join(dir, "w.mc"), c, func(res *compiler.Result) {
		results = append(results, res)
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []string{"MOV R0, 1", "MOV w, R0"}, results[0].Lines)
}

func TestWatchAndCompile_RecompilesOnChange(t *testing.T) {
	dir := clitest.WriteSources(t, map[string]string{"w.mc": "int w = 1"})
	path := filepath.Join(dir, "w.mc")
	c := compiler.New(compiler.Config{Logger: testutil.NewTestLogger(t)})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := make(chan *compiler.Result, 8)
	done := make(chan error, 1)
	go func() {
		done <- watchAndCompile(ctx, path, c, func(res *compiler.Result) {
			results <- res
		})
	}()

	select {
	case res := <-results:
		assert.Equal(t, []string{"MOV R0, 1", "MOV w, R0"}, res.Lines)
	case <-time.After(5 * time.Second):
		t.Fatal("initial compile did not run")
	}

	require.NoError(t, os.WriteFile(path, []byte("int w = 2"), 0600))

	select {
	case res := <-results:
		assert.Equal(t, []string{"MOV R0, 2", "MOV w, R0"}, res.Lines)
	case <-time.After(5 * time.Second):
		t.Fatal("change was not picked up")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatchAndCompile_MissingDirectory(t *testing.T) {
	c := compiler.New(compiler.Config{})
	err := watchAndCompile(context.Background(), filepath.Join(t.TempDir(), "nope", "x.mc"), c, func(*compiler.Result) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
