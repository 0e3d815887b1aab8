// Package commands_test provides tests for CLI command creation.
package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/leapstack-labs/minic/internal/cli/config"
	"github.com/leapstack-labs/minic/internal/cli/output"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs cmd with args and returns stdout, stderr and the error.
func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	// The root command silences these in the real CLI.
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestNewCompileCommand(t *testing.T) {
	cmd := NewCompileCommand()

	assert.Equal(t, "compile [files...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	require.NotNil(t, cmd.Flags().Lookup("expr"))
	assert.Equal(t, "e", cmd.Flags().Lookup("expr").Shorthand)
}

func TestNewTokensCommand(t *testing.T) {
	cmd := NewTokensCommand()

	assert.Equal(t, "tokens [file]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("expr"))
}

func TestNewASTCommand(t *testing.T) {
	cmd := NewASTCommand()

	assert.Equal(t, "ast [file]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"expr", "format"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
	assert.Equal(t, "yaml", cmd.Flags().Lookup("format").DefValue)
}

func TestNewREPLCommand(t *testing.T) {
	cmd := NewREPLCommand()

	assert.Equal(t, "repl", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Long, "Long should not be empty")
}

func TestNewWatchCommand(t *testing.T) {
	cmd := NewWatchCommand()

	assert.Equal(t, "watch <file>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	_, _, err := execute(t, cmd, "")
	require.Error(t, err, "watch requires a file argument")
}

func TestNewCommandContext(t *testing.T) {
	t.Run("uses values prepared by the root command", func(t *testing.T) {
		cfg := &config.Config{OutputFormat: "json", Program: true}
		r := output.NewRendererWithTTY(new(bytes.Buffer), new(bytes.Buffer), false, output.ModeJSON)

		cmd := &cobra.Command{}
		cmd.SetContext(output.WithRenderer(config.WithConfig(context.Background(), cfg), r))

		cc := NewCommandContext(cmd)
		assert.Same(t, cfg, cc.Cfg)
		assert.Same(t, r, cc.Renderer)
		assert.True(t, cc.Compiler.Config().Program)
	})

	t.Run("falls back to defaults", func(t *testing.T) {
		config.ResetConfig()

		cmd := &cobra.Command{}
		cmd.SetContext(context.Background())

		cc := NewCommandContext(cmd)
		assert.Equal(t, config.DefaultOutput, cc.Cfg.OutputFormat)
		require.NotNil(t, cc.Renderer)
	})
}

func TestCompileWritesThroughContextRenderer(t *testing.T) {
	var rendered bytes.Buffer
	r := output.NewRendererWithTTY(&rendered, new(bytes.Buffer), false, output.ModeJSON)

	cmd := NewCompileCommand()
	cmd.SetContext(output.WithRenderer(context.Background(), r))

	stdout, _, err := execute(t, cmd, "", "-e", "int x = 1")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, rendered.String(), `"MOV x, R0"`)
}
