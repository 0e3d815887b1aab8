// Package commands implements the minic subcommands.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leapstack-labs/minic/internal/cli/config"
	"github.com/leapstack-labs/minic/internal/cli/output"
	"github.com/leapstack-labs/minic/pkg/compiler"
	"github.com/spf13/cobra"
)

// Source names used in diagnostics for input that has no file.
const (
	exprSourceName  = "<expr>"
	stdinSourceName = "<stdin>"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Compiler *compiler.Compiler
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with a compiler and renderer.
// The config and renderer prepared by the root command are used when present.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	r := getRenderer(cmd, cfg)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Compiler: compiler.New(cfg.CompilerConfig(logger)),
		Renderer: r,
	}
}

// getConfig returns the configuration from ctx, then config.GetCurrentConfig(),
// then the defaults.
func getConfig(ctx context.Context) *config.Config {
	if cfg, ok := config.FromContext(ctx); ok {
		return cfg
	}
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		OutputFormat: config.DefaultOutput,
		Jobs:         config.DefaultJobs,
		HistoryFile:  config.DefaultHistoryFile,
	}
}

func getRenderer(cmd *cobra.Command, cfg *config.Config) *output.Renderer {
	if r, ok := output.FromContext(cmd.Context()); ok {
		return r
	}
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
}

// readSource resolves the single input of a command: the inline expression,
// the file argument, or stdin, in that order.
func readSource(cmd *cobra.Command, args []string, expr string) (name, src string, err error) {
	switch {
	case expr != "":
		return exprSourceName, expr, nil
	case len(args) > 0:
		data, err := os.ReadFile(args[0]) //nolint:gosec // path is supplied by the user
		if err != nil {
			return "", "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return args[0], string(data), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return stdinSourceName, string(data), nil
	}
}
