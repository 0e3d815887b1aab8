// Package compiler runs the minic pipeline: scan, parse and generate.
package compiler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/minic/pkg/ast"
	"github.com/leapstack-labs/minic/pkg/codegen"
	"github.com/leapstack-labs/minic/pkg/parser"
)

// Config holds compiler configuration.
type Config struct {
	// Strict turns grammar mismatches and unrecognized characters into errors.
	Strict bool
	// Recover keeps parsing after an error in program mode (strict only).
	Recover bool
	// Program parses every statement in the source instead of just the first.
	Program bool
	// Jobs bounds how many files CompileFiles works on at once (0 = unbounded).
	Jobs int
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// Compiler turns minic source into pseudo-assembly listings.
// A Compiler holds no per-run state and may be shared between goroutines.
type Compiler struct {
	cfg    Config
	logger *slog.Logger
}

// Result is the outcome of compiling one source.
type Result struct {
	Name       string
	Statements []*ast.Node
	Lines      []string
	Err        error
}

// New creates a Compiler.
func New(cfg Config) *Compiler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Compiler{cfg: cfg, logger: logger}
}

// Config returns the compiler's configuration.
func (c *Compiler) Config() Config {
	return c.cfg
}

// Compile compiles src, streaming instruction lines to w (which may be nil)
// and recording them in the returned Result.
//
// Any failure is reported in Result.Err. Statements that parsed are still
// generated. When nothing was parsed and there was no other failure, the
// error wraps parser.ErrNoStatement.
func (c *Compiler) Compile(name, src string, w io.Writer) *Result {
	res := &Result{Name: name}

	p := parser.NewParser(src, parser.Options{
		Strict:  c.cfg.Strict,
		Recover: c.cfg.Recover,
	})

	var parseErr error
	if c.cfg.Program {
		res.Statements, parseErr = p.ParseProgram()
	} else {
		var stmt *ast.Node
		stmt, parseErr = p.Parse()
		if stmt != nil {
			res.Statements = []*ast.Node{stmt}
		}
	}

	var errs []error
	for _, lexErr := range p.Lexer().Errors() {
		if c.cfg.Strict {
			errs = append(errs, lexErr)
			continue
		}
		c.logger.Debug("ignoring unrecognized character", "file", name, "error", lexErr)
	}
	if parseErr != nil {
		errs = append(errs, parseErr)
	}

	var buf bytes.Buffer
	sink := io.Writer(&buf)
	if w != nil {
		sink = io.MultiWriter(w, &buf)
	}
	gen := codegen.New(sink)
	if err := gen.GenerateAll(res.Statements); err != nil {
		errs = append(errs, err)
	}
	if out := strings.TrimSuffix(buf.String(), "\n"); out != "" {
		res.Lines = strings.Split(out, "\n")
	}

	if len(errs) == 0 && len(res.Statements) == 0 {
		errs = append(errs, parser.ErrNoStatement)
	}
	if len(errs) > 0 {
		res.Err = fmt.Errorf("%s: %w", name, errors.Join(errs...))
	}

	c.logger.Debug("compiled source",
		slog.String("file", name),
		slog.Int("statements", len(res.Statements)),
		slog.Int("lines", gen.Lines()),
		slog.Bool("ok", res.Err == nil),
	)
	return res
}

// CompileFile reads and compiles a single file.
func (c *Compiler) CompileFile(path string) *Result {
	src, err := os.ReadFile(path) //nolint:gosec // path is supplied by the user
	if err != nil {
		return &Result{Name: path, Err: fmt.Errorf("failed to read %s: %w", path, err)}
	}
	return c.Compile(path, string(src), nil)
}

// CompileFiles compiles each path concurrently. Results are returned in the
// order of paths; per-file failures are reported in Result.Err. The returned
// error is non-nil only when ctx is cancelled.
func (c *Compiler) CompileFiles(ctx context.Context, paths []string) ([]*Result, error) {
	results := make([]*Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if c.cfg.Jobs > 0 {
		g.SetLimit(c.cfg.Jobs)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = c.CompileFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug("compiled files", slog.Int("count", len(paths)))
	return results, nil
}
