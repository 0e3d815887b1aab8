package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/minic/internal/cli/output"
	"github.com/leapstack-labs/minic/pkg/compiler"
	"github.com/spf13/cobra"
)

// CompileOptions holds options for the compile command.
type CompileOptions struct {
	Expr string
}

// compileJSON is the machine-readable form of one compiled input.
type compileJSON struct {
	File   string   `json:"file"`
	Lines  []string `json:"lines"`
	Errors []string `json:"errors"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand() *cobra.Command {
	opts := &CompileOptions{}

	cmd := &cobra.Command{
		Use:   "compile [files...]",
		Short: "Compile source to pseudo-assembly",
		Long: `Compile minic source and print the instruction listing.

Input comes from the -e expression, the given files, or stdin when neither
is present. Files are compiled in parallel (see --jobs) and printed in
argument order, each under a "; <file>" header when there is more than one.`,
		Example: `  # Compile an inline statement
  minic compile -e "int x = 10"

  # Compile every statement of several files
  minic compile --program a.mc b.mc

  # Machine-readable output
  minic compile -o json prog.mc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Expr, "expr", "e", "", "Compile this source instead of files")

	return cmd
}

func runCompile(cmd *cobra.Command, args []string, opts *CompileOptions) error {
	cc := NewCommandContext(cmd)

	var results []*compiler.Result
	if opts.Expr != "" || len(args) == 0 {
		name, src, err := readSource(cmd, nil, opts.Expr)
		if err != nil {
			return err
		}
		results = []*compiler.Result{cc.Compiler.Compile(name, src, nil)}
	} else {
		var err error
		results, err = cc.Compiler.CompileFiles(cmd.Context(), args)
		if err != nil {
			return err
		}
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}

	if cc.Renderer.EffectiveMode() == output.ModeJSON {
		if err := renderCompileJSON(cc.Renderer, results); err != nil {
			return err
		}
	} else {
		renderListings(cc.Renderer, results)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed to compile", failed, len(results))
	}
	return nil
}

// renderListings prints each listing, with a comment header per input when
// there are several, and reports failures on the error stream.
func renderListings(r *output.Renderer, results []*compiler.Result) {
	for i, res := range results {
		if len(results) > 1 {
			if i > 0 {
				r.Println()
			}
			r.Println(r.Muted("; " + res.Name))
		}
		for _, line := range res.Lines {
			r.Println(line)
		}
		if res.Err != nil {
			r.Error(res.Err.Error())
		}
	}
}

func renderCompileJSON(r *output.Renderer, results []*compiler.Result) error {
	out := make([]compileJSON, 0, len(results))
	for _, res := range results {
		item := compileJSON{
			File:   res.Name,
			Lines:  res.Lines,
			Errors: errorMessages(res.Err),
		}
		if item.Lines == nil {
			item.Lines = []string{}
		}
		out = append(out, item)
	}
	return r.JSON(out)
}

// errorMessages flattens a joined error into one message per line.
func errorMessages(err error) []string {
	if err == nil {
		return []string{}
	}
	return strings.Split(err.Error(), "\n")
}
