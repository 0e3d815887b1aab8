package commands

import (
	"fmt"

	"github.com/leapstack-labs/minic/internal/cli/output"
	"github.com/leapstack-labs/minic/pkg/ast"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// AST dump formats.
const (
	astFormatYAML = "yaml"
	astFormatJSON = "json"
)

// ASTOptions holds options for the ast command.
type ASTOptions struct {
	Expr   string
	Format string
}

// NewASTCommand creates the ast command.
func NewASTCommand() *cobra.Command {
	opts := &ASTOptions{}

	cmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Print the parsed syntax tree",
		Long: `Parse the input and dump the resulting statements.

The dump is YAML by default. --format json, or -o json, prints JSON instead.
Statements that parsed are printed even when the input also has errors.`,
		Example: `  minic ast -e "int x = 10"
  minic ast --program --format json prog.mc`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAST(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Expr, "expr", "e", "", "Parse this source instead of a file")
	cmd.Flags().StringVar(&opts.Format, "format", astFormatYAML, "Dump format (yaml|json)")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{astFormatYAML, astFormatJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runAST(cmd *cobra.Command, args []string, opts *ASTOptions) error {
	cc := NewCommandContext(cmd)

	format := opts.Format
	if cc.Renderer.EffectiveMode() == output.ModeJSON {
		format = astFormatJSON
	}
	if format != astFormatYAML && format != astFormatJSON {
		return fmt.Errorf("unknown format %q (want yaml or json)", format)
	}

	name, src, err := readSource(cmd, args, opts.Expr)
	if err != nil {
		return err
	}

	res := cc.Compiler.Compile(name, src, nil)
	stmts := res.Statements
	if stmts == nil {
		stmts = []*ast.Node{}
	}

	if format == astFormatJSON {
		if err := cc.Renderer.JSON(stmts); err != nil {
			return err
		}
	} else {
		enc := yaml.NewEncoder(cc.Renderer.Writer())
		enc.SetIndent(2)
		if err := enc.Encode(stmts); err != nil {
			return fmt.Errorf("failed to encode tree: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode tree: %w", err)
		}
	}

	if res.Err != nil {
		cc.Renderer.Error(res.Err.Error())
		return fmt.Errorf("%s: parse failed", name)
	}
	return nil
}
