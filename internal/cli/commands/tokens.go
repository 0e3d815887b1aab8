package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/minic/internal/cli/output"
	"github.com/leapstack-labs/minic/pkg/parser"
	"github.com/leapstack-labs/minic/pkg/token"
	"github.com/spf13/cobra"
)

// TokensOptions holds options for the tokens command.
type TokensOptions struct {
	Expr string
}

// tokensJSON is the machine-readable token dump.
type tokensJSON struct {
	File   string        `json:"file"`
	Tokens []token.Token `json:"tokens"`
	Errors []string      `json:"errors"`
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	opts := &TokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream",
		Long: `Scan the input and print every token with its kind and position.

The stream always ends with an End token. Unrecognized characters appear as
Invalid tokens and are reported on stderr; with --strict they also fail the
command.`,
		Example: `  minic tokens -e "int x = 10"
  minic tokens -o json prog.mc`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Expr, "expr", "e", "", "Scan this source instead of a file")

	return cmd
}

func runTokens(cmd *cobra.Command, args []string, opts *TokensOptions) error {
	cc := NewCommandContext(cmd)

	name, src, err := readSource(cmd, args, opts.Expr)
	if err != nil {
		return err
	}

	toks, lexErrs := parser.Tokenize(src)
	cc.Logger.Debug("scanned source", "file", name, "tokens", len(toks), "errors", len(lexErrs))

	switch cc.Renderer.EffectiveMode() {
	case output.ModeJSON:
		msgs := make([]string, 0, len(lexErrs))
		for _, e := range lexErrs {
			msgs = append(msgs, e.Error())
		}
		if err := cc.Renderer.JSON(tokensJSON{File: name, Tokens: toks, Errors: msgs}); err != nil {
			return err
		}
	case output.ModeMarkdown:
		cc.Renderer.Header("Tokens: " + name)
		tokenTable(cc.Renderer, toks).RenderMarkdown()
		cc.Renderer.Println()
	default:
		tokenTable(cc.Renderer, toks).Render()
	}

	if cc.Renderer.EffectiveMode() != output.ModeJSON {
		for _, e := range lexErrs {
			cc.Renderer.Error(e.Error())
		}
	}

	if cc.Cfg.Strict && len(lexErrs) > 0 {
		return fmt.Errorf("%s: %d unrecognized characters", name, len(lexErrs))
	}
	return nil
}

func tokenTable(r *output.Renderer, toks []token.Token) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Kind", "Text", "Position"})
	for i, tok := range toks {
		t.AppendRow(table.Row{i, tok.Kind.String(), tok.Text, tok.Pos.String()})
	}
	return t
}
