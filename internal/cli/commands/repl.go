package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/minic/pkg/compiler"
	"github.com/spf13/cobra"
)

const (
	replPrompt     = "minic> "
	replSourceName = "<repl>"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Compile statements interactively",
		Long: `Start an interactive session. Each line is compiled on its own and
the listing is printed right away. History is kept in the history file
(see --history-file).

Type .help for commands, .quit to exit.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cc := NewCommandContext(cmd)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     cc.Cfg.HistoryFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(rl.Stdout(), "minic REPL")
	_, _ = fmt.Fprintln(rl.Stdout(), "Type .help for commands, .quit to exit")

	return replLoop(rl, cmd, cc.Compiler)
}

// lineReader is the part of readline the loop depends on.
type lineReader interface {
	Readline() (string, error)
}

func replLoop(rl lineReader, cmd *cobra.Command, c *compiler.Compiler) error {
	out := cmd.OutOrStdout()
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleREPLCommand(cmd, line); quit {
				return nil
			}
			continue
		}

		res := c.Compile(replSourceName, line, out)
		if res.Err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", res.Err)
		}
	}
}

// handleREPLCommand runs a dot-command and reports whether to exit.
func handleREPLCommand(cmd *cobra.Command, line string) bool {
	command := strings.ToLower(strings.Fields(line)[0])

	switch command {
	case ".quit", ".exit":
		return true
	case ".help":
		printREPLHelp(cmd.OutOrStdout())
	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .quit / .exit   Exit the REPL

Statements:
  int <name> = <number>
  if (<number>) { <token> }
`
	_, _ = fmt.Fprintln(w, help)
}

func newREPLCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("int"),
		readline.PcItem("if"),
		readline.PcItem(".help"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
