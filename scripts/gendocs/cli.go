package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/minic/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// sampleProgram is compiled into the index page to show the language.
const sampleProgram = `int x = 10;
int y = 3;
if (7) { y }`

// exitCase is one invocation whose outcome documents an exit status.
type exitCase struct {
	args    []string
	meaning string
}

var exitCases = []exitCase{
	{args: []string{"compile", "-e", "int x = 10"}, meaning: "Every input compiled"},
	{args: []string{"compile", "-e", "x = 1"}, meaning: "No statement found"},
	{args: []string{"compile", "--strict", "-e", "int 10"}, meaning: "Syntax error in strict mode"},
	{args: []string{"compile", "--strict", "--program", "-e", "int x = 1 $"}, meaning: "Unrecognized character in strict mode"},
	{args: []string{"compile", "missing.mc"}, meaning: "Input file cannot be read"},
}

// invocation is the captured outcome of running the CLI once.
type invocation struct {
	stdout string
	stderr string
	err    error
}

// exitStatus maps a command error to the process status, as cmd/minic does.
func exitStatus(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

// diagnostic returns the first line the user sees for a failed run.
func (inv invocation) diagnostic() string {
	for _, line := range strings.Split(inv.stderr, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	if inv.err != nil {
		return inv.err.Error()
	}
	return ""
}

// runCLI executes a fresh root command with args in text mode.
func runCLI(args []string) invocation {
	root := cli.NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(append(append([]string{}, args...), "-o", "text"))
	err := root.Execute()
	return invocation{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// generateCLIDocs generates CLI documentation from Cobra commands.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rootCmd := cli.NewRootCmd()
	cmds := documentedCommands(rootCmd)

	if err := generateCLIIndex(rootCmd, cmds, outDir); err != nil {
		return fmt.Errorf("failed to generate index: %w", err)
	}
	log.Printf("  Generated index.md")

	for _, cmd := range cmds {
		if err := generateCommandPage(cmd, outDir); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", cmd.Name(), err)
		}
		log.Printf("  Generated %s.md", cmd.Name())
	}

	return nil
}

func documentedCommands(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || cmd.Name() == "__complete" {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func generateCLIIndex(rootCmd *cobra.Command, cmds []*cobra.Command, outDir string) error {
	w := NewMarkdownWriter()

	w.Frontmatter("CLI Reference", "Command-line interface reference for minic")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph("minic scans, parses and compiles a tiny C-like language into pseudo-assembly. Besides compiling, it dumps tokens and syntax trees, runs a REPL and recompiles a file on every save.")
	w.CodeBlock("bash", "go install github.com/leapstack-labs/minic/cmd/minic@latest")

	w.Header(2, "The language")
	w.Paragraph("A program is a sequence of `int name = value` declarations and `if (number) { token }` blocks, optionally separated by `;`. By default only the first statement is compiled; `--program` compiles all of them.")
	w.CodeBlock("c", sampleProgram)
	listing := runCLI([]string{"compile", "--program", "-e", sampleProgram})
	if listing.err != nil {
		return fmt.Errorf("sample program failed to compile: %s", listing.diagnostic())
	}
	w.Paragraph("compiles to:")
	w.CodeBlock("asm", listing.stdout)

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range cmds {
		link := fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name())
		rows = append(rows, []string{link, cleanDescription(cmd.Short)})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Global Options")
	w.Paragraph("Each option also has a configuration key and a `MINIC_` environment variable. Flags win over the environment, which wins over `minic.yaml`.")
	writeFlagsTable(w, rootCmd.PersistentFlags())

	w.Header(2, "Exit Codes")
	w.Paragraph("minic exits non-zero when any input fails. Diagnostics go to stderr and successful listings still go to stdout.")
	var exitRows [][]string
	for _, c := range exitCases {
		inv := runCLI(c.args)
		detail := ""
		if inv.err != nil {
			detail = InlineCode(inv.diagnostic())
		}
		exitRows = append(exitRows, []string{
			InlineCode(fmt.Sprint(exitStatus(inv.err))),
			c.meaning,
			InlineCode("minic " + strings.Join(quoteArgs(c.args), " ")),
			detail,
		})
	}
	w.Table([]string{"Code", "Meaning", "Example", "Diagnostic"}, exitRows)

	filename := filepath.Join(outDir, "index.md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}

func generateCommandPage(cmd *cobra.Command, outDir string) error {
	w := NewMarkdownWriter()

	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	w.Header(2, "Usage")
	w.CodeBlock("bash", cmd.UseLine())

	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		writeFlagsTable(w, cmd.LocalFlags())
	}
	if cmd.HasInheritedFlags() {
		w.Paragraph("Global options are listed in the [CLI reference](/cli/).")
	}

	if examples := parseExamples(cmd.Example); len(examples) > 0 {
		w.Header(2, "Examples")
		for _, ex := range examples {
			writeExample(w, ex)
		}
	}

	filename := filepath.Join(outDir, cmd.Name()+".md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}

// writeExample prints an example and, when it is self-contained (its source
// is given with -e), the output it produces.
func writeExample(w *MarkdownWriter, ex example) {
	if ex.comment != "" {
		w.Paragraph(ex.comment + ":")
	}
	w.CodeBlock("bash", ex.command)

	args := splitArgs(ex.command)
	if len(args) < 2 || args[0] != "minic" || !containsExpr(args) {
		return
	}
	inv := runCLI(args[1:])
	if inv.err != nil {
		w.CodeBlock("text", inv.diagnostic())
		return
	}
	w.CodeBlock("text", inv.stdout)
}

func containsExpr(args []string) bool {
	for _, a := range args {
		if a == "-e" || a == "--expr" {
			return true
		}
	}
	return false
}

// writeFlagsTable lists flags with the configuration key each one sets.
func writeFlagsTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	keys := make(map[string]string)
	for _, f := range getConfigSchema() {
		keys[f.Flag()] = f.Name
	}

	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}

		option := InlineCode("--" + f.Name)
		if f.Shorthand != "" {
			option = InlineCode("-"+f.Shorthand) + ", " + option
		}

		defVal := ""
		if f.DefValue != "" && f.Value.Type() != "bool" {
			defVal = InlineCode(f.DefValue)
		}

		key := ""
		if name, ok := keys["--"+f.Name]; ok {
			key = InlineCode(name)
		}

		rows = append(rows, []string{option, defVal, key, cleanDescription(f.Usage)})
	})

	w.Table([]string{"Option", "Default", "Config key", "Description"}, rows)
}

// example is one command from a cobra Example block with the comment above it.
type example struct {
	comment string
	command string
}

// parseExamples splits a cobra Example block into commands, attaching each
// "# ..." line to the command that follows it.
func parseExamples(block string) []example {
	var out []example
	var comment string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, "#"):
			comment = strings.TrimSpace(strings.TrimPrefix(line, "#"))
		default:
			out = append(out, example{comment: comment, command: line})
			comment = ""
		}
	}
	return out
}

// splitArgs splits a shell command line on spaces, honoring double quotes.
func splitArgs(line string) []string {
	var args []string
	var cur strings.Builder
	inQuote, inArg := false, false
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			inArg = true
		case r == ' ' && !inQuote:
			if inArg {
				args = append(args, cur.String())
				cur.Reset()
				inArg = false
			}
		default:
			cur.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, cur.String())
	}
	return args
}

// quoteArgs is the inverse of splitArgs for display.
func quoteArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " ;\n") {
			a = `"` + a + `"`
		}
		out[i] = a
	}
	return out
}
