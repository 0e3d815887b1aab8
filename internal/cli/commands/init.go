package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/minic/internal/cli/config"
	"github.com/leapstack-labs/minic/internal/cli/output"
	"github.com/spf13/cobra"
)

// configTemplate renders minic.yaml with every key at its default.
func configTemplate() string {
	return fmt.Sprintf(`# minic configuration. Flags and MINIC_* environment variables override it.

# Report grammar mismatches instead of skipping them.
strict: false
# With strict, keep going after an error at the next int/if keyword.
recover: false
# Compile every statement rather than only the first.
program: false
# Log debug diagnostics to stderr.
verbose: false
# auto | text | markdown | json
output: %s
# Files compiled in parallel (0 for unlimited).
jobs: %d
# REPL history, relative to this file.
history_file: %s
`, config.DefaultOutput, config.DefaultJobs, config.DefaultHistoryFile)
}

const exampleSource = `int x = 10;
int y = 3;
if (7) { y }
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var example bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new minic project",
		Long: `Initialize a new minic project by writing a minic.yaml configuration
file with every option at its default.

Use --example to also write example.mc, a small program to compile.`,
		Example: `  # Initialize in current directory
  minic init

  # Initialize in a new directory with an example program
  minic init my-project --example

  # Force overwrite existing config
  minic init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			r := getRenderer(cmd, getConfig(cmd.Context()))
			return runInit(r, dir, force, example)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&example, "example", false, "Also write an example program")

	return cmd
}

func runInit(r *output.Renderer, dir string, force, example bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	files := map[string]string{"minic.yaml": configTemplate()}
	order := []string{"minic.yaml"}
	if example {
		files["example.mc"] = exampleSource
		order = append(order, "example.mc")
	}

	for _, name := range order {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists. Use --force to overwrite", path)
		}
	}

	for _, name := range order {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		r.Println("  created " + path)
	}

	r.Println("")
	r.Success("minic project initialized!")
	if example {
		r.Println("")
		r.Println("Next steps:")
		r.Println("  minic compile --program " + filepath.Join(dir, "example.mc"))
	}

	return nil
}
