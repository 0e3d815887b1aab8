package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/leapstack-labs/minic/internal/cli/config"
)

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
}

// EnvVar returns the environment variable that sets the field.
func (f ConfigField) EnvVar() string {
	return "MINIC_" + strings.ToUpper(f.Name)
}

// Flag returns the command-line flag that sets the field.
func (f ConfigField) Flag() string {
	return "--" + strings.ReplaceAll(f.Name, "_", "-")
}

// getConfigSchema returns the configuration schema definition.
// This mirrors internal/cli/config/types.go.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "strict", Type: "bool", Default: "false", Description: "Report grammar mismatches and unrecognized characters as errors"},
		{Name: "recover", Type: "bool", Default: "false", Description: "With strict, continue at the next int/if keyword after an error"},
		{Name: "program", Type: "bool", Default: "false", Description: "Compile every statement instead of only the first"},
		{Name: "output", Type: "string", Default: config.DefaultOutput, Description: "Output format: auto, text, markdown or json"},
		{Name: "verbose", Type: "bool", Default: "false", Description: "Log debug diagnostics to stderr"},
		{Name: "jobs", Type: "int", Default: strconv.Itoa(config.DefaultJobs), Description: "Files compiled in parallel (0 for unlimited)"},
		{Name: "history_file", Type: "string", Default: config.DefaultHistoryFile, Description: "REPL history file, relative to the project root"},
	}
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "minic configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph("minic reads `minic.yaml` (or `minic.yml`) from the current directory or the nearest parent, or the file named by `--config`. Run `minic init` to create one.")

	headers := []string{"Key", "Type", "Default", "Flag", "Environment", "Description"}
	var rows [][]string
	for _, f := range getConfigSchema() {
		rows = append(rows, []string{
			InlineCode(f.Name),
			f.Type,
			InlineCode(f.Default),
			InlineCode(f.Flag()),
			InlineCode(f.EnvVar()),
			f.Description,
		})
	}
	w.Table(headers, rows)

	w.Header(2, "Precedence")
	w.BulletList([]string{
		"Command-line flags",
		"`MINIC_*` environment variables",
		"`minic.yaml`",
		"Built-in defaults",
	})

	filename := filepath.Join(outDir, "configuration.md")
	if err := os.WriteFile(filename, w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated configuration.md")
	return nil
}
