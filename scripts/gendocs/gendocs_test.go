package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/minic/internal/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "a b c", cleanDescription("  a\n\tb   c "))
	long := strings.Repeat("x", 250)
	assert.Len(t, cleanDescription(long), 200)
}

func TestParseExamples(t *testing.T) {
	block := `  # Compile an inline statement
  minic compile -e "int x = 10"

  minic compile a.mc b.mc`

	assert.Equal(t, []example{
		{comment: "Compile an inline statement", command: `minic compile -e "int x = 10"`},
		{command: "minic compile a.mc b.mc"},
	}, parseExamples(block))
	assert.Empty(t, parseExamples(""))
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{`minic compile -e "int x = 10"`, []string{"minic", "compile", "-e", "int x = 10"}},
		{`minic  ast   prog.mc`, []string{"minic", "ast", "prog.mc"}},
		{`minic compile -e ""`, []string{"minic", "compile", "-e", ""}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splitArgs(tt.line), tt.line)
		assert.Equal(t, tt.want, splitArgs(strings.Join(quoteArgs(tt.want), " ")), "round trip of %q", tt.line)
	}
}

func TestExitCasesMatchCLI(t *testing.T) {
	wantStatus := []int{0, 1, 1, 1, 1}
	require.Len(t, exitCases, len(wantStatus))
	for i, c := range exitCases {
		inv := runCLI(c.args)
		assert.Equal(t, wantStatus[i], exitStatus(inv.err), c.meaning)
	}

	noStmt := runCLI(exitCases[1].args)
	assert.Contains(t, noStmt.diagnostic(), "no statement produced")
}

func TestMarkdownWriter(t *testing.T) {
	w := NewMarkdownWriter()
	w.Header(2, "Usage")
	w.CodeBlock("bash", "minic compile\n")
	w.BulletList([]string{"a", "b"})
	w.Table([]string{"Key", "Value"}, [][]string{{"x", "1"}})

	got := string(w.Bytes())
	assert.Contains(t, got, "## Usage\n\n")
	assert.Contains(t, got, "```bash\nminic compile\n```\n")
	assert.Contains(t, got, "- a\n- b\n")
	assert.Contains(t, got, "| x | 1 |")
}

func TestConfigField(t *testing.T) {
	f := ConfigField{Name: "history_file"}
	assert.Equal(t, "MINIC_HISTORY_FILE", f.EnvVar())
	assert.Equal(t, "--history-file", f.Flag())
}

func TestGenerateCLIDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateCLIDocs(dir))

	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "```asm\nMOV R0, 10\nMOV x, R0\nMOV R0, 3\nMOV y, R0\n")
	assert.Contains(t, string(index), "`--program`")
	assert.Contains(t, string(index), "`history_file`")
	assert.Contains(t, string(index), "| `1` | No statement found |")

	page, err := os.ReadFile(filepath.Join(dir, "compile.md"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "minic compile [files...]")
	assert.Contains(t, string(page), "`-e`, `--expr`")
	assert.Contains(t, string(page), "Compile an inline statement:")
	assert.Contains(t, string(page), "```text\nMOV R0, 10\nMOV x, R0\n```")
	assert.NotContains(t, string(page), "## Aliases")
}

func TestConfigSchemaCoversConfigKeys(t *testing.T) {
	var names []string
	for _, f := range getConfigSchema() {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, config.Keys(), names)
}

func TestGenerateConfigDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateConfigDocs(dir))

	page, err := os.ReadFile(filepath.Join(dir, "configuration.md"))
	require.NoError(t, err)
	for _, f := range getConfigSchema() {
		assert.Contains(t, string(page), InlineCode(f.Name))
	}
}
