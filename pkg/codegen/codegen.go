// Package codegen translates minic syntax trees into pseudo-assembly text.
//
// Output is a flat list of lines, written to the sink as soon as each one is
// produced:
//
//	MOV R0, <value>     load into the scratch register
//	MOV <dest>, R0      store the scratch register
//	CMP <value>, 5      compare against the fixed threshold
//	JGT label_1         jump if greater
//	label_1:            label definition
package codegen

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/minic/pkg/ast"
)

// Fixed operands. The grammar carries no comparison operand and only one if
// statement is compiled per listing, so these never vary.
const (
	ScratchRegister = "R0"
	CompareValue    = "5"
	JumpLabel       = "label_1"
)

// Generator writes instructions for AST nodes to an io.Writer.
type Generator struct {
	out   io.Writer
	lines int
}

// New creates a Generator writing to w.
func New(w io.Writer) *Generator {
	return &Generator{out: w}
}

// Lines returns how many instruction lines have been written.
func (g *Generator) Lines() int {
	return g.lines
}

// Generate emits the instructions for one statement. A nil node, and any
// node kind without a translation, produces no output.
//
// Each kind reads only the fields it needs; children are not visited
// recursively.
func (g *Generator) Generate(n *ast.Node) error {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case ast.Assignment:
		if err := g.line("MOV %s, %s", ScratchRegister, n.LeftValue()); err != nil {
			return err
		}
		return g.line("MOV %s, %s", n.Value, ScratchRegister)
	case ast.IfStatement:
		if err := g.line("CMP %s, %s", n.LeftValue(), CompareValue); err != nil {
			return err
		}
		if err := g.line("JGT %s", JumpLabel); err != nil {
			return err
		}
		return g.line("%s:", JumpLabel)
	case ast.Literal:
		return g.line("MOV %s, %s", ScratchRegister, n.Value)
	}
	return nil
}

// GenerateAll emits the instructions for each statement in order.
func (g *Generator) GenerateAll(stmts []*ast.Node) error {
	for _, stmt := range stmts {
		if err := g.Generate(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) line(format string, args ...any) error {
	if _, err := fmt.Fprintf(g.out, format+"\n", args...); err != nil {
		return fmt.Errorf("failed to write instruction: %w", err)
	}
	g.lines++
	return nil
}

// Listing returns the instructions for stmts as separate lines.
func Listing(stmts ...*ast.Node) []string {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = New(&buf).GenerateAll(stmts)
	text := strings.TrimSuffix(buf.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
