// Package ast defines the syntax tree built by the minic parser.
//
// A tree is made of Node values linked through Left and Right. Every child is
// owned by exactly one parent; trees are never cyclic and never share nodes,
// so dropping the root releases the whole subtree.
package ast

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/minic/pkg/token"
)

// Kind identifies the construct a node represents.
type Kind int32

const (
	Assignment Kind = iota
	BinaryOp        // reserved; no grammar rule builds it yet
	Literal
	IdentifierRef
	IfStatement
)

var kindNames = map[Kind]string{
	Assignment:    "Assignment",
	BinaryOp:      "BinaryOp",
	Literal:       "Literal",
	IdentifierRef: "IdentifierRef",
	IfStatement:   "IfStatement",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// MarshalText lets kinds appear by name in JSON and YAML dumps.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IfTag is the fixed Value carried by IfStatement nodes.
const IfTag = "if"

// Node is one vertex of the syntax tree.
//
// Value holds the variable name for Assignment and IdentifierRef, the digit
// text for Literal and IfTag for IfStatement. For Assignment, Left is the
// right-hand side; for IfStatement, Left is the condition and may be nil.
// Right is reserved for binary operators.
type Node struct {
	Kind  Kind           `json:"kind" yaml:"kind"`
	Value string         `json:"value" yaml:"value"`
	Pos   token.Position `json:"pos" yaml:"pos"`
	Left  *Node          `json:"left,omitempty" yaml:"left,omitempty"`
	Right *Node          `json:"right,omitempty" yaml:"right,omitempty"`
}

// NewLiteral creates a Literal node for a numeric lexeme.
func NewLiteral(value string, pos token.Position) *Node {
	return &Node{Kind: Literal, Value: value, Pos: pos}
}

// NewIdentifierRef creates a reference to a named variable.
func NewIdentifierRef(name string, pos token.Position) *Node {
	return &Node{Kind: IdentifierRef, Value: name, Pos: pos}
}

// NewAssignment creates an Assignment of rhs to name.
func NewAssignment(name string, rhs *Node, pos token.Position) *Node {
	return &Node{Kind: Assignment, Value: name, Left: rhs, Pos: pos}
}

// NewIf creates an IfStatement with the given condition, which may be nil.
func NewIf(cond *Node, pos token.Position) *Node {
	return &Node{Kind: IfStatement, Value: IfTag, Left: cond, Pos: pos}
}

// LeftValue returns the Value of the left child, or "" when there is none.
func (n *Node) LeftValue() string {
	if n == nil || n.Left == nil {
		return ""
	}
	return n.Left.Value
}

// Walk visits n and its descendants depth-first, left before right.
// Returning false from fn skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	Walk(n.Left, fn)
	Walk(n.Right, fn)
}

// String renders the tree in a compact s-expression form, e.g.
// (Assignment x (Literal 10)).
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	if n == nil {
		sb.WriteString("()")
		return
	}
	sb.WriteByte('(')
	sb.WriteString(n.Kind.String())
	if n.Value != "" {
		sb.WriteByte(' ')
		sb.WriteString(n.Value)
	}
	if n.Left != nil || n.Right != nil {
		sb.WriteByte(' ')
		n.Left.write(sb)
	}
	if n.Right != nil {
		sb.WriteByte(' ')
		n.Right.write(sb)
	}
	sb.WriteByte(')')
}
