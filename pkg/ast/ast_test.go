package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/minic/pkg/token"
)

func TestConstructors(t *testing.T) {
	pos := token.Position{Line: 1, Column: 1}

	assign := NewAssignment("x", NewLiteral("10", pos), pos)
	assert.Equal(t, Assignment, assign.Kind)
	assert.Equal(t, "x", assign.Value)
	require.NotNil(t, assign.Left)
	assert.Equal(t, Literal, assign.Left.Kind)
	assert.Nil(t, assign.Right)

	ifNode := NewIf(nil, pos)
	assert.Equal(t, IfStatement, ifNode.Kind)
	assert.Equal(t, IfTag, ifNode.Value)
	assert.Nil(t, ifNode.Left)
}

func TestLeftValue(t *testing.T) {
	var nilNode *Node
	assert.Equal(t, "", nilNode.LeftValue())
	assert.Equal(t, "", NewIf(nil, token.Position{}).LeftValue())
	assert.Equal(t, "1", NewIf(NewLiteral("1", token.Position{}), token.Position{}).LeftValue())
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"nil", nil, "()"},
		{"literal", NewLiteral("7", token.Position{}), "(Literal 7)"},
		{"assignment", NewAssignment("x", NewLiteral("10", token.Position{}), token.Position{}), "(Assignment x (Literal 10))"},
		{"if without condition", NewIf(nil, token.Position{}), "(IfStatement if)"},
		{"if with condition", NewIf(NewLiteral("1", token.Position{}), token.Position{}), "(IfStatement if (Literal 1))"},
		{
			"binary op",
			&Node{Kind: BinaryOp, Value: "+", Left: NewLiteral("1", token.Position{}), Right: NewIdentifierRef("y", token.Position{})},
			"(BinaryOp + (Literal 1) (IdentifierRef y))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.String())
		})
	}
}

func TestWalk(t *testing.T) {
	tree := &Node{
		Kind:  BinaryOp,
		Value: "+",
		Left:  NewLiteral("1", token.Position{}),
		Right: NewIdentifierRef("y", token.Position{}),
	}

	var kinds []Kind
	Walk(tree, func(n *Node) bool {
		kinds = append(kinds, n.Kind)
		return true
	})
	assert.Equal(t, []Kind{BinaryOp, Literal, IdentifierRef}, kinds)

	kinds = nil
	Walk(tree, func(n *Node) bool {
		kinds = append(kinds, n.Kind)
		return false
	})
	assert.Equal(t, []Kind{BinaryOp}, kinds)
}
