package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/minic/internal/cli/testutil"
)

type dumpedNode struct {
	Kind  string      `json:"kind" yaml:"kind"`
	Value string      `json:"value" yaml:"value"`
	Left  *dumpedNode `json:"left" yaml:"left"`
}

func TestASTCommand_YAML(t *testing.T) {
	out, _, err := execute(t, NewASTCommand(), "", "-e", "int x = 10")
	require.NoError(t, err)

	var got []dumpedNode
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Assignment", got[0].Kind)
	assert.Equal(t, "x", got[0].Value)
	require.NotNil(t, got[0].Left)
	assert.Equal(t, "Literal", got[0].Left.Kind)
	assert.Equal(t, "10", got[0].Left.Value)
}

func TestASTCommand_JSONFormat(t *testing.T) {
	out, _, err := execute(t, NewASTCommand(), "", "--format", "json", "-e", "int x = y")
	require.NoError(t, err)

	var got []dumpedNode
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Left)
	assert.Equal(t, "IdentifierRef", got[0].Left.Kind)
	assert.Equal(t, "y", got[0].Left.Value)
}

func TestASTCommand_OutputJSONOverridesFormat(t *testing.T) {
	testutil.LoadConfig(t, "output: json\nprogram: true\n")

	out, _, err := execute(t, NewASTCommand(), "", "-e", sampleProgram)
	require.NoError(t, err)

	var got []dumpedNode
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "IfStatement", got[1].Kind)
	assert.Equal(t, "if", got[1].Value)
	assert.Nil(t, got[1].Left, "condition x > 5 is not a number")
}

func TestASTCommand_NoStatement(t *testing.T) {
	out, errOut, err := execute(t, NewASTCommand(), "", "-e", "42")
	require.Error(t, err)
	assert.Equal(t, "[]\n", out)
	assert.Contains(t, errOut, "no statement produced")
}

func TestASTCommand_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, NewASTCommand(), "", "--format", "xml", "-e", "int x = 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
