package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
	}{
		{"int", Keyword},
		{"if", Keyword},
		{"else", Keyword},
		{"x", Identifier},
		{"Int", Identifier},
		{"iff", Identifier},
		{"integer", Identifier},
		{"total_1", Identifier},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupIdent(tt.ident))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Keyword", Keyword.String())
	assert.Equal(t, "End", End.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())

	text, err := Punctuation.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "Punctuation", string(text))
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, `Identifier "x"`, Token{Kind: Identifier, Text: "x"}.String())
	assert.Equal(t, "End", Token{Kind: End}.String())
	assert.Equal(t, "Invalid", Token{Kind: Invalid}.String())
}

func TestTokenIs(t *testing.T) {
	tok := Token{Kind: Keyword, Text: "if"}
	assert.True(t, tok.IsKeyword(KeywordIf))
	assert.False(t, tok.IsKeyword(KeywordInt))
	assert.False(t, Token{Kind: Identifier, Text: "if"}.IsKeyword(KeywordIf))
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "3:7", Position{Line: 3, Column: 7}.String())
	assert.Equal(t, "-", Position{}.String())
	assert.False(t, Position{}.IsValid())
}
