// Package token defines the lexical units produced by the minic scanner.
//
// The set of kinds is closed: every byte of input ends up in exactly one
// token of one of the kinds below, or is skipped as whitespace.
package token

import "fmt"

// Kind classifies a token.
type Kind int32

const (
	// Special tokens
	End Kind = iota
	Invalid

	// Lexemes
	Keyword     // int, if, else
	Identifier  // x, total_1
	Number      // 10, 007
	Operator    // + - * /
	Punctuation // = ; ( ) { }
)

// String returns a human-readable representation of the kind.
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

var kindNames = map[Kind]string{
	End:         "End",
	Invalid:     "Invalid",
	Keyword:     "Keyword",
	Identifier:  "Identifier",
	Number:      "Number",
	Operator:    "Operator",
	Punctuation: "Punctuation",
}

// Reserved words. Matching is exact and case-sensitive.
const (
	KeywordInt  = "int"
	KeywordIf   = "if"
	KeywordElse = "else"
)

var keywords = map[string]bool{
	KeywordInt:  true,
	KeywordIf:   true,
	KeywordElse: true,
}

// LookupIdent returns Keyword if ident is a reserved word, Identifier otherwise.
func LookupIdent(ident string) Kind {
	if keywords[ident] {
		return Keyword
	}
	return Identifier
}

// Operators and punctuation recognised by the scanner, one byte each.
const (
	Operators   = "+-*/"
	Punctuators = "=;(){}"
)

// Token represents a lexical token with position information.
// End and Invalid tokens carry an empty Text.
type Token struct {
	Kind Kind     `json:"kind" yaml:"kind"`
	Text string   `json:"text" yaml:"text"`
	Pos  Position `json:"pos" yaml:"pos"`
}

// Is reports whether t has the given kind and text.
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

// IsKeyword reports whether t is the given reserved word.
func (t Token) IsKeyword(word string) bool {
	return t.Is(Keyword, word)
}

// String formats the token for diagnostics, e.g. Identifier "x" or End.
func (t Token) String() string {
	switch t.Kind {
	case End, Invalid:
		return t.Kind.String()
	default:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	}
}
