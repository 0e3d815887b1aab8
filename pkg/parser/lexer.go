package parser

import (
	"strings"

	"github.com/leapstack-labs/minic/pkg/token"
)

// Lexer tokenizes minic source. It reads strictly forward and never
// rewinds; once the input is exhausted every call yields an End token.
type Lexer struct {
	input string
	pos   int // offset of the next unread byte
	line  int // line of input[pos] (1-based)
	col   int // column of input[pos] (1-based)

	errors []error
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
		col:   1,
	}
}

// Errors returns one *LexError per Invalid token produced so far.
func (l *Lexer) Errors() []error {
	return l.errors
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

// advance moves past the current byte.
func (l *Lexer) advance() {
	if l.atEnd() {
		return
	}
	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *Lexer) currentPos() Position {
	return Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && isSpace(l.input[l.pos]) {
		l.advance()
	}
}

// readWhile consumes the maximal run of bytes matching pred.
func (l *Lexer) readWhile(pred func(byte) bool) string {
	start := l.pos
	for !l.atEnd() && pred(l.input[l.pos]) {
		l.advance()
	}
	return l.input[start:l.pos]
}

// NextToken returns the next token.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.currentPos()
	if l.atEnd() {
		return Token{Kind: token.End, Pos: pos}
	}

	ch := l.input[l.pos]
	switch {
	case isDigit(ch):
		return Token{Kind: token.Number, Text: l.readWhile(isDigit), Pos: pos}
	case isLetter(ch):
		text := l.readWhile(isIdentChar)
		return Token{Kind: token.LookupIdent(text), Text: text, Pos: pos}
	case strings.IndexByte(token.Operators, ch) >= 0:
		l.advance()
		return Token{Kind: token.Operator, Text: string(ch), Pos: pos}
	case strings.IndexByte(token.Punctuators, ch) >= 0:
		l.advance()
		return Token{Kind: token.Punctuation, Text: string(ch), Pos: pos}
	default:
		// Always step over the byte so repeated calls make progress.
		l.advance()
		l.errors = append(l.errors, &LexError{
			Kind: UnrecognizedCharacter,
			Pos:  pos,
			Char: ch,
		})
		return Token{Kind: token.Invalid, Pos: pos}
	}
}

// Tokenize scans input to the end and returns every token including the
// final End, along with any lexical errors.
func Tokenize(input string) ([]Token, []error) {
	l := NewLexer(input)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.End {
			return toks, l.Errors()
		}
	}
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}
