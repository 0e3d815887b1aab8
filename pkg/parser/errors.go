package parser

import (
	"errors"
	"fmt"
)

// ErrNoStatement is returned when the input does not start with a statement
// keyword, so nothing could be parsed.
var ErrNoStatement = errors.New("no statement produced")

// LexErrorKind classifies a lexical error.
type LexErrorKind int

// Lexical error kinds.
const (
	UnrecognizedCharacter LexErrorKind = iota
)

func (k LexErrorKind) String() string {
	switch k {
	case UnrecognizedCharacter:
		return "UnrecognizedCharacter"
	default:
		return fmt.Sprintf("LexErrorKind(%d)", int(k))
	}
}

// LexError represents a lexical analysis error.
type LexError struct {
	Kind LexErrorKind
	Pos  Position
	Char byte
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error at line %d, column %d: "+ErrUnrecognizedChar, e.Pos.Line, e.Pos.Column, e.Char)
}

// ParseErrorKind classifies a parse error.
type ParseErrorKind int

// Parse error kinds.
const (
	UnexpectedToken ParseErrorKind = iota
	UnexpectedEnd
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnexpectedEnd:
		return "UnexpectedEnd"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", int(k))
	}
}

// ParseError represents a parsing error with position information.
type ParseError struct {
	Kind ParseErrorKind
	Pos  Position
	Got  Token
	Want string
}

func (e *ParseError) Error() string {
	var msg string
	if e.Kind == UnexpectedEnd {
		msg = fmt.Sprintf(ErrUnexpectedEnd, e.Want)
	} else {
		msg = fmt.Sprintf(ErrUnexpectedToken, e.Got, e.Want)
	}
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, msg)
}

// Common error messages
const (
	ErrUnexpectedToken  = "unexpected token %s, expected %s"
	ErrUnexpectedEnd    = "unexpected end of input, expected %s"
	ErrUnrecognizedChar = "unrecognized character %q"
)
