// Package parser provides scanning and parsing for the minic language.
//
// # Usage
//
//	stmt, err := parser.Parse("int x = 10", parser.Options{})
//	if err != nil {
//	    // handle error
//	}
//
// # Grammar Overview
//
// The parser implements a recursive descent parser for two statement forms:
//
//	statement     → assignment | if_statement
//	assignment    → "int" IDENTIFIER "=" expression
//	if_statement  → "if" "(" expression ")" "{" <one token> "}"
//	expression    → NUMBER
//
// By default the parser does not check the tokens it expects: each one is
// consumed whatever it turns out to be, and a missing statement keyword
// simply yields no tree. Options.Strict checks every expected token and
// reports a *ParseError instead.
package parser

import (
	"errors"

	"github.com/leapstack-labs/minic/pkg/ast"
	"github.com/leapstack-labs/minic/pkg/token"
)

// Options controls parser behavior.
type Options struct {
	// Strict reports a *ParseError whenever a token does not match the grammar.
	Strict bool
	// Recover makes ParseProgram skip to the next "int" or "if" keyword after
	// an error and keep going. Only meaningful with Strict.
	Recover bool
}

// Parser parses minic source into an AST.
type Parser struct {
	lexer  *Lexer
	opts   Options
	token  Token // most recently consumed token
	errors []error
}

// NewParser creates a new parser for the given source.
func NewParser(src string, opts Options) *Parser {
	return &Parser{
		lexer: NewLexer(src),
		opts:  opts,
	}
}

// Parse parses a single statement from src.
func Parse(src string, opts Options) (*ast.Node, error) {
	return NewParser(src, opts).Parse()
}

// ParseProgram parses every statement in src.
func ParseProgram(src string, opts Options) ([]*ast.Node, error) {
	return NewParser(src, opts).ParseProgram()
}

// Lexer returns the underlying lexer.
func (p *Parser) Lexer() *Lexer {
	return p.lexer
}

// Errors returns the parse errors collected so far.
func (p *Parser) Errors() []error {
	return p.errors
}

// Parse reads one statement. It returns a nil node and nil error when the
// first token is not a statement keyword (or the input is empty).
func (p *Parser) Parse() (*ast.Node, error) {
	first := p.nextToken()
	if first.Kind == token.End {
		return nil, nil
	}
	if !isStatementStart(first) {
		if p.opts.Strict {
			return nil, p.unexpected(first, "statement")
		}
		return nil, nil
	}
	return p.parseStatement(first)
}

// ParseProgram reads statements until the end of input. A ";" between
// statements is accepted as a separator.
//
// Without Strict it stops quietly at the first token that cannot start a
// statement. With Strict it stops at the first error unless Recover is set,
// in which case all errors are collected and returned joined.
func (p *Parser) ParseProgram() ([]*ast.Node, error) {
	var stmts []*ast.Node
	tok := p.nextToken()
	for tok.Kind != token.End {
		if tok.Is(token.Punctuation, ";") {
			tok = p.nextToken()
			continue
		}

		if !isStatementStart(tok) {
			if !p.opts.Strict {
				break
			}
			if !p.fail(p.unexpected(tok, "statement")) {
				break
			}
			tok = p.synchronize()
			continue
		}

		stmt, err := p.parseStatement(tok)
		if err != nil {
			if !p.fail(err) {
				break
			}
			tok = p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
		tok = p.nextToken()
	}

	if len(p.errors) > 0 {
		return stmts, errors.Join(p.errors...)
	}
	return stmts, nil
}

// ---------- Token Helpers ----------

// nextToken consumes and returns the next token.
func (p *Parser) nextToken() Token {
	p.token = p.lexer.NextToken()
	return p.token
}

// expect consumes the next token. In strict mode it must be the given
// punctuation; otherwise it is discarded unchecked.
func (p *Parser) expect(punct string) error {
	tok := p.nextToken()
	if p.opts.Strict && !tok.Is(token.Punctuation, punct) {
		return p.unexpected(tok, `"`+punct+`"`)
	}
	return nil
}

// unexpected builds a *ParseError for tok.
func (p *Parser) unexpected(tok Token, want string) *ParseError {
	kind := UnexpectedToken
	if tok.Kind == token.End {
		kind = UnexpectedEnd
	}
	return &ParseError{
		Kind: kind,
		Pos:  tok.Pos,
		Got:  tok,
		Want: want,
	}
}

// fail records err and reports whether parsing should continue.
func (p *Parser) fail(err error) bool {
	p.errors = append(p.errors, err)
	return p.opts.Recover
}

// synchronize skips to the next token that can start a statement. The token
// that caused the last error is considered first, so a keyword swallowed by
// a broken statement still starts the next one.
func (p *Parser) synchronize() Token {
	tok := p.token
	if len(p.errors) > 0 {
		var perr *ParseError
		if errors.As(p.errors[len(p.errors)-1], &perr) && perr.Got == tok && !isStatementStart(tok) {
			tok = p.nextToken()
		}
	}
	for tok.Kind != token.End && !isStatementStart(tok) {
		tok = p.nextToken()
	}
	return tok
}

func isStatementStart(tok Token) bool {
	return tok.IsKeyword(token.KeywordInt) || tok.IsKeyword(token.KeywordIf)
}

// ---------- Statements ----------

// parseStatement dispatches on the already consumed keyword.
func (p *Parser) parseStatement(first Token) (*ast.Node, error) {
	if first.IsKeyword(token.KeywordInt) {
		return p.parseAssignment(first)
	}
	return p.parseIf(first)
}

// parseAssignment parses the rest of: "int" IDENTIFIER "=" expression
func (p *Parser) parseAssignment(kw Token) (*ast.Node, error) {
	name := p.nextToken()
	if p.opts.Strict && name.Kind != token.Identifier {
		return nil, p.unexpected(name, "identifier")
	}

	if err := p.expect("="); err != nil {
		return nil, err
	}

	rhs := p.nextToken()
	var value *ast.Node
	switch rhs.Kind {
	case token.Number:
		value = ast.NewLiteral(rhs.Text, rhs.Pos)
	case token.Identifier:
		if p.opts.Strict {
			return nil, p.unexpected(rhs, "number")
		}
		value = ast.NewIdentifierRef(rhs.Text, rhs.Pos)
	default:
		if p.opts.Strict {
			return nil, p.unexpected(rhs, "number")
		}
		value = ast.NewLiteral(rhs.Text, rhs.Pos)
	}

	return ast.NewAssignment(name.Text, value, kw.Pos), nil
}

// parseIf parses the rest of: "if" "(" expression ")" "{" <one token> "}"
// The body is not parsed; exactly one token between the braces is skipped.
func (p *Parser) parseIf(kw Token) (*ast.Node, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := p.expect(")"); err != nil {
		return nil, err
	}
	if err := p.expect("{"); err != nil {
		return nil, err
	}

	body := p.nextToken()
	if p.opts.Strict && body.Kind == token.End {
		return nil, p.unexpected(body, "statement body")
	}

	if err := p.expect("}"); err != nil {
		return nil, err
	}

	return ast.NewIf(cond, kw.Pos), nil
}

// ---------- Expressions ----------

// parseExpression consumes one token. Only a number yields a node; any
// other token is consumed and yields nil.
func (p *Parser) parseExpression() (*ast.Node, error) {
	tok := p.nextToken()
	if tok.Kind == token.Number {
		return ast.NewLiteral(tok.Text, tok.Pos), nil
	}
	if p.opts.Strict {
		return nil, p.unexpected(tok, "number")
	}
	return nil, nil
}
