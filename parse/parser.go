// Package parse reifies the claim surface syntax into expression trees.
//
// The grammar is deliberately small: sums of atoms, where an atom is a
// numeric constant, an identifier, a parenthesized sum, or a call-shaped
// term. The recognized combine form is '+'; everything the parser cannot
// decompose (identifiers, whole calls) is wrapped as an opaque literal so
// that reification is total over well-formed input. Malformed input is a
// parse error, reported by the engine as an issue.
package parse

import (
	"fmt"
	"strconv"

	"github.com/gnoverse/canon/internal/sum"
)

// Parser consumes tokens produced by the lexer and builds an expression tree.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a new Parser instance.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens, current: 0}
}

// Expr reifies a single expression from source text.
func Expr(input string) (sum.Expr, error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return nil, err
	}
	p := NewParser(tokens)
	e, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, fmt.Errorf("unexpected %q at position %d", tok.Value, tok.Position)
	}
	return e, nil
}

// Claim reifies both sides of a claim "lhs = rhs". The split happens at the
// token level, so an '=' buried inside an opaque call body does not count.
func Claim(input string) (lhs, rhs sum.Expr, err error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return nil, nil, err
	}

	split := -1
	for i, tok := range tokens {
		if tok.Type == TokenEquals {
			if split >= 0 {
				return nil, nil, fmt.Errorf("claim has more than one \"=\"")
			}
			split = i
		}
	}
	if split < 0 {
		return nil, nil, fmt.Errorf("claim must have the form \"lhs = rhs\"")
	}

	left := NewParser(tokens[:split])
	lhs, err = left.parseSum()
	if err != nil {
		return nil, nil, fmt.Errorf("left side: %w", err)
	}
	if tok := left.peek(); tok.Type != TokenEOF {
		return nil, nil, fmt.Errorf("left side: unexpected %q at position %d", tok.Value, tok.Position)
	}

	right := NewParser(tokens[split+1:])
	rhs, err = right.parseSum()
	if err != nil {
		return nil, nil, fmt.Errorf("right side: %w", err)
	}
	if tok := right.peek(); tok.Type != TokenEOF {
		return nil, nil, fmt.Errorf("right side: unexpected %q at position %d", tok.Value, tok.Position)
	}

	return lhs, rhs, nil
}

// parseSum parses atom ('+' atom)*, building a left-nested tree so that the
// source association of unparenthesized sums is preserved.
func (p *Parser) parseSum() (sum.Expr, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == TokenPlus {
		p.current++
		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = sum.Add(left, right)
	}

	return left, nil
}

func (p *Parser) parseAtom() (sum.Expr, error) {
	tok := p.peek()

	switch tok.Type {
	case TokenNumber:
		p.current++
		n, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q at position %d", tok.Value, tok.Position)
		}
		return sum.IntLit(n), nil

	case TokenIdent:
		p.current++
		return sum.Sym(tok.Value), nil

	case TokenCall:
		// Opaque fallback: the whole call is one literal, its body carried
		// verbatim even when it contains operators we do not model.
		p.current++
		return sum.Sym(tok.Value), nil

	case TokenLParen:
		p.current++
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.peek().Type != TokenRParen {
			return nil, fmt.Errorf("missing closing parenthesis at position %d", p.peek().Position)
		}
		p.current++
		return inner, nil

	case TokenEOF:
		return nil, fmt.Errorf("unexpected end of expression")

	default:
		return nil, fmt.Errorf("unexpected %q at position %d", tok.Value, tok.Position)
	}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return Token{Type: TokenEOF, Position: -1}
	}
	return p.tokens[p.current]
}
