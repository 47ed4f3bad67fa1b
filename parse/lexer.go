package parse

import (
	"fmt"
	"unicode"
)

// Lexer is responsible for scanning the input string and producing tokens.
type Lexer struct {
	input    string
	position int
	tokens   []Token
}

// NewLexer returns a new Lexer with the given input and initializes state.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:    input,
		position: 0,
		tokens:   make([]Token, 0),
	}
}

// Tokenize processes the entire input and produces the list of tokens.
// A call-shaped atom like f(x*y) is scanned as one TokenCall carrying its
// source text verbatim; the parser wraps it as an opaque literal.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		currentPos := l.position
		switch c := l.input[l.position]; {
		case isWhitespace(c):
			l.position++

		case c == '+':
			l.addToken(TokenPlus, "+", currentPos)
			l.position++

		case c == '=':
			l.addToken(TokenEquals, "=", currentPos)
			l.position++

		case c == '(':
			l.addToken(TokenLParen, "(", currentPos)
			l.position++

		case c == ')':
			l.addToken(TokenRParen, ")", currentPos)
			l.position++

		case isDigit(c):
			l.lexNumber(currentPos)

		case isIdentStart(c):
			l.lexIdentOrCall(currentPos)

		default:
			return nil, fmt.Errorf("unexpected character %q at position %d", c, currentPos)
		}
	}

	l.addToken(TokenEOF, "", l.position)
	return l.tokens, nil
}

// lexNumber scans consecutive digits and produces one TokenNumber.
func (l *Lexer) lexNumber(startPos int) {
	start := l.position
	for l.position < len(l.input) && isDigit(l.input[l.position]) {
		l.position++
	}
	l.addToken(TokenNumber, l.input[start:l.position], startPos)
}

// lexIdentOrCall scans an identifier. If it is immediately followed by '(',
// the whole call is scanned through its matching ')' and emitted as one
// opaque TokenCall. The call body is carried verbatim and never interpreted.
func (l *Lexer) lexIdentOrCall(startPos int) {
	start := l.position
	for l.position < len(l.input) && isIdentPart(l.input[l.position]) {
		l.position++
	}

	if l.position < len(l.input) && l.input[l.position] == '(' {
		if end := l.findCallEnd(l.position); end > 0 {
			l.addToken(TokenCall, l.input[start:end], startPos)
			l.position = end
			return
		}
		// Unbalanced call: scan stops at the '(' and the parser reports it.
	}

	l.addToken(TokenIdent, l.input[start:l.position], startPos)
}

// findCallEnd locates the ')' matching the '(' at the given index.
// Returns the index just AFTER the closing paren, or -1 if unbalanced.
func (l *Lexer) findCallEnd(open int) int {
	depth := 0
	for i := open; i < len(l.input); i++ {
		switch l.input[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}

// addToken is a helper to append a new token to the lexer's token list.
func (l *Lexer) addToken(tokenType TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	})
}

func isWhitespace(c byte) bool {
	return unicode.IsSpace(rune(c))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c))
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
