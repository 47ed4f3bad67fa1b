package parse

// TokenType identifies the kind of a scanned token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenIdent
	TokenPlus
	TokenEquals
	TokenLParen
	TokenRParen
	TokenCall
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenNumber:
		return "Number"
	case TokenIdent:
		return "Ident"
	case TokenPlus:
		return "Plus"
	case TokenEquals:
		return "Equals"
	case TokenLParen:
		return "LParen"
	case TokenRParen:
		return "RParen"
	case TokenCall:
		return "Call"
	default:
		return "?"
	}
}

// Token is a single lexeme of the claim surface syntax.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}
