package thompson

import "strings"

type Kind int

const (
	TOKEN_SYMBOL = Kind(iota) // A literal alphabet symbol
	TOKEN_CONCAT              // A sequence of two expressions
	TOKEN_UNION               // The union of two expressions
	TOKEN_STAR                // Zero or more repetitions of an expression
	TOKEN_PLUS                // One or more repetitions of an expression
)

// Token is one element of a postfix sequence. Symbol is only meaningful for TOKEN_SYMBOL.
type Token struct {
	Kind   Kind
	Symbol byte
}

func Symbol(c byte) Token {
	return Token{Kind: TOKEN_SYMBOL, Symbol: c}
}

func Operator(kind Kind) Token {
	return Token{Kind: kind}
}

func (t Token) String() string {
	switch t.Kind {
	case TOKEN_SYMBOL:
		return string(t.Symbol)
	case TOKEN_CONCAT:
		return "."
	case TOKEN_UNION:
		return "|"
	case TOKEN_STAR:
		return "*"
	case TOKEN_PLUS:
		return "+"
	default:
		return "?"
	}
}

// precedence of the binary operators while they wait on the operator stack.
func (k Kind) precedence() int {
	switch k {
	case TOKEN_CONCAT:
		return 5
	case TOKEN_UNION:
		return 4
	default:
		return 0
	}
}

// Postfix A token sequence in reverse polish order, as produced by Translate.
type Postfix []Token

// String Renders the sequence the classic way, e.g. "ab|*c.".
func (p Postfix) String() string {
	b := new(strings.Builder)
	for _, t := range p {
		b.WriteString(t.String())
	}
	return b.String()
}
