package thompson

import (
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

var expressionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Symbol", Pattern: `[a-z]`},
	{Name: "Operator", Pattern: `[|*+()]`},
})

var symbolType = expressionLexer.Symbols()["Symbol"]

// lexeme is a single character of a lexed expression.
type lexeme struct {
	c      byte
	symbol bool
	offset int
}

// lexExpression splits expression into lexemes, rejecting anything outside the alphabet
// and operator set before any translation happens.
func lexExpression(expression string) ([]lexeme, error) {
	lex, err := expressionLexer.LexString("", expression)
	if err != nil {
		return nil, newInvalidExpression(expression, 0, "%s", err)
	}

	lexemes := make([]lexeme, 0, len(expression))
	offset := 0
	for {
		tok, err := lex.Next()
		if err != nil {
			r, _ := utf8.DecodeRuneInString(expression[offset:])
			return nil, newInvalidExpression(expression, offset, "unsupported character %q", r)
		}
		if tok.EOF() {
			return lexemes, nil
		}

		lexemes = append(lexemes, lexeme{
			c:      tok.Value[0],
			symbol: tok.Type == symbolType,
			offset: tok.Pos.Offset,
		})
		offset = tok.Pos.Offset + len(tok.Value)
	}
}
