package thompson

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		expression string
		want       string
	}{
		{"", ""},
		{"a", "a"},
		{"ab", "ab."},
		{"abc", "abc.."},
		{"a|b", "ab|"},
		{"a|b|c", "abc||"},
		{"a*", "a*"},
		{"a+", "a+"},
		{"a**", "a**"},
		{"a*b", "a*b."},
		{"ab|c", "ab.c|"},
		{"a|bc", "abc.|"},
		{"(a|b)*c", "ab|*c."},
		{"a(b)", "ab."},
		{"ab(c)", "ab.c."},
		{"ab(c)*", "ab.c*."},
		{"a(b|c)", "abc|."},
		{"(a)(b)", "ab."},
		{"((a))", "a"},
		{"(ab(c))", "ab.c."},
		{"a|b(c)", "ab|c."},
		{"a|bc(d)", "abc.|d."},
		{"(a|b(c))", "ab|c."},
		{"(a)*b|c", "a*b.c|"},
		{"a|bc*d", "abc*d..|"},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			postfix, err := Translate(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, postfix.String())
		})
	}
}

func TestTranslate_Tokens(t *testing.T) {
	postfix, err := Translate("(a|b)*c")
	require.NoError(t, err)

	want := Postfix{
		Symbol('a'),
		Symbol('b'),
		Operator(TOKEN_UNION),
		Operator(TOKEN_STAR),
		Symbol('c'),
		Operator(TOKEN_CONCAT),
	}
	assert.Equal(t, want, postfix)
}

func TestTranslate_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		offset     int
		reason     string
	}{
		{"uppercase", "A", 0, "unsupported character 'A'"},
		{"dot", "a.b", 1, "unsupported character '.'"},
		{"space", " a", 0, "unsupported character ' '"},
		{"multibyte", "aé", 1, "unsupported character 'é'"},
		{"question mark", "ab?", 2, "unsupported character '?'"},
		{"unclosed group", "a(b", 1, "unmatched '('"},
		{"unopened group", "ab)", 2, "unmatched ')'"},
		{"empty group", "()", 1, "missing operand before ')'"},
		{"leading star", "*a", 0, "'*' has nothing to repeat"},
		{"plus after paren", "(+a)", 1, "'+' has nothing to repeat"},
		{"leading union", "|a", 0, "missing left operand for '|'"},
		{"trailing union", "a|", 1, "missing right operand for '|'"},
		{"double union", "a||b", 2, "missing left operand for '|'"},
		{"union after paren", "a(|b)", 2, "missing left operand for '|'"},
		{"union before paren", "(a|)", 3, "missing operand before ')'"},
		{"group after union", "a|(b)", 2, "group cannot open the right operand of '|'"},
		{"nested group after union", "(a|(b))", 3, "group cannot open the right operand of '|'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postfix, err := Translate(tt.expression)
			assert.Nil(t, postfix)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidExpression))

			var invalid *InvalidExpressionError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.expression, invalid.Expression)
			assert.Equal(t, tt.offset, invalid.Offset)
			assert.Equal(t, tt.reason, invalid.Reason)
		})
	}
}

func TestTranslate_OnlyAlphabetAndOperators(t *testing.T) {
	for c := rune(0); c < 128; c++ {
		_, err := Translate(string(c))
		switch {
		case IsSymbol(c):
			assert.NoError(t, err, "%q", c)
		case IsOperator(c):
			// A lone operator is well lexed but never a complete expression.
			assert.ErrorIs(t, err, ErrInvalidExpression, "%q", c)
		default:
			var invalid *InvalidExpressionError
			if assert.ErrorAs(t, err, &invalid, "%q", c) {
				assert.Contains(t, invalid.Reason, "unsupported character")
			}
		}
	}
}

func TestTranslate_GroupFlushesPendingUnion(t *testing.T) {
	// An opening parenthesis closes off everything before it at its depth.
	a, err := Compile("a|b(c)")
	require.NoError(t, err)
	assert.Equal(t, "ab|c.", a.Postfix().String())
	assert.True(t, a.Accepts("ac"))
	assert.True(t, a.Accepts("bc"))
	assert.False(t, a.Accepts("a"))
	assert.False(t, a.Accepts("b"))
}
