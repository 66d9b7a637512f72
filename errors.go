package thompson

import (
	"errors"
	"fmt"
)

// ErrInvalidExpression is matched by every *InvalidExpressionError through errors.Is.
var ErrInvalidExpression = errors.New("invalid expression")

// InvalidExpressionError Reports an expression that cannot be compiled, either because it contains a
// character outside the alphabet and operator set or because its operators and parentheses do not
// form a complete expression. Offset is the byte offset of the offending character.
type InvalidExpressionError struct {
	Expression string
	Offset     int
	Reason     string
}

func newInvalidExpression(expression string, offset int, format string, args ...any) *InvalidExpressionError {
	return &InvalidExpressionError{
		Expression: expression,
		Offset:     offset,
		Reason:     fmt.Sprintf(format, args...),
	}
}

func (e *InvalidExpressionError) Error() string {
	return fmt.Sprintf("invalid expression %q at offset %d: %s", e.Expression, e.Offset, e.Reason)
}

func (e *InvalidExpressionError) Unwrap() error {
	return ErrInvalidExpression
}
