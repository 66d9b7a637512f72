package thompson

const (
	// Epsilon is the label of a transition taken without consuming input.
	Epsilon = -1

	minSymbol = 'a'
	maxSymbol = 'z'
)

// IsSymbol Returns true if c belongs to the alphabet.
func IsSymbol(c rune) bool {
	return c >= minSymbol && c <= maxSymbol
}

// IsOperator Returns true if c is one of the supported operator characters.
func IsOperator(c rune) bool {
	return c == '|' || c == '(' || c == ')' || c == '+' || c == '*'
}
