package thompson

// Automata Factories for literal automata, built through the Builder.
type Automata struct {
}

// MakeEmptyString
// Returns a new automaton that accepts only the empty string.
func (*Automata) MakeEmptyString() *Automaton {
	return NewBuilder().Finish()
}

// MakeString
// Returns a new automaton that accepts exactly s, built by concatenating one fragment per symbol
// without going through Translate.
func (*Automata) MakeString(s string) (*Automaton, error) {
	b := NewBuilder()
	for i, c := range s {
		if !IsSymbol(c) {
			return nil, newInvalidExpression(s, i, "unsupported character %q", c)
		}
		b.Push(Symbol(byte(c)))
		if i > 0 {
			b.Push(Operator(TOKEN_CONCAT))
		}
	}

	a := b.Finish()
	a.expression = s
	return a, nil
}
