package thompson

import (
	"log/slog"
)

type compileOption struct {
	logger *slog.Logger
}

type CompileOption func(*compileOption)

// WithLogger Logger for compile events. If nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) CompileOption {
	return func(opts *compileOption) {
		opts.logger = logger
	}
}

// Compile Translates expression to postfix and builds its automaton. The only error is
// *InvalidExpressionError; no automaton is built for an invalid expression.
func Compile(expression string, options ...CompileOption) (*Automaton, error) {
	opts := &compileOption{}
	for _, fn := range options {
		fn(opts)
	}
	logger := opts.logger
	if logger == nil {
		logger = slog.Default()
	}

	postfix, err := Translate(expression)
	if err != nil {
		logger.Debug("expression rejected", "expression", expression, "error", err)
		return nil, err
	}

	a := Build(postfix)
	a.expression = expression

	logger.Debug("expression compiled",
		"expression", expression,
		"postfix", postfix.String(),
		"states", a.GetNumStates(),
		"transitions", a.GetNumTransitions(),
	)
	return a, nil
}

// MustCompile is like Compile but panics if the expression is invalid.
func MustCompile(expression string) *Automaton {
	a, err := Compile(expression)
	if err != nil {
		panic(err)
	}
	return a
}
