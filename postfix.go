package thompson

// kindOpen marks an open parenthesis on the operator stack. It is never emitted.
const kindOpen = Kind(-1)

// Translate Converts an infix expression into postfix form, making every implicit concatenation an
// explicit TOKEN_CONCAT. Unary operators bind tightest, then concatenation, then union.
//
// The expression is lexed and checked as a whole first: a character outside the alphabet and
// operator set, unbalanced parentheses, an empty group, an operator without its operand or a group
// opening right after '|' all fail with *InvalidExpressionError and no tokens. The empty expression
// translates to an empty sequence.
//
// An open parenthesis first flushes every operator pending at its depth, unions included, so
// "a|b(c)" translates to "ab|c." and means (a|b)c.
func Translate(expression string) (Postfix, error) {
	lexemes, err := lexExpression(expression)
	if err != nil {
		return nil, err
	}
	if err := checkStructure(expression, lexemes); err != nil {
		return nil, err
	}
	return toPostfix(lexemes), nil
}

// checkStructure verifies that lexemes form a complete expression, so that the postfix
// sequence built from them never underflows the builder's fragment stack.
func checkStructure(expression string, lexemes []lexeme) error {
	var opens stack[int]
	// operand is true when the lexemes so far end with a complete operand.
	operand := false
	// afterUnion is true when the previous lexeme is '|'.
	afterUnion := false

	for _, l := range lexemes {
		prevUnion := afterUnion
		afterUnion = false
		if l.symbol {
			operand = true
			continue
		}

		switch l.c {
		case '(':
			// The flush on '(' would emit the union before its right operand exists.
			if prevUnion {
				return newInvalidExpression(expression, l.offset, "group cannot open the right operand of '|'")
			}
			opens.push(l.offset)
			operand = false
		case ')':
			if _, ok := opens.pop(); !ok {
				return newInvalidExpression(expression, l.offset, "unmatched ')'")
			}
			if !operand {
				return newInvalidExpression(expression, l.offset, "missing operand before ')'")
			}
		case '*', '+':
			if !operand {
				return newInvalidExpression(expression, l.offset, "%q has nothing to repeat", l.c)
			}
		case '|':
			if !operand {
				return newInvalidExpression(expression, l.offset, "missing left operand for '|'")
			}
			operand = false
			afterUnion = true
		}
	}

	if offset, ok := opens.peek(); ok {
		return newInvalidExpression(expression, offset, "unmatched '('")
	}
	if len(lexemes) > 0 && !operand {
		return newInvalidExpression(expression, lexemes[len(lexemes)-1].offset, "missing right operand for '|'")
	}
	return nil
}

func toPostfix(lexemes []lexeme) Postfix {
	out := make(Postfix, 0, 2*len(lexemes))

	var ops stack[Kind]
	// One flag per paren depth: true if the next operand must be concatenated to what precedes it.
	var concat stack[bool]
	concat.push(false)

	emit := func(k Kind) {
		out = append(out, Operator(k))
	}

	for _, l := range lexemes {
		if l.symbol {
			out = append(out, Symbol(l.c))
			if expect, _ := concat.peek(); expect {
				ops.push(TOKEN_CONCAT)
			}
			concat.replaceTop(true)
			continue
		}

		switch l.c {
		case '(':
			// Everything pending at this depth is flushed; only the enclosing marker stays.
			for top, ok := ops.peek(); ok && top != kindOpen; top, ok = ops.peek() {
				ops.pop()
				emit(top)
			}
			ops.push(kindOpen)
			concat.push(false)

		case ')':
			for top, ok := ops.pop(); ok && top != kindOpen; top, ok = ops.pop() {
				emit(top)
			}
			concat.pop()
			// The group is an operand of the enclosing depth.
			if expect, _ := concat.peek(); expect {
				ops.push(TOKEN_CONCAT)
			}
			concat.replaceTop(true)

		case '*':
			emit(TOKEN_STAR)

		case '+':
			emit(TOKEN_PLUS)

		case '|':
			for top, ok := ops.peek(); ok && top.precedence() > TOKEN_UNION.precedence(); top, ok = ops.peek() {
				ops.pop()
				emit(top)
			}
			ops.push(TOKEN_UNION)
			concat.replaceTop(false)
		}
	}

	for top, ok := ops.pop(); ok; top, ok = ops.pop() {
		if top != kindOpen {
			emit(top)
		}
	}
	return out
}
