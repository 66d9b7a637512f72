package thompson

// stack is a LIFO over a slice; the zero value is empty and ready to use.
type stack[T any] []T

func (s *stack[T]) push(v T) {
	*s = append(*s, v)
}

// pop removes the top element. ok is false if the stack is empty.
func (s *stack[T]) pop() (v T, ok bool) {
	n := len(*s)
	if n == 0 {
		return v, false
	}
	v = (*s)[n-1]
	var empty T
	(*s)[n-1] = empty
	*s = (*s)[:n-1]
	return v, true
}

func (s stack[T]) peek() (v T, ok bool) {
	if len(s) == 0 {
		return v, false
	}
	return s[len(s)-1], true
}

// replaceTop overwrites the top element; the stack must not be empty.
func (s stack[T]) replaceTop(v T) {
	s[len(s)-1] = v
}
