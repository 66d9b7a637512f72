package thompson

import (
	"bytes"
	"fmt"
	"io"
)

// WriteDOT Writes a Graphviz rendering of the states reachable from the initial state to w.
// States are drawn as circles named s<N>, the accept marker as a double circle.
func WriteDOT(w io.Writer, a *Automaton) error {
	b := new(bytes.Buffer)
	fmt.Fprintln(b, "digraph thompson {")
	fmt.Fprintln(b, "    rankdir=LR;")
	fmt.Fprintf(b, "    label=%q;\n", a.expression)

	reachable := Reachable(a)
	t := NewTransition()
	for _, state := range reachable.GetArray() {
		if state == a.acceptIndex() {
			fmt.Fprintln(b, "    accept [shape=doublecircle];")
			continue
		}
		fmt.Fprintf(b, "    s%d [shape=circle];\n", state)

		count := a.InitTransition(state, t)
		for i := 0; i < count; i++ {
			a.GetNextTransition(t)
			fmt.Fprintf(b, "    s%d -> %s [label=%q];\n", state, dotNode(t.Dest), dotLabel(t.Label))
		}
	}
	fmt.Fprintf(b, "    _start [shape=point]; _start -> s%d;\n", a.initial)
	fmt.Fprintln(b, "}")

	_, err := w.Write(b.Bytes())
	return err
}

func dotNode(t Target) string {
	if t.IsAccept() {
		return "accept"
	}
	return "s" + t.String()
}

func dotLabel(label int) string {
	if label == Epsilon {
		return "ε"
	}
	return string(rune(label))
}
