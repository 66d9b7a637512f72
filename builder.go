package thompson

import "fmt"

// fragment is a partially built automaton: an initial state and the ids of its dangling transitions.
type fragment struct {
	start int
	outs  []int
}

// Builder Builds an Automaton from postfix tokens using Thompson's construction, one Push per token.
// Tokens must come from Translate (or an equally well-formed sequence); a malformed sequence is a
// programming error and panics.
type Builder struct {
	a         *Automaton
	fragments stack[fragment]
	postfix   Postfix
}

func NewBuilder() *Builder {
	return &Builder{
		a: newAutomaton(),
	}
}

// Push Combines the fragments on the stack according to one postfix token.
func (b *Builder) Push(tok Token) {
	switch tok.Kind {
	case TOKEN_SYMBOL:
		s := b.a.createState()
		b.fragments.push(fragment{
			start: s,
			outs:  []int{b.a.addTransition(s, int(tok.Symbol), Unset)},
		})

	case TOKEN_CONCAT:
		f2 := b.pop(tok)
		f1 := b.pop(tok)
		b.patch(f1.outs, Target(f2.start))
		b.fragments.push(fragment{start: f1.start, outs: f2.outs})

	case TOKEN_UNION:
		f2 := b.pop(tok)
		f1 := b.pop(tok)
		s := b.a.createState()
		b.a.addTransition(s, Epsilon, Target(f1.start))
		b.a.addTransition(s, Epsilon, Target(f2.start))

		outs := make([]int, 0, len(f1.outs)+len(f2.outs))
		outs = append(outs, f1.outs...)
		outs = append(outs, f2.outs...)
		b.fragments.push(fragment{start: s, outs: outs})

	case TOKEN_PLUS:
		// Loop back on a copy of every exit; the exits themselves stay dangling.
		f := b.pop(tok)
		for _, id := range f.outs {
			e := b.a.transitions[id]
			b.a.addTransition(e.source, e.label, Target(f.start))
		}
		b.fragments.push(f)

	case TOKEN_STAR:
		// Every exit becomes a loop back, and a fresh epsilon from the start is the only exit.
		f := b.pop(tok)
		b.patch(f.outs, Target(f.start))
		f.outs = []int{b.a.addTransition(f.start, Epsilon, Unset)}
		b.fragments.push(f)

	default:
		panic(fmt.Sprintf("thompson: unknown token kind %d", tok.Kind))
	}

	b.postfix = append(b.postfix, tok)
}

func (b *Builder) pop(tok Token) fragment {
	f, ok := b.fragments.pop()
	if !ok {
		panic(fmt.Sprintf("thompson: fragment stack underflow at %q (postfix %q)", tok.String(), b.postfix.String()))
	}
	return f
}

// patch points every listed transition at dest.
func (b *Builder) patch(outs []int, dest Target) {
	for _, id := range outs {
		b.a.transitions[id].dest = dest
	}
}

// Finish Connects the remaining fragment to the accept marker and returns the automaton. With no tokens
// pushed the result accepts only the empty string. The Builder must not be used afterwards.
func (b *Builder) Finish() *Automaton {
	if len(b.fragments) == 0 {
		s := b.a.createState()
		b.fragments.push(fragment{start: s, outs: []int{b.a.addTransition(s, Epsilon, Unset)}})
	}
	if len(b.fragments) != 1 {
		panic(fmt.Sprintf("thompson: %d fragments left after postfix %q", len(b.fragments), b.postfix.String()))
	}

	f, _ := b.fragments.pop()
	b.patch(f.outs, Accept)

	a := b.a
	a.initial = f.start
	a.postfix = b.postfix
	for id, e := range a.transitions {
		if e.dest.IsUnset() {
			panic(fmt.Sprintf("thompson: transition %d from state %d left dangling", id, e.source))
		}
	}

	b.a = nil
	return a
}

// Build Runs Thompson's construction over postfix.
func Build(postfix Postfix) *Automaton {
	b := NewBuilder()
	for _, tok := range postfix {
		b.Push(tok)
	}
	return b.Finish()
}
