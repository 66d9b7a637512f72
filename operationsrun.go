package thompson

// Run Returns true if the whole of s drives a from its initial state to the accept marker.
// The automaton is only read, so Run may be called concurrently on the same automaton.
func Run(a *Automaton, s string) bool {
	current := NewStateSet(a.acceptIndex() + 1)
	next := NewStateSet(a.acceptIndex() + 1)
	var work []int

	work = a.addClosure(current, Target(a.initial), work)

	t := NewTransition()
	for _, r := range s {
		next.Clear()
		for _, state := range current.GetArray() {
			if state == a.acceptIndex() {
				continue
			}
			count := a.InitTransition(state, t)
			for i := 0; i < count; i++ {
				a.GetNextTransition(t)
				if t.Label == int(r) {
					work = a.addClosure(next, t.Dest, work)
				}
			}
		}

		if next.IsEmpty() {
			// No branch is alive; the rest of s cannot change that.
			return false
		}
		current, next = next, current
	}

	return current.Contains(a.acceptIndex())
}

// Accepts Returns true if the automaton matches the whole input string.
func (a *Automaton) Accepts(input string) bool {
	return Run(a, input)
}

// EpsilonClosure Returns the states reachable from state through epsilon transitions alone,
// including state itself. The accept marker appears as index GetNumStates().
func (a *Automaton) EpsilonClosure(state int) *StateSet {
	set := NewStateSet(a.acceptIndex() + 1)
	a.addClosure(set, Target(state), nil)
	return set
}

// addClosure adds dest and everything epsilon reachable from it to set. work is scratch space
// returned for reuse. States already in set are not expanded again, which is what terminates the
// walk on epsilon cycles.
func (a *Automaton) addClosure(set *StateSet, dest Target, work []int) []int {
	work = work[:0]
	if dest.IsAccept() {
		set.Add(a.acceptIndex())
		return work
	}
	start, ok := dest.State()
	if !ok {
		return work
	}
	if !set.Add(start) {
		return work
	}

	work = append(work, start)
	t := NewTransition()
	for len(work) > 0 {
		state := work[len(work)-1]
		work = work[:len(work)-1]

		count := a.InitTransition(state, t)
		for i := 0; i < count; i++ {
			a.GetNextTransition(t)
			if !t.IsEpsilon() {
				continue
			}
			if t.Dest.IsAccept() {
				set.Add(a.acceptIndex())
				continue
			}
			if s, ok := t.Dest.State(); ok && set.Add(s) {
				work = append(work, s)
			}
		}
	}
	return work
}
