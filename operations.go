package thompson

// Reachable Returns every state reachable from the initial state over any transitions, with the accept
// marker at index GetNumStates() if some path reaches it.
func Reachable(a *Automaton) *StateSet {
	seen := NewStateSet(a.acceptIndex() + 1)
	workList := make([]int, 0)
	workList = append(workList, a.initial)
	seen.Add(a.initial)

	t := NewTransition()
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		count := a.InitTransition(state, t)
		for i := 0; i < count; i++ {
			a.GetNextTransition(t)
			if t.Dest.IsAccept() {
				seen.Add(a.acceptIndex())
				continue
			}
			if dest, ok := t.Dest.State(); ok && seen.Add(dest) {
				workList = append(workList, dest)
			}
		}
	}
	return seen
}

// IsEmpty
// Returns true if the automaton accepts no strings.
func IsEmpty(a *Automaton) bool {
	return !Reachable(a).Contains(a.acceptIndex())
}

// AcceptsEmpty Returns true if the empty string is accepted, i.e. the accept marker is in the epsilon
// closure of the initial state.
func AcceptsEmpty(a *Automaton) bool {
	return a.EpsilonClosure(a.initial).Contains(a.acceptIndex())
}
