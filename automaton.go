package thompson

import "fmt"

// Target Destination of a transition: Unset while the transition is dangling, Accept for the
// sentinel accept marker, otherwise the index of a state.
type Target int

const (
	Unset  = Target(-1) // A dangling transition, to be connected later
	Accept = Target(-2) // The sentinel accept marker
)

func (t Target) IsUnset() bool {
	return t == Unset
}

func (t Target) IsAccept() bool {
	return t == Accept
}

// State Returns the destination state, or false if t is Unset or Accept.
func (t Target) State() (int, bool) {
	if t < 0 {
		return -1, false
	}
	return int(t), true
}

func (t Target) String() string {
	switch t {
	case Unset:
		return "unset"
	case Accept:
		return "accept"
	default:
		return fmt.Sprintf("%d", int(t))
	}
}

// Transition A transition leaving Source. Label is a symbol or Epsilon.
// TransitionUpto is the iteration cursor used by InitTransition and GetNextTransition.
type Transition struct {
	Source         int
	Dest           Target
	Label          int
	TransitionUpto int
}

func NewTransition() *Transition {
	return &Transition{Dest: Unset}
}

func (t *Transition) IsEpsilon() bool {
	return t.Label == Epsilon
}

type edge struct {
	source int
	label  int
	dest   Target
}

// Automaton Represents a Thompson NFA. States are integers indexing an arena, each owning the ids
// of the transitions leaving it; back edges introduced by '*' and '+' are plain indices. There is no
// per state accept flag: a string is accepted when it drives some path to the Accept marker.
//
// An Automaton returned by Compile or Build is never mutated again and may be used concurrently.
type Automaton struct {
	expression string
	postfix    Postfix

	initial int

	// Ids of the transitions leaving each state, in creation order.
	states [][]int

	transitions []edge
}

func newAutomaton() *Automaton {
	return &Automaton{
		states:      make([][]int, 0, 2),
		transitions: make([]edge, 0, 2),
	}
}

// createState Create a new state.
func (a *Automaton) createState() int {
	state := len(a.states)
	a.states = append(a.states, nil)
	return state
}

// addTransition Add a new transition and return its id.
func (a *Automaton) addTransition(source, label int, dest Target) int {
	id := len(a.transitions)
	a.transitions = append(a.transitions, edge{source: source, label: label, dest: dest})
	a.states[source] = append(a.states[source], id)
	return id
}

// Expression Returns the expression this automaton was compiled from.
func (a *Automaton) Expression() string {
	return a.expression
}

// Postfix Returns the token sequence this automaton was built from.
func (a *Automaton) Postfix() Postfix {
	return a.postfix
}

// GetInitialState Returns the state every run starts from.
func (a *Automaton) GetInitialState() int {
	return a.initial
}

// GetNumStates How many states this automaton has, not counting the accept marker.
func (a *Automaton) GetNumStates() int {
	return len(a.states)
}

// GetNumTransitions How many transitions this automaton has.
func (a *Automaton) GetNumTransitions() int {
	return len(a.transitions)
}

// GetNumTransitionsWithState How many transitions leave this state.
func (a *Automaton) GetNumTransitionsWithState(state int) int {
	return len(a.states[state])
}

// InitTransition Initialize the provided Transition to iterate through all transitions leaving the specified
// state. You must call GetNextTransition to get each transition. Returns the number of transitions leaving
// this state.
func (a *Automaton) InitTransition(state int, t *Transition) int {
	t.Source = state
	t.TransitionUpto = 0
	return a.GetNumTransitionsWithState(state)
}

// GetNextTransition Iterate to the next transition after the provided one
func (a *Automaton) GetNextTransition(t *Transition) {
	e := a.transitions[a.states[t.Source][t.TransitionUpto]]
	t.Dest = e.dest
	t.Label = e.label
	t.TransitionUpto++
}

// acceptIndex is the position of the accept marker in a StateSet sized for a.
func (a *Automaton) acceptIndex() int {
	return len(a.states)
}

func (a *Automaton) String() string {
	return fmt.Sprintf("Automaton{expression=%q postfix=%q states=%d transitions=%d}",
		a.expression, a.postfix.String(), a.GetNumStates(), a.GetNumTransitions())
}
