package thompson

import (
	"github.com/bits-and-blooms/bitset"
)

// StateSet A set of automaton states backed by a bitset. Iteration is always in ascending state
// order, so nothing observable depends on the order states were added in.
type StateSet struct {
	bits *bitset.BitSet
}

// NewStateSet Returns an empty set able to hold states [0, capacity) without growing.
func NewStateSet(capacity int) *StateSet {
	return &StateSet{
		bits: bitset.New(uint(capacity)),
	}
}

// Add Adds state, reporting whether it was not already present.
func (s *StateSet) Add(state int) bool {
	if s.bits.Test(uint(state)) {
		return false
	}
	s.bits.Set(uint(state))
	return true
}

func (s *StateSet) Contains(state int) bool {
	return s.bits.Test(uint(state))
}

func (s *StateSet) Size() int {
	return int(s.bits.Count())
}

func (s *StateSet) IsEmpty() bool {
	return s.bits.None()
}

func (s *StateSet) Clear() {
	s.bits.ClearAll()
}

// GetArray Returns the states in ascending order.
func (s *StateSet) GetArray() []int {
	values := make([]int, 0, s.Size())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		values = append(values, int(i))
	}
	return values
}

// Equals Returns true if both sets hold the same states, whatever their capacity.
func (s *StateSet) Equals(other *StateSet) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.bits.SymmetricDifferenceCardinality(other.bits) == 0
}
