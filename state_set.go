package automaton

import (
	"sort"
	"strings"
)

// StateSet is an immutable set of state identifiers. The zero value is the
// empty set.
type StateSet struct {
	members map[string]struct{}
}

// NewStateSet creates a set holding the given states. Duplicates collapse.
func NewStateSet(states ...string) StateSet {
	var s StateSet
	for _, state := range states {
		s.insert(state)
	}
	return s
}

// insert adds state to the set. Only used while a set is still being built.
func (s *StateSet) insert(state string) {
	if s.members == nil {
		s.members = make(map[string]struct{})
	}
	s.members[state] = struct{}{}
}

// insertAll adds every member of other to the set.
func (s *StateSet) insertAll(other StateSet) {
	for state := range other.members {
		s.insert(state)
	}
}

// Contains reports whether state is a member.
func (s StateSet) Contains(state string) bool {
	_, ok := s.members[state]
	return ok
}

// Len returns the number of members.
func (s StateSet) Len() int {
	return len(s.members)
}

// IsEmpty reports whether the set has no members.
func (s StateSet) IsEmpty() bool {
	return len(s.members) == 0
}

// Slice returns the members in sorted order.
func (s StateSet) Slice() []string {
	out := make([]string, 0, len(s.members))
	for state := range s.members {
		out = append(out, state)
	}
	sort.Strings(out)
	return out
}

// Union returns a new set holding the members of both sets.
func (s StateSet) Union(other StateSet) StateSet {
	var out StateSet
	out.insertAll(s)
	out.insertAll(other)
	return out
}

// Any reports whether pred holds for at least one member.
func (s StateSet) Any(pred func(string) bool) bool {
	for state := range s.members {
		if pred(state) {
			return true
		}
	}
	return false
}

// All reports whether pred holds for every member. It is true for the empty set.
func (s StateSet) All(pred func(string) bool) bool {
	for state := range s.members {
		if !pred(state) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets have the same members.
func (s StateSet) Equal(other StateSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	return s.All(other.Contains)
}

func (s StateSet) String() string {
	return "{" + strings.Join(s.Slice(), ", ") + "}"
}
