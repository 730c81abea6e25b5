package automaton_test

import (
	"reflect"
	"testing"

	"github.com/atlekbai/automaton"
)

func TestStateSet(t *testing.T) {
	s := automaton.NewStateSet("b", "a", "b")
	if s.Len() != 2 {
		t.Errorf("expected 2 members, got %d", s.Len())
	}
	if !reflect.DeepEqual(s.Slice(), []string{"a", "b"}) {
		t.Errorf("expected sorted members, got %v", s.Slice())
	}
	if !s.Contains("a") || s.Contains("c") {
		t.Error("unexpected membership")
	}
	if s.String() != "{a, b}" {
		t.Errorf("unexpected String(): %q", s.String())
	}
}

func TestStateSetZeroValue(t *testing.T) {
	var s automaton.StateSet
	if !s.IsEmpty() || s.Len() != 0 {
		t.Error("expected the zero value to be empty")
	}
	if s.Contains("a") {
		t.Error("expected no members")
	}
	if !s.Equal(automaton.NewStateSet()) {
		t.Error("expected the zero value to equal an empty set")
	}
	if s.String() != "{}" {
		t.Errorf("unexpected String(): %q", s.String())
	}
	if !s.All(func(string) bool { return false }) {
		t.Error("expected All to hold vacuously")
	}
	if s.Any(func(string) bool { return true }) {
		t.Error("expected Any to fail on the empty set")
	}
}

func TestStateSetUnion(t *testing.T) {
	a := automaton.NewStateSet("x", "y")
	b := automaton.NewStateSet("y", "z")
	u := a.Union(b)

	if !u.Equal(automaton.NewStateSet("x", "y", "z")) {
		t.Errorf("expected {x, y, z}, got %v", u)
	}
	if a.Len() != 2 || b.Len() != 2 {
		t.Error("expected Union to leave its operands untouched")
	}
	if u.Equal(a) {
		t.Error("expected sets of different size to differ")
	}
	if automaton.NewStateSet("x", "q").Equal(a) {
		t.Error("expected sets with different members to differ")
	}
}
