package automaton_test

import (
	"testing"

	"github.com/atlekbai/automaton"
)

func TestTransition_IsReentry(t *testing.T) {
	trans := automaton.NewTransition(automaton.Active("s1"), automaton.Active("s1"), "a")
	if !trans.IsReentry() {
		t.Error("expected IsReentry to be true for same source and destination")
	}

	trans2 := automaton.NewTransition(automaton.Active("s1"), automaton.ErrorConfiguration, "a")
	if trans2.IsReentry() {
		t.Error("expected IsReentry to be false for different source and destination")
	}
}

func TestTransition_IsReentryStateSet(t *testing.T) {
	trans := automaton.NewTransition(automaton.NewStateSet("p", "q"), automaton.NewStateSet("q", "p"), "x")
	if !trans.IsReentry() {
		t.Error("expected IsReentry to be true for equal sets")
	}

	trans2 := automaton.NewTransition(automaton.NewStateSet("p"), automaton.NewStateSet(), "x")
	if trans2.IsReentry() {
		t.Error("expected IsReentry to be false when the set changes")
	}
}

func TestAutomatonInterface(t *testing.T) {
	spec := &automaton.Spec{
		Alphabet:     []string{"a"},
		States:       []string{"s"},
		InitialState: "s",
		FinalStates:  []string{"s"},
		Transitions:  [][]string{{"s", "s", "a"}},
	}
	d, err := automaton.NewDFA(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, err := automaton.NewNFA(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, a := range []automaton.Automaton{d, n} {
		if err := a.Run("a", "a"); err != nil {
			t.Fatalf("%v: unexpected error: %v", a, err)
		}
		if !a.IsAcceptingState() || a.IsErrorState() {
			t.Errorf("%v: expected to accept aa", a)
		}
	}
}
