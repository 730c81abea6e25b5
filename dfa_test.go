package automaton_test

import (
	"errors"
	"testing"

	"github.com/atlekbai/automaton"
)

// abSpec is the s1 -a-> s2 -b-> s3 automaton used across tests.
func abSpec() *automaton.Spec {
	return &automaton.Spec{
		Alphabet:     []string{"a", "b"},
		States:       []string{"s1", "s2", "s3"},
		InitialState: "s1",
		FinalStates:  []string{"s3"},
		Transitions: [][]string{
			{"s1", "s2", "a"},
			{"s2", "s3", "b"},
		},
	}
}

func mustDFA(t *testing.T, spec *automaton.Spec) *automaton.DFA {
	t.Helper()
	d, err := automaton.NewDFA(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return d
}

func TestNewDFA(t *testing.T) {
	d := mustDFA(t, abSpec())

	state, ok := d.State()
	if !ok || state != "s1" {
		t.Errorf("expected initial state s1, got %v", d.CurrentState())
	}
	if d.CurrentState() != automaton.Active("s1") {
		t.Errorf("expected Active(s1), got %v", d.CurrentState())
	}
	if d.IsErrorState() {
		t.Error("expected a fresh DFA not to be in error")
	}
	if d.IsAcceptingState() {
		t.Error("expected s1 not to be accepting")
	}
}

func TestDFAAcceptsAB(t *testing.T) {
	d := mustDFA(t, abSpec())

	if err := d.Transition("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state, _ := d.State(); state != "s2" {
		t.Errorf("expected s2, got %v", d.CurrentState())
	}
	if d.IsAcceptingState() {
		t.Error("expected s2 not to be accepting")
	}

	if err := d.Transition("b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state, _ := d.State(); state != "s3" {
		t.Errorf("expected s3, got %v", d.CurrentState())
	}
	if !d.IsAcceptingState() {
		t.Error("expected s3 to be accepting")
	}
}

func TestDFAMissingTransitionEntersError(t *testing.T) {
	d := mustDFA(t, abSpec())

	if err := d.Transition("b"); err != nil {
		t.Fatalf("a missing transition must not be an error value, got %v", err)
	}
	if !d.IsErrorState() {
		t.Fatal("expected error state")
	}
	if d.CurrentState() != automaton.ErrorConfiguration {
		t.Errorf("expected ErrorConfiguration, got %v", d.CurrentState())
	}
	if _, ok := d.State(); ok {
		t.Error("expected State to report no active state")
	}
	if d.CurrentState().String() != automaton.ErrorMarker {
		t.Errorf("expected %q, got %q", automaton.ErrorMarker, d.CurrentState().String())
	}

	// The error configuration is absorbing.
	for _, symbol := range []string{"a", "b", "a"} {
		if err := d.Transition(symbol); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.IsErrorState() {
			t.Fatalf("expected to stay in error after %q", symbol)
		}
		if d.IsAcceptingState() {
			t.Fatal("error configuration must never accept")
		}
	}
}

func TestDFAUnknownSymbol(t *testing.T) {
	d := mustDFA(t, abSpec())

	err := d.Transition("c")
	var symbolErr *automaton.UnknownSymbolError
	if !errors.As(err, &symbolErr) {
		t.Fatalf("expected UnknownSymbolError, got %v", err)
	}
	if symbolErr.Symbol != "c" {
		t.Errorf("expected symbol c, got %q", symbolErr.Symbol)
	}
	if !errors.Is(err, automaton.ErrUnknownSymbol) {
		t.Error("expected errors.Is(err, ErrUnknownSymbol)")
	}
	if state, _ := d.State(); state != "s1" {
		t.Errorf("expected the state to be unchanged, got %v", d.CurrentState())
	}
}

func TestDFAUnknownSymbolWhileInError(t *testing.T) {
	d := mustDFA(t, abSpec())
	_ = d.Transition("b")
	if !d.IsErrorState() {
		t.Fatal("expected error state")
	}

	if err := d.Transition("z"); !errors.Is(err, automaton.ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol even in error, got %v", err)
	}
	if err := d.Transition(""); !errors.Is(err, automaton.ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol for the empty symbol, got %v", err)
	}
}

func TestDFASelfLoop(t *testing.T) {
	d := mustDFA(t, &automaton.Spec{
		Alphabet:     []string{"0", "1"},
		States:       []string{"even", "odd"},
		InitialState: "even",
		FinalStates:  []string{"even"},
		Transitions: [][]string{
			{"even", "even", "0"},
			{"even", "odd", "1"},
			{"odd", "odd", "0"},
			{"odd", "even", "1"},
		},
	})

	if err := d.Run("1", "0", "1", "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state, _ := d.State(); state != "odd" {
		t.Errorf("expected odd, got %v", d.CurrentState())
	}
	if d.IsAcceptingState() {
		t.Error("expected odd parity not to be accepted")
	}
}

func TestDFARunStopsAtUnknownSymbol(t *testing.T) {
	d := mustDFA(t, abSpec())

	err := d.Run("a", "x", "b")
	if !errors.Is(err, automaton.ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
	if state, _ := d.State(); state != "s2" {
		t.Errorf("expected to stop in s2, got %v", d.CurrentState())
	}
}

func TestDFAAccepts(t *testing.T) {
	d := mustDFA(t, abSpec())

	tests := []struct {
		input    []string
		expected bool
	}{
		{[]string{"a", "b"}, true},
		{[]string{"a"}, false},
		{nil, false},
		{[]string{"b"}, false},
		{[]string{"a", "b", "a"}, false},
	}
	for _, tt := range tests {
		got, err := d.Accepts(tt.input)
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("Accepts(%v): expected %v, got %v", tt.input, tt.expected, got)
		}
	}

	if state, _ := d.State(); state != "s1" {
		t.Errorf("expected Accepts to leave the DFA untouched, got %v", d.CurrentState())
	}
	if _, err := d.Accepts([]string{"a", "q"}); !errors.Is(err, automaton.ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestDFAReset(t *testing.T) {
	d := mustDFA(t, abSpec())
	_ = d.Transition("b")
	if !d.IsErrorState() {
		t.Fatal("expected error state")
	}

	d.Reset()
	if d.IsErrorState() {
		t.Error("expected Reset to leave the error configuration")
	}
	if d.CurrentState() != automaton.Active("s1") {
		t.Errorf("expected s1, got %v", d.CurrentState())
	}
}

func TestDFAIndependentInstances(t *testing.T) {
	spec := abSpec()
	d1 := mustDFA(t, spec)
	d2 := mustDFA(t, spec)

	_ = d1.Transition("a")
	if state, _ := d2.State(); state != "s1" {
		t.Errorf("expected the second DFA to stay in s1, got %v", d2.CurrentState())
	}

	// Mutating the spec after construction does not reach the automaton.
	spec.Transitions[0][1] = "s3"
	_ = d2.Transition("a")
	if state, _ := d2.State(); state != "s2" {
		t.Errorf("expected s2, got %v", d2.CurrentState())
	}
}

func TestDFAOnTransitioned(t *testing.T) {
	d := mustDFA(t, abSpec())

	var transitions []automaton.Transition[automaton.Configuration]
	d.OnTransitioned(func(tr automaton.Transition[automaton.Configuration]) {
		transitions = append(transitions, tr)
	})

	_ = d.Run("a", "a", "b")

	// The last symbol is ignored in the error configuration.
	if len(transitions) != 2 {
		t.Fatalf("expected 2 transitions, got %d", len(transitions))
	}
	if transitions[0].Source != automaton.Active("s1") || transitions[0].Destination != automaton.Active("s2") || transitions[0].Symbol != "a" {
		t.Errorf("unexpected first transition %+v", transitions[0])
	}
	if !transitions[1].Destination.IsError() {
		t.Errorf("expected the second transition to enter error, got %v", transitions[1].Destination)
	}

	d.UnregisterAllCallbacks()
	d.Reset()
	_ = d.Transition("a")
	if len(transitions) != 2 {
		t.Errorf("expected no callbacks after UnregisterAllCallbacks, got %d", len(transitions))
	}
}

func TestDFAString(t *testing.T) {
	d := mustDFA(t, abSpec())
	if got := d.String(); got != "DFA { State = s1 }" {
		t.Errorf("unexpected String(): %q", got)
	}
	_ = d.Transition("b")
	if got := d.String(); got != "DFA { State = <error> }" {
		t.Errorf("unexpected String(): %q", got)
	}
}

func TestConfigurationZeroValue(t *testing.T) {
	var c automaton.Configuration
	if !c.IsZero() {
		t.Error("expected the zero value to report IsZero")
	}
	if c.IsError() {
		t.Error("expected the zero value not to be the error configuration")
	}
	if _, ok := c.State(); ok {
		t.Error("expected the zero value to have no active state")
	}
	if c.Equal(automaton.Active("")) {
		t.Error("expected the zero value to differ from Active(\"\")")
	}
	if c.String() != "<unset>" {
		t.Errorf("unexpected String(): %q", c.String())
	}

	if automaton.Active("s1").IsZero() || automaton.ErrorConfiguration.IsZero() {
		t.Error("expected Active and ErrorConfiguration not to be zero")
	}
	if state, ok := automaton.Active("").State(); !ok || state != "" {
		t.Errorf("expected Active(\"\") to be active, got %q, %v", state, ok)
	}
}
