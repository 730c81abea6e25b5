// Package automaton builds and simulates finite-state automata from a
// declarative specification.
//
// Two variants are provided:
//
//   - DFA: at most one transition per (state, symbol); the runtime state is a
//     single Configuration, either an active state or the absorbing error
//     configuration
//   - NFA: any number of transitions per (state, symbol); the runtime state is
//     a StateSet, and the empty set is the dead configuration
//
// # Basic Usage
//
// Describe the automaton with a Spec:
//
//	spec := &automaton.Spec{
//	    Alphabet:     []string{"a", "b"},
//	    States:       []string{"s1", "s2", "s3"},
//	    InitialState: "s1",
//	    FinalStates:  []string{"s3"},
//	    Transitions:  [][]string{{"s1", "s2", "a"}, {"s2", "s3", "b"}},
//	}
//
// Build it. Construction either succeeds completely or returns a
// *ValidationError:
//
//	d, err := automaton.NewDFA(spec)
//
// Feed symbols one at a time and query the result:
//
//	err = d.Transition("a")
//	err = d.Transition("b")
//	d.IsAcceptingState() // true
//
// A symbol outside the alphabet is always an error (*UnknownSymbolError). A
// symbol with no matching transition is not: the automaton moves to its dead
// configuration and IsErrorState reports true from then on.
//
// # Fluent Construction
//
// A Builder assembles the same Spec:
//
//	d, err := automaton.NewBuilder().
//	    Alphabet("a", "b").
//	    States("s1", "s2").
//	    Initial("s1").
//	    Configure("s1").Permit("a", "s2").
//	    Configure("s2").PermitReentry("b").Final().
//	    Builder().BuildDFA()
//
// # NFA Acceptance
//
// By default an NFA accepts when any active state is final (AcceptAny).
// NewNFAWithPolicy selects AcceptAll instead. Under both policies a dead NFA
// does not accept.
//
// # Loading Specifications
//
// The loader subpackage reads YAML, JSON and confl documents into a Raw
// specification:
//
//	raw, err := loader.Load("ab.yaml")
//	n, err := automaton.NewNFAFromRaw(raw)
package automaton
