package automaton

import (
	"fmt"
	"strings"
)

// AcceptancePolicy decides how an NFA aggregates the final-state check over
// its set of active states. Under either policy an NFA whose active set is
// empty never accepts.
type AcceptancePolicy int

const (
	// AcceptAny accepts when at least one active state is final.
	// This is the default policy.
	AcceptAny AcceptancePolicy = iota

	// AcceptAll accepts when every active state is final.
	AcceptAll
)

func (p AcceptancePolicy) String() string {
	switch p {
	case AcceptAny:
		return "any"
	case AcceptAll:
		return "all"
	default:
		return fmt.Sprintf("AcceptancePolicy(%d)", int(p))
	}
}

// ParseAcceptancePolicy parses "any" or "all".
func ParseAcceptancePolicy(s string) (AcceptancePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "any", "":
		return AcceptAny, nil
	case "all":
		return AcceptAll, nil
	}
	return AcceptAny, &ArgumentError{ParamName: "policy", Message: fmt.Sprintf("unknown acceptance policy %q", s)}
}

// NFA is a nondeterministic finite automaton. Its runtime state is the set
// of simultaneously active states; the empty set is the dead configuration.
//
// An NFA is not safe for concurrent use.
type NFA struct {
	*definition

	table   nfaTable
	policy  AcceptancePolicy
	current StateSet

	onTransitionedEvent *OnTransitionedEvent[StateSet]
}

// NewNFA builds an NFA from spec using the AcceptAny policy.
func NewNFA(spec *Spec) (*NFA, error) {
	return NewNFAWithPolicy(spec, AcceptAny)
}

// NewNFAWithPolicy builds an NFA from spec with the given acceptance policy.
func NewNFAWithPolicy(spec *Spec, policy AcceptancePolicy) (*NFA, error) {
	r, err := spec.raw()
	if err != nil {
		return nil, err
	}
	return newNFA(r, policy)
}

// NewNFAFromRaw builds an NFA from an untyped specification using the
// AcceptAny policy.
func NewNFAFromRaw(spec Raw) (*NFA, error) {
	return NewNFAFromRawWithPolicy(spec, AcceptAny)
}

// NewNFAFromRawWithPolicy builds an NFA from an untyped specification with
// the given acceptance policy.
func NewNFAFromRawWithPolicy(spec Raw, policy AcceptancePolicy) (*NFA, error) {
	r, err := spec.raw()
	if err != nil {
		return nil, err
	}
	return newNFA(r, policy)
}

func newNFA(r rawSpec, policy AcceptancePolicy) (*NFA, error) {
	if policy != AcceptAny && policy != AcceptAll {
		return nil, &ArgumentError{ParamName: "policy", Message: fmt.Sprintf("unknown acceptance policy %v", policy)}
	}
	def, err := validate(r)
	if err != nil {
		return nil, err
	}
	table := make(nfaTable)
	if err := buildTable(def, r.transitions, table); err != nil {
		return nil, err
	}
	return &NFA{
		definition:          def,
		table:               table,
		policy:              policy,
		current:             NewStateSet(def.initialState),
		onTransitionedEvent: NewOnTransitionedEvent[StateSet](),
	}, nil
}

// CurrentStates returns the set of active states. An empty set means the
// NFA has died.
func (n *NFA) CurrentStates() StateSet {
	return n.current
}

// Policy returns the acceptance policy.
func (n *NFA) Policy() AcceptancePolicy {
	return n.policy
}

// IsAcceptingState applies the acceptance policy to the active set.
func (n *NFA) IsAcceptingState() bool {
	return n.accepts(n.current)
}

// IsErrorState reports whether the active set is empty.
func (n *NFA) IsErrorState() bool {
	return n.current.IsEmpty()
}

// Transition consumes one input symbol. A symbol outside the alphabet is
// rejected with *UnknownSymbolError whatever the active set. Otherwise the
// new active set is the union of the targets of every active state; states
// without a matching entry contribute nothing.
func (n *NFA) Transition(symbol string) error {
	if err := n.checkSymbol(symbol); err != nil {
		return err
	}
	if n.current.IsEmpty() {
		return nil
	}
	source := n.current
	n.current = n.step(source, symbol)
	n.onTransitionedEvent.Invoke(NewTransition(source, n.current, symbol))
	return nil
}

// Run feeds symbols in order, stopping at the first unknown symbol.
func (n *NFA) Run(symbols ...string) error {
	for _, symbol := range symbols {
		if err := n.Transition(symbol); err != nil {
			return err
		}
	}
	return nil
}

// Accepts reports whether the NFA accepts the word formed by symbols,
// starting from the initial state. The receiver's active set is not
// touched and no callbacks run.
func (n *NFA) Accepts(symbols []string) (bool, error) {
	active := NewStateSet(n.initialState)
	for _, symbol := range symbols {
		if err := n.checkSymbol(symbol); err != nil {
			return false, err
		}
		active = n.step(active, symbol)
	}
	return n.accepts(active), nil
}

// Reset makes the initial state the only active state.
func (n *NFA) Reset() {
	n.current = NewStateSet(n.initialState)
}

func (n *NFA) step(active StateSet, symbol string) StateSet {
	var next StateSet
	for state := range active.members {
		next.insertAll(n.table.lookup(state, symbol))
	}
	return next
}

func (n *NFA) accepts(active StateSet) bool {
	if active.IsEmpty() {
		return false
	}
	if n.policy == AcceptAll {
		return active.All(n.finalStates.Contains)
	}
	return active.Any(n.finalStates.Contains)
}

// OnTransitioned registers a callback run after every consumed symbol that
// was not ignored.
func (n *NFA) OnTransitioned(action func(Transition[StateSet])) {
	n.onTransitionedEvent.Register(action)
}

// UnregisterAllCallbacks removes every OnTransitioned callback.
func (n *NFA) UnregisterAllCallbacks() {
	n.onTransitionedEvent.UnregisterAll()
}

// String returns a string representation of the active set.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA { States = %v }", n.current)
}
