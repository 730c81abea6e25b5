package automaton

import (
	"fmt"
)

// DFA is a deterministic finite automaton. The alphabet, states and
// transition table are fixed at construction; only the current
// configuration changes, and only through Transition and Reset.
//
// A DFA is not safe for concurrent use.
type DFA struct {
	*definition

	table   dfaTable
	current Configuration

	onTransitionedEvent *OnTransitionedEvent[Configuration]
}

// NewDFA builds a DFA from spec. Any validation failure is returned as a
// *ValidationError and no automaton is produced.
func NewDFA(spec *Spec) (*DFA, error) {
	r, err := spec.raw()
	if err != nil {
		return nil, err
	}
	return newDFA(r)
}

// NewDFAFromRaw builds a DFA from an untyped specification.
func NewDFAFromRaw(spec Raw) (*DFA, error) {
	r, err := spec.raw()
	if err != nil {
		return nil, err
	}
	return newDFA(r)
}

func newDFA(r rawSpec) (*DFA, error) {
	def, err := validate(r)
	if err != nil {
		return nil, err
	}
	table := make(dfaTable)
	if err := buildTable(def, r.transitions, table); err != nil {
		return nil, err
	}
	return &DFA{
		definition:          def,
		table:               table,
		current:             Active(def.initialState),
		onTransitionedEvent: NewOnTransitionedEvent[Configuration](),
	}, nil
}

// CurrentState returns the current configuration.
func (d *DFA) CurrentState() Configuration {
	return d.current
}

// State returns the current state, and false while in the error configuration.
func (d *DFA) State() (string, bool) {
	return d.current.State()
}

// IsAcceptingState reports whether the current state is a final state.
// It is false in the error configuration.
func (d *DFA) IsAcceptingState() bool {
	return d.accepts(d.current)
}

// IsErrorState reports whether the DFA is in the error configuration.
func (d *DFA) IsErrorState() bool {
	return d.current.IsError()
}

// Transition consumes one input symbol. A symbol outside the alphabet is
// rejected with *UnknownSymbolError whatever the current configuration. A
// missing table entry moves the DFA into the error configuration, which no
// later symbol leaves.
func (d *DFA) Transition(symbol string) error {
	if err := d.checkSymbol(symbol); err != nil {
		return err
	}
	if d.current.IsError() {
		return nil
	}
	source := d.current
	d.current = d.step(source, symbol)
	d.onTransitionedEvent.Invoke(NewTransition(source, d.current, symbol))
	return nil
}

// Run feeds symbols in order, stopping at the first unknown symbol.
func (d *DFA) Run(symbols ...string) error {
	for _, symbol := range symbols {
		if err := d.Transition(symbol); err != nil {
			return err
		}
	}
	return nil
}

// Accepts reports whether the DFA accepts the word formed by symbols,
// starting from the initial state. The receiver's configuration is not
// touched and no callbacks run.
func (d *DFA) Accepts(symbols []string) (bool, error) {
	c := Active(d.initialState)
	for _, symbol := range symbols {
		if err := d.checkSymbol(symbol); err != nil {
			return false, err
		}
		c = d.step(c, symbol)
	}
	return d.accepts(c), nil
}

// Reset returns the DFA to its initial state.
func (d *DFA) Reset() {
	d.current = Active(d.initialState)
}

// step computes the configuration after consuming a symbol known to be in
// the alphabet.
func (d *DFA) step(c Configuration, symbol string) Configuration {
	state, ok := c.State()
	if !ok {
		return c
	}
	next, ok := d.table.lookup(state, symbol)
	if !ok {
		return ErrorConfiguration
	}
	return Active(next)
}

func (d *DFA) accepts(c Configuration) bool {
	state, ok := c.State()
	return ok && d.finalStates.Contains(state)
}

// OnTransitioned registers a callback run after every consumed symbol that
// was not ignored.
func (d *DFA) OnTransitioned(action func(Transition[Configuration])) {
	d.onTransitionedEvent.Register(action)
}

// UnregisterAllCallbacks removes every OnTransitioned callback.
func (d *DFA) UnregisterAllCallbacks() {
	d.onTransitionedEvent.UnregisterAll()
}

// String returns a string representation of the current configuration.
func (d *DFA) String() string {
	return fmt.Sprintf("DFA { State = %v }", d.current)
}
