package automaton

// Builder assembles a Spec through a fluent interface. Every sequence field
// starts out empty rather than missing, so only a forgotten initial state is
// reported as ErrMissingField.
type Builder struct {
	spec Spec
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{spec: Spec{
		Alphabet:    []string{},
		States:      []string{},
		FinalStates: []string{},
		Transitions: [][]string{},
	}}
}

// Alphabet appends input symbols.
func (b *Builder) Alphabet(symbols ...string) *Builder {
	b.spec.Alphabet = append(b.spec.Alphabet, symbols...)
	return b
}

// States appends states.
func (b *Builder) States(states ...string) *Builder {
	b.spec.States = append(b.spec.States, states...)
	return b
}

// Initial sets the initial state.
func (b *Builder) Initial(state string) *Builder {
	b.spec.InitialState = state
	return b
}

// Final appends accepting states.
func (b *Builder) Final(states ...string) *Builder {
	b.spec.FinalStates = append(b.spec.FinalStates, states...)
	return b
}

// Permit adds a transition from one state to another on symbol.
func (b *Builder) Permit(from, symbol, to string) *Builder {
	b.spec.Transitions = append(b.spec.Transitions, []string{from, to, symbol})
	return b
}

// Configure begins configuration of the transitions leaving state.
func (b *Builder) Configure(state string) *StateConfiguration {
	return &StateConfiguration{builder: b, state: state}
}

// Spec returns a copy of the specification assembled so far.
func (b *Builder) Spec() *Spec {
	spec := Spec{
		Alphabet:     append([]string{}, b.spec.Alphabet...),
		States:       append([]string{}, b.spec.States...),
		InitialState: b.spec.InitialState,
		FinalStates:  append([]string{}, b.spec.FinalStates...),
		Transitions:  make([][]string, len(b.spec.Transitions)),
	}
	for i, t := range b.spec.Transitions {
		spec.Transitions[i] = append([]string{}, t...)
	}
	return &spec
}

// BuildDFA builds a DFA from the assembled specification.
func (b *Builder) BuildDFA() (*DFA, error) {
	return NewDFA(b.Spec())
}

// BuildNFA builds an NFA with the AcceptAny policy.
func (b *Builder) BuildNFA() (*NFA, error) {
	return NewNFA(b.Spec())
}

// StateConfiguration configures the transitions leaving one state.
type StateConfiguration struct {
	builder *Builder
	state   string
}

// State returns the state being configured.
func (sc *StateConfiguration) State() string {
	return sc.state
}

// Permit adds a transition to destination on symbol.
func (sc *StateConfiguration) Permit(symbol, destination string) *StateConfiguration {
	sc.builder.Permit(sc.state, symbol, destination)
	return sc
}

// PermitReentry adds a transition from the state back to itself on symbol.
func (sc *StateConfiguration) PermitReentry(symbol string) *StateConfiguration {
	sc.builder.Permit(sc.state, symbol, sc.state)
	return sc
}

// Final marks the state as accepting.
func (sc *StateConfiguration) Final() *StateConfiguration {
	sc.builder.Final(sc.state)
	return sc
}

// Configure switches to configuring another state.
func (sc *StateConfiguration) Configure(state string) *StateConfiguration {
	return sc.builder.Configure(state)
}

// Builder returns the builder this configuration belongs to.
func (sc *StateConfiguration) Builder() *Builder {
	return sc.builder
}
