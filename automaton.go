package automaton

// Automaton is the query and command surface shared by DFA and NFA.
type Automaton interface {
	// Transition consumes one input symbol.
	Transition(symbol string) error

	// Run consumes symbols in order.
	Run(symbols ...string) error

	// Accepts simulates symbols from the initial state without touching
	// the current runtime state.
	Accepts(symbols []string) (bool, error)

	// IsAcceptingState reports whether the input consumed so far is accepted.
	IsAcceptingState() bool

	// IsErrorState reports whether the automaton is in its dead configuration.
	IsErrorState() bool

	// Reset returns the runtime state to the initial configuration.
	Reset()

	// Alphabet returns the input symbols in declaration order.
	Alphabet() []string

	// Info describes the automaton's states and transitions.
	Info() *AutomatonInfo

	String() string
}

var (
	_ Automaton = (*DFA)(nil)
	_ Automaton = (*NFA)(nil)
)
