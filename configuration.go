package automaton

// ErrorMarker is how the error configuration renders as a string. It is not
// a state identifier and never compares equal to one.
const ErrorMarker = "<error>"

type configurationKind uint8

const (
	unsetConfiguration configurationKind = iota
	activeConfiguration
	errorConfiguration
)

// Configuration is the runtime position of a DFA: either an active declared
// state or the error configuration. The error configuration is absorbing.
//
// The zero value is neither active nor in error; it is never the
// configuration of a DFA built by NewDFA. Use Active or ErrorConfiguration.
type Configuration struct {
	kind  configurationKind
	state string
}

// ErrorConfiguration is the configuration a DFA enters when no transition is
// defined for the current state and input symbol.
var ErrorConfiguration = Configuration{kind: errorConfiguration}

// Active returns the configuration positioned on state.
func Active(state string) Configuration {
	return Configuration{kind: activeConfiguration, state: state}
}

// State returns the active state, and false unless c is active.
func (c Configuration) State() (string, bool) {
	if c.kind != activeConfiguration {
		return "", false
	}
	return c.state, true
}

// IsError reports whether c is the error configuration.
func (c Configuration) IsError() bool {
	return c.kind == errorConfiguration
}

// IsZero reports whether c is the zero Configuration.
func (c Configuration) IsZero() bool {
	return c.kind == unsetConfiguration
}

// Equal reports whether both configurations are the same.
func (c Configuration) Equal(other Configuration) bool {
	return c == other
}

func (c Configuration) String() string {
	switch c.kind {
	case activeConfiguration:
		return c.state
	case errorConfiguration:
		return ErrorMarker
	}
	return "<unset>"
}
