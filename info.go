package automaton

import (
	"sort"
)

// Kind names the automaton variant.
type Kind string

const (
	KindDFA Kind = "DFA"
	KindNFA Kind = "NFA"
)

// AutomatonInfo exposes the states and transitions of an automaton.
type AutomatonInfo struct {
	// Kind is the automaton variant.
	Kind Kind

	// Alphabet lists the input symbols in declaration order.
	Alphabet []string

	// InitialState is the state the automaton starts in.
	InitialState *StateInfo

	// States contains all states in declaration order.
	States []*StateInfo
}

// StateInfo describes one declared state.
type StateInfo struct {
	// UnderlyingState is the state identifier.
	UnderlyingState string

	// IsInitial is true for the initial state.
	IsInitial bool

	// IsFinal is true for accepting states.
	IsFinal bool

	// Transitions leaving this state, ordered by symbol.
	Transitions []TransitionInfo
}

func (s *StateInfo) String() string {
	if s == nil {
		return "<null>"
	}
	return s.UnderlyingState
}

// TransitionInfo describes the targets reached from a state on one symbol.
// A DFA transition always has exactly one destination.
type TransitionInfo struct {
	Symbol       string
	Destinations []string
}

// State returns the info for state, or nil if it is not declared.
func (i *AutomatonInfo) State(state string) *StateInfo {
	for _, s := range i.States {
		if s.UnderlyingState == state {
			return s
		}
	}
	return nil
}

func (d *definition) info(kind Kind, targets func(state string) map[string][]string) *AutomatonInfo {
	info := &AutomatonInfo{
		Kind:     kind,
		Alphabet: d.Alphabet(),
		States:   make([]*StateInfo, 0, len(d.stateOrder)),
	}
	for _, state := range d.stateOrder {
		si := &StateInfo{
			UnderlyingState: state,
			IsInitial:       state == d.initialState,
			IsFinal:         d.finalStates.Contains(state),
		}
		row := targets(state)
		symbols := make([]string, 0, len(row))
		for symbol := range row {
			symbols = append(symbols, symbol)
		}
		sort.Strings(symbols)
		for _, symbol := range symbols {
			si.Transitions = append(si.Transitions, TransitionInfo{Symbol: symbol, Destinations: row[symbol]})
		}
		if si.IsInitial {
			info.InitialState = si
		}
		info.States = append(info.States, si)
	}
	return info
}

// Info describes the DFA's states and transitions.
func (d *DFA) Info() *AutomatonInfo {
	return d.info(KindDFA, func(state string) map[string][]string {
		row := make(map[string][]string, len(d.table[state]))
		for symbol, to := range d.table[state] {
			row[symbol] = []string{to}
		}
		return row
	})
}

// Info describes the NFA's states and transitions.
func (n *NFA) Info() *AutomatonInfo {
	return n.info(KindNFA, func(state string) map[string][]string {
		row := make(map[string][]string, len(n.table[state]))
		for symbol, to := range n.table[state] {
			row[symbol] = to.Slice()
		}
		return row
	})
}
