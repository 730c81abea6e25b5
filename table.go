package automaton

import (
	"fmt"
)

// edge is one well-formed (from, to, symbol) transition.
type edge struct {
	from, to, symbol string
}

// tableBuilder decides what happens when a (from, symbol) pair is defined
// more than once: a DFA table rejects it, an NFA table accumulates targets.
type tableBuilder interface {
	add(index int, e edge) error
}

// buildTable checks every transition in declaration order and hands the
// well-formed ones to b. The first failure aborts the build.
func buildTable(def *definition, transitions any, b tableBuilder) error {
	seq, err := sequence(FieldTransitions, transitions)
	if err != nil {
		return err
	}
	for i, t := range seq {
		e, err := def.parseEdge(i, t)
		if err != nil {
			return err
		}
		if err := b.add(i, e); err != nil {
			return err
		}
	}
	return nil
}

func (d *definition) parseEdge(index int, t any) (edge, error) {
	seq, ok := asSequence(t)
	if !ok {
		e := newValidationError(ErrTransitionType, FieldTransitions, index, t)
		e.Detail = "expected a [from, to, symbol] sequence"
		return edge{}, e
	}
	if len(seq) != 3 {
		e := newValidationError(ErrTransitionArity, FieldTransitions, index, t)
		e.Detail = fmt.Sprintf("got %d elements", len(seq))
		return edge{}, e
	}

	var parts [3]string
	for i, v := range seq {
		s, ok := v.(string)
		if !ok {
			e := newValidationError(ErrTransitionType, FieldTransitions, index, v)
			e.Detail = fmt.Sprintf("element %d is not a string", i)
			return edge{}, e
		}
		parts[i] = s
	}
	e := edge{from: parts[0], to: parts[1], symbol: parts[2]}

	if !d.states.Contains(e.from) {
		err := newValidationError(ErrUnknownState, FieldTransitions, index, e.from)
		err.Detail = "source state is not declared"
		return edge{}, err
	}
	if !d.states.Contains(e.to) {
		err := newValidationError(ErrUnknownState, FieldTransitions, index, e.to)
		err.Detail = "target state is not declared"
		return edge{}, err
	}
	if !d.alphabet.Contains(e.symbol) {
		err := newValidationError(ErrUnknownSymbol, FieldTransitions, index, e.symbol)
		err.Detail = "symbol is not in the alphabet"
		return edge{}, err
	}
	return e, nil
}

// dfaTable maps state -> symbol -> state.
type dfaTable map[string]map[string]string

func (t dfaTable) add(index int, e edge) error {
	row, ok := t[e.from]
	if !ok {
		row = make(map[string]string)
		t[e.from] = row
	}
	if existing, ok := row[e.symbol]; ok {
		err := newValidationError(ErrNonDeterministicTransition, FieldTransitions, index, []string{e.from, e.to, e.symbol})
		err.Detail = fmt.Sprintf("state %q already moves to %q on symbol %q", e.from, existing, e.symbol)
		return err
	}
	row[e.symbol] = e.to
	return nil
}

func (t dfaTable) lookup(state, symbol string) (string, bool) {
	to, ok := t[state][symbol]
	return to, ok
}

// nfaTable maps state -> symbol -> set of states.
type nfaTable map[string]map[string]StateSet

func (t nfaTable) add(_ int, e edge) error {
	row, ok := t[e.from]
	if !ok {
		row = make(map[string]StateSet)
		t[e.from] = row
	}
	targets := row[e.symbol]
	targets.insert(e.to)
	row[e.symbol] = targets
	return nil
}

func (t nfaTable) lookup(state, symbol string) StateSet {
	return t[state][symbol]
}
