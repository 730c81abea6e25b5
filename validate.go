package automaton

import (
	"fmt"
	"strings"
)

// definition is the validated, immutable part of an automaton: everything
// except the transition table and the runtime state.
type definition struct {
	alphabet     StateSet
	states       StateSet
	finalStates  StateSet
	initialState string

	// Declaration order, kept for introspection.
	alphabetOrder []string
	stateOrder    []string
	finalOrder    []string
}

// validate checks a specification in a fixed order and reports the first
// failure: presence of every field, alphabet, states, initial state, final
// states. A field that is present but not a sequence fails in its own stage.
// Transitions are checked separately by buildTable.
func validate(r rawSpec) (*definition, error) {
	if err := r.checkPresence(); err != nil {
		return nil, err
	}

	def := &definition{}

	alphabet, err := sequence(FieldAlphabet, r.alphabet)
	if err != nil {
		return nil, err
	}
	def.alphabet, def.alphabetOrder, err = collectIdentifiers(
		FieldAlphabet, alphabet, ErrInvalidAlphabetSymbol, ErrDuplicateAlphabetSymbol)
	if err != nil {
		return nil, err
	}

	states, err := sequence(FieldStates, r.states)
	if err != nil {
		return nil, err
	}
	def.states, def.stateOrder, err = collectIdentifiers(
		FieldStates, states, ErrInvalidState, ErrDuplicateState)
	if err != nil {
		return nil, err
	}

	if def.initialState, err = validateInitialState(r.initialState, def.states); err != nil {
		return nil, err
	}

	finalStates, err := sequence(FieldFinalStates, r.finalStates)
	if err != nil {
		return nil, err
	}
	def.finalStates, def.finalOrder, err = validateFinalStates(finalStates, def.states)
	if err != nil {
		return nil, err
	}

	return def, nil
}

func (r rawSpec) checkPresence() error {
	switch {
	case absent(r.alphabet):
		return newValidationError(ErrMissingField, FieldAlphabet, -1, nil)
	case absent(r.states):
		return newValidationError(ErrMissingField, FieldStates, -1, nil)
	case r.initialState == nil:
		return newValidationError(ErrMissingField, FieldInitialState, -1, nil)
	case absent(r.finalStates):
		return newValidationError(ErrMissingField, FieldFinalStates, -1, nil)
	case absent(r.transitions):
		return newValidationError(ErrMissingField, FieldTransitions, -1, nil)
	}
	return nil
}

// collectIdentifiers validates a sequence of identifiers: every entry must be
// a string that is non-blank and unique. Identifiers are kept verbatim.
func collectIdentifiers(field string, values []any, invalid, duplicate error) (StateSet, []string, error) {
	var set StateSet
	order := make([]string, 0, len(values))
	for i, v := range values {
		id, ok := v.(string)
		if !ok {
			e := newValidationError(invalid, field, i, v)
			e.Detail = "expected a string"
			return StateSet{}, nil, e
		}
		if set.Contains(id) {
			return StateSet{}, nil, newValidationError(duplicate, field, i, v)
		}
		if strings.TrimSpace(id) == "" {
			e := newValidationError(invalid, field, i, v)
			e.Detail = "must not be blank"
			return StateSet{}, nil, e
		}
		set.insert(id)
		order = append(order, id)
	}
	return set, order, nil
}

func validateInitialState(v any, states StateSet) (string, error) {
	id, ok := v.(string)
	switch {
	case !ok:
		e := newValidationError(ErrInvalidInitialState, FieldInitialState, -1, v)
		e.Detail = "expected a string"
		return "", e
	case strings.TrimSpace(id) == "":
		e := newValidationError(ErrInvalidInitialState, FieldInitialState, -1, v)
		e.Detail = "must not be blank"
		return "", e
	case !states.Contains(id):
		e := newValidationError(ErrInvalidInitialState, FieldInitialState, -1, v)
		e.Detail = "not a declared state"
		return "", e
	}
	return id, nil
}

func validateFinalStates(values []any, states StateSet) (StateSet, []string, error) {
	var set StateSet
	order := make([]string, 0, len(values))
	for i, v := range values {
		id, ok := v.(string)
		if !ok {
			e := newValidationError(ErrInvalidFinalState, FieldFinalStates, i, v)
			e.Detail = "expected a string"
			return StateSet{}, nil, e
		}
		if set.Contains(id) {
			return StateSet{}, nil, newValidationError(ErrDuplicateFinalState, FieldFinalStates, i, v)
		}
		if !states.Contains(id) {
			e := newValidationError(ErrUnknownFinalState, FieldFinalStates, i, v)
			e.Detail = fmt.Sprintf("declared states are %v", states)
			return StateSet{}, nil, e
		}
		set.insert(id)
		order = append(order, id)
	}
	return set, order, nil
}

// checkSymbol fails with *UnknownSymbolError when symbol is outside the alphabet.
func (d *definition) checkSymbol(symbol string) error {
	if !d.alphabet.Contains(symbol) {
		return &UnknownSymbolError{Symbol: symbol}
	}
	return nil
}

// Alphabet returns the input symbols in declaration order.
func (d *definition) Alphabet() []string {
	return append([]string(nil), d.alphabetOrder...)
}

// States returns the declared states in declaration order.
func (d *definition) States() []string {
	return append([]string(nil), d.stateOrder...)
}

// FinalStates returns the accepting states in declaration order.
func (d *definition) FinalStates() []string {
	return append([]string(nil), d.finalOrder...)
}

// InitialState returns the state the automaton starts in.
func (d *definition) InitialState() string {
	return d.initialState
}

// IsFinal reports whether state is an accepting state.
func (d *definition) IsFinal(state string) bool {
	return d.finalStates.Contains(state)
}
