package automaton

import (
	"errors"
	"fmt"
	"strings"
)

// Validation error kinds. A *ValidationError unwraps to exactly one of these,
// so callers can classify construction failures with errors.Is.
var (
	ErrMissingField               = errors.New("missing field")
	ErrMalformedField             = errors.New("malformed field")
	ErrInvalidAlphabetSymbol      = errors.New("invalid alphabet symbol")
	ErrDuplicateAlphabetSymbol    = errors.New("duplicate alphabet symbol")
	ErrInvalidState               = errors.New("invalid state")
	ErrDuplicateState             = errors.New("duplicate state")
	ErrInvalidInitialState        = errors.New("invalid initial state")
	ErrInvalidFinalState          = errors.New("invalid final state")
	ErrDuplicateFinalState        = errors.New("duplicate final state")
	ErrUnknownFinalState          = errors.New("unknown final state")
	ErrTransitionArity            = errors.New("transition must have exactly three elements")
	ErrTransitionType             = errors.New("transition elements must be strings")
	ErrUnknownState               = errors.New("unknown state")
	ErrNonDeterministicTransition = errors.New("non-deterministic transition")

	// ErrUnknownSymbol is reported both while building a transition table
	// and when a symbol outside the alphabet is fed to a running automaton.
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// ValidationError describes why a specification was rejected.
type ValidationError struct {
	// Kind is one of the Err* sentinels above.
	Kind error

	// Field is the specification field holding the offending value.
	Field string

	// Index is the position within Field, or -1 when Field is not a sequence.
	Index int

	// Value is the offending value as it appeared in the specification.
	Value any

	// Detail adds context that does not fit the other fields.
	Detail string
}

func newValidationError(kind error, field string, index int, value any) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Index: index, Value: value}
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v: %s", e.Kind, e.Field)
	if e.Index >= 0 {
		fmt.Fprintf(&b, "[%d]", e.Index)
	}
	if !errors.Is(e.Kind, ErrMissingField) {
		fmt.Fprintf(&b, " = %#v (type %s)", e.Value, e.Type())
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Type returns the dynamic type name of Value.
func (e *ValidationError) Type() string {
	if e.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", e.Value)
}

// UnknownSymbolError is returned by Transition when the symbol is not part of
// the automaton's alphabet.
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("symbol %q is not in the alphabet", e.Symbol)
}

func (e *UnknownSymbolError) Unwrap() error {
	return ErrUnknownSymbol
}

// ArgumentError indicates an invalid argument was passed.
type ArgumentError struct {
	ParamName string
	Message   string
}

func (e *ArgumentError) Error() string {
	if e.ParamName != "" {
		return fmt.Sprintf("%s (parameter: %s)", e.Message, e.ParamName)
	}
	return e.Message
}
