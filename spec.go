package automaton

import (
	"reflect"
)

// Specification field names, as they appear in decoded documents and in
// ValidationError.Field.
const (
	FieldSpec         = "spec"
	FieldAlphabet     = "alphabet"
	FieldStates       = "states"
	FieldInitialState = "initialState"
	FieldFinalStates  = "finalStates"
	FieldTransitions  = "transitions"
)

// Spec is the declarative description an automaton is built from.
//
// A nil slice or an empty InitialState counts as a missing field; an empty
// but non-nil slice is accepted.
type Spec struct {
	Alphabet     []string `json:"alphabet" yaml:"alphabet"`
	States       []string `json:"states" yaml:"states"`
	InitialState string   `json:"initialState" yaml:"initialState"`
	FinalStates  []string `json:"finalStates" yaml:"finalStates"`

	// Transitions holds (from, to, symbol) triples.
	Transitions [][]string `json:"transitions" yaml:"transitions"`
}

// Raw is an untyped specification, as produced by generic decoders. Keys are
// the Field* constants; sequence values may be any slice or array type.
type Raw map[string]any

// rawSpec is the shape the validator works on. Fields hold the decoded
// values as they are; a field is absent when its value is nil or a nil slice.
// Sequence fields are coerced to []any only by the stage that checks them.
type rawSpec struct {
	alphabet     any
	states       any
	initialState any
	finalStates  any
	transitions  any
}

func (s *Spec) raw() (rawSpec, error) {
	if s == nil {
		return rawSpec{}, newValidationError(ErrMissingField, FieldSpec, -1, nil)
	}
	r := rawSpec{
		alphabet:    stringsToAny(s.Alphabet),
		states:      stringsToAny(s.States),
		finalStates: stringsToAny(s.FinalStates),
	}
	if s.InitialState != "" {
		r.initialState = s.InitialState
	}
	if s.Transitions != nil {
		transitions := make([]any, len(s.Transitions))
		for i, t := range s.Transitions {
			transitions[i] = stringsToAny(t)
		}
		r.transitions = transitions
	}
	return r, nil
}

func (r Raw) raw() (rawSpec, error) {
	if r == nil {
		return rawSpec{}, newValidationError(ErrMissingField, FieldSpec, -1, nil)
	}
	spec := rawSpec{
		alphabet:    r[FieldAlphabet],
		states:      r[FieldStates],
		finalStates: r[FieldFinalStates],
		transitions: r[FieldTransitions],
	}
	if v := r[FieldInitialState]; v != "" {
		spec.initialState = v
	}
	return spec, nil
}

// absent reports whether a decoded field value counts as missing.
func absent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Slice && rv.IsNil()
}

// sequence coerces a present field value to []any.
func sequence(field string, v any) ([]any, error) {
	seq, ok := asSequence(v)
	if !ok {
		e := newValidationError(ErrMalformedField, field, -1, v)
		e.Detail = "expected a sequence"
		return nil, e
	}
	return seq, nil
}

// asSequence converts any slice or array into []any. A nil slice stays nil.
func asSequence(v any) ([]any, bool) {
	if seq, ok := v.([]any); ok {
		return seq, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return nil, true
		}
	case reflect.Array:
	default:
		return nil, false
	}
	seq := make([]any, rv.Len())
	for i := range seq {
		seq[i] = rv.Index(i).Interface()
	}
	return seq, true
}

func stringsToAny(s []string) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
