package automaton

// configuration is implemented by the runtime state types of both engines:
// Configuration for a DFA, StateSet for an NFA.
type configuration[C any] interface {
	Equal(C) bool
	String() string
}

// Transition describes one consumed input symbol.
type Transition[C configuration[C]] struct {
	// Source is the runtime state before the symbol was consumed.
	Source C

	// Destination is the runtime state after the symbol was consumed.
	Destination C

	// Symbol is the consumed input symbol.
	Symbol string
}

// NewTransition creates a new transition.
func NewTransition[C configuration[C]](source, destination C, symbol string) Transition[C] {
	return Transition[C]{
		Source:      source,
		Destination: destination,
		Symbol:      symbol,
	}
}

// IsReentry returns true if the transition left the runtime state unchanged.
func (t Transition[C]) IsReentry() bool {
	return t.Source.Equal(t.Destination)
}

// OnTransitionedEvent holds the callbacks run after every consumed symbol.
type OnTransitionedEvent[C configuration[C]] struct {
	handlers []func(Transition[C])
}

// NewOnTransitionedEvent creates a new OnTransitionedEvent.
func NewOnTransitionedEvent[C configuration[C]]() *OnTransitionedEvent[C] {
	return &OnTransitionedEvent[C]{}
}

// Register adds a handler to the event.
func (e *OnTransitionedEvent[C]) Register(handler func(Transition[C])) {
	e.handlers = append(e.handlers, handler)
}

// UnregisterAll removes all handlers from the event.
func (e *OnTransitionedEvent[C]) UnregisterAll() {
	e.handlers = nil
}

// Invoke calls all registered handlers.
func (e *OnTransitionedEvent[C]) Invoke(transition Transition[C]) {
	for _, handler := range e.handlers {
		handler(transition)
	}
}
