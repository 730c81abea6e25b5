package main

import (
	"fmt"
	"io"
	"strings"

	u "github.com/araddon/gou"
	"github.com/kr/pretty"
	"github.com/lytics/dfa"

	"github.com/atlekbai/automaton"
	"github.com/atlekbai/automaton/loader"
)

// Session lifecycle. Each state's computation returns the letter that
// selects the next state.
const (
	Loading   = dfa.State("loading")
	Feeding   = dfa.State("feeding")
	Reporting = dfa.State("reporting")
	Exiting   = dfa.State("exiting")

	Loaded   = dfa.Letter("loaded")
	Fed      = dfa.Letter("fed")
	Reported = dfa.Letter("reported")
	Failure  = dfa.Letter("failure")
)

// Exit codes.
const (
	ExitAccepted = 0
	ExitRejected = 1
	ExitFailure  = 2
)

// Conf holds the driver settings collected from flags.
type Conf struct {
	SpecPath string
	Kind     automaton.Kind
	Policy   automaton.AcceptancePolicy
	Input    string
	Sep      string
	Dump     bool
}

// Symbols splits the input into symbols. An empty separator makes every
// character a symbol.
func (c *Conf) Symbols() []string {
	if c.Input == "" {
		return nil
	}
	if c.Sep == "" {
		return strings.Split(c.Input, "")
	}
	return strings.Split(c.Input, c.Sep)
}

// Session loads one automaton, feeds it the configured input and reports
// every intermediate state to out.
type Session struct {
	conf *Conf
	out  io.Writer

	machine automaton.Automaton
	final   dfa.State
	err     error
	code    int
}

// NewSession creates a session that writes its report to out.
func NewSession(conf *Conf, out io.Writer) *Session {
	return &Session{conf: conf, out: out, code: ExitFailure}
}

// Run drives the session to completion and returns the process exit code.
func (s *Session) Run() int {
	d := dfa.New()
	d.SetStartState(Loading)
	d.SetTerminalStates(Exiting)
	d.SetTransitionLogger(func(state dfa.State) {
		u.Debugf("session: %v", state)
	})

	d.SetTransition(Loading, Loaded, Feeding, s.Feeding)
	d.SetTransition(Loading, Failure, Exiting, s.Exiting)

	d.SetTransition(Feeding, Fed, Reporting, s.Reporting)
	d.SetTransition(Feeding, Failure, Exiting, s.Exiting)

	d.SetTransition(Reporting, Reported, Exiting, s.Exiting)

	final, _ := d.Run(s.Loading)
	u.Debugf("session finished in state %v", final)
	s.final = final
	return s.code
}

// Final returns the lifecycle state the last Run stopped in.
func (s *Session) Final() dfa.State {
	return s.final
}

// Err returns the error that ended the session, if any.
func (s *Session) Err() error {
	return s.err
}

// Loading reads the specification and builds the automaton.
func (s *Session) Loading() dfa.Letter {
	raw, err := loader.Load(s.conf.SpecPath)
	if err != nil {
		return s.fail(err)
	}
	switch s.conf.Kind {
	case automaton.KindDFA:
		d, err := automaton.NewDFAFromRaw(raw)
		if err != nil {
			return s.fail(err)
		}
		d.OnTransitioned(func(t automaton.Transition[automaton.Configuration]) {
			u.Debugf("%v --%s--> %v", t.Source, t.Symbol, t.Destination)
		})
		s.machine = d
	case automaton.KindNFA:
		n, err := automaton.NewNFAFromRawWithPolicy(raw, s.conf.Policy)
		if err != nil {
			return s.fail(err)
		}
		n.OnTransitioned(func(t automaton.Transition[automaton.StateSet]) {
			u.Debugf("%v --%s--> %v", t.Source, t.Symbol, t.Destination)
		})
		s.machine = n
	default:
		return s.fail(fmt.Errorf("unknown automaton kind %q", s.conf.Kind))
	}
	u.Infof("loaded %s from %s", s.conf.Kind, s.conf.SpecPath)

	if s.conf.Dump {
		fmt.Fprintf(s.out, "%# v\n", pretty.Formatter(s.machine.Info()))
	}
	return Loaded
}

// Feeding consumes the input one symbol at a time, printing the runtime
// state after each step.
func (s *Session) Feeding() dfa.Letter {
	fmt.Fprintf(s.out, "start: %v\n", s.machine)
	for i, symbol := range s.conf.Symbols() {
		if err := s.machine.Transition(symbol); err != nil {
			return s.fail(fmt.Errorf("input position %d: %w", i, err))
		}
		fmt.Fprintf(s.out, "%q: %v\n", symbol, s.machine)
	}
	return Fed
}

// Reporting prints the verdict.
func (s *Session) Reporting() dfa.Letter {
	switch {
	case s.machine.IsAcceptingState():
		s.code = ExitAccepted
		fmt.Fprintln(s.out, "accepted")
	case s.machine.IsErrorState():
		s.code = ExitRejected
		fmt.Fprintln(s.out, "rejected (error state)")
	default:
		s.code = ExitRejected
		fmt.Fprintln(s.out, "rejected")
	}
	return Reported
}

// Exiting logs how the session ended.
func (s *Session) Exiting() {
	if s.err != nil {
		u.Errorf("fsim: %v", s.err)
		return
	}
	u.Debugf("fsim: exit code %d", s.code)
}

func (s *Session) fail(err error) dfa.Letter {
	s.err = err
	s.code = ExitFailure
	return Failure
}
