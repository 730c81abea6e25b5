// Command fsim loads an automaton specification, feeds it an input word and
// prints the state reached after every symbol.
//
//	fsim -spec ab.yaml -kind dfa -input ab
//	fsim -spec words.conf -kind nfa -policy all -input "go,to,go" -sep ,
//
// The exit code is 0 when the word is accepted, 1 when it is rejected and 2
// on any error.
package main

import (
	"flag"
	"os"
	"strings"

	u "github.com/araddon/gou"

	"github.com/atlekbai/automaton"
)

var (
	specFile *string = flag.String("spec", "", "automaton specification file (.yaml, .yml, .json, .conf)")
	kind     *string = flag.String("kind", "dfa", "automaton kind [dfa|nfa]")
	policy   *string = flag.String("policy", "any", "nfa acceptance policy [any|all]")
	input    *string = flag.String("input", "", "input word")
	sep      *string = flag.String("sep", "", "symbol separator; empty splits the input into characters")
	dump     *bool   = flag.Bool("dump", false, "print the automaton's states and transitions")
	logLevel *string = flag.String("loglevel", "warn", "log level [debug|info|warn|error]")
)

func main() {
	flag.Parse()

	u.SetupLogging(*logLevel)
	u.SetColorIfTerminal()

	if len(*specFile) == 0 {
		u.Errorf("must use a spec file")
		os.Exit(ExitFailure)
	}

	conf, err := newConf()
	if err != nil {
		u.Errorf("%v", err)
		os.Exit(ExitFailure)
	}

	os.Exit(NewSession(conf, os.Stdout).Run())
}

func newConf() (*Conf, error) {
	p, err := automaton.ParseAcceptancePolicy(*policy)
	if err != nil {
		return nil, err
	}
	k, err := parseKind(*kind)
	if err != nil {
		return nil, err
	}
	return &Conf{
		SpecPath: *specFile,
		Kind:     k,
		Policy:   p,
		Input:    *input,
		Sep:      *sep,
		Dump:     *dump,
	}, nil
}

func parseKind(s string) (automaton.Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(automaton.KindDFA):
		return automaton.KindDFA, nil
	case string(automaton.KindNFA):
		return automaton.KindNFA, nil
	}
	return "", &automaton.ArgumentError{ParamName: "kind", Message: "unknown automaton kind " + s}
}
