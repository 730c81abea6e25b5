// Package loader reads automaton specifications from YAML, JSON or confl
// documents.
//
// Documents decode into an automaton.Raw rather than an automaton.Spec so
// that wrongly typed entries reach the validator and are reported with
// their actual type.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	u "github.com/araddon/gou"
	"github.com/lytics/confl"
	"gopkg.in/yaml.v3"

	"github.com/atlekbai/automaton"
)

// Format identifies a specification document format.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
	FormatConfl
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatConfl:
		return "confl"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses a format name or file extension, with or without the
// leading dot.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "conf", "confl":
		return FormatConfl, nil
	}
	return 0, fmt.Errorf("unsupported specification format %q", name)
}

// FormatFromPath picks the format from a file's extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("cannot infer specification format of %q: no extension", path)
	}
	return ParseFormat(ext)
}

// Load reads the specification file at path. The format is picked from the
// file extension.
func Load(path string) (automaton.Raw, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return LoadFormat(path, format)
}

// LoadFormat reads the specification file at path in the given format.
func LoadFormat(path string, format Format) (automaton.Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading specification: %w", err)
	}
	u.Debugf("loading %s specification from %s (%d bytes)", format, path, len(data))
	raw, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return raw, nil
}

// Decode parses a specification document. Confl documents have environment
// variables expanded before parsing.
func Decode(data []byte, format Format) (automaton.Raw, error) {
	doc := make(map[string]any)
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decoding %s specification: %w", format, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decoding %s specification: %w", format, err)
		}
	case FormatConfl:
		if _, err := confl.Decode(os.ExpandEnv(string(data)), &doc); err != nil {
			return nil, fmt.Errorf("decoding %s specification: %w", format, err)
		}
	default:
		return nil, fmt.Errorf("unsupported specification format %v", format)
	}
	raw := automaton.Raw(doc)
	if unknown := unknownFields(raw); len(unknown) > 0 {
		u.Warnf("ignoring unknown specification fields %v", unknown)
	}
	return raw, nil
}

var knownFields = map[string]bool{
	automaton.FieldAlphabet:     true,
	automaton.FieldStates:       true,
	automaton.FieldInitialState: true,
	automaton.FieldFinalStates:  true,
	automaton.FieldTransitions:  true,
}

func unknownFields(raw automaton.Raw) []string {
	var unknown []string
	for k := range raw {
		if !knownFields[k] {
			unknown = append(unknown, k)
		}
	}
	return unknown
}
