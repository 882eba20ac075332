// Package selftest runs a battery of known records against a validator and
// reports the first case whose result differs from the expected one.
//
// The built-in battery is embedded from vectors.yaml so the binary can check
// itself without external files. Alternative batteries use the same YAML
// shape and are loaded with Parse.
package selftest

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed vectors.yaml
var builtin []byte

var (
	// ErrMismatch is returned by Run when a case does not produce its
	// expected result.
	ErrMismatch = errors.New("self-test mismatch")
	// ErrEmpty is returned when a battery contains no cases.
	ErrEmpty = errors.New("battery has no cases")
)

// Case is a single input and the result it must produce.
type Case struct {
	Input string `yaml:"input" json:"input"`
	Valid bool   `yaml:"valid" json:"valid"`
	Note  string `yaml:"note,omitempty" json:"note,omitempty"`
}

// Result summarises a run. Failed is set when the run stopped on a mismatch.
type Result struct {
	Total  int   `json:"total"`
	Passed int   `json:"passed"`
	Failed *Case `json:"failed,omitempty"`
	Index  int   `json:"index"`
}

// OK reports whether every case passed.
func (r Result) OK() bool {
	return r.Failed == nil && r.Passed == r.Total
}

// Builtin returns the embedded battery.
func Builtin() ([]Case, error) {
	return Parse(builtin)
}

// Load reads a battery from a YAML file.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading battery %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML list of cases.
func Parse(data []byte) ([]Case, error) {
	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("malformed battery: %w", err)
	}
	if len(cases) == 0 {
		return nil, ErrEmpty
	}
	return cases, nil
}

// Run checks each case in order with valid, writing "Test N (input): Passed"
// per case to w (nil w writes nothing). It stops at the first mismatch and
// returns ErrMismatch describing it.
func Run(w io.Writer, cases []Case, valid func(string) bool) (Result, error) {
	if w == nil {
		w = io.Discard
	}
	res := Result{Total: len(cases), Index: -1}
	for i, c := range cases {
		if got := valid(c.Input); got != c.Valid {
			res.Failed = &c
			res.Index = i
			fmt.Fprintf(w, "Test %d (%s): Failed\n", i, c.Input)
			return res, fmt.Errorf("%w: test %d (%q): got valid=%t, want %t", ErrMismatch, i, c.Input, got, c.Valid)
		}
		res.Passed++
		fmt.Fprintf(w, "Test %d (%s): Passed\n", i, c.Input)
	}
	return res, nil
}
