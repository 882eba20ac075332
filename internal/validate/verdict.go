package validate

// Verdict is the outcome of checking one input, shaped for CLI and MCP
// output. Record is set only when the input is valid.
type Verdict struct {
	Input  string  `json:"input"`
	Valid  bool    `json:"valid"`
	Reason string  `json:"reason,omitempty"`
	Record *Record `json:"record,omitempty"`

	err error
}

// Err returns the rejection reason, or nil for a valid input.
func (v Verdict) Err() error {
	return v.err
}

// Check parses input and returns its verdict.
func Check(input string) Verdict {
	r, err := Parse(input)
	return newVerdict(input, r, err)
}

// Check validates r and returns its verdict, using the canonical form of
// r as the input.
func (r Record) Check() Verdict {
	return newVerdict(r.String(), r, r.Validate())
}

func newVerdict(input string, r Record, err error) Verdict {
	v := Verdict{Input: input, Valid: err == nil, err: err}
	if err != nil {
		v.Reason = err.Error()
		return v
	}
	v.Record = &r
	return v
}
