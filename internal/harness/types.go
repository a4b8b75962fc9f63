package harness

import "github.com/roach88/navcalc/internal/navmath"

// DefaultTolerance is the absolute tolerance for expect.value when the case
// does not set one. It matches the two-decimal display precision.
const DefaultTolerance = 0.005

// DefaultNow is the clock reading for scenarios that do not set now.
const DefaultNow = "2024-01-01 00:00"

// Result contains the outcome of running a scenario.
type Result struct {
	// Pass is true if every case met its expectation.
	Pass bool `json:"pass"`

	// Outcomes holds one entry per case, in scenario order.
	Outcomes []Outcome `json:"outcomes"`

	// Errors contains the failure messages of all failed cases.
	Errors []string `json:"errors,omitempty"`
}

// Outcome records what a single case produced.
type Outcome struct {
	Case string `json:"case"`
	Op   string `json:"op"`

	// Result is the zero Result when the operation returned an error.
	Result navmath.Result `json:"result"`

	// ErrorCode is the navmath error code, or "" on success.
	ErrorCode string `json:"error_code,omitempty"`

	// Failures lists every unmet expectation for this case.
	Failures []string `json:"failures,omitempty"`
}

// Passed reports whether the case met all expectations.
func (o Outcome) Passed() bool {
	return len(o.Failures) == 0
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:     true,
		Outcomes: []Outcome{},
		Errors:   []string{},
	}
}

// AddOutcome appends o and folds its failures into the result.
func (r *Result) AddOutcome(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	for _, f := range o.Failures {
		r.AddError("case " + o.Case + ": " + f)
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
