package harness

import (
	"fmt"
	"math"
	"sort"
)

// checkExpect compares an outcome against its expectation and returns one
// message per mismatch.
func checkExpect(e Expect, o Outcome) []string {
	var failures []string

	if e.Error != "" || o.ErrorCode != "" {
		if e.Error != o.ErrorCode {
			failures = append(failures, fmt.Sprintf("error: expected %s, got %s", orNone(e.Error), orNone(o.ErrorCode)))
		}
		return failures
	}

	res := o.Result
	if e.Value != nil {
		tol := e.Tolerance
		if tol == 0 {
			tol = DefaultTolerance
		}
		if math.Abs(res.Value-*e.Value) > tol {
			failures = append(failures, fmt.Sprintf("value: expected %g ± %g, got %g", *e.Value, tol, res.Value))
		}
	}
	if e.Unit != "" && e.Unit != res.Unit {
		failures = append(failures, fmt.Sprintf("unit: expected %q, got %q", e.Unit, res.Unit))
	}
	if e.Display != "" && e.Display != res.Display {
		failures = append(failures, fmt.Sprintf("display: expected %q, got %q", e.Display, res.Display))
	}
	if e.Degenerate != nil && *e.Degenerate != res.Degenerate {
		failures = append(failures, fmt.Sprintf("degenerate: expected %t, got %t", *e.Degenerate, res.Degenerate))
	}

	// Aux is a subset match; sorted for stable messages.
	keys := make([]string, 0, len(e.Aux))
	for k := range e.Aux {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		got, ok := res.Aux[k]
		switch {
		case !ok:
			failures = append(failures, fmt.Sprintf("aux.%s: missing", k))
		case got != e.Aux[k]:
			failures = append(failures, fmt.Sprintf("aux.%s: expected %q, got %q", k, e.Aux[k], got))
		}
	}

	return failures
}

func orNone(code string) string {
	if code == "" {
		return "no error"
	}
	return code
}
