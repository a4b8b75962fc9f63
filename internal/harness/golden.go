package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot is the golden-file form of a scenario run. It records display
// strings rather than raw floats so snapshots stay stable across platforms.
type Snapshot struct {
	Scenario string         `json:"scenario"`
	Cases    []CaseSnapshot `json:"cases"`
}

// CaseSnapshot is one case in a Snapshot.
type CaseSnapshot struct {
	Case       string            `json:"case"`
	Op         string            `json:"op"`
	Kind       string            `json:"kind,omitempty"`
	Display    string            `json:"display,omitempty"`
	Aux        map[string]string `json:"aux,omitempty"`
	Degenerate bool              `json:"degenerate,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// NewSnapshot builds the snapshot of result for the named scenario.
func NewSnapshot(name string, result *Result) Snapshot {
	s := Snapshot{Scenario: name, Cases: make([]CaseSnapshot, 0, len(result.Outcomes))}
	for _, o := range result.Outcomes {
		s.Cases = append(s.Cases, CaseSnapshot{
			Case:       o.Case,
			Op:         o.Op,
			Kind:       string(o.Result.Kind),
			Display:    o.Result.Display,
			Aux:        o.Result.Aux,
			Degenerate: o.Result.Degenerate,
			Error:      o.ErrorCode,
		})
	}
	return s
}

// Marshal renders the snapshot as indented JSON with a trailing newline.
func (s Snapshot) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns the run result so callers can also check Pass.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against its golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := NewSnapshot(scenarioName, result).Marshal()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}
