package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a named set of calculation cases.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Now is the wall-clock reading (YYYY-MM-DD HH:MM) used as the default
	// ETA departure. If empty, DefaultNow is used.
	Now string `yaml:"now,omitempty"`

	// Cases are evaluated in order.
	Cases []Case `yaml:"cases"`
}

// Case is one operation invocation with its expected outcome.
type Case struct {
	Name   string                 `yaml:"name"`
	Op     string                 `yaml:"op"`
	Args   map[string]interface{} `yaml:"args"`
	Expect Expect                 `yaml:"expect"`
}

// Expect describes the expected outcome of a case. Only the fields that are
// set are checked. Error is mutually exclusive with the result fields.
type Expect struct {
	// Value is compared to Result.Value within Tolerance.
	Value *float64 `yaml:"value,omitempty"`

	// Tolerance defaults to DefaultTolerance.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	Unit       string            `yaml:"unit,omitempty"`
	Display    string            `yaml:"display,omitempty"`
	Aux        map[string]string `yaml:"aux,omitempty"`
	Degenerate *bool             `yaml:"degenerate,omitempty"`

	// Error is the expected navmath error code (e.g. "INSUFFICIENT_INPUT").
	Error string `yaml:"error,omitempty"`
}

// Supported operations.
const (
	OpSTD  = "std"
	OpDist = "dist"
	OpFuel = "fuel"
	OpSlip = "slip"
	OpSFOC = "sfoc"
	OpETA  = "eta"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or does not satisfy the scenario schema.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML from memory.
func ParseScenario(data []byte) (*Scenario, error) {
	// Parse YAML with strict field validation (catches typos like "expected:" vs "expect:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// The schema works on the untyped document so that it sees exactly what
	// the author wrote.
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks constraints the schema cannot express.
func validateScenario(s *Scenario) error {
	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if seen[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate case name %q", i, c.Name)
		}
		seen[c.Name] = true

		if c.Expect.Error != "" && c.Expect.hasResultFields() {
			return fmt.Errorf("cases[%d]: expect.error cannot be combined with result fields", i)
		}
	}
	return nil
}

func (e Expect) hasResultFields() bool {
	return e.Value != nil || e.Unit != "" || e.Display != "" || len(e.Aux) > 0 || e.Degenerate != nil
}
