package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden(t *testing.T) {
	for _, name := range []string{"passage", "engineering"} {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario("testdata/scenarios/" + name + ".yaml")
			require.NoError(t, err)

			result, err := RunWithGolden(t, scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestSnapshot_OmitsEmptyFields(t *testing.T) {
	result := NewResult()
	result.AddOutcome(Outcome{Case: "c", Op: OpSTD, ErrorCode: "INSUFFICIENT_INPUT"})

	data, err := NewSnapshot("s", result).Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{
  "scenario": "s",
  "cases": [
    {
      "case": "c",
      "op": "std",
      "error": "INSUFFICIENT_INPUT"
    }
  ]
}
`, string(data))
}
