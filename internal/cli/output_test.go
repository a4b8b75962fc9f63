package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/navcalc/internal/navmath"
)

func sampleReport() Report {
	res, _ := navmath.ResolveSTD(navmath.STDInput{Distance: navmath.Float(100), Speed: navmath.Float(40)})
	return stdCalc{}.report(res)
}

func TestOutputFormatter_JSONReport(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Report(sampleReport())
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   navmath.Result `json:"data"`
	}
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, navmath.KindTime, resp.Data.Kind)
	assert.Equal(t, "2:30:00", resp.Data.Aux["duration"])
}

func TestOutputFormatter_YAMLReport(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "yaml",
		Writer: buf,
	}

	err := formatter.Report(sampleReport())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "status: ok")
	assert.Contains(t, buf.String(), "kind: Time")
	assert.Contains(t, buf.String(), "display: 2.50 hours")
}

func TestOutputFormatter_TextReport(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Report(sampleReport())
	require.NoError(t, err)
	assert.Equal(t, "STD Result\n----------\nTime      2.50 hours\nDuration  2:30:00\n", buf.String())
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error("INSUFFICIENT_INPUT", "exactly two values are required", nil)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INSUFFICIENT_INPUT", resp.Error.Code)
	assert.Equal(t, "exactly two values are required", resp.Error.Message)
}

func TestOutputFormatter_YAMLErrorWithDetails(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "yaml",
		Writer: buf,
	}

	details := map[string]string{"flag": "departure"}
	err := formatter.Error("INVALID_FORMAT", "bad departure", details)
	require.NoError(t, err)

	var resp CLIResponse
	err = yaml.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.NotNil(t, resp.Error.Details)
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: false,
	}

	err := formatter.Error("INVALID_INPUT", "speed must be greater than zero", map[string]string{"field": "speed"})
	require.NoError(t, err)
	assert.Equal(t, "Error [INVALID_INPUT]: speed must be greater than zero\n", buf.String())
}

func TestOutputFormatter_TextErrorVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: true,
	}

	details := map[string]string{"field": "speed"}
	err := formatter.Error("INVALID_INPUT", "speed must be greater than zero", details)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [INVALID_INPUT]")
	assert.Contains(t, buf.String(), "Details:")
}

func TestOutputFormatter_Message(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantMsg bool
	}{
		{"text", "text", true},
		{"json", "json", false},
		{"yaml", "yaml", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			formatter := &OutputFormatter{Format: tt.format, Writer: buf}

			formatter.Message("Fair %s", "winds")

			if tt.wantMsg {
				assert.Equal(t, "Fair winds\n", buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestExitError(t *testing.T) {
	cause := errors.New("boom")
	err := WrapExitError(ExitFailure, "calculation failed", cause)

	assert.Equal(t, "calculation failed: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.False(t, IsReported(err))

	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitCommandError, GetExitCode(cause))
	assert.Equal(t, "plain", NewExitError(ExitCommandError, "plain").Error())
	assert.True(t, IsReported(reportedExitError(ExitFailure, "x", cause)))
}
