package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// decodeJSON parses a CLIResponse whose data is a navmath.Result.
func decodeJSON(t *testing.T, out string) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	return resp
}

func TestSTDCommand_Distance(t *testing.T) {
	out, _, err := runCLI(t, "", "std", "-s", "12", "-t", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "STD Result")
	assert.Contains(t, out, "Distance  60.00 nm")
}

func TestSTDCommand_TimeWithDuration(t *testing.T) {
	out, _, err := runCLI(t, "", "std", "--distance", "100", "--speed", "40")
	require.NoError(t, err)

	assert.Contains(t, out, "2.50 hours")
	assert.Contains(t, out, "Duration")
	assert.Contains(t, out, "2:30:00")
}

func TestSTDCommand_ExplicitZeroIsProvided(t *testing.T) {
	out, _, err := runCLI(t, "", "std", "-s", "0", "-t", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "0.00 nm")
}

func TestSTDCommand_InsufficientInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"none", []string{"std"}},
		{"one", []string{"std", "-d", "100"}},
		{"three", []string{"std", "-s", "10", "-t", "2", "-d", "20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, out, "Error [INSUFFICIENT_INPUT]")
			assert.Equal(t, ExitFailure, GetExitCode(err))
			assert.True(t, IsReported(err))
		})
	}
}

func TestSTDCommand_ZeroTimeDivisor(t *testing.T) {
	out, _, err := runCLI(t, "", "std", "-d", "100", "-t", "0")
	require.Error(t, err)
	assert.Contains(t, out, "Error [INVALID_INPUT]")
	assert.Contains(t, out, "time must be greater than zero")
}

func TestSTDCommand_NegativeRejectedByValidation(t *testing.T) {
	out, _, err := runCLI(t, "", "std", "-d", "-100", "-t", "4")
	require.Error(t, err)
	assert.Contains(t, out, "Error [VALIDATION_FAILED]")
	assert.Contains(t, out, "--distance must be at least 0")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSTDCommand_MalformedNumber(t *testing.T) {
	_, _, err := runCLI(t, "", "std", "-s", "fast", "-t", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.False(t, IsReported(err))
}

func TestDistCommand(t *testing.T) {
	out, _, err := runCLI(t, "", "dist", "51.5074", "-0.1278", "40.7128", "-74.0060")
	require.NoError(t, err)

	assert.Contains(t, out, "Navigation")
	assert.Contains(t, out, "Great Circle Distance  3007.68 nm")
}

func TestDistCommand_NegativeCoordinatesAndJSON(t *testing.T) {
	out, _, err := runCLI(t, "", "dist", "-33.8688", "151.2093", "-36.8485", "174.7633", "--format", "json")
	require.NoError(t, err)

	resp := decodeJSON(t, out)
	assert.Equal(t, "ok", resp["status"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Distance", data["kind"])
	assert.Equal(t, "1164.09 nm", data["display"])
	assert.Equal(t, "nm", data["unit"])
}

func TestDistCommand_FormatBeforeSubcommand(t *testing.T) {
	out, _, err := runCLI(t, "", "--format", "json", "dist", "0", "0", "0", "180")
	require.NoError(t, err)

	data := decodeJSON(t, out)["data"].(map[string]interface{})
	assert.InDelta(t, 10807.28, data["value"].(float64), 0.005)
}

func TestDistCommand_WrongArgCount(t *testing.T) {
	_, _, err := runCLI(t, "", "dist", "10", "20", "30")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 4 arg(s), received 3")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestDistCommand_NonNumericCoordinate(t *testing.T) {
	_, _, err := runCLI(t, "", "dist", "10", "north", "30", "40")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid coordinate "north"`)
}

func TestDistCommand_Help(t *testing.T) {
	out, _, err := runCLI(t, "", "dist", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "haversine")
	assert.Contains(t, out, "<lat1> <lon1> <lat2> <lon2>")
}

func TestFuelCommand(t *testing.T) {
	out, _, err := runCLI(t, "", "fuel", "-s", "12", "-d", "1200", "-c", "30")
	require.NoError(t, err)

	assert.Contains(t, out, "Total Fuel Required  64.00 tons")
	assert.Contains(t, out, "15.36 tons/day")
	assert.Contains(t, out, "4.17 days")
}

func TestFuelCommand_BaseSpeed(t *testing.T) {
	out, _, err := runCLI(t, "", "fuel", "-s", "14", "-d", "3000", "-c", "40", "--base-speed", "15", "--format", "json")
	require.NoError(t, err)

	data := decodeJSON(t, out)["data"].(map[string]interface{})
	assert.Equal(t, "290.37 tons", data["display"])
	aux := data["aux"].(map[string]interface{})
	assert.Equal(t, "32.52 tons/day", aux["daily_consumption"])
}

func TestFuelCommand_MissingRequired(t *testing.T) {
	_, _, err := runCLI(t, "", "fuel", "-s", "12", "-d", "1200")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "cons" not set`)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestFuelCommand_ZeroSpeed(t *testing.T) {
	out, _, err := runCLI(t, "", "fuel", "-s", "0", "-d", "1200", "-c", "30")
	require.Error(t, err)
	assert.Contains(t, out, "Error [VALIDATION_FAILED]")
	assert.Contains(t, out, "--speed must be greater than 0")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCommands_NonFiniteInputsRejected(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"fuel nan speed", []string{"fuel", "-s", "NaN", "-d", "100", "-c", "20"}, "--speed must be a finite number"},
		{"fuel inf cons", []string{"fuel", "-s", "12", "-d", "100", "-c", "Inf"}, "--cons must be a finite number"},
		{"eta inf distance", []string{"eta", "-d", "Inf", "-s", "10", "--departure", "2024-01-01 00:00"}, "--distance must be a finite number"},
		{"eta inf speed", []string{"eta", "-d", "100", "-s", "+Inf"}, "--speed must be a finite number"},
		{"std nan time", []string{"std", "-d", "100", "-t", "NaN"}, "--time must be a finite number"},
		{"slip inf rpm", []string{"slip", "-p", "18", "-r", "Inf", "-s", "15"}, "--rpm must be a finite number"},
		{"sfoc nan power", []string{"sfoc", "-f", "900", "-w", "NaN"}, "--power must be a finite number"},
		{"dist nan lat", []string{"dist", "NaN", "0", "10", "10"}, "--lat1 must be a finite number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, out, "Error [VALIDATION_FAILED]")
			assert.Contains(t, out, tt.want)
			assert.NotContains(t, out, "NaN tons")
			assert.NotContains(t, out, "Inf hours")
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestCommands_NonFiniteJSONStaysParseable(t *testing.T) {
	out, _, err := runCLI(t, "", "--format", "json", "fuel", "-s", "NaN", "-d", "100", "-c", "20")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
}

func TestSlipCommand(t *testing.T) {
	out, _, err := runCLI(t, "", "slip", "-p", "18", "-r", "100", "-s", "15")
	require.NoError(t, err)

	assert.Contains(t, out, "Engine Speed     17.76 knots")
	assert.Contains(t, out, "Observed Speed   15.00 knots")
	assert.Contains(t, out, "Calculated Slip  15.56%")
	assert.NotContains(t, out, "sentinel")
}

func TestSlipCommand_DegenerateWarns(t *testing.T) {
	out, stderr, err := runCLI(t, "", "slip", "-p", "0", "-r", "100", "-s", "12")
	require.NoError(t, err)

	assert.Contains(t, out, "Calculated Slip  0.00%")
	assert.Contains(t, out, "sentinel")
	assert.Contains(t, stderr, "level=WARN")
}

func TestSFOCCommand(t *testing.T) {
	out, _, err := runCLI(t, "", "sfoc", "-f", "1250.5", "-w", "7000")
	require.NoError(t, err)
	assert.Contains(t, out, "SFOC          178.64 g/kWh")
}

func TestSFOCCommand_ZeroPowerYAML(t *testing.T) {
	out, _, err := runCLI(t, "", "sfoc", "--flow", "900", "--power", "0", "--format", "yaml")
	require.NoError(t, err)

	var resp struct {
		Status string `yaml:"status"`
		Data   struct {
			Kind       string  `yaml:"kind"`
			Value      float64 `yaml:"value"`
			Degenerate bool    `yaml:"degenerate"`
		} `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &resp), out)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "SFOC", resp.Data.Kind)
	assert.Equal(t, 0.0, resp.Data.Value)
	assert.True(t, resp.Data.Degenerate)
}

func TestETACommand(t *testing.T) {
	out, _, err := runCLI(t, "", "eta", "-d", "100", "-s", "10", "--departure", "2024-01-01 00:00")
	require.NoError(t, err)

	assert.Contains(t, out, "Departure      2024-01-01 00:00")
	assert.Contains(t, out, "Steaming Time  10.00 hours")
	assert.Contains(t, out, "ETA (Arrival)  2024-01-01 10:00")
}

func TestETACommand_DepAliases(t *testing.T) {
	for _, flag := range []string{"-dep", "--dep"} {
		t.Run(flag, func(t *testing.T) {
			out, _, err := runCLI(t, "", "eta", "-d", "100", "-s", "10", flag, "2024-01-01 00:00")
			require.NoError(t, err)
			assert.Contains(t, out, "2024-01-01 10:00")
		})
	}
}

func TestETACommand_DefaultsToNow(t *testing.T) {
	out, _, err := runCLI(t, "", "eta", "-d", "60", "-s", "12")
	require.NoError(t, err)

	assert.Contains(t, out, "Departure      2024-03-10 06:00")
	assert.Contains(t, out, "ETA (Arrival)  2024-03-10 11:00")
}

func TestETACommand_LongPassage(t *testing.T) {
	out, _, err := runCLI(t, "", "eta", "-d", "1e7", "-s", "1", "--departure", "2024-01-01 00:00")
	require.NoError(t, err)
	assert.Contains(t, out, "ETA (Arrival)  3164-10-17 16:00")
}

func TestETACommand_ArrivalOutOfRange(t *testing.T) {
	out, _, err := runCLI(t, "", "eta", "-d", "1e9", "-s", "1", "--departure", "2024-01-01 00:00")
	require.Error(t, err)
	assert.Contains(t, out, "Error [INVALID_INPUT]")
	assert.Contains(t, out, "past year 9999")
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestSTDCommand_LongDuration(t *testing.T) {
	out, _, err := runCLI(t, "", "std", "-d", "1e7", "-s", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Duration  10000000:00:00")
}

func TestCalculationError_FieldDetails(t *testing.T) {
	out, _, err := runCLI(t, "", "-v", "std", "-d", "100", "-t", "0")
	require.Error(t, err)
	assert.Contains(t, out, "Error [INVALID_INPUT]: time must be greater than zero, got 0")
	assert.Contains(t, out, "Details: map[field:time]")

	out, _, err = runCLI(t, "", "--format", "json", "std", "-d", "100", "-t", "0")
	require.Error(t, err)
	resp := decodeJSON(t, out)
	errObj := resp["error"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"field": "time"}, errObj["details"])

	out, _, err = runCLI(t, "", "--format", "json", "std", "-d", "100")
	require.Error(t, err)
	errObj = decodeJSON(t, out)["error"].(map[string]interface{})
	assert.NotContains(t, errObj, "details")
}

func TestETACommand_MalformedDeparture(t *testing.T) {
	out, _, err := runCLI(t, "", "eta", "-d", "100", "-s", "10", "--departure", "not-a-date")
	require.Error(t, err)

	assert.Contains(t, out, "Error [INVALID_FORMAT]")
	assert.NotContains(t, out, "Steaming Time")
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestETACommand_JSONError(t *testing.T) {
	out, _, err := runCLI(t, "", "--format", "json", "eta", "-d", "100", "-s", "10", "--departure", "tomorrow")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_FORMAT", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "tomorrow")
}
