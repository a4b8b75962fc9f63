package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/roach88/navcalc/internal/navmath"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Calculation failure (insufficient input, bad departure format, zero speed)
	ExitCommandError = 2 // Command error (unknown flag, missing required flag, failed validation)
)

// Error codes written by the formatter that do not come from navmath.
const (
	ErrCodeValidation    = "VALIDATION_FAILED"
	ErrCodeInvalidNumber = "INVALID_NUMBER"
	ErrCodeGeneric       = "ERROR"
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)

	// Reported is true when the error has already been written through an
	// OutputFormatter and must not be printed again.
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

func reportedExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err, Reported: true}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitCommandError (2) if the error is not an ExitError: those come
// from cobra flag and argument parsing.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// IsReported reports whether err was already written to the user.
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// OutputFormatter handles text, JSON and YAML output for CLI commands.
type OutputFormatter struct {
	Format  string
	Writer  io.Writer
	Verbose bool
}

// CLIResponse is the standard JSON/YAML response envelope.
type CLIResponse struct {
	Status string      `json:"status" yaml:"status"`                   // "ok" or "error"
	Data   interface{} `json:"data,omitempty" yaml:"data,omitempty"`   // success payload
	Error  *CLIError   `json:"error,omitempty" yaml:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code" yaml:"code"`                           // "INSUFFICIENT_INPUT", "VALIDATION_FAILED", ...
	Message string      `json:"message" yaml:"message"`                     // human-readable message
	Details interface{} `json:"details,omitempty" yaml:"details,omitempty"` // additional context
}

// ReportRow is one metric line of a text report.
type ReportRow struct {
	Metric string
	Value  string
}

// Report is a titled table of metrics backed by a calculation result.
// Text output renders the rows; JSON and YAML output render the Result.
type Report struct {
	Title  string
	Rows   []ReportRow
	Result navmath.Result
}

// Report outputs a calculation report in the configured format.
func (f *OutputFormatter) Report(r Report) error {
	switch f.Format {
	case "json":
		return f.encodeJSON(CLIResponse{Status: "ok", Data: r.Result})
	case "yaml":
		return f.encodeYAML(CLIResponse{Status: "ok", Data: r.Result})
	}

	fmt.Fprintln(f.Writer, r.Title)
	fmt.Fprintln(f.Writer, strings.Repeat("-", len(r.Title)))

	tw := tabwriter.NewWriter(f.Writer, 0, 0, 2, ' ', 0)
	for _, row := range r.Rows {
		fmt.Fprintf(tw, "%s\t%s\n", row.Metric, row.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if r.Result.Degenerate {
		fmt.Fprintln(f.Writer, "Note: zero divisor; 0 is a sentinel, not a measurement.")
	}
	return nil
}

// Data outputs a success envelope around v. Text output is left to the
// caller, so Data is a no-op for the text format.
func (f *OutputFormatter) Data(v interface{}) error {
	switch f.Format {
	case "json":
		return f.encodeJSON(CLIResponse{Status: "ok", Data: v})
	case "yaml":
		return f.encodeYAML(CLIResponse{Status: "ok", Data: v})
	}
	return nil
}

// Message outputs a plain informational line. Structured formats ignore it.
func (f *OutputFormatter) Message(format string, args ...interface{}) {
	if f.Format != "text" {
		return
	}
	fmt.Fprintf(f.Writer, format+"\n", args...)
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	resp := CLIResponse{
		Status: "error",
		Error: &CLIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	switch f.Format {
	case "json":
		return f.encodeJSON(resp)
	case "yaml":
		return f.encodeYAML(resp)
	}

	// Human-readable error
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

func (f *OutputFormatter) encodeJSON(v interface{}) error {
	return json.NewEncoder(f.Writer).Encode(v)
}

func (f *OutputFormatter) encodeYAML(v interface{}) error {
	enc := yaml.NewEncoder(f.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
