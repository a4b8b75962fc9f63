package navmath

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrorCode categorizes calculation errors.
type ErrorCode string

const (
	// ErrCodeInsufficientInput indicates the STD resolver did not get exactly
	// two of speed, time and distance.
	ErrCodeInsufficientInput ErrorCode = "INSUFFICIENT_INPUT"

	// ErrCodeInvalidFormat indicates a departure timestamp that does not match
	// DepartureLayout.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// ErrCodeInvalidInput indicates a zero or negative divisor (speed or time),
	// a NaN or infinite input, or an arrival outside the representable calendar.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// CalcError is returned by every fallible formula in this package.
type CalcError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Field names the offending input, if any.
	Field string
}

// Error implements the error interface.
func (e *CalcError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field=%s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInsufficientInput reports whether err is an INSUFFICIENT_INPUT error.
func IsInsufficientInput(err error) bool {
	return hasCode(err, ErrCodeInsufficientInput)
}

// IsInvalidFormat reports whether err is an INVALID_FORMAT error.
func IsInvalidFormat(err error) bool {
	return hasCode(err, ErrCodeInvalidFormat)
}

// IsInvalidInput reports whether err is an INVALID_INPUT error.
func IsInvalidInput(err error) bool {
	return hasCode(err, ErrCodeInvalidInput)
}

// CodeOf extracts the ErrorCode from err, or "" if err is not a *CalcError.
func CodeOf(err error) ErrorCode {
	var ce *CalcError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

func hasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

func newInsufficientInputError(provided int) *CalcError {
	return &CalcError{
		Code:    ErrCodeInsufficientInput,
		Message: fmt.Sprintf("exactly two of speed, time and distance are required (got %d)", provided),
	}
}

func newInvalidInputError(field string, value float64) *CalcError {
	return &CalcError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("%s must be greater than zero, got %g", field, value),
		Field:   field,
	}
}

func newNonFiniteError(field string, value float64) *CalcError {
	return &CalcError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("%s must be a finite number, got %g", field, value),
		Field:   field,
	}
}

func newArrivalRangeError(hours float64) *CalcError {
	return &CalcError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("steaming time of %g hours puts arrival past year %d", hours, maxArrivalYear),
		Field:   "distance",
	}
}

func newOverflowError(kind Kind) *CalcError {
	return &CalcError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("%s overflows for these inputs", strings.ToLower(string(kind))),
	}
}

// finiteResult rejects a result whose value overflowed to an infinity.
func finiteResult(res Result) (Result, error) {
	if math.IsNaN(res.Value) || math.IsInf(res.Value, 0) {
		return Result{}, newOverflowError(res.Kind)
	}
	return res, nil
}

// checkFinite returns an INVALID_INPUT error for the first NaN or infinite
// value among fields, given as name/value pairs in order.
func checkFinite(fields ...finiteField) error {
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return newNonFiniteError(f.name, f.value)
		}
	}
	return nil
}

type finiteField struct {
	name  string
	value float64
}

func newInvalidFormatError(value string) *CalcError {
	return &CalcError{
		Code:    ErrCodeInvalidFormat,
		Message: fmt.Sprintf("departure %q does not match YYYY-MM-DD HH:MM", value),
		Field:   "departure",
	}
}
