package cli

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator is a wrapper around go-playground/validator that reports
// failures by flag name.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that names fields by their `flag` tag.
func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("finite", validateFinite)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("flag"); name != "" {
			return name
		}
		return fld.Name
	})

	return &Validator{
		validate: v,
	}
}

// Validate validates a struct using validation tags.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages.
func (v *Validator) formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf("--%s %s (got %v)", e.Field(), describeRule(e), e.Value()))
	}
	return errors.New(strings.Join(messages, "; "))
}

func describeRule(e validator.FieldError) string {
	switch e.Tag() {
	case "gte":
		return "must be at least " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	case "finite":
		return "must be a finite number"
	default:
		return "failed " + e.Tag()
	}
}

// validateFinite rejects NaN and infinities, which pflag and strconv accept.
func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

var inputValidator = NewValidator()
