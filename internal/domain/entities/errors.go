package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrStoreUnavailable marks failures of the underlying storage (connection
// lost, database closed, driver errors). Search never translates it.
var ErrStoreUnavailable = errors.New("store unavailable")

// ValidationError reports the fields of a record that failed validation.
type ValidationError struct {
	Problems []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "invalid record: " + strings.Join(e.Problems, "; ")
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the record against its field rules. Whitespace-only names
// and platforms count as missing. A nil return means the record can be persisted.
func (p Person) Validate() error {
	check := p
	check.Name = strings.TrimSpace(p.Name)
	check.Platform = strings.TrimSpace(p.Platform)
	return validateStruct(check)
}

// validateStruct runs the validator and folds field errors into a ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating record: %w", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, formatFieldError(fe))
	}
	return &ValidationError{Problems: problems}
}

// formatFieldError formats a single validation failure.
func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}
