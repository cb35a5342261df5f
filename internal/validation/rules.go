// Package validation provides custom validation rules for the application.
package validation

import (
	"strconv"
	"unicode/utf8"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/envelope/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// PasswordStrength validates a password is present and long enough.
// Length is counted in characters, not bytes.
type PasswordStrength struct {
	MinLength int
}

// Validate checks if the password meets the configured requirements
func (p PasswordStrength) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_password_strength", "password must be a string")
	}

	if s == "" {
		return validation.NewError("validation_password_required", "password must not be empty")
	}

	if utf8.RuneCountInString(s) < p.MinLength {
		return validation.NewError(
			"validation_password_min_length",
			"password must be at least "+strconv.Itoa(p.MinLength)+" characters",
		)
	}

	return nil
}
