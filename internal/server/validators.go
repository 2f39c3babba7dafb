// file: internal/server/validators.go
// version: 2.0.0
// guid: 9b0c1d2e-3f4a-5b6c-7d8e-9f0a1b2c3d4e

package server

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
)

// ValidationError represents a validation error with code
type ValidationError struct {
	Field   string
	Message string
	Code    string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateID checks that a path ID is a well-formed ULID.
func ValidateID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ValidationError{
			Field:   "id",
			Message: "id is required",
			Code:    "ID_REQUIRED",
		}
	}
	if _, err := ulid.ParseStrict(id); err != nil {
		return ValidationError{
			Field:   "id",
			Message: "id is malformed",
			Code:    "ID_INVALID",
		}
	}
	return nil
}

// ValidateInteger validates that an integer is within a range
func ValidateInteger(value int, fieldName string, minValue int, maxValue int) error {
	if value < minValue {
		return ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be at least %d", fieldName, minValue),
			Code:    "VALUE_TOO_SMALL",
		}
	}
	if maxValue > 0 && value > maxValue {
		return ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not exceed %d", fieldName, maxValue),
			Code:    "VALUE_TOO_LARGE",
		}
	}
	return nil
}

// ValidateRequiredString checks presence and rune length.
func ValidateRequiredString(value, fieldName string, maxRunes int) error {
	if strings.TrimSpace(value) == "" {
		return ValidationError{
			Field:   fieldName,
			Message: fieldName + " is required",
			Code:    "FIELD_REQUIRED",
		}
	}
	if maxRunes > 0 && utf8.RuneCountInString(value) > maxRunes {
		return ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not exceed %d characters", fieldName, maxRunes),
			Code:    "FIELD_TOO_LONG",
		}
	}
	return nil
}
