package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/multierr"
)

const (
	MaxNameLength    = 200
	MaxCommentLength = 256
	MinRating        = 1
	MaxRating        = 5
	DefaultRating    = 5
)

var (
	ErrValidation = errors.New("validation failed")
	ErrRequired   = fmt.Errorf("%w: value is required", ErrValidation)
	ErrTooLong    = fmt.Errorf("%w: value is too long", ErrValidation)
	ErrOutOfRange = fmt.Errorf("%w: value is out of range", ErrValidation)
)

// FieldError ties a validation failure to the column it was raised for.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// FieldErrors flattens a combined validation error into its field errors.
func FieldErrors(err error) []*FieldError {
	var fieldErrors []*FieldError

	for _, e := range multierr.Errors(err) {
		var fieldErr *FieldError
		if errors.As(e, &fieldErr) {
			fieldErrors = append(fieldErrors, fieldErr)
		}
	}

	return fieldErrors
}

func checkText(field string, value string, maxLength int, required bool) error {
	if required && strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Err: ErrRequired}
	}

	if length := utf8.RuneCountInString(value); length > maxLength {
		return &FieldError{Field: field, Err: fmt.Errorf("%w (%d > %d)", ErrTooLong, length, maxLength)}
	}

	return nil
}

func checkRange(field string, value int, minimum int, maximum int) error {
	if value < minimum || value > maximum {
		return &FieldError{Field: field, Err: fmt.Errorf("%w (%d not in [%d, %d])", ErrOutOfRange, value, minimum, maximum)}
	}

	return nil
}
