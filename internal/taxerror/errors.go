// Package taxerror defines the error types returned by the tax engine and its loaders.
package taxerror

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel matched by every InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError represents a value the engine refuses to compute with:
// a zero date, a non-finite amount, an unknown tag or an out-of-range period.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid input %s='%s': %s: %v", e.Field, e.Value, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid input %s='%s': %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidInput so callers can use errors.Is
// without knowing the concrete type.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewInvalidInput builds an InvalidInputError without a wrapped cause.
func NewInvalidInput(field, value, reason string) error {
	return &InvalidInputError{Field: field, Value: value, Reason: reason}
}

// WrapInvalidInput builds an InvalidInputError around an underlying parse error.
func WrapInvalidInput(field, value, reason string, err error) error {
	return &InvalidInputError{Field: field, Value: value, Reason: reason, Err: err}
}

// SnapshotError represents a failure to load or save a data snapshot file.
type SnapshotError struct {
	FilePath string
	Kind     string
	Err      error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("failed to process %s snapshot '%s': %v", e.Kind, e.FilePath, e.Err)
}

func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// CategorizationError represents a failure of one categorization strategy.
type CategorizationError struct {
	Transaction string
	Strategy    string
	Err         error
}

func (e *CategorizationError) Error() string {
	return fmt.Sprintf("categorization failed for %s using %s: %v",
		e.Transaction, e.Strategy, e.Err)
}

func (e *CategorizationError) Unwrap() error {
	return e.Err
}
