package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = fmt.Errorf("not found")
	ErrConflict     = fmt.Errorf("already exists")
	ErrInvalidInput = fmt.Errorf("invalid input")
	ErrConstraint   = fmt.Errorf("constraint violation")
)

// ValidationError reports a single offending request field.
type ValidationError struct {
	Field  string
	Reason string
}

// Invalid builds a ValidationError for field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Reason)
}

func (v *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// AsValidation returns the ValidationError carried by err, if any.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// detailedError pairs a sentinel with a message that is safe to return to
// clients.
type detailedError struct {
	kind   error
	detail string
}

// WithDetail wraps kind with a client-facing message.
func WithDetail(kind error, detail string) error {
	return &detailedError{kind: kind, detail: detail}
}

func (d *detailedError) Error() string { return d.detail }

func (d *detailedError) Unwrap() error { return d.kind }

// Detail returns the client-facing message carried by err, if any.
func Detail(err error) (string, bool) {
	if v, ok := AsValidation(err); ok {
		return v.Error(), true
	}
	var d *detailedError
	if errors.As(err, &d) {
		return d.detail, true
	}
	return "", false
}
