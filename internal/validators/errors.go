// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-scaffold-api/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName          = errors.New("name is required")
	ErrNameTooLong        = errors.New("name is too long")
	ErrDescriptionTooLong = errors.New("description is too long")
	ErrInvalidLimit       = errors.New("invalid limit")
)

// ValidationError reports every rejected field of a single input value.
// errors.Is matches each of the sentinel errors it carries.
type ValidationError struct {
	Fields []models.FieldError
	causes []error
}

func (e *ValidationError) add(field, message string, cause error) {
	e.Fields = append(e.Fields, models.FieldError{Field: field, Message: message})
	e.causes = append(e.causes, cause)
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() []error {
	return e.causes
}

// FieldErrors returns the rejected fields of err when it is (or wraps) a
// [ValidationError].
func FieldErrors(err error) ([]models.FieldError, bool) {
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		return nil, false
	}
	return vErr.Fields, true
}
