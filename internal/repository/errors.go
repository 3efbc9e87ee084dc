// Package repository defines error types that are reused across multiple
// repositories. These values allow higher layers such as handlers to
// distinguish between different failure scenarios and map them to the
// correct HTTP status: validation problems become 400, missing records
// become 404, and conflicting deletes become 409. Any other error is a
// storage failure that should be logged and surfaced as a generic 500.
package repository

import (
	"errors"
	"fmt"
)

// ErrVenueNotFound is returned when a venue cannot be located in the DB.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist cannot be located in the DB.
var ErrArtistNotFound = errors.New("artist not found")

// ErrShowNotFound is returned when a show cannot be located in the DB.
var ErrShowNotFound = errors.New("show not found")

// ErrConflict is returned when a delete cannot be performed because of
// dependent records, such as removing a venue that still has shows on
// its schedule. Handlers should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ValidationError reports a request field that failed validation before any
// write was attempted. The repositories run their validate step first so
// that no partially assigned entity ever reaches the database.
type ValidationError struct {
	Field  string // Field is the name of the offending input field
	Reason string // Reason is a short human-readable explanation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// required returns a ValidationError for a missing or empty field.
func required(field string) error {
	return &ValidationError{Field: field, Reason: "required"}
}
