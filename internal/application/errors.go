package application

import (
	"errors"
	"sort"
	"strings"

	"github.com/example/faculty-scheduler/internal/schedule"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("application: not found")
	// ErrAlreadyExists is returned when a record's uniqueness key is taken.
	ErrAlreadyExists = errors.New("application: already exists")
)

// ValidationError captures field level validation issues that callers can
// surface to users. It covers both missing required fields and invalid
// ranges such as a time period ending before it starts.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil || len(v.FieldErrors) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(v.FieldErrors))
	for field := range v.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}

// ConflictError is returned when a booking request collides with existing
// bookings. Conflicts are ordinary outcomes, not faults: the caller retries
// with different input or gives up.
type ConflictError struct {
	// Reason is the composite human-readable message assembled by the
	// conflict detector, individual reasons joined with " | ".
	Reason string
}

// Error implements the error interface.
func (c *ConflictError) Error() string {
	if c == nil || c.Reason == "" {
		return "booking conflict"
	}
	return "booking conflict: " + c.Reason
}

// Reasons splits the composite message back into its independent parts.
func (c *ConflictError) Reasons() []string {
	if c == nil || c.Reason == "" {
		return nil
	}
	return strings.Split(c.Reason, schedule.ReasonSeparator)
}
