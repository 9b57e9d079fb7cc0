package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Kaiser28/comptable-dashboard/validation"
)

var (
	ErrNotFound          = errors.New("not_found")
	ErrActSigned         = errors.New("act_signed")
	ErrInvalidTransition = errors.New("invalid_transition")
	ErrUnresolved        = errors.New("act_has_violations")
)

// ValidationError carries the field violations that blocked an operation.
// Stored is set when the violations belong to an act already persisted,
// in which case the error matches ErrUnresolved.
type ValidationError struct {
	Violations validation.Violations
	Stored     bool
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for f := range e.Violations {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation_failed: %s", strings.Join(fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	if e.Stored {
		return ErrUnresolved
	}
	return nil
}
