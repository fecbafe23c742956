package airwaycase

import (
	"errors"
	"strings"
)

// ValidationError describes one field-level problem with a case.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate reports the form-level problems that block a case from being
// considered complete. Storage does not call it; callers decide when a case
// must be valid.
func (c *Case) Validate() error {
	var errs []error
	if strings.TrimSpace(c.details.Patient.FirstName) == "" {
		errs = append(errs, &ValidationError{Field: "patient.firstName", Message: "patient first name is required"})
	}
	if len(c.details.SpecTable) == 0 {
		errs = append(errs, &ValidationError{Field: "specTable", Message: "at least one specification row is required"})
	}
	return errors.Join(errs...)
}
