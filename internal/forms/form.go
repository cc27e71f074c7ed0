// Package forms implements the data-entry workflows. Each form collects raw
// string input, validates and coerces it, and hands a typed insert to the
// owning service. A form is a small state machine: it starts editing, moves
// to submitting for the duration of the store call, and lands on success or
// failed. Failure keeps the entered values so the user can correct and
// resubmit.
package forms

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// State is the lifecycle position of a form.
type State string

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

// ValidationError reports per-field validation failures. Fields maps field
// name to the reason it was rejected.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

func validate(errs validation.Errors) error {
	if err := errs.Filter(); err != nil {
		return &ValidationError{Fields: errs}
	}
	return nil
}
