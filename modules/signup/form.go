package signup

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/signup/pkg/binder"
	"github.com/dmitrymomot/signup/pkg/registration"
)

// Form is the state of one registration form: the values entered so far and
// the errors currently displayed. It is owned by a single request and is not
// safe for concurrent use.
type Form struct {
	Values registration.Record
	Errors registration.FieldErrors
}

// NewForm returns a form with the initial values and no errors.
func NewForm() *Form {
	return &Form{Values: registration.NewRecord()}
}

// Edit stores raw as the new value of field and clears the error displayed
// for it without re-validating. Age accepts blank input as 0; any other
// non-integer age is rejected and leaves the form unchanged.
//
// The rendered page clears annotations in the browser (data-on:input);
// Edit is the same transition for callers that hold the form server side.
func (f *Form) Edit(field, raw string) error {
	if !slices.Contains(registration.Fields, field) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	if _, err := binder.SetField(&f.Values, "form", field, raw); err != nil {
		return err
	}
	delete(f.Errors, field)
	return nil
}

// Submit validates the current values once. Errors are replaced by the
// result's errors, or cleared when the values are valid.
func (f *Form) Submit() registration.Result {
	res := registration.Validate(f.Values)
	f.Errors = res.Errors()
	return res
}

// Message returns the message displayed next to field, or "".
func (f *Form) Message(field string) string {
	return f.Errors.First(field)
}
