package registration

import (
	"github.com/dmitrymomot/signup/pkg/validator"
)

// FieldErrors maps a field name to its ordered, non-empty list of messages.
// A field missing from the map has no errors.
type FieldErrors map[string][]string

// First returns the first message for field, or "" when it has none.
func (fe FieldErrors) First(field string) string {
	if msgs := fe[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Result is the outcome of one Validate call. It is never modified after
// Validate returns.
type Result struct {
	issues validator.ValidationErrors
}

// Valid reports whether every rule passed.
func (r Result) Valid() bool {
	return r.issues.IsEmpty()
}

// Errors returns a fresh field → messages map, or nil when valid.
func (r Result) Errors() FieldErrors {
	return FieldErrors(r.issues.ByField())
}

// Issues returns a copy of the failures with their kind tags, in evaluation
// order.
func (r Result) Issues() validator.ValidationErrors {
	if r.issues == nil {
		return nil
	}
	return append(validator.ValidationErrors(nil), r.issues...)
}

// First returns the first message for field, or "".
func (r Result) First(field string) string {
	if msgs := r.issues.Get(field); len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Err returns nil when valid, otherwise validator.ValidationErrors.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return r.Issues()
}

// Validate runs every field rule and the password confirmation check against
// rec. It never stops early and never fails for malformed input; all
// problems are reported in the Result.
func Validate(rec Record) Result {
	return Result{issues: validator.ExtractValidationErrors(Schema.Validate(rec))}
}
