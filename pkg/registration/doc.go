// Package registration defines the user registration record and the rules a
// record must satisfy before an account can be created.
//
// The rules live in Schema, a declarative table built with pkg/validator:
// each field maps to an ordered list of checks, and one refinement compares
// password and confirmPassword after all field checks have run. Validate
// evaluates the whole table and returns a Result; it is a pure function and
// safe to call from multiple goroutines.
//
//	res := registration.Validate(rec)
//	if !res.Valid() {
//	    for field, msgs := range res.Errors() {
//	        // show msgs[0] next to the field
//	    }
//	}
//
// The age rule accepts 18 even though its message reads "greater than 18".
// The behavior follows the comparison; the message text is a known wording
// mismatch.
package registration
