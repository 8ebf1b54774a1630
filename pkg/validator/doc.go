// Package validator provides generic, type-safe validation rules and a
// declarative rule table (Schema) for validating whole records.
//
// A Check is a predicate plus error metadata that is not yet bound to any
// value. Checks are grouped per field with Field and combined with
// whole-record refinements (Refine) into a Schema. Validating a value binds
// every check to it and evaluates all of them; nothing short-circuits, so the
// caller gets the full set of failures in one pass.
//
// # Architecture
//
// Each source file groups a family of checks (`string_rules.go`,
// `numeric_rules.go`, `choice_rules.go`, etc.). A check bound to a field and
// value via Check.On becomes a Rule, which is what Apply evaluates. There is
// no hidden global state; schemas are immutable once built and safe for
// concurrent use.
//
// Core building blocks:
//   - Check[V]          – unbound predicate with error metadata
//   - Rule              – check bound to a field and value
//   - Schema[T]         – ordered field table plus refinements
//   - ValidationError   – one failure, tagged with a Kind
//   - ValidationErrors  – ordered slice that implements error
//
// # Usage
//
//	type Signup struct {
//	    Email    string
//	    Password string
//	    Confirm  string
//	}
//
//	var signupSchema = validator.NewSchema(
//	    validator.Field("email", func(s Signup) string { return s.Email },
//	        validator.Email(),
//	    ),
//	    validator.Field("password", func(s Signup) string { return s.Password },
//	        validator.MinLen(8),
//	        validator.Uppercase(),
//	    ),
//	    validator.Refine("confirm", validator.EqualFields(
//	        func(s Signup) string { return s.Password },
//	        func(s Signup) string { return s.Confirm },
//	    ).WithMessage("passwords do not match")),
//	)
//
//	if err := signupSchema.Validate(in); err != nil {
//	    verrs := validator.ExtractValidationErrors(err)
//	    _ = verrs.ByField() // field -> ordered messages
//	}
//
// Ad-hoc validation without a schema binds checks with On and runs them
// through Apply:
//
//	err := validator.Apply(
//	    validator.Required().On("name", name),
//	    validator.Min(18).On("age", age),
//	)
//
// # Error Handling
//
// ValidationErrors implements error and works with errors.As. Each entry
// carries a Kind (KindRequired, KindRange, KindFormat, KindLength, KindEnum,
// KindEquality, KindType); Kind.Sentinel maps it to the package-level error.
package validator
