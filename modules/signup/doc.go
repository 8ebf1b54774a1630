// Package signup is the registration page: a server-rendered form whose
// submissions are checked with registration.Validate.
//
// Form holds the values and displayed errors of one form. Edit changes a
// single value and clears that field's error without re-validating; Submit
// validates everything at once and replaces the displayed errors.
//
// Service mounts three routes. GET / renders the page. POST / binds the form
// body, re-renders the form with 422 and one message per field when invalid,
// or shows a success fragment. Datastar clients receive the same fragments as
// SSE patches of #signup-form. POST /validate accepts a JSON record, checks
// its shape against registration.ShapeSchema and answers {"data":{"valid":true}}
// or a 422 validation_error with every message per field.
//
//	svc := signup.NewService(log)
//	r.Mount("/signup", svc.Handle())
package signup
