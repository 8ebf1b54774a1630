package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrMissingContentType   = errors.New("missing content type")
	// ErrShapeMismatch wraps validator.ValidationErrors describing missing
	// fields, wrong types or unknown fields in a JSON body.
	ErrShapeMismatch = errors.New("request body does not match schema")
	// ErrBinderNotApplicable is returned when a request carries no data for
	// the binder, e.g. a GET request given to a form binder.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")
)
