package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidLength is returned when a field has an invalid length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidValue is returned when a field has a value outside its allowed set.
	ErrInvalidValue = errors.New("invalid value")

	// ErrOutOfRange is returned when a numeric value is out of the allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidFormat is returned when a field has an invalid format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrMismatch is returned when two related fields must hold the same value.
	ErrMismatch = errors.New("values do not match")
)

// Kind classifies a validation failure. It is carried on every
// ValidationError so callers and tests can tell failures apart without
// parsing messages.
type Kind string

const (
	KindRequired Kind = "required"
	KindRange    Kind = "range"
	KindFormat   Kind = "format"
	KindLength   Kind = "length"
	KindEnum     Kind = "enum"
	KindEquality Kind = "equality"
	// KindType marks a value of the wrong type or a missing field, reported
	// before any rule runs.
	KindType Kind = "type"
)

// Sentinel maps a kind to the package-level error it corresponds to.
func (k Kind) Sentinel() error {
	switch k {
	case KindRequired:
		return ErrFieldRequired
	case KindRange:
		return ErrOutOfRange
	case KindFormat:
		return ErrInvalidFormat
	case KindLength:
		return ErrInvalidLength
	case KindEnum:
		return ErrInvalidValue
	case KindEquality:
		return ErrMismatch
	default:
		return ErrValidationFailed
	}
}
