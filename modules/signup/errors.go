package signup

import "errors"

// ErrUnknownField is returned by Form.Edit for names outside registration.Fields.
var ErrUnknownField = errors.New("signup: unknown form field")
