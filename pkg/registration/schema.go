package registration

import (
	"github.com/dmitrymomot/signup/pkg/validator"
)

// Messages shown to the user. The age message says "greater than" while the
// check accepts 18 itself; the wording is kept as is.
const (
	MsgNameRequired       = "Name is required"
	MsgAgeMin             = "Age should be greater than 18"
	MsgEmailInvalid       = "Invalid email"
	MsgPasswordMinLen     = "Password should be at least 8 characters"
	MsgPasswordUppercase  = "Password should contain at least one uppercase letter"
	MsgPasswordDigit      = "Password should contain at least one number"
	MsgPhoneMinLen        = "Phone number should be at least 10 digits"
	MsgPhoneMaxLen        = "Phone number should be at most 10 digits"
	MsgGenderInvalid      = "please select a valid gender"
	MsgPasswordsDontMatch = "Passwords do not match"
)

const (
	MinAge            = 18
	MinPasswordLength = 8
	PhoneLength       = 10
)

// Schema is the rule table for a Record. It is built once and never changes.
var Schema = validator.NewSchema(
	validator.Field(FieldName, func(r Record) string { return r.Name },
		validator.Required().WithMessage(MsgNameRequired),
	),
	validator.Field(FieldAge, func(r Record) int { return r.Age },
		validator.Min(MinAge).WithMessage(MsgAgeMin),
	),
	validator.Field(FieldEmail, func(r Record) string { return r.Email },
		validator.Email().WithMessage(MsgEmailInvalid),
	),
	validator.Field(FieldPassword, func(r Record) string { return r.Password },
		validator.MinLen(MinPasswordLength).WithMessage(MsgPasswordMinLen).WithKind(validator.KindFormat),
		validator.Uppercase().WithMessage(MsgPasswordUppercase),
		validator.Digit().WithMessage(MsgPasswordDigit),
	),
	validator.Field(FieldConfirmPassword, func(r Record) string { return r.ConfirmPassword }),
	validator.Field(FieldPhone, func(r Record) string { return r.Phone },
		validator.MinLen(PhoneLength).WithMessage(MsgPhoneMinLen),
		validator.MaxLen(PhoneLength).WithMessage(MsgPhoneMaxLen),
	),
	validator.Field(FieldGender, func(r Record) Gender { return r.Gender },
		validator.OneOf(Genders...).WithMessage(MsgGenderInvalid),
	),
	validator.Refine(FieldConfirmPassword, validator.EqualFields(
		func(r Record) string { return r.Password },
		func(r Record) string { return r.ConfirmPassword },
	).WithMessage(MsgPasswordsDontMatch)),
)
