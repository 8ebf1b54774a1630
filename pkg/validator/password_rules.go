package validator

import "regexp"

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
)

// Uppercase requires at least one ASCII uppercase letter.
func Uppercase() Check[string] {
	c := Contains(uppercaseRegex, "an uppercase letter")
	c.Error.Message = "must contain at least one uppercase letter"
	c.Error.TranslationKey = "validation.password_uppercase"
	return c
}

// Digit requires at least one ASCII digit.
func Digit() Check[string] {
	c := Contains(digitRegex, "a digit")
	c.Error.Message = "must contain at least one digit"
	c.Error.TranslationKey = "validation.password_digit"
	return c
}
