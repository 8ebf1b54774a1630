package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required fails on the empty string. Whitespace counts as content; use
// NotBlank to reject whitespace-only input.
func Required() Check[string] {
	return Check[string]{
		Fn: func(v string) bool { return v != "" },
		Error: ValidationError{
			Kind:           KindRequired,
			Message:        "field is required",
			TranslationKey: "validation.required",
		},
	}
}

// NotBlank fails when the string is empty after trimming whitespace.
func NotBlank() Check[string] {
	return Check[string]{
		Fn: func(v string) bool { return strings.TrimSpace(v) != "" },
		Error: ValidationError{
			Kind:           KindRequired,
			Message:        "field is required",
			TranslationKey: "validation.required",
		},
	}
}

// MinLen checks the length in characters, not bytes.
func MinLen(min int) Check[string] {
	return Check[string]{
		Fn: func(v string) bool { return utf8.RuneCountInString(v) >= min },
		Error: ValidationError{
			Kind:              KindLength,
			Message:           fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey:    "validation.min_length",
			TranslationValues: map[string]any{"min": min},
		},
	}
}

func MaxLen(max int) Check[string] {
	return Check[string]{
		Fn: func(v string) bool { return utf8.RuneCountInString(v) <= max },
		Error: ValidationError{
			Kind:              KindLength,
			Message:           fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey:    "validation.max_length",
			TranslationValues: map[string]any{"max": max},
		},
	}
}

func Len(exact int) Check[string] {
	return Check[string]{
		Fn: func(v string) bool { return utf8.RuneCountInString(v) == exact },
		Error: ValidationError{
			Kind:              KindLength,
			Message:           fmt.Sprintf("must be exactly %d characters long", exact),
			TranslationKey:    "validation.exact_length",
			TranslationValues: map[string]any{"length": exact},
		},
	}
}
