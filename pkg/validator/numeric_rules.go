package validator

import "fmt"

// Min passes when the value is greater than or equal to min.
func Min[T Numeric](min T) Check[T] {
	return Check[T]{
		Fn: func(v T) bool { return v >= min },
		Error: ValidationError{
			Kind:              KindRange,
			Message:           fmt.Sprintf("must be at least %v", min),
			TranslationKey:    "validation.min",
			TranslationValues: map[string]any{"min": min},
		},
	}
}

// Max passes when the value is less than or equal to max.
func Max[T Numeric](max T) Check[T] {
	return Check[T]{
		Fn: func(v T) bool { return v <= max },
		Error: ValidationError{
			Kind:              KindRange,
			Message:           fmt.Sprintf("must be at most %v", max),
			TranslationKey:    "validation.max",
			TranslationValues: map[string]any{"max": max},
		},
	}
}
