package validator

import (
	"fmt"
	"slices"
)

// OneOf passes when the value equals one of options.
func OneOf[T comparable](options ...T) Check[T] {
	allowed := slices.Clone(options)
	return Check[T]{
		Fn: func(v T) bool { return slices.Contains(allowed, v) },
		Error: ValidationError{
			Kind:              KindEnum,
			Message:           fmt.Sprintf("must be one of: %v", allowed),
			TranslationKey:    "validation.in_list",
			TranslationValues: map[string]any{"allowed_values": allowed},
		},
	}
}
