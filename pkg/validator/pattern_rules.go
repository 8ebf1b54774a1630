package validator

import (
	"fmt"
	"regexp"
)

// Contains passes when re matches anywhere in the value. description names
// what the pattern stands for in the default message.
func Contains(re *regexp.Regexp, description string) Check[string] {
	return Check[string]{
		Fn: re.MatchString,
		Error: ValidationError{
			Kind:           KindFormat,
			Message:        fmt.Sprintf("must contain %s", description),
			TranslationKey: "validation.contains_pattern",
			TranslationValues: map[string]any{
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}
