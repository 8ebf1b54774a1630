package validator

// EqualFields is a whole-value check that two parts of T are equal. Use it
// with Refine to report a mismatch on one of the two fields.
func EqualFields[T any, V comparable](left, right func(T) V) Check[T] {
	return Check[T]{
		Fn: func(v T) bool { return left(v) == right(v) },
		Error: ValidationError{
			Kind:           KindEquality,
			Message:        "values do not match",
			TranslationKey: "validation.equal",
		},
	}
}
