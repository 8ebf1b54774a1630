package validator

import "maps"

// Check is a validation predicate that is not yet bound to a field or a
// value. Checks are the building blocks of a Schema; bind one to a concrete
// value with On to get a Rule usable with Apply.
type Check[V any] struct {
	Fn    func(V) bool
	Error ValidationError
}

// WithMessage returns a copy of the check that reports msg on failure.
func (c Check[V]) WithMessage(msg string) Check[V] {
	c.Error.Message = msg
	return c
}

// WithKind returns a copy of the check tagged with k.
func (c Check[V]) WithKind(k Kind) Check[V] {
	c.Error.Kind = k
	return c
}

// On binds the check to a field name and value.
func (c Check[V]) On(field string, value V) Rule {
	verr := c.Error
	verr.Field = field
	verr.TranslationValues = withField(verr.TranslationValues, field)
	return Rule{
		Check: func() bool { return c.Fn(value) },
		Error: verr,
	}
}

// withField copies vals and sets the "field" entry, so checks shared by
// several fields never share a map.
func withField(vals map[string]any, field string) map[string]any {
	out := make(map[string]any, len(vals)+1)
	maps.Copy(out, vals)
	out["field"] = field
	return out
}
