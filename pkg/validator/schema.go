package validator

// Spec is one entry of a Schema: either a field with its ordered checks or
// a whole-record refinement attached to a field.
type Spec[T any] struct {
	field  string
	refine bool
	rules  func(T) []Rule
}

// Field declares a field of T. get extracts the value; checks run in the
// given order and all of them are evaluated.
func Field[T, V any](name string, get func(T) V, checks ...Check[V]) Spec[T] {
	return Spec[T]{
		field: name,
		rules: func(v T) []Rule {
			value := get(v)
			rules := make([]Rule, 0, len(checks))
			for _, c := range checks {
				rules = append(rules, c.On(name, value))
			}
			return rules
		},
	}
}

// Refine declares a rule over the whole value whose failure is reported
// against field. Refinements run after every field check, in declaration
// order, and add to the field's errors rather than replacing them.
func Refine[T any](field string, check Check[T]) Spec[T] {
	return Spec[T]{
		field:  field,
		refine: true,
		rules: func(v T) []Rule {
			return []Rule{check.On(field, v)}
		},
	}
}

// Schema is an immutable, ordered rule table for values of type T.
// It holds no per-call state and is safe for concurrent use.
type Schema[T any] struct {
	fields      []Spec[T]
	refinements []Spec[T]
}

// NewSchema builds a schema from field and refinement specs. Refinements may
// be listed anywhere; they always run after the field checks.
func NewSchema[T any](specs ...Spec[T]) *Schema[T] {
	s := &Schema[T]{}
	for _, sp := range specs {
		if sp.rules == nil {
			continue
		}
		if sp.refine {
			s.refinements = append(s.refinements, sp)
		} else {
			s.fields = append(s.fields, sp)
		}
	}
	return s
}

// Fields returns the declared field names in declaration order.
func (s *Schema[T]) Fields() []string {
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		names = append(names, f.field)
	}
	return names
}

// Rules binds every check in the schema to v, field checks first.
func (s *Schema[T]) Rules(v T) []Rule {
	var rules []Rule
	for _, f := range s.fields {
		rules = append(rules, f.rules(v)...)
	}
	for _, r := range s.refinements {
		rules = append(rules, r.rules(v)...)
	}
	return rules
}

// Validate evaluates every rule against v. It returns nil when all pass,
// otherwise ValidationErrors holding every failure in evaluation order.
func (s *Schema[T]) Validate(v T) error {
	return Apply(s.Rules(v)...)
}
