package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signup/pkg/validator"
)

// failures runs a single rule and returns its errors, or nil when it passes.
func failures(r validator.Rule) validator.ValidationErrors {
	return validator.ExtractValidationErrors(validator.Apply(r))
}

func TestStringRules(t *testing.T) {
	t.Parallel()

	t.Run("Required", func(t *testing.T) {
		assert.Nil(t, failures(validator.Required().On("name", "x")))
		assert.Nil(t, failures(validator.Required().On("name", " ")))

		errs := failures(validator.Required().On("name", ""))
		require.Len(t, errs, 1)
		assert.Equal(t, validator.KindRequired, errs[0].Kind)
		assert.Equal(t, "field is required", errs[0].Message)
		assert.Equal(t, "name", errs[0].TranslationValues["field"])
	})

	t.Run("NotBlank rejects whitespace", func(t *testing.T) {
		assert.False(t, validator.NotBlank().Fn("   "))
		assert.True(t, validator.NotBlank().Fn(" a "))
	})

	t.Run("MinLen counts characters", func(t *testing.T) {
		assert.Nil(t, failures(validator.MinLen(5).On("p", "héllo")))
		assert.NotNil(t, failures(validator.MinLen(5).On("p", "abcd")))
	})

	t.Run("MaxLen", func(t *testing.T) {
		assert.Nil(t, failures(validator.MaxLen(3).On("p", "abc")))
		errs := failures(validator.MaxLen(3).On("p", "abcd"))
		require.Len(t, errs, 1)
		assert.Equal(t, "must be at most 3 characters long", errs[0].Message)
		assert.Equal(t, validator.KindLength, errs[0].Kind)
	})

	t.Run("Len", func(t *testing.T) {
		assert.Nil(t, failures(validator.Len(10).On("phone", "1234567890")))
		assert.NotNil(t, failures(validator.Len(10).On("phone", "123456789")))
	})
}

func TestNumericRules(t *testing.T) {
	t.Parallel()

	t.Run("Min is inclusive", func(t *testing.T) {
		assert.Nil(t, failures(validator.Min(18).On("age", 18)))
		errs := failures(validator.Min(18).On("age", 17))
		require.Len(t, errs, 1)
		assert.Equal(t, validator.KindRange, errs[0].Kind)
		assert.Equal(t, "must be at least 18", errs[0].Message)
	})

	t.Run("Max is inclusive", func(t *testing.T) {
		assert.Nil(t, failures(validator.Max(1.5).On("score", 1.5)))
		assert.NotNil(t, failures(validator.Max(1.5).On("score", 1.6)))
	})
}

func TestChoiceRules(t *testing.T) {
	t.Parallel()

	gender := validator.OneOf("Male", "Female", "Other")
	assert.Nil(t, failures(gender.On("gender", "Other")))

	errs := failures(gender.On("gender", "other"))
	require.Len(t, errs, 1)
	assert.Equal(t, validator.KindEnum, errs[0].Kind)

	t.Run("options are copied", func(t *testing.T) {
		opts := []int{1, 2}
		c := validator.OneOf(opts...)
		opts[0] = 9
		assert.True(t, c.Fn(1))
	})
}

func TestEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"jane@x.com",
		"first.last+tag@example.co.uk",
	}
	invalid := []string{
		"",
		"bad",
		"jane@",
		"@x.com",
		"jane@localhost",
		"jane@x..com",
		"Jane <jane@x.com>",
		" jane@x.com",
	}

	for _, v := range valid {
		assert.Nil(t, failures(validator.Email().On("email", v)), v)
	}
	for _, v := range invalid {
		errs := failures(validator.Email().On("email", v))
		require.Len(t, errs, 1, v)
		assert.Equal(t, validator.KindFormat, errs[0].Kind, v)
	}
}

func TestPatternRules(t *testing.T) {
	t.Parallel()

	t.Run("Uppercase", func(t *testing.T) {
		assert.Nil(t, failures(validator.Uppercase().On("password", "abcD")))
		errs := failures(validator.Uppercase().On("password", "abcd"))
		require.Len(t, errs, 1)
		assert.Equal(t, "must contain at least one uppercase letter", errs[0].Message)
	})

	t.Run("Digit", func(t *testing.T) {
		assert.Nil(t, failures(validator.Digit().On("password", "abc1")))
		assert.NotNil(t, failures(validator.Digit().On("password", "abcd")))
	})

	t.Run("Contains matches anywhere", func(t *testing.T) {
		digits := validator.Contains(regexp.MustCompile(`\d+`), "digits")
		assert.Nil(t, failures(digits.On("code", "xx42yy")))
		errs := failures(digits.On("code", "xxyy"))
		require.Len(t, errs, 1)
		assert.Equal(t, "must contain digits", errs[0].Message)
		assert.Equal(t, validator.KindFormat, errs[0].Kind)
	})

	t.Run("Contains exposes pattern", func(t *testing.T) {
		c := validator.Contains(regexp.MustCompile(`[a-z]`), "a lowercase letter")
		assert.Equal(t, "[a-z]", c.Error.TranslationValues["pattern"])
	})
}

func TestComparableRules(t *testing.T) {
	t.Parallel()

	type pair struct{ a, b string }
	same := validator.EqualFields(
		func(p pair) string { return p.a },
		func(p pair) string { return p.b },
	)

	assert.Nil(t, failures(same.On("confirm", pair{"a", "a"})))
	errs := failures(same.On("confirm", pair{"a", "b"}))
	require.Len(t, errs, 1)
	assert.Equal(t, validator.KindEquality, errs[0].Kind)
}

func TestCheck_Overrides(t *testing.T) {
	t.Parallel()

	base := validator.MinLen(8)
	custom := base.WithMessage("too short").WithKind(validator.KindFormat)

	assert.Equal(t, "must be at least 8 characters long", base.Error.Message)
	assert.Equal(t, validator.KindLength, base.Error.Kind)

	errs := failures(custom.On("password", "abc"))
	require.Len(t, errs, 1)
	assert.Equal(t, "too short", errs[0].Message)
	assert.Equal(t, validator.KindFormat, errs[0].Kind)
	assert.Equal(t, 8, errs[0].TranslationValues["min"])
	assert.Equal(t, "password", errs[0].TranslationValues["field"])
	assert.NotContains(t, base.Error.TranslationValues, "field")
}
