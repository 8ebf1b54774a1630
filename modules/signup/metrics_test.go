package signup_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signup/modules/signup"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	h := signup.NewService(nil, signup.WithMetrics(signup.NewMetrics(reg))).Handle()

	rec := do(h, postForm(janeForm()))
	require.Equal(t, http.StatusOK, rec.Code)

	values := janeForm()
	values.Set("password", "abcdefgh")
	values.Set("confirmPassword", "abcdefgh")
	rec = do(h, postForm(values))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(h, postJSON(`{"name":"","age":30,"email":"jane@x.com","password":"Abcdefg1",`+
		`"confirmPassword":"Abcdefg1","phone":"1234567890","gender":"Other"}`))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	expected := `
# HELP signup_submissions_total Registration records validated, by endpoint and outcome
# TYPE signup_submissions_total counter
signup_submissions_total{endpoint="submit",outcome="invalid"} 1
signup_submissions_total{endpoint="submit",outcome="valid"} 1
signup_submissions_total{endpoint="validate",outcome="invalid"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "signup_submissions_total"))

	expected = `
# HELP signup_field_errors_total Failed rules, by field and error kind
# TYPE signup_field_errors_total counter
signup_field_errors_total{field="name",kind="required"} 1
signup_field_errors_total{field="password",kind="format"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "signup_field_errors_total"))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	t.Parallel()

	h := signup.NewService(nil).Handle()
	rec := do(h, postForm(janeForm()))
	assert.Equal(t, http.StatusOK, rec.Code)
}
