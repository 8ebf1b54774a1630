package signup_test

import (
	"bytes"
	"context"
	"html"
	"regexp"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signup/handler"
	"github.com/dmitrymomot/signup/modules/signup"
	"github.com/dmitrymomot/signup/pkg/registration"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

var submitAttr = regexp.MustCompile(`data-on:submit="([^"]*)"`)

func TestFormView_ActionIsEscapedForScript(t *testing.T) {
	t.Parallel()

	action := `/x');alert(document.cookie);('`
	out := renderString(t, signup.DefaultViews().Form(signup.FormParams{Action: action}))

	m := submitAttr.FindStringSubmatch(out)
	require.Len(t, m, 2)
	assert.Equal(t, `@post("/x');alert(document.cookie);('", {contentType: 'form'})`, html.UnescapeString(m[1]),
		"the action stays inside a single string literal")
	assert.NotContains(t, out, `@post('/x`)
}

func TestFormView_Values(t *testing.T) {
	t.Parallel()

	form := signup.NewForm()
	form.Values.Name = `<b>Jane</b>`
	form.Values.Age = 30
	form.Values.Password = "Abcdefg1"
	form.Errors = registration.FieldErrors{registration.FieldEmail: {registration.MsgEmailInvalid}}

	out := renderString(t, signup.DefaultViews().Form(signup.FormParams{Form: form}))

	assert.Contains(t, out, `value="&lt;b&gt;Jane&lt;/b&gt;"`)
	assert.Contains(t, out, `value="30"`)
	assert.NotContains(t, out, "Abcdefg1")
	assert.Contains(t, out, `<p class="error" id="email-error" data-text="$errors.email">`+registration.MsgEmailInvalid+`</p>`)
	assert.Contains(t, out, `data-on:change="$errors.gender = &#39;&#39;"`)
}

func TestErrorViews(t *testing.T) {
	t.Parallel()

	views := signup.DefaultViews()

	page := renderString(t, views.ErrorPage(handler.ErrorPageParams{
		Error:      "<script>",
		StatusCode: 404,
		RequestID:  "req-1",
		RetryURL:   "javascript:alert(1)",
	}))
	assert.Contains(t, page, "<h1>404</h1>")
	assert.Contains(t, page, "&lt;script&gt;")
	assert.Contains(t, page, "Request ID: req-1")
	assert.NotContains(t, page, `href="javascript:`)

	toast := renderString(t, views.ErrorToast(handler.ErrorToastParams{Type: "error", Message: "Too many requests"}))
	assert.Equal(t, `<div class="toast toast-error" role="alert">Too many requests</div>`, toast)
}
