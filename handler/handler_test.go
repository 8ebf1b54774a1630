package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signup/handler"
	"github.com/dmitrymomot/signup/pkg/binder"
)

type signupRequest struct {
	Name   string `form:"name"`
	Age    int    `form:"age"`
	Gender string `form:"gender"`
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestWrap_BindsAndRenders(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(
		func(ctx handler.Context, req signupRequest) handler.Response {
			return handler.JSON(req)
		},
		handler.WithBinders[signupRequest](binder.Form()),
		handler.WithInitial(func() signupRequest { return signupRequest{Gender: "Male"} }),
	)

	rec := httptest.NewRecorder()
	h(rec, postForm(url.Values{"name": {"Jane"}, "age": {"30"}}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"Name":"Jane","Age":30,"Gender":"Male"}}`, rec.Body.String())
}

func TestWrap_SkipsNotApplicableBinders(t *testing.T) {
	t.Parallel()

	called := false
	h := handler.Wrap(
		func(ctx handler.Context, req signupRequest) handler.Response {
			called = true
			return handler.Templ(text("page"))
		},
		handler.WithBinders[signupRequest](binder.Form()),
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
	assert.Equal(t, "page", rec.Body.String())
}

func TestWrap_BindErrorGoesToErrorHandler(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.Wrap(
		func(ctx handler.Context, req signupRequest) handler.Response {
			t.Fatal("handler must not run")
			return nil
		},
		handler.WithBinders[signupRequest](binder.Form()),
		handler.WithErrorHandler[signupRequest](func(ctx handler.Context, err error) {
			got = err
			ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
		}),
	)

	rec := httptest.NewRecorder()
	h(rec, postForm(url.Values{"age": {"old"}}))

	assert.ErrorIs(t, got, binder.ErrFailedToParseForm)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestWrap_DefaultErrorHandler(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(
		func(ctx handler.Context, req signupRequest) handler.Response { return nil },
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	h = handler.Wrap(
		func(ctx handler.Context, req signupRequest) handler.Response { return nil },
		handler.WithBinders[signupRequest](binder.Form()),
	)
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	h(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestWrap_Decorators(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[signupRequest] {
		return func(next handler.HandlerFunc[signupRequest]) handler.HandlerFunc[signupRequest] {
			return func(ctx handler.Context, req signupRequest) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(
		func(ctx handler.Context, req signupRequest) handler.Response {
			order = append(order, "handler")
			return handler.JSON(nil)
		},
		handler.WithDecorators(mark("outer"), mark("inner")),
	)

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestContext_DelegatesToRequest(t *testing.T) {
	t.Parallel()

	type key struct{}
	parent, cancel := context.WithCancel(context.WithValue(context.Background(), key{}, "v"))
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(parent)
	rec := httptest.NewRecorder()

	ctx := handler.NewContext(rec, req)
	assert.Same(t, req, ctx.Request())
	assert.Equal(t, "v", ctx.Value(key{}))
	require.NoError(t, ctx.Err())

	cancel()
	<-ctx.Done()
	assert.True(t, errors.Is(ctx.Err(), context.Canceled))
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	assert.False(t, handler.IsDataStar(req))

	req.Header.Set(handler.DataStarRequestHeader, "true")
	assert.True(t, handler.IsDataStar(req))

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Accept", "text/event-stream, text/html")
	assert.True(t, handler.IsDataStar(req))

	req = httptest.NewRequest(http.MethodGet, "/?datastar=%7B%7D", nil)
	assert.True(t, handler.IsDataStar(req))
}
