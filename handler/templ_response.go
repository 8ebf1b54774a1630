package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

type templResponse struct {
	partial templ.Component
	full    templ.Component
	status  int
	patch   []datastar.PatchElementOption
}

// TemplOption configures a templ response.
type TemplOption func(*templResponse)

// WithTarget sets the CSS selector a datastar patch applies to.
func WithTarget(selector string) TemplOption {
	return func(t *templResponse) { t.patch = append(t.patch, datastar.WithSelector(selector)) }
}

// WithPatchMode sets how a datastar patch is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return func(t *templResponse) { t.patch = append(t.patch, datastar.WithMode(mode)) }
}

// WithStatus sets the status of plain HTML responses. SSE streams always
// answer 200 since the status line is sent before the first patch.
func WithStatus(status int) TemplOption {
	return func(t *templResponse) { t.status = status }
}

// Render patches the partial over SSE for datastar requests and writes the
// full component as HTML otherwise.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(t.partial, t.patch...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	return t.full.Render(r.Context(), w)
}

// Templ renders component as HTML, or patches it over SSE for datastar
// requests.
func Templ(component templ.Component, opts ...TemplOption) Response {
	return TemplPartial(component, component, opts...)
}

// TemplPartial patches partial for datastar requests and renders full for
// regular ones, e.g. a form fragment vs. the page that contains it.
//
//	return handler.TemplPartial(views.Form(state), views.Page(state),
//		handler.WithTarget("#signup-form"),
//		handler.WithStatus(http.StatusUnprocessableEntity),
//	)
func TemplPartial(partial, full templ.Component, opts ...TemplOption) Response {
	t := templResponse{partial: partial, full: full}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
