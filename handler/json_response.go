package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/signup/pkg/validator"
)

// JSONResponse is the envelope of every JSON response.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details maps field names to
// their messages in rule order.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// JSON responds with v wrapped in {"data": v}.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError responds with {"error": ...}. The status follows the error
// classification unless overridden.
func JSONError(err error, opts ...JSONOption) Response {
	info := classifyError(err)
	r := &jsonResponse{
		status: info.StatusCode,
		body:   JSONResponse{Error: errorToDetail(err, info)},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorToDetail(err error, info ErrorInfo) *ErrorDetail {
	detail := &ErrorDetail{Code: info.Code, Message: info.Message}
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		detail.Details = verrs.ByField()
	}
	var httpErr HTTPError
	if detail.Code == "" && errors.As(err, &httpErr) {
		detail.Code = httpErr.Key
	}
	return detail
}
