// Package handler adapts typed request handlers to net/http.
//
// Wrap binds a request into R with the configured binders, calls the
// HandlerFunc and renders the returned Response. Binding and rendering
// failures go to the ErrorHandler, which classifies them:
//
//   - validator.ValidationErrors (including JSON shape errors): 422
//   - malformed form or JSON bodies: 400
//   - wrong or missing Content-Type: 415
//   - HTTPError: its Code
//   - anything else: 500
//
// Responses:
//
//   - JSON / JSONError: {"data": ...} and {"error": {"code", "message", "details"}}
//   - Templ / TemplPartial: HTML for regular requests, a datastar element
//     patch over SSE for datastar requests (see IsDataStar)
package handler
