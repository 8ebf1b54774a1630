// Package requestid correlates log records and error responses of a single
// signup request.
//
// Middleware attaches an ID to every request: a client-supplied X-Request-ID
// is reused when it is 1-128 characters of [a-zA-Z0-9_-], otherwise a UUIDv4
// is generated. The ID is echoed in the response header and stored in the
// request context, where FromContext reads it back.
//
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// logged with the request context carries "request_id":
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
