package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/xeipuuv/gojsonschema"

	"github.com/dmitrymomot/signup/pkg/validator"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

type jsonConfig struct {
	maxSize int64
	schema  *gojsonschema.Schema
}

// JSONOption configures the JSON binder.
type JSONOption func(*jsonConfig)

// WithMaxSize limits the request body size.
func WithMaxSize(n int64) JSONOption {
	return func(c *jsonConfig) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// WithSchema checks the body against a JSON Schema document before decoding.
// Panics if the document does not compile; a broken schema is a programming
// error that should stop startup.
func WithSchema(doc string) JSONOption {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		panic(fmt.Errorf("binder: invalid JSON schema: %w", err))
	}
	return func(c *jsonConfig) { c.schema = schema }
}

// JSON creates a JSON binder.
//
// With WithSchema, a body that does not match the schema fails with
// ErrShapeMismatch joined with validator.ValidationErrors of KindType, one
// entry per offending field. Values the schema accepts but the target type
// cannot hold (18.0 or 1e2 for an int, overflow) fail the same way. Without
// a schema, unknown fields are rejected as ErrFailedToParseJSON.
func JSON(opts ...JSONOption) func(r *http.Request, v any) error {
	cfg := &jsonConfig{maxSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, cfg.maxSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if int64(len(body)) > cfg.maxSize {
			return fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, cfg.maxSize)
		}
		if len(bytes.TrimSpace(body)) == 0 {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		if cfg.schema != nil {
			if err := checkShape(cfg.schema, body); err != nil {
				return err
			}
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(v); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				return typeMismatch(typeErr)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		return nil
	}
}

func checkShape(schema *gojsonschema.Schema, body []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}
	if result.Valid() {
		return nil
	}

	var verrs validator.ValidationErrors
	for _, re := range result.Errors() {
		verrs.Add(validator.ValidationError{
			Field:          shapeField(re),
			Kind:           validator.KindType,
			Message:        re.Description(),
			TranslationKey: "validation.type." + re.Type(),
		})
	}
	return errors.Join(ErrShapeMismatch, verrs)
}

func typeMismatch(e *json.UnmarshalTypeError) error {
	var verrs validator.ValidationErrors
	verrs.Add(validator.ValidationError{
		Field:          e.Field,
		Kind:           validator.KindType,
		Message:        fmt.Sprintf("Invalid type. Expected: %s, given: %s", e.Type, e.Value),
		TranslationKey: "validation.type.invalid_type",
	})
	return errors.Join(ErrShapeMismatch, verrs)
}

// shapeField names the field a schema error is about. Errors on the root
// object (missing or unknown properties) carry the property in details.
func shapeField(re gojsonschema.ResultError) string {
	if p, ok := re.Details()["property"].(string); ok && p != "" {
		return p
	}
	return re.Field()
}
