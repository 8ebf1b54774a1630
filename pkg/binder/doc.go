// Package binder turns HTTP request bodies into typed structs.
//
// Two binders are provided:
//
//   - Form(): application/x-www-form-urlencoded and multipart/form-data,
//     matched on `form:"..."` tags. Blank numeric inputs bind as zero.
//   - JSON(opts...): application/json with size limits, strict decoding and
//     optional JSON Schema shape checks (WithSchema).
//
// SetField applies the form conversion rules to a single named field; it is
// what interactive form state uses to apply one edit at a time.
//
// # Usage
//
//	type SignupRequest struct {
//	    Name string `json:"name" form:"name"`
//	    Age  int    `json:"age"  form:"age"`
//	}
//
//	bind := binder.JSON(binder.WithSchema(schemaDoc))
//	var req SignupRequest
//	if err := bind(r, &req); err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // field-scoped shape problems
//	    }
//	}
//
// # Error Handling
//
//   - ErrUnsupportedMediaType: Content type doesn't match expected type
//   - ErrMissingContentType: Missing Content-Type header
//   - ErrFailedToParseJSON: Failed to read or decode a JSON body
//   - ErrFailedToParseForm: Failed to parse form data or convert a value
//   - ErrShapeMismatch: JSON body does not match the configured schema
//   - ErrBinderNotApplicable: request has no body for this binder
package binder
