package schema

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Shape is a compiled JSON Schema for one request or response type.
// Shapes are the hard boundary between model output and application
// code: a payload that fails Validate is never surfaced to a caller.
type Shape struct {
	name     string
	doc      string
	compiled *gojsonschema.Schema
}

// FieldError reports the first violated field of a failed validation.
type FieldError struct {
	Shape  string
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("schema: %s: field %q: %s", e.Shape, e.Field, e.Reason)
}

// MustShape compiles a JSON Schema document. It panics on a malformed
// document; shapes are declared as package-level variables, so a bad
// one fails at process start, not per request.
func MustShape(name, doc string) *Shape {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("schema: compile %s: %v", name, err))
	}
	return &Shape{name: name, doc: doc, compiled: compiled}
}

// Name returns the shape's declared name.
func (s *Shape) Name() string { return s.name }

// Doc returns the raw JSON Schema document, for prompt embedding and
// tool spec declarations.
func (s *Shape) Doc() json.RawMessage { return json.RawMessage(s.doc) }

// Validate checks raw against the shape. On failure it returns a
// *FieldError for the first violated field. Validation has no side
// effects; re-validating an already valid payload is a no-op.
func (s *Shape) Validate(raw json.RawMessage) error {
	if s == nil || s.compiled == nil {
		return fmt.Errorf("schema: shape not compiled")
	}
	if len(raw) == 0 {
		return &FieldError{Shape: s.name, Field: "(root)", Reason: "empty payload"}
	}
	res, err := s.compiled.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return &FieldError{Shape: s.name, Field: "(root)", Reason: err.Error()}
	}
	if res.Valid() {
		return nil
	}
	first := res.Errors()[0]
	field := first.Field()
	if field == "" {
		field = "(root)"
	}
	return &FieldError{Shape: s.name, Field: field, Reason: first.Description()}
}
