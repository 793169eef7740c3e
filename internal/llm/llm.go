package llm

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	// ErrEmptyResponse is returned when the model produced no usable
	// candidate text.
	ErrEmptyResponse = errors.New("llm: empty response from model")
)

// Client issues one generation request and returns the model's raw JSON
// payload. Implementations must be safe for concurrent use; retries, if
// any, live in middleware, never in the client itself.
type Client interface {
	Name() string
	GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error)
	Close() error
}
