package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// FakeClient returns deterministic, schema-valid payloads per flow for
// offline development (LLM_FAKE=1).
type FakeClient struct{}

func NewFakeClient() *FakeClient { return &FakeClient{} }

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error) {
	var obj any
	switch FlowFrom(ctx) {
	case "recommend":
		obj = map[string]any{"recommendations": []string{}}
	case "chat":
		obj = map[string]any{
			"action": "final",
			"final":  map[string]any{"answer": "The assistant is running offline; no model is configured."},
		}
	case "complete":
		obj = map[string]any{"guidance": "No model is configured; fill the remaining fields by hand."}
	default:
		obj = map[string]any{}
	}
	b, _ := json.Marshal(obj)
	return json.RawMessage(b), nil
}

// ScriptedClient replays a fixed sequence of responses. Tests drive the
// invoker with it; once the script is exhausted it returns
// ErrEmptyResponse.
type ScriptedClient struct {
	mu        sync.Mutex
	Responses []json.RawMessage
	Errs      []error
	Prompts   []string
}

func (s *ScriptedClient) Name() string { return "scripted" }
func (s *ScriptedClient) Close() error { return nil }

func (s *ScriptedClient) GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Prompts = append(s.Prompts, prompt)
	if len(s.Errs) > 0 {
		err := s.Errs[0]
		s.Errs = s.Errs[1:]
		if err != nil {
			return nil, err
		}
	}
	if len(s.Responses) == 0 {
		return nil, ErrEmptyResponse
	}
	out := s.Responses[0]
	s.Responses = s.Responses[1:]
	return out, nil
}
