package llm

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

// captureClient records the context it was called with.
type captureClient struct {
	sawDeadline bool
	flow        string
	calls       int
}

func (c *captureClient) Name() string { return "capture" }
func (c *captureClient) Close() error { return nil }
func (c *captureClient) GenerateJSON(ctx context.Context, _ string) (json.RawMessage, error) {
	c.calls++
	_, c.sawDeadline = ctx.Deadline()
	c.flow = FlowFrom(ctx)
	return json.RawMessage(`{}`), nil
}

func TestTimeoutMiddlewareSetsDeadline(t *testing.T) {
	inner := &captureClient{}
	client := Wrap(inner, Timeout(time.Second))

	if _, err := client.GenerateJSON(context.Background(), "p"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !inner.sawDeadline {
		t.Fatal("inner call should carry a deadline")
	}

	inner = &captureClient{}
	client = Wrap(inner, Timeout(0))
	if _, err := client.GenerateJSON(context.Background(), "p"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if inner.sawDeadline {
		t.Fatal("zero timeout must not set a deadline")
	}
}

func TestWrapPreservesNameAndFlow(t *testing.T) {
	inner := &captureClient{}
	client := Wrap(inner, WithLogging(nil), RateLimit(0, 0), Timeout(time.Second))

	if client.Name() != "capture" {
		t.Fatalf("name = %q", client.Name())
	}
	ctx := WithFlow(context.Background(), "chat")
	if _, err := client.GenerateJSON(ctx, "p"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if inner.flow != "chat" {
		t.Fatalf("flow = %q, want chat", inner.flow)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestRateLimitHonorsContextCancel(t *testing.T) {
	inner := &captureClient{}
	client := Wrap(inner, RateLimit(0.001, 1))
	defer client.Close()

	ctx := WithFlow(context.Background(), "chat")
	if _, err := client.GenerateJSON(ctx, "p"); err != nil {
		t.Fatalf("first call should pass on the burst token: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	if _, err := client.GenerateJSON(ctx, "p"); err == nil {
		t.Fatal("second call should fail waiting for a token")
	}
	if inner.calls != 1 {
		t.Fatalf("calls = %d, want 1", inner.calls)
	}
}

func TestFakeClientOutputsMatchFlows(t *testing.T) {
	f := NewFakeClient()
	for _, flow := range []string{"recommend", "chat", "complete"} {
		raw, err := f.GenerateJSON(WithFlow(context.Background(), flow), "p")
		if err != nil {
			t.Fatalf("%s: %v", flow, err)
		}
		var v map[string]any
		if err := json.Unmarshal(raw, &v); err != nil {
			t.Fatalf("%s: not an object: %v", flow, err)
		}
	}
}

func TestScriptedClientExhaustion(t *testing.T) {
	s := &ScriptedClient{Responses: []json.RawMessage{json.RawMessage(`{}`)}}
	if _, err := s.GenerateJSON(context.Background(), "a"); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := s.GenerateJSON(context.Background(), "b"); err == nil {
		t.Fatal("exhausted script must error")
	}
	if len(s.Prompts) != 2 {
		t.Fatalf("prompts = %d, want 2", len(s.Prompts))
	}
}
