package llm

import "context"

type ctxKeyFlow struct{}

// WithFlow tags the context with the orchestration flow issuing the
// request ("recommend", "chat", "complete"). Middleware and the fake
// client key their behavior off it.
func WithFlow(ctx context.Context, flow string) context.Context {
	return context.WithValue(ctx, ctxKeyFlow{}, flow)
}

// FlowFrom returns the flow stored in the context.
func FlowFrom(ctx context.Context) string {
	if v := ctx.Value(ctxKeyFlow{}); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return "unknown"
}
