package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"homecalc/internal/llm"
	"homecalc/internal/metrics"
	"homecalc/internal/prompt"
	"homecalc/internal/registry"
	"homecalc/internal/schema"
	"homecalc/internal/tools"
	"homecalc/internal/util/jsonutil"
)

// Service exposes the three AI operations. It holds no per-request
// state: the registry is read-only, the LLM client and tool registry
// are safe for concurrent use, and conversation history is supplied by
// the caller on every call.
type Service struct {
	reg       *registry.Registry
	client    llm.Client
	toolReg   *tools.Registry
	maxRounds int
	log       *zap.Logger
}

// New wires a service. toolReg may be nil when the assistant flow is
// not needed (tests exercise flows individually).
func New(reg *registry.Registry, client llm.Client, toolReg *tools.Registry, maxRounds int, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		reg:       reg,
		client:    client,
		toolReg:   toolReg,
		maxRounds: maxRounds,
		log:       log,
	}
}

// RecommendCalculators matches a free-text project description to
// catalog entries. An empty recommendation list is the documented
// "no match" signal, never an error.
func (s *Service) RecommendCalculators(ctx context.Context, req RecommendationRequest) (RecommendationResult, error) {
	start := time.Now()
	res, state, err := s.recommend(ctx, req)
	s.observe("recommend", start, state, err)
	return res, err
}

func (s *Service) recommend(ctx context.Context, req RecommendationRequest) (RecommendationResult, *ToolState, error) {
	if err := validateRequest(schema.RecommendationRequest, req); err != nil {
		return RecommendationResult{}, nil, err
	}
	ctx = llm.WithFlow(ctx, "recommend")

	catalog := s.reg.All()
	build := func(_ *ToolState, _ []tools.Spec) (string, error) {
		return prompt.Recommendation(catalog, req.ProjectDescription), nil
	}
	inv := &Invoker{LLM: s.client, MaxRounds: s.maxRounds}
	raw, state, err := inv.Invoke(ctx, build, schema.RecommendationResult)
	if err != nil {
		return RecommendationResult{}, state, err
	}

	res, err := normalizeRecommendation(raw)
	if err != nil {
		return RecommendationResult{}, state, fmt.Errorf("%w: %v", ErrResponseValidation, err)
	}
	// Hard boundary: every returned name must exist in the registry,
	// spelled exactly.
	for _, name := range res.Recommendations {
		if _, ok := s.reg.ByName(name); !ok {
			return RecommendationResult{}, state, fmt.Errorf("%w: unknown calculator %q", ErrResponseValidation, name)
		}
	}
	return res, state, nil
}

// Chatbot answers a conversational query, optionally performing bounded
// provider-lookup tool round-trips.
func (s *Service) Chatbot(ctx context.Context, req AssistantRequest) (AssistantResult, error) {
	start := time.Now()
	res, state, err := s.chat(ctx, req)
	s.observe("chat", start, state, err)
	return res, err
}

func (s *Service) chat(ctx context.Context, req AssistantRequest) (AssistantResult, *ToolState, error) {
	if err := validateRequest(schema.AssistantRequest, req); err != nil {
		return AssistantResult{}, nil, err
	}
	ctx = llm.WithFlow(ctx, "chat")

	catalog := s.reg.All()
	history := make([]prompt.Turn, 0, len(req.History))
	for _, m := range req.History {
		history = append(history, prompt.Turn{Role: m.Role, Content: m.Content})
	}
	build := func(state *ToolState, specs []tools.Spec) (string, error) {
		return prompt.Assistant(catalog, history, req.Query, req.Location,
			FormatToolSpecs(specs), FormatToolResults(state.ToolResults)), nil
	}
	inv := &Invoker{LLM: s.client, Tools: s.toolReg, MaxRounds: s.maxRounds}
	raw, state, err := inv.Invoke(ctx, build, schema.AssistantResult)
	if err != nil {
		return AssistantResult{}, state, err
	}

	res, err := normalizeAssistant(raw)
	if err != nil {
		return AssistantResult{}, state, fmt.Errorf("%w: %v", ErrResponseValidation, err)
	}
	// A non-URL link must resolve to a registered slug.
	if res.Link != "" && !isExternalLink(res.Link) {
		if _, ok := s.reg.BySlug(res.Link); !ok {
			return AssistantResult{}, state, fmt.Errorf("%w: link %q matches no calculator slug", ErrResponseValidation, res.Link)
		}
	}
	return res, state, nil
}

// GetAIAssistance estimates missing calculator parameters and produces
// a short guidance hint. Invoked on demand per calculator instance.
func (s *Service) GetAIAssistance(ctx context.Context, req CompletionRequest) (CompletionResult, error) {
	start := time.Now()
	res, state, err := s.complete(ctx, req)
	s.observe("complete", start, state, err)
	return res, err
}

func (s *Service) complete(ctx context.Context, req CompletionRequest) (CompletionResult, *ToolState, error) {
	if err := validateRequest(schema.CompletionRequest, req); err != nil {
		return CompletionResult{}, nil, err
	}
	ctx = llm.WithFlow(ctx, "complete")

	build := func(_ *ToolState, _ []tools.Spec) (string, error) {
		return prompt.Completion(req.CalculatorName, req.KnownParameters), nil
	}
	inv := &Invoker{LLM: s.client, MaxRounds: s.maxRounds}
	raw, state, err := inv.Invoke(ctx, build, schema.CompletionResult)
	if err != nil {
		return CompletionResult{}, state, err
	}

	res, err := normalizeCompletion(raw)
	if err != nil {
		return CompletionResult{}, state, fmt.Errorf("%w: %v", ErrResponseValidation, err)
	}
	// filledValues keys must be a subset of the caller's declared
	// parameter set; the flow never invents a parameter name.
	for key := range res.FilledValues {
		if _, ok := req.KnownParameters[key]; !ok {
			return CompletionResult{}, state, fmt.Errorf("%w: filledValues key %q not in knownParameters", ErrResponseValidation, key)
		}
	}
	return res, state, nil
}

// validateRequest marshals req and checks it against its declared
// shape before any model call.
func validateRequest(shape *schema.Shape, req any) error {
	raw, err := jsonutil.MarshalNoEscape(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestValidation, err)
	}
	if err := shape.Validate(json.RawMessage(raw)); err != nil {
		return fmt.Errorf("%w: %v", ErrRequestValidation, err)
	}
	return nil
}

func (s *Service) observe(flow string, start time.Time, state *ToolState, err error) {
	rounds := 0
	if state != nil {
		rounds = state.Rounds
	}
	status := "ok"
	if err != nil {
		status = "error"
		s.log.Warn("flow failed",
			zap.String("flow", flow),
			zap.Int("rounds", rounds),
			zap.Error(err))
	} else {
		s.log.Debug("flow ok",
			zap.String("flow", flow),
			zap.Int("rounds", rounds),
			zap.Duration("elapsed", time.Since(start)))
	}
	metrics.ObserveFlow(flow, status, time.Since(start), rounds)
}
