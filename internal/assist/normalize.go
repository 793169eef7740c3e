package assist

import (
	"encoding/json"
	"strings"

	"homecalc/internal/util/jsonutil"
)

// Normalization runs after schema validation: it re-types the validated
// payload and fills declared defaults. It never invents required
// fields; a missing required field is a validation failure upstream.

func normalizeRecommendation(raw json.RawMessage) (RecommendationResult, error) {
	var res RecommendationResult
	if err := jsonutil.DecodeStrict(raw, &res); err != nil {
		return RecommendationResult{}, err
	}
	if res.Recommendations == nil {
		res.Recommendations = []string{}
	}
	for i, name := range res.Recommendations {
		res.Recommendations[i] = strings.TrimSpace(name)
	}
	return res, nil
}

func normalizeAssistant(raw json.RawMessage) (AssistantResult, error) {
	var res AssistantResult
	if err := jsonutil.DecodeStrict(raw, &res); err != nil {
		return AssistantResult{}, err
	}
	res.Answer = strings.TrimSpace(res.Answer)
	res.Link = strings.TrimSpace(res.Link)
	return res, nil
}

func normalizeCompletion(raw json.RawMessage) (CompletionResult, error) {
	var res CompletionResult
	if err := jsonutil.DecodeStrict(raw, &res); err != nil {
		return CompletionResult{}, err
	}
	for k, v := range res.FilledValues {
		res.FilledValues[k] = strings.TrimSpace(v)
	}
	res.Guidance = strings.TrimSpace(res.Guidance)
	return res, nil
}

// isExternalLink reports whether link is a fully-qualified URL rather
// than a calculator slug.
func isExternalLink(link string) bool {
	return strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://")
}
