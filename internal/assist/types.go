package assist

// Request and result types for the three operations. JSON tags mirror
// the declared shapes in internal/schema; everything here lives for one
// request and is never cached or mutated in place.

type RecommendationRequest struct {
	ProjectDescription string `json:"projectDescription"`
}

type RecommendationResult struct {
	Recommendations []string `json:"recommendations"`
}

// Message is one conversation turn, oldest first. The caller owns the
// history and its trimming; nothing is persisted across requests.
type Message struct {
	Role    string `json:"role"` // "user" or "model"
	Content string `json:"content"`
}

type AssistantRequest struct {
	Query    string    `json:"query"`
	History  []Message `json:"history,omitempty"`
	Location string    `json:"location,omitempty"`
}

type AssistantResult struct {
	Answer string `json:"answer"`
	// Link is a calculator slug for internal navigation or a
	// fully-qualified URL; empty when no resource applies.
	Link string `json:"link,omitempty"`
}

type CompletionRequest struct {
	CalculatorName  string            `json:"calculatorName"`
	KnownParameters map[string]string `json:"knownParameters"`
}

type CompletionResult struct {
	FilledValues map[string]string `json:"filledValues,omitempty"`
	Guidance     string            `json:"guidance,omitempty"`
}
