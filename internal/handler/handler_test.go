package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homecalc/internal/assist"
	"homecalc/internal/llm"
	"homecalc/internal/registry"
)

func newTestHandler(client llm.Client) *Handler {
	svc := assist.New(registry.Default(), client, nil, 0, nil)
	return New(svc, nil)
}

func post(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestRecommendEndpoint(t *testing.T) {
	client := &llm.ScriptedClient{Responses: []json.RawMessage{
		json.RawMessage(`{"recommendations": ["Paint Calculator"]}`),
	}}
	h := newTestHandler(client)

	rec := post(t, h.Recommend, `{"projectDescription": "repaint the bedroom"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res assist.RecommendationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []string{"Paint Calculator"}, res.Recommendations)
}

func TestRecommendEndpointBadRequests(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", `repaint the bedroom`},
		{"unknown field", `{"projectDescription": "x", "budget": 100}`},
		{"blank description", `{"projectDescription": ""}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandler(&llm.ScriptedClient{})
			rec := post(t, h.Recommend, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestChatEndpoint(t *testing.T) {
	client := &llm.ScriptedClient{Responses: []json.RawMessage{
		json.RawMessage(`{"answer": "Try the tile calculator.", "link": "tile"}`),
	}}
	h := newTestHandler(client)

	rec := post(t, h.Chat, `{"query": "how many tiles do I need?", "history": [{"role": "user", "content": "hi"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res assist.AssistantResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "tile", res.Link)
}

func TestAssistEndpoint(t *testing.T) {
	client := &llm.ScriptedClient{Responses: []json.RawMessage{
		json.RawMessage(`{"filledValues": {"coats": "2"}, "guidance": "Two coats cover most colors."}`),
	}}
	h := newTestHandler(client)

	rec := post(t, h.Assist, `{"calculatorName": "Paint Calculator", "knownParameters": {"coats": "", "wallArea": "350"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res assist.CompletionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "2", res.FilledValues["coats"])
}

func TestUpstreamFailureIsBadGateway(t *testing.T) {
	client := &llm.ScriptedClient{Errs: []error{assert.AnError}}
	h := newTestHandler(client)

	rec := post(t, h.Chat, `{"query": "hello"}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
	assert.NotContains(t, body["error"], "assert.AnError",
		"internal error detail must not leak to the client")
}

func TestBadModelOutputIsBadGateway(t *testing.T) {
	client := &llm.ScriptedClient{Responses: []json.RawMessage{
		json.RawMessage(`{"recommendations": ["Jacuzzi Calculator"]}`),
	}}
	h := newTestHandler(client)

	rec := post(t, h.Recommend, `{"projectDescription": "hot tub install"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
