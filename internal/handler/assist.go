package handler

import (
	"net/http"

	"homecalc/internal/assist"
)

// Recommend handles POST /api/recommendations.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req assist.RecommendationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := h.svc.RecommendCalculators(r.Context(), req)
	if err != nil {
		h.writeFlowError(w, "recommendCalculators", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Chat handles POST /api/chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req assist.AssistantRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := h.svc.Chatbot(r.Context(), req)
	if err != nil {
		h.writeFlowError(w, "chatbot", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Assist handles POST /api/assist (parameter completion).
func (h *Handler) Assist(w http.ResponseWriter, r *http.Request) {
	var req assist.CompletionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := h.svc.GetAIAssistance(r.Context(), req)
	if err != nil {
		h.writeFlowError(w, "getAiAssistance", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
