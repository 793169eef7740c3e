package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"homecalc/internal/assist"
	"homecalc/internal/util/jsonutil"
)

// maxBodyBytes caps request bodies; conversation history is the only
// unbounded input and 1 MiB is far past any sane transcript.
const maxBodyBytes = 1 << 20

// Handler serves the three AI operations as JSON endpoints.
type Handler struct {
	svc *assist.Service
	log *zap.Logger
}

func New(svc *assist.Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, log: log}
}

// decodeBody reads and strictly decodes the request body; unknown
// top-level fields are rejected.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable request body")
		return false
	}
	if err := jsonutil.DecodeStrict(body, v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeFlowError maps the taxonomy to HTTP statuses. Everything except
// a request-validation failure surfaces as one generic upstream
// failure; callers re-issue the request if they want a retry.
func (h *Handler) writeFlowError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, assist.ErrRequestValidation) {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	h.log.Warn("operation failed", zap.String("op", op), zap.Error(err))
	writeError(w, http.StatusBadGateway, "the assistant is unavailable right now")
}
