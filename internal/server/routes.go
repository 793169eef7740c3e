package server

import (
	"net/http"

	"go.uber.org/zap"

	"homecalc/internal/handler"
	"homecalc/internal/metrics"
)

func NewMux(h *handler.Handler, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/recommendations", h.Recommend)
	mux.HandleFunc("POST /api/chat", h.Chat)
	mux.HandleFunc("GET /api/chat/ws", h.ChatWS)
	mux.HandleFunc("POST /api/assist", h.Assist)

	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	out := http.Handler(mux)
	out = RequestLog(log)(out)
	out = CORS(out)
	return out
}
