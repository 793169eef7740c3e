package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	flowRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "homecalc_flow_requests_total",
		Help: "AI flow invocations by flow and outcome.",
	}, []string{"flow", "status"})

	flowDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "homecalc_flow_duration_seconds",
		Help:    "End-to-end AI flow latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"flow"})

	modelRounds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "homecalc_model_rounds",
		Help:    "Model round-trips consumed per flow invocation.",
		Buckets: []float64{1, 2, 3, 4, 5},
	}, []string{"flow"})

	toolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "homecalc_tool_calls_total",
		Help: "Tool dispatches by tool and outcome.",
	}, []string{"tool", "status"})
)

// ObserveFlow records one completed flow invocation.
func ObserveFlow(flow, status string, elapsed time.Duration, rounds int) {
	flowRequests.WithLabelValues(flow, status).Inc()
	flowDuration.WithLabelValues(flow).Observe(elapsed.Seconds())
	if rounds > 0 {
		modelRounds.WithLabelValues(flow).Observe(float64(rounds))
	}
}

// ObserveToolCall records one tool dispatch.
func ObserveToolCall(tool, status string) {
	toolCalls.WithLabelValues(tool, status).Inc()
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler { return promhttp.Handler() }
