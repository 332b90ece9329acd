package metrics

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	codesIssuedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "access_codes_issued_total",
			Help: "Count of access codes minted.",
		},
	)

	codeRedemptionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "access_code_redemptions_total",
			Help: "Redemption attempts by outcome (succeeded/failed).",
		},
		[]string{"outcome"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method and status class.",
		},
		[]string{"method", "status"},
	)

	httpLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_latency_ms",
			Help:    "HTTP request latency distribution in milliseconds.",
			Buckets: []float64{5, 10, 25, 50, 100, 200, 400, 800, 1600, 3000},
		},
		[]string{"method"},
	)
)

// MustRegister registers collectors with the default registry (idempotent).
func MustRegister() {
	once.Do(func() {
		prometheus.MustRegister(
			codesIssuedTotal, codeRedemptionsTotal,
			httpRequestsTotal, httpLatencyMs,
		)
	})
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// -------- Access code helpers --------

func CodeIssued() { codesIssuedTotal.Inc() }

func CodeRedeemed(outcome string) {
	codeRedemptionsTotal.WithLabelValues(norm(outcome)).Inc()
}

// -------- HTTP helpers --------

func ObserveHTTP(method, status string, latencyMs float64) {
	httpRequestsTotal.WithLabelValues(norm(method), status).Inc()
	httpLatencyMs.WithLabelValues(norm(method)).Observe(latencyMs)
}
