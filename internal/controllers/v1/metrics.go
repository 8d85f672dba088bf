package v1

import (
	"github.com/prometheus/client_golang/prometheus"
)

var chatResponses = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ai_chat_responses_total",
		Help: "How many AI chat requests were answered, partitioned by the source of the answer.",
	},
	[]string{"source"},
)

var receiptScans = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "receipt_scans_total",
		Help: "How many receipt scans were processed, partitioned by outcome.",
	},
	[]string{"outcome"},
)

// Answer sources for the chatResponses metric
const (
	chatSourceRemote   = "remote"
	chatSourceFallback = "fallback"
	chatSourceSummary  = "summary"
)

// Outcomes for the receiptScans metric
const (
	scanOutcomeOK    = "ok"
	scanOutcomeError = "error"
)

// Metrics returns the Prometheus collectors of this package so the router
// can register them.
func Metrics() []prometheus.Collector {
	return []prometheus.Collector{chatResponses, receiptScans}
}
