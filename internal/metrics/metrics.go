// Package metrics holds the Prometheus collectors exported by the server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "settleup"

// Outcome labels for settlement requests.
const (
	OutcomeSettled  = "settled"  // transactions were produced
	OutcomeBalanced = "balanced" // nothing to pay
	OutcomeRejected = "rejected" // invalid input
)

// Metrics groups the collectors for one registry.
type Metrics struct {
	registry *prometheus.Registry

	Settlements  *prometheus.CounterVec
	Participants prometheus.Histogram
	Transactions prometheus.Histogram
	RPCDuration  *prometheus.HistogramVec
}

// New creates a registry with Go/process collectors and settleup's own.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Settlements: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_total",
			Help:      "Settlement requests by outcome.",
		}, []string{"outcome"}),
		Participants: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlement_participants",
			Help:      "Participants per settlement request.",
			Buckets:   []float64{2, 3, 4, 6, 8, 12, 16, 25, 50, 100},
		}),
		Transactions: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlement_transactions",
			Help:      "Transactions produced per settlement.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21, 50, 100},
		}),
		RPCDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure and Connect code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}
}

// ObserveSettlement records a completed settlement.
func (m *Metrics) ObserveSettlement(participants, transactions int) {
	outcome := OutcomeSettled
	if transactions == 0 {
		outcome = OutcomeBalanced
	}
	m.Settlements.WithLabelValues(outcome).Inc()
	m.Participants.Observe(float64(participants))
	m.Transactions.Observe(float64(transactions))
}

// ObserveRejected records a settlement request refused before computing.
func (m *Metrics) ObserveRejected() {
	m.Settlements.WithLabelValues(OutcomeRejected).Inc()
}

// ObserveRPC records how long a procedure took. code is "ok" on success.
func (m *Metrics) ObserveRPC(procedure, code string, elapsed time.Duration) {
	m.RPCDuration.WithLabelValues(procedure, code).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
