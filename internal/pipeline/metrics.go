package pipeline

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the prospect pipeline.
type Metrics struct {
	Registry        *prometheus.Registry
	CyclesTotal     prometheus.Counter
	CandidatesTotal *prometheus.CounterVec
	LeadsTotal      prometheus.Counter
	ErrorsTotal     *prometheus.CounterVec
	SearchDuration  prometheus.Histogram
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	cycles := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "prospect_cycles_total",
		Help: "Total scan cycles executed.",
	})
	candidates := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prospect_candidates_total",
			Help: "Candidates processed, by outcome.",
		},
		[]string{"outcome"},
	)
	leads := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "prospect_leads_total",
		Help: "Leads appended to the store.",
	})
	errorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prospect_errors_total",
			Help: "Pipeline errors, by type.",
		},
		[]string{"error_type"},
	)
	searchDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "prospect_search_duration_seconds",
		Help:    "Directory search latency.",
		Buckets: prometheus.DefBuckets,
	})

	registry.MustRegister(cycles, candidates, leads, errorsTotal, searchDuration)

	return &Metrics{
		Registry:        registry,
		CyclesTotal:     cycles,
		CandidatesTotal: candidates,
		LeadsTotal:      leads,
		ErrorsTotal:     errorsTotal,
		SearchDuration:  searchDuration,
	}
}

func (m *Metrics) IncCycle() {
	if m == nil {
		return
	}
	m.CyclesTotal.Inc()
}

func (m *Metrics) IncCandidate(outcome string) {
	if m == nil {
		return
	}
	m.CandidatesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncLead() {
	if m == nil {
		return
	}
	m.LeadsTotal.Inc()
}

func (m *Metrics) IncError(errorType string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(errorType).Inc()
}

func (m *Metrics) ObserveSearch(d time.Duration) {
	if m == nil {
		return
	}
	m.SearchDuration.Observe(d.Seconds())
}
