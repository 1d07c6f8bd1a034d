package elimination

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of a Division.
type Metrics struct {
	queries      *prometheus.CounterVec
	cacheHits    prometheus.Counter
	computations *prometheus.CounterVec
	flowDuration prometheus.Histogram
}

// Outcome and computation label values.
const (
	outcomeEliminated    = "eliminated"
	outcomeNotEliminated = "not_eliminated"
	outcomeError         = "error"

	kindTrivial = "trivial"
	kindFlow    = "flow"
)

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pennant",
			Subsystem: "elimination",
			Name:      "queries_total",
			Help:      "Elimination queries by outcome.",
		}, []string{"outcome"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pennant",
			Subsystem: "elimination",
			Name:      "cache_hits_total",
			Help:      "Queries answered from the result cache.",
		}),
		computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pennant",
			Subsystem: "elimination",
			Name:      "computations_total",
			Help:      "Uncached elimination computations by deciding check.",
		}, []string{"kind"}),
		flowDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pennant",
			Subsystem: "elimination",
			Name:      "flow_duration_seconds",
			Help:      "Time spent building and solving one flow network.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}

	for _, c := range []prometheus.Collector{m.queries, m.cacheHits, m.computations, m.flowDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observeQuery(r Result, hit bool, err error) {
	if m == nil {
		return
	}
	switch {
	case err != nil:
		m.queries.WithLabelValues(outcomeError).Inc()
		return
	case r.Eliminated():
		m.queries.WithLabelValues(outcomeEliminated).Inc()
	default:
		m.queries.WithLabelValues(outcomeNotEliminated).Inc()
	}
	if hit {
		m.cacheHits.Inc()
	}
}

func (m *Metrics) observeComputation(trivial bool, flowTime time.Duration) {
	if m == nil {
		return
	}
	if trivial {
		m.computations.WithLabelValues(kindTrivial).Inc()
		return
	}
	m.computations.WithLabelValues(kindFlow).Inc()
	m.flowDuration.Observe(flowTime.Seconds())
}
