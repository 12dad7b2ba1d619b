package regime

import "github.com/prometheus/client_golang/prometheus"

// cacheMetrics exposes counters for the per-day decision cache.
type cacheMetrics struct {
	hits   prometheus.Counter
	misses prometheus.Counter
}

func newCacheMetrics(reg prometheus.Registerer) *cacheMetrics {
	m := &cacheMetrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "regimegate",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Number of trade-gate lookups served from the per-day cache.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "regimegate",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Number of trade-gate lookups that required a fresh computation.",
		}),
	}

	reg.MustRegister(m.hits, m.misses)

	return m
}

func (m *cacheMetrics) hit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *cacheMetrics) miss() {
	if m != nil {
		m.misses.Inc()
	}
}
