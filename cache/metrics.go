package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts cache traffic for one named cache. A nil *Metrics records nothing.
type Metrics struct {
	Hits        prometheus.Counter
	Misses      prometheus.Counter
	Expirations prometheus.Counter
	Evictions   prometheus.Counter
}

// NewMetrics registers the counters of cache name on reg.
func NewMetrics(reg prometheus.Registerer, name string) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"cache": name}
	counter := func(metric, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "stylino",
			Subsystem:   "cache",
			Name:        metric,
			Help:        help,
			ConstLabels: labels,
		})
	}
	return &Metrics{
		Hits:        counter("hits_total", "Cache reads served from memory."),
		Misses:      counter("misses_total", "Cache reads that found no live entry."),
		Expirations: counter("expirations_total", "Entries removed because they expired."),
		Evictions:   counter("evictions_total", "Entries removed to stay within the size bound."),
	}
}

func (m *Metrics) hit() {
	if m != nil {
		m.Hits.Inc()
	}
}

func (m *Metrics) missed() {
	if m != nil {
		m.Misses.Inc()
	}
}

func (m *Metrics) expired() {
	if m != nil {
		m.Expirations.Inc()
	}
}

func (m *Metrics) evicted() {
	if m != nil {
		m.Evictions.Inc()
	}
}
