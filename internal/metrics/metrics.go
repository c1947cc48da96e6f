// Package metrics holds the Prometheus counters exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// IncrementalCounter is a labelled counter.
type IncrementalCounter interface {
	Increment(val ...string)
}

// Counter wraps a prometheus.CounterVec.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

var _ IncrementalCounter = (*Counter)(nil)

func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// NewCounterWithRegistry creates a counter and registers it with reg.
func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) *Counter {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	reg.MustRegister(vec)

	return &Counter{
		Name: name,
		Help: help,
		vec:  vec,
	}
}

// Metrics is the set of counters the site records.
type Metrics struct {
	Registry     *prometheus.Registry
	Requests     *Counter // route, code
	ReferenceHit *Counter // source, result
}

// New returns the site counters on a fresh registry, alongside the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Metrics{
		Registry: reg,
		Requests: NewCounterWithRegistry(reg, "docsite_http_requests_total",
			"HTTP requests served, by route pattern and status code.", "route", "code"),
		ReferenceHit: NewCounterWithRegistry(reg, "docsite_reference_cache_total",
			"Reference documentation cache lookups, by source and result.", "source", "result"),
	}
}

// ObserveReference records a reference cache lookup.
func (m *Metrics) ObserveReference(source string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.ReferenceHit.Increment(source, result)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
