// Package metrics exposes Prometheus metrics for the search server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ersonp/person-search/internal/domain/entities"
)

// Namespace prefixes every metric name.
const Namespace = "personsearch"

// Collector holds the Prometheus metrics for one server instance.
// A nil *Collector is valid and records nothing.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	SearchResults  prometheus.Histogram
	SearchFailures prometheus.Counter
}

// NewCollector creates a collector with its own registry.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		SearchResults: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_results",
				Help:      "Number of records returned per name search",
				Buckets:   prometheus.LinearBuckets(0, 1, entities.MaxSearchResults+1),
			},
		),
		SearchFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "search_failures_total",
				Help:      "Total number of name searches that failed in the store",
			},
		),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.SearchResults,
		c.SearchFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one completed HTTP request.
func (c *Collector) ObserveRequest(method, route string, status int, duration time.Duration) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveSearch records the outcome of one name search.
func (c *Collector) ObserveSearch(results int, err error) {
	if c == nil {
		return
	}
	if err != nil {
		c.SearchFailures.Inc()
		return
	}
	c.SearchResults.Observe(float64(results))
}
