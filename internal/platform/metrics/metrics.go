// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics owns the Prometheus collectors exported on /metrics.
//
// A nil [*Catalog] is valid and records nothing, so services can be built in
// tests without a registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Catalog groups every collector the catalog service reports.
type Catalog struct {
	transitions    *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
	httpDuration   *prometheus.HistogramVec
	gatherer       prometheus.Gatherer
}

// New creates the collectors and registers them on a dedicated registry that
// also carries the Go runtime and process collectors.
func New() *Catalog {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(registry, registry)
}

// NewWithRegistry registers the collectors on registerer and serves gatherer.
func NewWithRegistry(registerer prometheus.Registerer, gatherer prometheus.Gatherer) *Catalog {
	catalog := &Catalog{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_lifecycle_transitions_total",
			Help: "Successful lifecycle transitions by content kind and action.",
		}, []string{"kind", "action"}),

		searchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "catalog_search_duration_seconds",
			Help:    "Latency of catalog searches by query shape.",
			Buckets: prometheus.DefBuckets,
		}, []string{"shape"}),

		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "catalog_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),

		gatherer: gatherer,
	}

	registerer.MustRegister(catalog.transitions, catalog.searchDuration, catalog.httpDuration)
	return catalog
}

// ObserveTransition counts one successful lifecycle transition.
func (catalog *Catalog) ObserveTransition(kind, action string) {
	if catalog == nil {
		return
	}
	catalog.transitions.WithLabelValues(kind, action).Inc()
}

// ObserveSearch records the latency of one search execution.
func (catalog *Catalog) ObserveSearch(shape string, elapsed time.Duration) {
	if catalog == nil {
		return
	}
	catalog.searchDuration.WithLabelValues(shape).Observe(elapsed.Seconds())
}

// ObserveRequest records the latency of one HTTP request.
func (catalog *Catalog) ObserveRequest(method, route, status string, elapsed time.Duration) {
	if catalog == nil {
		return
	}
	catalog.httpDuration.WithLabelValues(method, route, status).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (catalog *Catalog) Handler() http.Handler {
	if catalog == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(catalog.gatherer, promhttp.HandlerOpts{})
}
