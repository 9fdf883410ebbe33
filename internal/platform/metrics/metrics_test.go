// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jkamin61/wmm-sub000/internal/platform/metrics"
)

func TestCatalog_ObserveTransition(t *testing.T) {
	registry := prometheus.NewRegistry()
	catalog := metrics.NewWithRegistry(registry, registry)

	catalog.ObserveTransition("item", "publish")
	catalog.ObserveTransition("item", "publish")
	catalog.ObserveTransition("topic", "archive")

	count, err := testutil.GatherAndCount(registry, "catalog_lifecycle_transitions_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCatalog_HandlerServesSearchHistogram(t *testing.T) {
	registry := prometheus.NewRegistry()
	catalog := metrics.NewWithRegistry(registry, registry)
	catalog.ObserveSearch("text_only", 12*time.Millisecond)

	recorder := httptest.NewRecorder()
	catalog.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `catalog_search_duration_seconds_count{shape="text_only"} 1`)
}

func TestCatalog_NilIsNoop(t *testing.T) {
	var catalog *metrics.Catalog
	assert.NotPanics(t, func() {
		catalog.ObserveTransition("item", "publish")
		catalog.ObserveSearch("filter_only", time.Millisecond)
		catalog.ObserveRequest("GET", "/api/v1/search", "200", time.Millisecond)
	})
}
