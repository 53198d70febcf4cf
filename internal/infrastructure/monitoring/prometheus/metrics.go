package prometheus

import (
	"strconv"
	"time"
)

// AppMetrics holds all application metrics.
type AppMetrics struct {
	// HTTP Layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPResponseSize    HistogramVec
	HTTPActiveRequests  GaugeVec

	// Catalog Layer
	CatalogQueriesTotal CounterVec
	CatalogResultCount  HistogramVec
	CatalogRecords      GaugeVec

	// Advisor Layer
	AdvisorRequestsTotal   CounterVec
	AdvisorRequestDuration HistogramVec

	// Infrastructure Layer
	CacheHitsTotal   CounterVec
	CacheMissesTotal CounterVec

	// System Health
	ErrorsTotal CounterVec
}

// Default Buckets
var (
	DefaultHTTPDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultLLMDurationBuckets  = []float64{.1, .5, 1, 2, 5, 10, 20, 30, 60}
	DefaultSizeBuckets         = []float64{100, 1000, 10000, 100000, 1000000}
	DefaultResultCountBuckets  = []float64{0, 1, 5, 10, 20, 30, 40, 50}
)

// NewAppMetrics registers all metrics and returns the AppMetrics struct.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	// HTTP
	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")
	m.HTTPResponseSize = collector.RegisterHistogram("http_response_size_bytes", "HTTP response size", DefaultSizeBuckets, "method", "path")
	m.HTTPActiveRequests = collector.RegisterGauge("http_active_requests", "Active HTTP requests", "method")

	// Catalog
	m.CatalogQueriesTotal = collector.RegisterCounter("catalog_queries_total", "Catalog list queries", "scenario", "sort")
	m.CatalogResultCount = collector.RegisterHistogram("catalog_result_count", "Rows returned per catalog query", DefaultResultCountBuckets, "scenario")
	m.CatalogRecords = collector.RegisterGauge("catalog_records", "Machine records loaded", "kind")

	// Advisor
	m.AdvisorRequestsTotal = collector.RegisterCounter("advisor_requests_total", "Advisor requests", "source", "status")
	m.AdvisorRequestDuration = collector.RegisterHistogram("advisor_request_duration_seconds", "Advisor request duration", DefaultLLMDurationBuckets, "source")

	// Infrastructure
	m.CacheHitsTotal = collector.RegisterCounter("cache_hits_total", "Cache hits", "cache")
	m.CacheMissesTotal = collector.RegisterCounter("cache_misses_total", "Cache misses", "cache")

	// System Health
	m.ErrorsTotal = collector.RegisterCounter("errors_total", "Total errors", "component", "error_type")

	return m
}

// NewNoopAppMetrics returns AppMetrics bound to a no-op collector.
func NewNoopAppMetrics() *AppMetrics {
	return NewAppMetrics(NewNoopCollector())
}

// Helpers

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(metrics *AppMetrics, method, path string, statusCode int, duration time.Duration, respSize int) {
	if metrics == nil {
		return
	}
	metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	if respSize >= 0 {
		metrics.HTTPResponseSize.WithLabelValues(method, path).Observe(float64(respSize))
	}
}

// RecordCatalogQuery records one list query and its result size.
func RecordCatalogQuery(metrics *AppMetrics, scenario, sortKey string, rows int) {
	if metrics == nil {
		return
	}
	metrics.CatalogQueriesTotal.WithLabelValues(scenario, sortKey).Inc()
	metrics.CatalogResultCount.WithLabelValues(scenario).Observe(float64(rows))
}

// RecordAdvisorRequest records one advisor answer.  source is "llm",
// "fallback" or "cache"; status is "ok" or the reason the fallback ran.
func RecordAdvisorRequest(metrics *AppMetrics, source, status string, duration time.Duration) {
	if metrics == nil {
		return
	}
	metrics.AdvisorRequestsTotal.WithLabelValues(source, status).Inc()
	metrics.AdvisorRequestDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordCacheAccess records a hit or miss against the named cache.
func RecordCacheAccess(metrics *AppMetrics, cache string, hit bool) {
	if metrics == nil {
		return
	}
	if hit {
		metrics.CacheHitsTotal.WithLabelValues(cache).Inc()
	} else {
		metrics.CacheMissesTotal.WithLabelValues(cache).Inc()
	}
}

// RecordError counts an error attributed to component.
func RecordError(metrics *AppMetrics, component, errorType string) {
	if metrics == nil {
		return
	}
	metrics.ErrorsTotal.WithLabelValues(component, errorType).Inc()
}

//Personal.AI order the ending
