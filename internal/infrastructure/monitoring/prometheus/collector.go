// Package prometheus wraps prometheus/client_golang behind small interfaces so
// that application code can record metrics without importing the client
// library, and tests can swap in a no-op collector.
package prometheus

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/logging"
)

// MetricsCollector defines the interface for metrics collection.
type MetricsCollector interface {
	RegisterCounter(name, help string, labels ...string) CounterVec
	RegisterGauge(name, help string, labels ...string) GaugeVec
	RegisterHistogram(name, help string, buckets []float64, labels ...string) HistogramVec
	Handler() http.Handler
	MustRegister(collectors ...prometheus.Collector)
}

// CounterVec wraps prometheus.CounterVec.
type CounterVec interface {
	WithLabelValues(lvs ...string) Counter
}

// Counter wraps prometheus.Counter.
type Counter interface {
	Inc()
	Add(delta float64)
}

// GaugeVec wraps prometheus.GaugeVec.
type GaugeVec interface {
	WithLabelValues(lvs ...string) Gauge
}

// Gauge wraps prometheus.Gauge.
type Gauge interface {
	Set(value float64)
	Inc()
	Dec()
}

// HistogramVec wraps prometheus.HistogramVec.
type HistogramVec interface {
	WithLabelValues(lvs ...string) Histogram
}

// Histogram wraps prometheus.Observer.
type Histogram interface {
	Observe(value float64)
}

// CollectorConfig holds configuration for the collector.
type CollectorConfig struct {
	Namespace               string
	Subsystem               string
	EnableProcessMetrics    bool
	EnableGoMetrics         bool
	DefaultHistogramBuckets []float64
	ConstLabels             map[string]string
}

type prometheusCollector struct {
	registry *prometheus.Registry
	cfg      CollectorConfig
	logger   logging.Logger

	mu   sync.Mutex
	seen map[string]prometheus.Collector
}

// NewMetricsCollector creates a MetricsCollector backed by a private registry.
func NewMetricsCollector(cfg CollectorConfig, logger logging.Logger) (MetricsCollector, error) {
	if cfg.Namespace == "" {
		return nil, fmt.Errorf("prometheus: namespace is required")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if cfg.DefaultHistogramBuckets == nil {
		cfg.DefaultHistogramBuckets = prometheus.DefBuckets
	}

	reg := prometheus.NewRegistry()
	if cfg.EnableGoMetrics {
		reg.MustRegister(collectors.NewGoCollector())
	}
	if cfg.EnableProcessMetrics {
		reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: cfg.Namespace}))
	}
	return &prometheusCollector{
		registry: reg,
		cfg:      cfg,
		logger:   logger,
		seen:     make(map[string]prometheus.Collector),
	}, nil
}

func (c *prometheusCollector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

func (c *prometheusCollector) MustRegister(cs ...prometheus.Collector) {
	c.registry.MustRegister(cs...)
}

// opts fills the fields every metric kind shares.
func (c *prometheusCollector) opts(name, help string) prometheus.Opts {
	return prometheus.Opts{
		Namespace:   c.cfg.Namespace,
		Subsystem:   c.cfg.Subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: c.cfg.ConstLabels,
	}
}

// registerVec registers vec under name, or hands back the vector registered
// earlier under the same name. ok is false when registration failed or the
// earlier vector is of another kind.
func registerVec[V prometheus.Collector](c *prometheusCollector, kind, name string, vec V) (V, bool) {
	fq := prometheus.BuildFQName(c.cfg.Namespace, c.cfg.Subsystem, name)

	c.mu.Lock()
	existing, dup := c.seen[fq]
	if !dup {
		if err := c.registry.Register(vec); err != nil {
			c.mu.Unlock()
			c.logger.Error("metric registration failed",
				logging.String("name", fq), logging.String("kind", kind), logging.Err(err))
			var zero V
			return zero, false
		}
		c.seen[fq] = vec
		existing = vec
	}
	c.mu.Unlock()

	got, ok := existing.(V)
	if !ok {
		c.logger.Warn("metric already registered with another kind",
			logging.String("name", fq), logging.String("kind", kind))
	}
	return got, ok
}

func (c *prometheusCollector) RegisterCounter(name, help string, labels ...string) CounterVec {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts(c.opts(name, help)), labels)
	if v, ok := registerVec(c, "counter", name, vec); ok {
		return counterVec{v}
	}
	return noopCounterVec{}
}

func (c *prometheusCollector) RegisterGauge(name, help string, labels ...string) GaugeVec {
	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts(c.opts(name, help)), labels)
	if v, ok := registerVec(c, "gauge", name, vec); ok {
		return gaugeVec{v}
	}
	return noopGaugeVec{}
}

func (c *prometheusCollector) RegisterHistogram(name, help string, buckets []float64, labels ...string) HistogramVec {
	if buckets == nil {
		buckets = c.cfg.DefaultHistogramBuckets
	}
	o := c.opts(name, help)
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   o.Namespace,
		Subsystem:   o.Subsystem,
		Name:        o.Name,
		Help:        o.Help,
		ConstLabels: o.ConstLabels,
		Buckets:     buckets,
	}, labels)
	if v, ok := registerVec(c, "histogram", name, vec); ok {
		return histogramVec{v}
	}
	return noopHistogramVec{}
}

type counterVec struct{ *prometheus.CounterVec }

func (v counterVec) WithLabelValues(lvs ...string) Counter {
	return v.CounterVec.WithLabelValues(lvs...)
}

type gaugeVec struct{ *prometheus.GaugeVec }

func (v gaugeVec) WithLabelValues(lvs ...string) Gauge {
	return v.GaugeVec.WithLabelValues(lvs...)
}

type histogramVec struct{ *prometheus.HistogramVec }

func (v histogramVec) WithLabelValues(lvs ...string) Histogram {
	return v.HistogramVec.WithLabelValues(lvs...)
}

// No-op implementations

type noopCounterVec struct{}

func (noopCounterVec) WithLabelValues(...string) Counter { return noopMetric{} }

type noopGaugeVec struct{}

func (noopGaugeVec) WithLabelValues(...string) Gauge { return noopMetric{} }

type noopHistogramVec struct{}

func (noopHistogramVec) WithLabelValues(...string) Histogram { return noopMetric{} }

type noopMetric struct{}

func (noopMetric) Inc()            {}
func (noopMetric) Dec()            {}
func (noopMetric) Add(float64)     {}
func (noopMetric) Set(float64)     {}
func (noopMetric) Observe(float64) {}

type noopCollector struct{}

// NewNoopCollector returns a MetricsCollector that records nothing; its
// Handler answers 404.
func NewNoopCollector() MetricsCollector { return noopCollector{} }

func (noopCollector) RegisterCounter(string, string, ...string) CounterVec { return noopCounterVec{} }
func (noopCollector) RegisterGauge(string, string, ...string) GaugeVec     { return noopGaugeVec{} }
func (noopCollector) RegisterHistogram(string, string, []float64, ...string) HistogramVec {
	return noopHistogramVec{}
}
func (noopCollector) Handler() http.Handler             { return http.NotFoundHandler() }
func (noopCollector) MustRegister(...prometheus.Collector) {}

// Timer observes elapsed wall time into a Histogram.
type Timer struct {
	histogram Histogram
	start     time.Time
}

// NewTimer starts a Timer.
func NewTimer(histogram Histogram) *Timer {
	return &Timer{histogram: histogram, start: time.Now()}
}

// ObserveDuration records the seconds since NewTimer.
func (t *Timer) ObserveDuration() time.Duration {
	d := time.Since(t.start)
	if t.histogram != nil {
		t.histogram.Observe(d.Seconds())
	}
	return d
}

//Personal.AI order the ending
