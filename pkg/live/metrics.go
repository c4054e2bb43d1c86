package live

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "dropdown"
	metricsSubsystem = "live"
)

// Metrics holds the Prometheus collectors of the live host.
// A nil *Metrics records nothing.
type Metrics struct {
	events        *prometheus.CounterVec
	eventDuration *prometheus.HistogramVec
	renders       prometheus.Counter
	activePages   prometheus.Gauge
	selections    *prometheus.CounterVec
}

// MetricsOption configures NewMetrics.
type MetricsOption func(*metricsOptions)

type metricsOptions struct {
	registry prometheus.Registerer
}

// WithRegistry registers the collectors in reg instead of the default
// registerer.
func WithRegistry(reg prometheus.Registerer) MetricsOption {
	return func(o *metricsOptions) { o.registry = reg }
}

// NewMetrics creates and registers the live host collectors.
func NewMetrics(opts ...MetricsOption) *Metrics {
	o := metricsOptions{registry: prometheus.DefaultRegisterer}
	for _, opt := range opts {
		opt(&o)
	}
	f := promauto.With(o.registry)

	counter := func(name, help string) prometheus.CounterOpts {
		return prometheus.CounterOpts{Namespace: metricsNamespace, Subsystem: metricsSubsystem, Name: name, Help: help}
	}
	return &Metrics{
		events: f.NewCounterVec(
			counter("events_total", "Total number of client messages dispatched"),
			[]string{"event", "status"}),
		eventDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "event_duration_seconds",
			Help:      "Event dispatch duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"event"}),
		renders: f.NewCounter(
			counter("renders_total", "Total number of page renders")),
		activePages: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "active_pages",
			Help:      "Number of open live pages",
		}),
		selections: f.NewCounterVec(
			counter("selection_changes_total", "Total number of dropdown selection changes"),
			[]string{"widget"}),
	}
}

func (m *Metrics) observeEvent(event string, err error, d time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.events.WithLabelValues(event, status).Inc()
	m.eventDuration.WithLabelValues(event).Observe(d.Seconds())
}

func (m *Metrics) recordRender() {
	if m != nil {
		m.renders.Inc()
	}
}

func (m *Metrics) pageOpened() {
	if m != nil {
		m.activePages.Inc()
	}
}

func (m *Metrics) pageClosed() {
	if m != nil {
		m.activePages.Dec()
	}
}

// RecordSelection counts a selection change of the named widget.
func (m *Metrics) RecordSelection(widget string) {
	if m != nil {
		m.selections.WithLabelValues(widget).Inc()
	}
}
