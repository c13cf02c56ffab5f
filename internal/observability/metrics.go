package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes engine counters on a private prometheus registry.
type Metrics struct {
	registry *prometheus.Registry

	ticketsCreated      prometheus.Counter
	assignments         *prometheus.CounterVec
	messagesAppended    prometheus.Counter
	priorityEscalations prometheus.Counter
	slaWarnings         *prometheus.CounterVec
	resolutions         prometheus.Counter
	resolutionSeconds   prometheus.Histogram
	httpErrors          *prometheus.CounterVec
}

// NewMetrics registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		ticketsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "support_tickets_created_total",
			Help: "Tickets created.",
		}),
		assignments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "support_assignments_total",
			Help: "Assignment attempts by outcome.",
		}, []string{"outcome"}),
		messagesAppended: factory.NewCounter(prometheus.CounterOpts{
			Name: "support_messages_appended_total",
			Help: "Non-system messages appended to ticket threads.",
		}),
		priorityEscalations: factory.NewCounter(prometheus.CounterOpts{
			Name: "support_priority_reclassifications_total",
			Help: "Priority changes triggered by message content.",
		}),
		slaWarnings: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "support_sla_warnings_total",
			Help: "SLA breach warnings by detection path.",
		}, []string{"source"}),
		resolutions: factory.NewCounter(prometheus.CounterOpts{
			Name: "support_tickets_resolved_total",
			Help: "Tickets transitioned into resolved.",
		}),
		resolutionSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "support_resolution_seconds",
			Help:    "Time from ticket creation to resolution.",
			Buckets: prometheus.ExponentialBuckets(60, 4, 10),
		}),
		httpErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "support_http_errors_total",
			Help: "HTTP requests answered with a domain error.",
		}, []string{"method", "path", "code"}),
	}
}

// Handler serves the registry in prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordTicketCreated increments the creation counter.
func (m *Metrics) RecordTicketCreated() {
	if m == nil {
		return
	}
	m.ticketsCreated.Inc()
}

// RecordAssignment tracks one assignment attempt.
func (m *Metrics) RecordAssignment(assigned bool) {
	if m == nil {
		return
	}
	outcome := "unassigned"
	if assigned {
		outcome = "assigned"
	}
	m.assignments.WithLabelValues(outcome).Inc()
}

// RecordMessageAppended increments the message counter.
func (m *Metrics) RecordMessageAppended() {
	if m == nil {
		return
	}
	m.messagesAppended.Inc()
}

// RecordPriorityEscalation counts a message-driven priority change.
func (m *Metrics) RecordPriorityEscalation() {
	if m == nil {
		return
	}
	m.priorityEscalations.Inc()
}

// RecordSLAWarning counts a breach warning; source is "message" or "sweep".
func (m *Metrics) RecordSLAWarning(source string) {
	if m == nil {
		return
	}
	m.slaWarnings.WithLabelValues(source).Inc()
}

// RecordResolution counts a resolution and observes its duration.
func (m *Metrics) RecordResolution(took time.Duration) {
	if m == nil {
		return
	}
	m.resolutions.Inc()
	m.resolutionSeconds.Observe(took.Seconds())
}

// RecordHTTPError counts a request answered with a domain error.
func (m *Metrics) RecordHTTPError(method, path, code string) {
	if m == nil {
		return
	}
	m.httpErrors.WithLabelValues(method, path, code).Inc()
}
