// Package metrics provides observability for the organisations service:
// mutation counts per entity kind and outbound event delivery counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SyncOperations       *prometheus.CounterVec
	EventsPublished      *prometheus.CounterVec
	EventPublishFailures prometheus.Counter
}

// New registers all service metrics against the given registerer. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SyncOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "organisations_sync_operations_total",
			Help: "Total number of sync mutations by entity kind and action",
		}, []string{"entity", "action"}),
		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "organisations_events_published_total",
			Help: "Total number of outbound domain events handed to the transport",
		}, []string{"event_type"}),
		EventPublishFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "organisations_event_publish_failures_total",
			Help: "Total number of outbound domain events that failed to send",
		}),
	}
}

// IncrementSyncOperation records one sync mutation.
func (m *Metrics) IncrementSyncOperation(entity, action string) {
	m.SyncOperations.WithLabelValues(entity, action).Inc()
}

// IncrementEventPublished records one event handed to the transport.
func (m *Metrics) IncrementEventPublished(eventType string) {
	m.EventsPublished.WithLabelValues(eventType).Inc()
}

// IncrementEventPublishFailure records one failed send.
func (m *Metrics) IncrementEventPublishFailure() {
	m.EventPublishFailures.Inc()
}
