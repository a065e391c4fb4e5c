package events

import (
	"time"

	"github.com/gartstein/organisations/internal/organisations/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Publisher hands a built event to the outbound transport.
type Publisher interface {
	Publish(event OutboundEvent)
}

// Config gates dispatch. Flags are injected at construction, never read from
// ambient globals.
type Config struct {
	// Enabled switches outbound events on or off globally.
	Enabled bool
	// Disabled lists event kinds that are dropped even when Enabled is true.
	Disabled map[Kind]bool
}

// Service builds events from the taxonomy table and hands them to the
// publisher. Dispatch is fire-and-forget: a mutation's success never depends
// on event delivery.
type Service struct {
	publisher Publisher
	cfg       Config
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

func NewService(publisher Publisher, cfg Config, m *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		publisher: publisher,
		cfg:       cfg,
		metrics:   m,
		logger:    logger.Named("outbound_events"),
	}
}

// Send builds and dispatches one event. Disabled kinds are dropped with a log
// line, not queued.
func (s *Service) Send(kind Kind, organisationID, identifier int64, source Source) {
	if !s.cfg.Enabled || s.cfg.Disabled[kind] {
		s.logger.Info("Outbound event disabled, dropping",
			zap.String("event_kind", string(kind)),
			zap.Int64("organisation_id", organisationID),
		)
		return
	}

	tmpl, ok := templates[kind]
	if !ok {
		s.logger.Error("Unknown event kind", zap.String("event_kind", string(kind)))
		return
	}

	event := OutboundEvent{
		EventID:     uuid.New(),
		EventType:   tmpl.eventType,
		Version:     eventVersion,
		Description: tmpl.description,
		OccurredAt:  time.Now().UTC(),
		AdditionalInformation: AdditionalInformation{
			OrganisationID: organisationID,
			Identifier:     identifier,
			Source:         source,
		},
	}

	s.publisher.Publish(event)
	s.metrics.IncrementEventPublished(event.EventType)
}
