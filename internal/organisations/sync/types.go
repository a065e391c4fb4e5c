package sync

import (
	"context"
	"fmt"

	"github.com/gartstein/organisations/internal/organisations/db"
	e "github.com/gartstein/organisations/internal/organisations/errors"
	"github.com/gartstein/organisations/internal/organisations/events"
	"github.com/gartstein/organisations/internal/organisations/metrics"
	"github.com/gartstein/organisations/internal/organisations/models"
	"go.uber.org/zap"
)

// TypesService reconciles the organisation type set. Types have no per-row
// lifecycle: the set is always replaced wholesale and a single event covers
// the whole replacement.
type TypesService struct {
	repo     *db.Repository
	notifier Notifier
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewTypesService(repo *db.Repository, notifier Notifier, m *metrics.Metrics, logger *zap.Logger) *TypesService {
	return &TypesService{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger.Named("sync_types"),
	}
}

func (s *TypesService) GetTypes(ctx context.Context, organisationID int64) ([]models.OrganisationType, error) {
	exists, err := s.repo.OrganisationExists(ctx, organisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check organisation existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: organisation %d", e.ErrNotFound, organisationID)
	}
	return s.repo.ListTypes(ctx, organisationID)
}

// UpdateTypes deletes every stored type row for the organisation and inserts
// the replacement set. An empty replacement clears the set. Exactly one event
// fires per call regardless of how many rows changed.
func (s *TypesService) UpdateTypes(ctx context.Context, organisationID int64, req *models.SyncUpdateTypesRequest) ([]models.OrganisationType, error) {
	if req.OrganisationID != organisationID {
		s.logger.Error("Organisation id mismatch on types update",
			zap.Int64("target_id", organisationID),
			zap.Int64("request_id", req.OrganisationID),
		)
		return nil, fmt.Errorf("%w: organisation %d", e.ErrOwnershipMismatch, req.OrganisationID)
	}
	exists, err := s.repo.OrganisationExists(ctx, organisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check organisation existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: organisation %d", e.ErrNotFound, organisationID)
	}

	rows := make([]models.OrganisationType, 0, len(req.Types))
	for _, t := range req.Types {
		if t.Type == "" {
			return nil, fmt.Errorf("%w: empty organisation type", e.ErrInvalidInput)
		}
		rows = append(rows, models.OrganisationType{
			OrganisationID:   organisationID,
			OrganisationType: t.Type,
			Audit:            createdAudit(t.CreatedBy, t.CreatedTime),
		})
	}

	if err := s.repo.ReplaceTypes(ctx, organisationID, rows); err != nil {
		return nil, fmt.Errorf("failed to replace types: %w", err)
	}

	s.metrics.IncrementSyncOperation("types", "update")
	s.notifier.Send(events.TypesUpdated, organisationID, organisationID, events.SourceNOMIS)
	return rows, nil
}
