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

// WebService reconciles organisation web addresses arriving from the sync feed.
type WebService struct {
	repo     *db.Repository
	notifier Notifier
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewWebService(repo *db.Repository, notifier Notifier, m *metrics.Metrics, logger *zap.Logger) *WebService {
	return &WebService{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger.Named("sync_web"),
	}
}

func (s *WebService) GetWebAddress(ctx context.Context, id int64) (*models.OrganisationWebAddress, error) {
	return s.repo.GetWebAddress(ctx, id)
}

func (s *WebService) CreateWebAddress(ctx context.Context, req *models.SyncCreateWebRequest) (*models.OrganisationWebAddress, error) {
	if req.WebAddress == "" {
		return nil, fmt.Errorf("%w: web address required", e.ErrInvalidInput)
	}
	exists, err := s.repo.OrganisationExists(ctx, req.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check organisation existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: organisation %d", e.ErrNotFound, req.OrganisationID)
	}

	web := &models.OrganisationWebAddress{
		OrganisationID: req.OrganisationID,
		WebAddress:     req.WebAddress,
		Audit:          createdAudit(req.CreatedBy, req.CreatedTime),
	}
	if err := s.repo.CreateWebAddress(ctx, web); err != nil {
		return nil, fmt.Errorf("failed to create web address: %w", err)
	}

	s.metrics.IncrementSyncOperation("web", "create")
	s.notifier.Send(events.WebCreated, web.OrganisationID, web.OrganisationWebAddressID, events.SourceNOMIS)
	return web, nil
}

func (s *WebService) UpdateWebAddress(ctx context.Context, id int64, req *models.SyncUpdateWebRequest) (*models.OrganisationWebAddress, error) {
	existing, err := s.repo.GetWebAddress(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.OrganisationExists(ctx, req.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check organisation existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: organisation %d", e.ErrNotFound, req.OrganisationID)
	}
	if existing.OrganisationID != req.OrganisationID {
		s.logger.Error("Organisation id mismatch on web address update",
			zap.Int64("web_address_id", id),
			zap.Int64("owner_id", existing.OrganisationID),
			zap.Int64("request_id", req.OrganisationID),
		)
		return nil, fmt.Errorf("%w: web address %d", e.ErrOwnershipMismatch, id)
	}

	existing.WebAddress = req.WebAddress
	stampUpdate(&existing.Audit, req.UpdatedBy, req.UpdatedTime)
	if err := s.repo.SaveWebAddress(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update web address: %w", err)
	}

	s.metrics.IncrementSyncOperation("web", "update")
	s.notifier.Send(events.WebUpdated, existing.OrganisationID, existing.OrganisationWebAddressID, events.SourceNOMIS)
	return existing, nil
}

func (s *WebService) DeleteWebAddress(ctx context.Context, id int64) (*models.OrganisationWebAddress, error) {
	web, err := s.repo.GetWebAddress(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteWebAddress(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete web address: %w", err)
	}

	s.metrics.IncrementSyncOperation("web", "delete")
	s.notifier.Send(events.WebDeleted, web.OrganisationID, web.OrganisationWebAddressID, events.SourceNOMIS)
	return web, nil
}
