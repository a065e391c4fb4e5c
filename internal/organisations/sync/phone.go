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

// PhoneService reconciles organisation-level phone numbers arriving from the
// sync feed. Address-linked phones go through AddressPhoneService instead.
type PhoneService struct {
	repo     *db.Repository
	notifier Notifier
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewPhoneService(repo *db.Repository, notifier Notifier, m *metrics.Metrics, logger *zap.Logger) *PhoneService {
	return &PhoneService{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger.Named("sync_phone"),
	}
}

func (s *PhoneService) GetPhone(ctx context.Context, id int64) (*models.OrganisationPhone, error) {
	return s.repo.GetPhone(ctx, id)
}

func (s *PhoneService) CreatePhone(ctx context.Context, req *models.SyncCreatePhoneRequest) (*models.OrganisationPhone, error) {
	if req.PhoneNumber == "" {
		return nil, fmt.Errorf("%w: phone number required", e.ErrInvalidInput)
	}
	exists, err := s.repo.OrganisationExists(ctx, req.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check organisation existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: organisation %d", e.ErrNotFound, req.OrganisationID)
	}

	phone := &models.OrganisationPhone{
		OrganisationID: req.OrganisationID,
		PhoneType:      req.PhoneType,
		PhoneNumber:    req.PhoneNumber,
		ExtNumber:      req.ExtNumber,
		Audit:          createdAudit(req.CreatedBy, req.CreatedTime),
	}
	if err := s.repo.CreatePhone(ctx, phone); err != nil {
		return nil, fmt.Errorf("failed to create phone: %w", err)
	}

	s.metrics.IncrementSyncOperation("phone", "create")
	s.notifier.Send(events.PhoneCreated, phone.OrganisationID, phone.OrganisationPhoneID, events.SourceNOMIS)
	return phone, nil
}

func (s *PhoneService) UpdatePhone(ctx context.Context, id int64, req *models.SyncUpdatePhoneRequest) (*models.OrganisationPhone, error) {
	existing, err := s.repo.GetPhone(ctx, id)
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
		s.logger.Error("Organisation id mismatch on phone update",
			zap.Int64("phone_id", id),
			zap.Int64("owner_id", existing.OrganisationID),
			zap.Int64("request_id", req.OrganisationID),
		)
		return nil, fmt.Errorf("%w: phone %d", e.ErrOwnershipMismatch, id)
	}

	existing.PhoneType = req.PhoneType
	existing.PhoneNumber = req.PhoneNumber
	existing.ExtNumber = req.ExtNumber
	stampUpdate(&existing.Audit, req.UpdatedBy, req.UpdatedTime)
	if err := s.repo.SavePhone(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update phone: %w", err)
	}

	s.metrics.IncrementSyncOperation("phone", "update")
	s.notifier.Send(events.PhoneUpdated, existing.OrganisationID, existing.OrganisationPhoneID, events.SourceNOMIS)
	return existing, nil
}

func (s *PhoneService) DeletePhone(ctx context.Context, id int64) (*models.OrganisationPhone, error) {
	phone, err := s.repo.GetPhone(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeletePhone(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete phone: %w", err)
	}

	s.metrics.IncrementSyncOperation("phone", "delete")
	s.notifier.Send(events.PhoneDeleted, phone.OrganisationID, phone.OrganisationPhoneID, events.SourceNOMIS)
	return phone, nil
}
