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

// EmailService reconciles organisation email addresses arriving from the sync
// feed.
type EmailService struct {
	repo     *db.Repository
	notifier Notifier
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewEmailService(repo *db.Repository, notifier Notifier, m *metrics.Metrics, logger *zap.Logger) *EmailService {
	return &EmailService{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger.Named("sync_email"),
	}
}

func (s *EmailService) GetEmail(ctx context.Context, id int64) (*models.OrganisationEmail, error) {
	return s.repo.GetEmail(ctx, id)
}

func (s *EmailService) CreateEmail(ctx context.Context, req *models.SyncCreateEmailRequest) (*models.OrganisationEmail, error) {
	if req.EmailAddress == "" {
		return nil, fmt.Errorf("%w: email address required", e.ErrInvalidInput)
	}
	exists, err := s.repo.OrganisationExists(ctx, req.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check organisation existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: organisation %d", e.ErrNotFound, req.OrganisationID)
	}

	email := &models.OrganisationEmail{
		OrganisationID: req.OrganisationID,
		EmailAddress:   req.EmailAddress,
		Audit:          createdAudit(req.CreatedBy, req.CreatedTime),
	}
	if err := s.repo.CreateEmail(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to create email: %w", err)
	}

	s.metrics.IncrementSyncOperation("email", "create")
	s.notifier.Send(events.EmailCreated, email.OrganisationID, email.OrganisationEmailID, events.SourceNOMIS)
	return email, nil
}

func (s *EmailService) UpdateEmail(ctx context.Context, id int64, req *models.SyncUpdateEmailRequest) (*models.OrganisationEmail, error) {
	existing, err := s.repo.GetEmail(ctx, id)
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
		s.logger.Error("Organisation id mismatch on email update",
			zap.Int64("email_id", id),
			zap.Int64("owner_id", existing.OrganisationID),
			zap.Int64("request_id", req.OrganisationID),
		)
		return nil, fmt.Errorf("%w: email %d", e.ErrOwnershipMismatch, id)
	}

	existing.EmailAddress = req.EmailAddress
	stampUpdate(&existing.Audit, req.UpdatedBy, req.UpdatedTime)
	if err := s.repo.SaveEmail(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update email: %w", err)
	}

	s.metrics.IncrementSyncOperation("email", "update")
	s.notifier.Send(events.EmailUpdated, existing.OrganisationID, existing.OrganisationEmailID, events.SourceNOMIS)
	return existing, nil
}

func (s *EmailService) DeleteEmail(ctx context.Context, id int64) (*models.OrganisationEmail, error) {
	email, err := s.repo.GetEmail(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteEmail(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete email: %w", err)
	}

	s.metrics.IncrementSyncOperation("email", "delete")
	s.notifier.Send(events.EmailDeleted, email.OrganisationID, email.OrganisationEmailID, events.SourceNOMIS)
	return email, nil
}
