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

// OrganisationService reconciles organisation rows arriving from the sync
// feed. Sync organisations always carry the fixed corporate ID supplied by
// NOMIS; sync never touches generated-ID organisations (the two ID ranges are
// partitioned externally).
type OrganisationService struct {
	repo     *db.Repository
	notifier Notifier
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewOrganisationService(repo *db.Repository, notifier Notifier, m *metrics.Metrics, logger *zap.Logger) *OrganisationService {
	return &OrganisationService{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger.Named("sync_organisation"),
	}
}

func (s *OrganisationService) GetOrganisation(ctx context.Context, id int64) (*models.Organisation, error) {
	return s.repo.GetOrganisation(ctx, id)
}

// CreateOrganisation inserts an organisation under the caller-supplied fixed
// ID. Creating an ID that already exists fails with a duplicate error rather
// than overwriting; the producer is expected to switch to an update call.
func (s *OrganisationService) CreateOrganisation(ctx context.Context, req *models.SyncCreateOrganisationRequest) (*models.Organisation, error) {
	if req.OrganisationID <= 0 {
		return nil, fmt.Errorf("%w: organisation id required", e.ErrInvalidInput)
	}
	if req.OrganisationName == "" || len(req.OrganisationName) > 40 {
		return nil, fmt.Errorf("%w: invalid organisation name", e.ErrInvalidInput)
	}

	exists, err := s.repo.OrganisationExists(ctx, req.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check organisation existence: %w", err)
	}
	if exists {
		return nil, e.ErrDuplicateOrganisation
	}

	org := &models.Organisation{
		OrganisationID:   req.OrganisationID,
		OrganisationName: req.OrganisationName,
		ProgrammeNumber:  req.ProgrammeNumber,
		VATNumber:        req.VATNumber,
		CaseloadID:       req.CaseloadID,
		Comments:         req.Comments,
		Active:           req.Active,
		DeactivatedDate:  req.DeactivatedDate,
		IDSource:         models.IDFixed,
		Audit:            createdAudit(req.CreatedBy, req.CreatedTime),
	}
	if err := s.repo.CreateOrganisation(ctx, org); err != nil {
		return nil, err
	}

	s.metrics.IncrementSyncOperation("organisation", "create")
	s.notifier.Send(events.OrganisationCreated, org.OrganisationID, org.OrganisationID, events.SourceNOMIS)
	return org, nil
}

// UpdateOrganisation replaces every mutable field of the stored row with the
// request's values. The path ID and the payload's organisation ID must agree.
func (s *OrganisationService) UpdateOrganisation(ctx context.Context, id int64, req *models.SyncUpdateOrganisationRequest) (*models.Organisation, error) {
	existing, err := s.repo.GetOrganisation(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.OrganisationID != existing.OrganisationID {
		s.logger.Error("Organisation id mismatch on update",
			zap.Int64("target_id", existing.OrganisationID),
			zap.Int64("request_id", req.OrganisationID),
		)
		return nil, fmt.Errorf("%w: organisation %d", e.ErrOwnershipMismatch, req.OrganisationID)
	}
	if req.OrganisationName == "" || len(req.OrganisationName) > 40 {
		return nil, fmt.Errorf("%w: invalid organisation name", e.ErrInvalidInput)
	}

	existing.OrganisationName = req.OrganisationName
	existing.ProgrammeNumber = req.ProgrammeNumber
	existing.VATNumber = req.VATNumber
	existing.CaseloadID = req.CaseloadID
	existing.Comments = req.Comments
	existing.Active = req.Active
	existing.DeactivatedDate = req.DeactivatedDate
	stampUpdate(&existing.Audit, req.UpdatedBy, req.UpdatedTime)

	if err := s.repo.SaveOrganisation(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update organisation: %w", err)
	}

	s.metrics.IncrementSyncOperation("organisation", "update")
	s.notifier.Send(events.OrganisationUpdated, existing.OrganisationID, existing.OrganisationID, events.SourceNOMIS)
	return existing, nil
}

// DeleteOrganisation removes an organisation that has no remaining child
// rows. Children are never cascaded from here.
func (s *OrganisationService) DeleteOrganisation(ctx context.Context, id int64) (*models.Organisation, error) {
	org, err := s.repo.GetOrganisation(ctx, id)
	if err != nil {
		return nil, err
	}

	children, err := s.repo.CountOrganisationChildren(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count child records: %w", err)
	}
	if children > 0 {
		return nil, fmt.Errorf("%w: organisation %d still has %d child records", e.ErrInvalidInput, id, children)
	}

	if err := s.repo.DeleteOrganisation(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete organisation: %w", err)
	}

	s.metrics.IncrementSyncOperation("organisation", "delete")
	s.notifier.Send(events.OrganisationDeleted, org.OrganisationID, org.OrganisationID, events.SourceNOMIS)
	return org, nil
}
