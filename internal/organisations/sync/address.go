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

// AddressService reconciles organisation addresses arriving from the sync feed.
type AddressService struct {
	repo     *db.Repository
	notifier Notifier
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewAddressService(repo *db.Repository, notifier Notifier, m *metrics.Metrics, logger *zap.Logger) *AddressService {
	return &AddressService{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger.Named("sync_address"),
	}
}

func (s *AddressService) GetAddress(ctx context.Context, id int64) (*models.OrganisationAddress, error) {
	return s.repo.GetAddress(ctx, id)
}

func (s *AddressService) CreateAddress(ctx context.Context, req *models.SyncCreateAddressRequest) (*models.OrganisationAddress, error) {
	exists, err := s.repo.OrganisationExists(ctx, req.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check organisation existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: organisation %d", e.ErrNotFound, req.OrganisationID)
	}

	address := &models.OrganisationAddress{
		Audit: createdAudit(req.CreatedBy, req.CreatedTime),
	}
	applyAddressData(address, &req.SyncAddressData)
	if err := s.repo.CreateAddress(ctx, address); err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	s.metrics.IncrementSyncOperation("address", "create")
	s.notifier.Send(events.AddressCreated, address.OrganisationID, address.OrganisationAddressID, events.SourceNOMIS)
	return address, nil
}

func (s *AddressService) UpdateAddress(ctx context.Context, id int64, req *models.SyncUpdateAddressRequest) (*models.OrganisationAddress, error) {
	existing, err := s.repo.GetAddress(ctx, id)
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
		s.logger.Error("Organisation id mismatch on address update",
			zap.Int64("address_id", id),
			zap.Int64("owner_id", existing.OrganisationID),
			zap.Int64("request_id", req.OrganisationID),
		)
		return nil, fmt.Errorf("%w: address %d", e.ErrOwnershipMismatch, id)
	}

	applyAddressData(existing, &req.SyncAddressData)
	stampUpdate(&existing.Audit, req.UpdatedBy, req.UpdatedTime)
	if err := s.repo.SaveAddress(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update address: %w", err)
	}

	s.metrics.IncrementSyncOperation("address", "update")
	s.notifier.Send(events.AddressUpdated, existing.OrganisationID, existing.OrganisationAddressID, events.SourceNOMIS)
	return existing, nil
}

func (s *AddressService) DeleteAddress(ctx context.Context, id int64) (*models.OrganisationAddress, error) {
	address, err := s.repo.GetAddress(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteAddress(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete address: %w", err)
	}

	s.metrics.IncrementSyncOperation("address", "delete")
	s.notifier.Send(events.AddressDeleted, address.OrganisationID, address.OrganisationAddressID, events.SourceNOMIS)
	return address, nil
}

// applyAddressData overwrites every mutable address field from the payload.
func applyAddressData(address *models.OrganisationAddress, data *models.SyncAddressData) {
	address.OrganisationID = data.OrganisationID
	address.AddressType = data.AddressType
	address.PrimaryAddress = data.PrimaryAddress
	address.MailAddress = data.MailAddress
	address.ServiceAddress = data.ServiceAddress
	address.NoFixedAddress = data.NoFixedAddress
	address.Flat = data.Flat
	address.Property = data.Property
	address.Street = data.Street
	address.Area = data.Area
	address.CityCode = data.CityCode
	address.CountyCode = data.CountyCode
	address.PostCode = data.PostCode
	address.CountryCode = data.CountryCode
	address.SpecialNeedsCode = data.SpecialNeedsCode
	address.ContactPersonName = data.ContactPersonName
	address.BusinessHours = data.BusinessHours
	address.StartDate = data.StartDate
	address.EndDate = data.EndDate
}
