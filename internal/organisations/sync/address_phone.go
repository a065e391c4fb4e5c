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

// AddressPhoneService reconciles address-linked phone numbers. A link row owns
// its underlying phone row: create inserts a fresh phone then links it, update
// rewrites the phone and stamps the link, delete removes both.
type AddressPhoneService struct {
	repo     *db.Repository
	notifier Notifier
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewAddressPhoneService(repo *db.Repository, notifier Notifier, m *metrics.Metrics, logger *zap.Logger) *AddressPhoneService {
	return &AddressPhoneService{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger.Named("sync_address_phone"),
	}
}

func (s *AddressPhoneService) GetAddressPhone(ctx context.Context, id int64) (*models.OrganisationAddressPhone, error) {
	return s.repo.GetAddressPhone(ctx, id)
}

func (s *AddressPhoneService) CreateAddressPhone(ctx context.Context, req *models.SyncCreateAddressPhoneRequest) (*models.OrganisationAddressPhone, error) {
	if req.PhoneNumber == "" {
		return nil, fmt.Errorf("%w: phone number required", e.ErrInvalidInput)
	}
	address, err := s.repo.GetAddress(ctx, req.OrganisationAddressID)
	if err != nil {
		return nil, err
	}

	var link *models.OrganisationAddressPhone
	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		phone := &models.OrganisationPhone{
			OrganisationID: address.OrganisationID,
			PhoneType:      req.PhoneType,
			PhoneNumber:    req.PhoneNumber,
			ExtNumber:      req.ExtNumber,
			Audit:          createdAudit(req.CreatedBy, req.CreatedTime),
		}
		if err := tx.CreatePhone(ctx, phone); err != nil {
			return err
		}
		link = &models.OrganisationAddressPhone{
			OrganisationID:        address.OrganisationID,
			OrganisationAddressID: address.OrganisationAddressID,
			OrganisationPhoneID:   phone.OrganisationPhoneID,
			Audit:                 createdAudit(req.CreatedBy, req.CreatedTime),
		}
		return tx.CreateAddressPhone(ctx, link)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create address phone: %w", err)
	}

	s.metrics.IncrementSyncOperation("address_phone", "create")
	s.notifier.Send(events.AddressPhoneCreated, link.OrganisationID, link.OrganisationAddressPhoneID, events.SourceNOMIS)
	return link, nil
}

// UpdateAddressPhone rewrites the linked phone's mutable fields and stamps
// updatedBy/updatedTime on the link row itself.
func (s *AddressPhoneService) UpdateAddressPhone(ctx context.Context, id int64, req *models.SyncUpdateAddressPhoneRequest) (*models.OrganisationAddressPhone, error) {
	link, err := s.repo.GetAddressPhone(ctx, id)
	if err != nil {
		return nil, err
	}
	if link.OrganisationID != req.OrganisationID {
		s.logger.Error("Organisation id mismatch on address phone update",
			zap.Int64("address_phone_id", id),
			zap.Int64("owner_id", link.OrganisationID),
			zap.Int64("request_id", req.OrganisationID),
		)
		return nil, fmt.Errorf("%w: address phone %d", e.ErrOwnershipMismatch, id)
	}
	phone, err := s.repo.GetPhone(ctx, link.OrganisationPhoneID)
	if err != nil {
		return nil, err
	}

	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		phone.PhoneType = req.PhoneType
		phone.PhoneNumber = req.PhoneNumber
		phone.ExtNumber = req.ExtNumber
		stampUpdate(&phone.Audit, req.UpdatedBy, req.UpdatedTime)
		if err := tx.SavePhone(ctx, phone); err != nil {
			return err
		}
		stampUpdate(&link.Audit, req.UpdatedBy, req.UpdatedTime)
		return tx.SaveAddressPhone(ctx, link)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update address phone: %w", err)
	}

	s.metrics.IncrementSyncOperation("address_phone", "update")
	s.notifier.Send(events.AddressPhoneUpdated, link.OrganisationID, link.OrganisationAddressPhoneID, events.SourceNOMIS)
	return link, nil
}

// DeleteAddressPhone removes the link row and the phone row it references.
func (s *AddressPhoneService) DeleteAddressPhone(ctx context.Context, id int64) (*models.OrganisationAddressPhone, error) {
	link, err := s.repo.GetAddressPhone(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		if err := tx.DeleteAddressPhone(ctx, link.OrganisationAddressPhoneID); err != nil {
			return err
		}
		return tx.DeletePhone(ctx, link.OrganisationPhoneID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete address phone: %w", err)
	}

	s.metrics.IncrementSyncOperation("address_phone", "delete")
	s.notifier.Send(events.AddressPhoneDeleted, link.OrganisationID, link.OrganisationAddressPhoneID, events.SourceNOMIS)
	return link, nil
}
