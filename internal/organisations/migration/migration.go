// Package migration implements the one-shot bulk load of a full organisation
// graph exported from NOMIS. Loading is a destructive upsert: any existing
// data for the corporate ID is removed before the incoming graph is inserted,
// all inside a single transaction.
package migration

import (
	"context"
	"errors"
	"fmt"

	"github.com/gartstein/organisations/internal/organisations/db"
	e "github.com/gartstein/organisations/internal/organisations/errors"
	"github.com/gartstein/organisations/internal/organisations/models"
	"go.uber.org/zap"
)

type Service struct {
	repo   *db.Repository
	logger *zap.Logger
}

func NewService(repo *db.Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.Named("migration_service"),
	}
}

// MigrateOrganisation replaces whatever is stored under the request's
// corporate ID with the incoming graph. Either the whole graph lands or
// nothing does.
func (s *Service) MigrateOrganisation(ctx context.Context, req *models.MigrateOrganisationRequest) (*models.MigrateOrganisationResponse, error) {
	if req.NomisCorporateID <= 0 {
		return nil, fmt.Errorf("%w: corporate id required", e.ErrInvalidInput)
	}
	if req.OrganisationName == "" {
		return nil, fmt.Errorf("%w: organisation name required", e.ErrInvalidInput)
	}

	response := &models.MigrateOrganisationResponse{
		OrganisationID:    req.NomisCorporateID,
		OrganisationTypes: []string{},
		PhoneNumberIDs:    []int64{},
		EmailAddressIDs:   []int64{},
		WebAddressIDs:     []int64{},
		Addresses:         []models.MigratedAddress{},
	}

	err := s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		if err := tx.DeleteAllChildren(ctx, req.NomisCorporateID); err != nil {
			return err
		}
		if err := tx.DeleteOrganisation(ctx, req.NomisCorporateID); err != nil && !errors.Is(err, e.ErrNotFound) {
			return err
		}

		org := &models.Organisation{
			OrganisationID:   req.NomisCorporateID,
			OrganisationName: req.OrganisationName,
			ProgrammeNumber:  req.ProgrammeNumber,
			VATNumber:        req.VATNumber,
			CaseloadID:       req.CaseloadID,
			Comments:         req.Comments,
			Active:           req.Active,
			DeactivatedDate:  req.DeactivatedDate,
			IDSource:         models.IDFixed,
			Audit:            req.Audit,
		}
		if err := tx.CreateOrganisation(ctx, org); err != nil {
			return err
		}

		if len(req.OrganisationTypes) > 0 {
			rows := make([]models.OrganisationType, 0, len(req.OrganisationTypes))
			for _, t := range req.OrganisationTypes {
				rows = append(rows, models.OrganisationType{
					OrganisationID:   org.OrganisationID,
					OrganisationType: t.Type,
					Audit:            t.Audit,
				})
				response.OrganisationTypes = append(response.OrganisationTypes, t.Type)
			}
			if err := tx.ReplaceTypes(ctx, org.OrganisationID, rows); err != nil {
				return err
			}
		}

		for _, p := range req.PhoneNumbers {
			phone := &models.OrganisationPhone{
				OrganisationID: org.OrganisationID,
				PhoneType:      p.PhoneType,
				PhoneNumber:    p.PhoneNumber,
				ExtNumber:      p.ExtNumber,
				Audit:          p.Audit,
			}
			if err := tx.CreatePhone(ctx, phone); err != nil {
				return err
			}
			response.PhoneNumberIDs = append(response.PhoneNumberIDs, phone.OrganisationPhoneID)
		}

		for _, em := range req.EmailAddresses {
			email := &models.OrganisationEmail{
				OrganisationID: org.OrganisationID,
				EmailAddress:   em.EmailAddress,
				Audit:          em.Audit,
			}
			if err := tx.CreateEmail(ctx, email); err != nil {
				return err
			}
			response.EmailAddressIDs = append(response.EmailAddressIDs, email.OrganisationEmailID)
		}

		for _, wb := range req.WebAddresses {
			web := &models.OrganisationWebAddress{
				OrganisationID: org.OrganisationID,
				WebAddress:     wb.WebAddress,
				Audit:          wb.Audit,
			}
			if err := tx.CreateWebAddress(ctx, web); err != nil {
				return err
			}
			response.WebAddressIDs = append(response.WebAddressIDs, web.OrganisationWebAddressID)
		}

		for _, a := range req.Addresses {
			address := &models.OrganisationAddress{
				OrganisationID:    org.OrganisationID,
				AddressType:       a.AddressType,
				PrimaryAddress:    a.PrimaryAddress,
				MailAddress:       a.MailAddress,
				ServiceAddress:    a.ServiceAddress,
				NoFixedAddress:    a.NoFixedAddress,
				Flat:              a.Flat,
				Property:          a.Property,
				Street:            a.Street,
				Area:              a.Area,
				CityCode:          a.CityCode,
				CountyCode:        a.CountyCode,
				PostCode:          a.PostCode,
				CountryCode:       a.CountryCode,
				SpecialNeedsCode:  a.SpecialNeedsCode,
				ContactPersonName: a.ContactPersonName,
				BusinessHours:     a.BusinessHours,
				StartDate:         a.StartDate,
				EndDate:           a.EndDate,
				Audit:             a.Audit,
			}
			if err := tx.CreateAddress(ctx, address); err != nil {
				return err
			}
			migrated := models.MigratedAddress{
				OrganisationAddressID: address.OrganisationAddressID,
				PhoneNumberIDs:        []int64{},
			}
			for _, p := range a.PhoneNumbers {
				phone := &models.OrganisationPhone{
					OrganisationID: org.OrganisationID,
					PhoneType:      p.PhoneType,
					PhoneNumber:    p.PhoneNumber,
					ExtNumber:      p.ExtNumber,
					Audit:          p.Audit,
				}
				if err := tx.CreatePhone(ctx, phone); err != nil {
					return err
				}
				link := &models.OrganisationAddressPhone{
					OrganisationID:        org.OrganisationID,
					OrganisationAddressID: address.OrganisationAddressID,
					OrganisationPhoneID:   phone.OrganisationPhoneID,
					Audit:                 p.Audit,
				}
				if err := tx.CreateAddressPhone(ctx, link); err != nil {
					return err
				}
				migrated.PhoneNumberIDs = append(migrated.PhoneNumberIDs, phone.OrganisationPhoneID)
			}
			response.Addresses = append(response.Addresses, migrated)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to migrate organisation %d: %w", req.NomisCorporateID, err)
	}

	s.logger.Info("Organisation migrated",
		zap.Int64("organisation_id", req.NomisCorporateID),
		zap.Int("addresses", len(response.Addresses)),
		zap.Int("phones", len(response.PhoneNumberIDs)),
	)
	return response, nil
}
