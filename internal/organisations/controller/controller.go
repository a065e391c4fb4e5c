// Package controller implements the UI-facing business logic for
// organisations: the aggregated detail view, the summary projection, search,
// and the deprecated creation path.
package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/gartstein/organisations/internal/organisations/db"
	e "github.com/gartstein/organisations/internal/organisations/errors"
	"github.com/gartstein/organisations/internal/organisations/events"
	"github.com/gartstein/organisations/internal/organisations/models"
	"go.uber.org/zap"
)

// Reference data groups used to decorate coded fields.
const (
	groupCity         = "CITY"
	groupCounty       = "COUNTY"
	groupCountry      = "COUNTRY"
	groupPhoneType    = "PHONE_TYPE"
	groupOrgType      = "ORGANISATION_TYPE"
	groupSpecialNeeds = "ADDRESS_SPECIAL_NEEDS"
)

// Notifier dispatches one outbound domain event per successful mutation.
type Notifier interface {
	Send(kind events.Kind, organisationID, identifier int64, source events.Source)
}

// PrisonRegister resolves a caseload ID to a prison display name. Lookups are
// best-effort; absence yields an empty name.
type PrisonRegister interface {
	LookupPrisonName(ctx context.Context, caseloadID string) (string, error)
}

// OrganisationService provides the read/aggregation operations and the
// UI-only creation path.
type OrganisationService struct {
	repo     *db.Repository
	notifier Notifier
	register PrisonRegister
	logger   *zap.Logger
}

func NewOrganisationService(repo *db.Repository, notifier Notifier, register PrisonRegister, logger *zap.Logger) *OrganisationService {
	return &OrganisationService{
		repo:     repo,
		notifier: notifier,
		register: register,
		logger:   logger.Named("organisation_service"),
	}
}

// GetOrganisationDetails assembles the full organisation view: every child
// collection, phones partitioned between organisation level and their
// addresses, coded fields decorated with reference descriptions, and the
// caseload decorated with its prison name when the registry knows it.
func (s *OrganisationService) GetOrganisationDetails(ctx context.Context, id int64) (*models.OrganisationDetails, error) {
	org, err := s.repo.GetOrganisation(ctx, id)
	if err != nil {
		return nil, err
	}

	phones, err := s.repo.ListPhones(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list phones: %w", err)
	}
	links, err := s.repo.ListAddressPhones(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list address phones: %w", err)
	}

	linked := make(map[int64]bool, len(links))
	for _, link := range links {
		linked[link.OrganisationPhoneID] = true
	}
	phoneByID := make(map[int64]models.OrganisationPhone, len(phones))
	var orgPhones []models.PhoneDetails
	for _, phone := range phones {
		phoneByID[phone.OrganisationPhoneID] = phone
		if !linked[phone.OrganisationPhoneID] {
			orgPhones = append(orgPhones, s.phoneDetails(ctx, phone))
		}
	}

	types, err := s.repo.ListTypes(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list types: %w", err)
	}
	emails, err := s.repo.ListEmails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list emails: %w", err)
	}
	webs, err := s.repo.ListWebAddresses(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list web addresses: %w", err)
	}
	addresses, err := s.repo.ListAddresses(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	details := s.baseDetails(ctx, org)
	for _, t := range types {
		details.OrganisationTypes = append(details.OrganisationTypes, models.TypeDetails{
			OrganisationID:   t.OrganisationID,
			OrganisationType: t.OrganisationType,
			TypeDescription:  s.describe(ctx, groupOrgType, t.OrganisationType),
			Audit:            t.Audit,
		})
	}
	details.PhoneNumbers = orgPhones
	details.EmailAddresses = emails
	details.WebAddresses = webs
	for _, address := range addresses {
		detail := s.addressDetails(ctx, address)
		for _, link := range links {
			if link.OrganisationAddressID != address.OrganisationAddressID {
				continue
			}
			if phone, ok := phoneByID[link.OrganisationPhoneID]; ok {
				detail.PhoneNumbers = append(detail.PhoneNumbers, s.phoneDetails(ctx, phone))
			}
		}
		details.Addresses = append(details.Addresses, detail)
	}
	return details, nil
}

// GetOrganisationSummary reads the pre-aggregated summary projection.
func (s *OrganisationService) GetOrganisationSummary(ctx context.Context, id int64) (*models.OrganisationSummary, error) {
	return s.repo.GetOrganisationSummary(ctx, id)
}

// SearchOrganisations pages through the summary projection by name substring.
func (s *OrganisationService) SearchOrganisations(
	ctx context.Context,
	name string,
	page, size int,
	sortField, sortDir string,
) (*models.OrganisationSummaryPage, error) {
	return s.repo.SearchOrganisations(ctx, name, page, size, sortField, sortDir)
}

// CreateOrganisation persists a UI-created organisation under a generated ID
// and fires a DPS-sourced event.
//
// Deprecated: organisations created here are never synchronised back to NOMIS.
func (s *OrganisationService) CreateOrganisation(ctx context.Context, req *models.CreateOrganisationRequest) (*models.OrganisationDetails, error) {
	if req.OrganisationName == "" || len(req.OrganisationName) > 40 {
		return nil, fmt.Errorf("%w: invalid organisation name", e.ErrInvalidInput)
	}

	org := &models.Organisation{
		OrganisationName: req.OrganisationName,
		ProgrammeNumber:  req.ProgrammeNumber,
		VATNumber:        req.VATNumber,
		CaseloadID:       req.CaseloadID,
		Comments:         req.Comments,
		Active:           req.Active,
		DeactivatedDate:  req.DeactivatedDate,
		IDSource:         models.IDGenerated,
		Audit:            models.Audit{CreatedBy: req.CreatedBy, CreatedTime: time.Now().UTC()},
	}
	if err := s.repo.CreateOrganisation(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to create organisation: %w", err)
	}

	s.notifier.Send(events.OrganisationCreated, org.OrganisationID, org.OrganisationID, events.SourceDPS)

	details := s.baseDetails(ctx, org)
	details.OrganisationTypes = []models.TypeDetails{}
	details.PhoneNumbers = []models.PhoneDetails{}
	details.EmailAddresses = []models.OrganisationEmail{}
	details.WebAddresses = []models.OrganisationWebAddress{}
	details.Addresses = []models.AddressDetails{}
	return details, nil
}

func (s *OrganisationService) baseDetails(ctx context.Context, org *models.Organisation) *models.OrganisationDetails {
	details := &models.OrganisationDetails{
		OrganisationID:   org.OrganisationID,
		OrganisationName: org.OrganisationName,
		ProgrammeNumber:  org.ProgrammeNumber,
		VATNumber:        org.VATNumber,
		CaseloadID:       org.CaseloadID,
		Comments:         org.Comments,
		Active:           org.Active,
		DeactivatedDate:  org.DeactivatedDate,
		Audit:            org.Audit,
	}
	if org.CaseloadID != nil {
		name, err := s.register.LookupPrisonName(ctx, *org.CaseloadID)
		if err != nil {
			s.logger.Warn("Prison register lookup failed",
				zap.Error(err),
				zap.String("caseload_id", *org.CaseloadID),
			)
		} else if name != "" {
			details.CaseloadPrisonName = &name
		}
	}
	return details
}

func (s *OrganisationService) phoneDetails(ctx context.Context, phone models.OrganisationPhone) models.PhoneDetails {
	return models.PhoneDetails{
		OrganisationPhoneID:  phone.OrganisationPhoneID,
		OrganisationID:       phone.OrganisationID,
		PhoneType:            phone.PhoneType,
		PhoneTypeDescription: s.describe(ctx, groupPhoneType, phone.PhoneType),
		PhoneNumber:          phone.PhoneNumber,
		ExtNumber:            phone.ExtNumber,
		Audit:                phone.Audit,
	}
}

func (s *OrganisationService) addressDetails(ctx context.Context, address models.OrganisationAddress) models.AddressDetails {
	detail := models.AddressDetails{
		OrganisationAddressID: address.OrganisationAddressID,
		OrganisationID:        address.OrganisationID,
		AddressType:           address.AddressType,
		PrimaryAddress:        address.PrimaryAddress,
		MailAddress:           address.MailAddress,
		ServiceAddress:        address.ServiceAddress,
		NoFixedAddress:        address.NoFixedAddress,
		Flat:                  address.Flat,
		Property:              address.Property,
		Street:                address.Street,
		Area:                  address.Area,
		CityCode:              address.CityCode,
		CountyCode:            address.CountyCode,
		PostCode:              address.PostCode,
		CountryCode:           address.CountryCode,
		SpecialNeedsCode:      address.SpecialNeedsCode,
		ContactPersonName:     address.ContactPersonName,
		BusinessHours:         address.BusinessHours,
		StartDate:             address.StartDate,
		EndDate:               address.EndDate,
		PhoneNumbers:          []models.PhoneDetails{},
		Audit:                 address.Audit,
	}
	if address.CityCode != nil {
		detail.CityDescription = s.describe(ctx, groupCity, *address.CityCode)
	}
	if address.CountyCode != nil {
		detail.CountyDescription = s.describe(ctx, groupCounty, *address.CountyCode)
	}
	if address.CountryCode != nil {
		detail.CountryDescription = s.describe(ctx, groupCountry, *address.CountryCode)
	}
	if address.SpecialNeedsCode != nil {
		detail.SpecialNeedsCodeDescription = s.describe(ctx, groupSpecialNeeds, *address.SpecialNeedsCode)
	}
	return detail
}

// describe is a best-effort reference lookup; unknown codes decorate as nil.
func (s *OrganisationService) describe(ctx context.Context, group, code string) *string {
	if code == "" {
		return nil
	}
	description, err := s.repo.ReferenceDescription(ctx, group, code)
	if err != nil {
		s.logger.Warn("Reference data lookup failed",
			zap.Error(err),
			zap.String("group", group),
			zap.String("code", code),
		)
		return nil
	}
	return description
}
