package models

import (
	"time"
)

// PhoneDetails is a phone row decorated with its type description.
type PhoneDetails struct {
	OrganisationPhoneID  int64   `json:"organisationPhoneId"`
	OrganisationID       int64   `json:"organisationId"`
	PhoneType            string  `json:"phoneType"`
	PhoneTypeDescription *string `json:"phoneTypeDescription,omitempty"`
	PhoneNumber          string  `json:"phoneNumber"`
	ExtNumber            *string `json:"extNumber,omitempty"`
	Audit
}

// AddressDetails is an address decorated with reference descriptions and the
// phones linked to it.
type AddressDetails struct {
	OrganisationAddressID       int64          `json:"organisationAddressId"`
	OrganisationID              int64          `json:"organisationId"`
	AddressType                 *string        `json:"addressType,omitempty"`
	PrimaryAddress              bool           `json:"primaryAddress"`
	MailAddress                 bool           `json:"mailAddress"`
	ServiceAddress              bool           `json:"serviceAddress"`
	NoFixedAddress              bool           `json:"noFixedAddress"`
	Flat                        *string        `json:"flat,omitempty"`
	Property                    *string        `json:"property,omitempty"`
	Street                      *string        `json:"street,omitempty"`
	Area                        *string        `json:"area,omitempty"`
	CityCode                    *string        `json:"cityCode,omitempty"`
	CityDescription             *string        `json:"cityDescription,omitempty"`
	CountyCode                  *string        `json:"countyCode,omitempty"`
	CountyDescription           *string        `json:"countyDescription,omitempty"`
	PostCode                    *string        `json:"postCode,omitempty"`
	CountryCode                 *string        `json:"countryCode,omitempty"`
	CountryDescription          *string        `json:"countryDescription,omitempty"`
	SpecialNeedsCode            *string        `json:"specialNeedsCode,omitempty"`
	SpecialNeedsCodeDescription *string        `json:"specialNeedsCodeDescription,omitempty"`
	ContactPersonName           *string        `json:"contactPersonName,omitempty"`
	BusinessHours               *string        `json:"businessHours,omitempty"`
	StartDate                   *time.Time     `json:"startDate,omitempty"`
	EndDate                     *time.Time     `json:"endDate,omitempty"`
	PhoneNumbers                []PhoneDetails `json:"phoneNumbers"`
	Audit
}

// TypeDetails is a type membership decorated with its description.
type TypeDetails struct {
	OrganisationID   int64   `json:"organisationId"`
	OrganisationType string  `json:"organisationType"`
	TypeDescription  *string `json:"typeDescription,omitempty"`
	Audit
}

// OrganisationDetails is the full aggregated view of one organisation.
type OrganisationDetails struct {
	OrganisationID     int64                    `json:"organisationId"`
	OrganisationName   string                   `json:"organisationName"`
	ProgrammeNumber    *string                  `json:"programmeNumber,omitempty"`
	VATNumber          *string                  `json:"vatNumber,omitempty"`
	CaseloadID         *string                  `json:"caseloadId,omitempty"`
	CaseloadPrisonName *string                  `json:"caseloadPrisonName,omitempty"`
	Comments           *string                  `json:"comments,omitempty"`
	Active             bool                     `json:"active"`
	DeactivatedDate    *time.Time               `json:"deactivatedDate,omitempty"`
	OrganisationTypes  []TypeDetails            `json:"organisationTypes"`
	PhoneNumbers       []PhoneDetails           `json:"phoneNumbers"`
	EmailAddresses     []OrganisationEmail      `json:"emailAddresses"`
	WebAddresses       []OrganisationWebAddress `json:"webAddresses"`
	Addresses          []AddressDetails         `json:"addresses"`
	Audit
}

// MigrateOrganisationRequest carries one full organisation graph exported from
// NOMIS. Nested audit fields come from the legacy rows.
type MigrateOrganisationRequest struct {
	NomisCorporateID  int64                   `json:"nomisCorporateId"`
	OrganisationName  string                  `json:"organisationName"`
	ProgrammeNumber   *string                 `json:"programmeNumber,omitempty"`
	VATNumber         *string                 `json:"vatNumber,omitempty"`
	CaseloadID        *string                 `json:"caseloadId,omitempty"`
	Comments          *string                 `json:"comments,omitempty"`
	Active            bool                    `json:"active"`
	DeactivatedDate   *time.Time              `json:"deactivatedDate,omitempty"`
	OrganisationTypes []MigrateTypeRequest    `json:"organisationTypes"`
	PhoneNumbers      []MigratePhoneRequest   `json:"phoneNumbers"`
	EmailAddresses    []MigrateEmailRequest   `json:"emailAddresses"`
	WebAddresses      []MigrateWebRequest     `json:"webAddresses"`
	Addresses         []MigrateAddressRequest `json:"addresses"`
	Audit
}

type MigrateTypeRequest struct {
	Type  string `json:"type"`
	Audit
}

type MigratePhoneRequest struct {
	PhoneType   string  `json:"phoneType"`
	PhoneNumber string  `json:"phoneNumber"`
	ExtNumber   *string `json:"extNumber,omitempty"`
	Audit
}

type MigrateEmailRequest struct {
	EmailAddress string `json:"emailAddress"`
	Audit
}

type MigrateWebRequest struct {
	WebAddress string `json:"webAddress"`
	Audit
}

type MigrateAddressRequest struct {
	SyncAddressData
	PhoneNumbers []MigratePhoneRequest `json:"phoneNumbers"`
	Audit
}

// MigratedAddress reports the stored IDs for one migrated address and its
// nested phones.
type MigratedAddress struct {
	OrganisationAddressID int64   `json:"organisationAddressId"`
	PhoneNumberIDs        []int64 `json:"phoneNumberIds"`
}

// MigrateOrganisationResponse reports the stored IDs for a migrated graph.
type MigrateOrganisationResponse struct {
	OrganisationID    int64             `json:"organisationId"`
	OrganisationTypes []string          `json:"organisationTypes"`
	PhoneNumberIDs    []int64           `json:"phoneNumberIds"`
	EmailAddressIDs   []int64           `json:"emailAddressIds"`
	WebAddressIDs     []int64           `json:"webAddressIds"`
	Addresses         []MigratedAddress `json:"addresses"`
}
