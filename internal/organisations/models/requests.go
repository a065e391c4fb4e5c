package models

import (
	"time"
)

// CreateOrganisationRequest is the UI-facing creation payload.
//
// Deprecated: organisations created through this path are never synchronised
// back to NOMIS. Kept for the UI until two-way sync exists.
type CreateOrganisationRequest struct {
	OrganisationName string     `json:"organisationName"`
	ProgrammeNumber  *string    `json:"programmeNumber,omitempty"`
	VATNumber        *string    `json:"vatNumber,omitempty"`
	CaseloadID       *string    `json:"caseloadId,omitempty"`
	Comments         *string    `json:"comments,omitempty"`
	Active           bool       `json:"active"`
	DeactivatedDate  *time.Time `json:"deactivatedDate,omitempty"`
	CreatedBy        string     `json:"createdBy"`
}

// SyncOrganisationData holds the mutable organisation fields carried by both
// sync create and sync update payloads. The organisation ID is the fixed
// corporate ID from NOMIS.
type SyncOrganisationData struct {
	OrganisationID   int64      `json:"organisationId"`
	OrganisationName string     `json:"organisationName"`
	ProgrammeNumber  *string    `json:"programmeNumber,omitempty"`
	VATNumber        *string    `json:"vatNumber,omitempty"`
	CaseloadID       *string    `json:"caseloadId,omitempty"`
	Comments         *string    `json:"comments,omitempty"`
	Active           bool       `json:"active"`
	DeactivatedDate  *time.Time `json:"deactivatedDate,omitempty"`
}

type SyncCreateOrganisationRequest struct {
	SyncOrganisationData
	CreatedBy   string     `json:"createdBy"`
	CreatedTime *time.Time `json:"createdTime,omitempty"`
}

type SyncUpdateOrganisationRequest struct {
	SyncOrganisationData
	UpdatedBy   string     `json:"updatedBy"`
	UpdatedTime *time.Time `json:"updatedTime,omitempty"`
}

// SyncAddressData holds the mutable address fields. OrganisationID names the
// claimed parent and is cross-checked on update.
type SyncAddressData struct {
	OrganisationID    int64      `json:"organisationId"`
	AddressType       *string    `json:"addressType,omitempty"`
	PrimaryAddress    bool       `json:"primaryAddress"`
	MailAddress       bool       `json:"mailAddress"`
	ServiceAddress    bool       `json:"serviceAddress"`
	NoFixedAddress    bool       `json:"noFixedAddress"`
	Flat              *string    `json:"flat,omitempty"`
	Property          *string    `json:"property,omitempty"`
	Street            *string    `json:"street,omitempty"`
	Area              *string    `json:"area,omitempty"`
	CityCode          *string    `json:"cityCode,omitempty"`
	CountyCode        *string    `json:"countyCode,omitempty"`
	PostCode          *string    `json:"postCode,omitempty"`
	CountryCode       *string    `json:"countryCode,omitempty"`
	SpecialNeedsCode  *string    `json:"specialNeedsCode,omitempty"`
	ContactPersonName *string    `json:"contactPersonName,omitempty"`
	BusinessHours     *string    `json:"businessHours,omitempty"`
	StartDate         *time.Time `json:"startDate,omitempty"`
	EndDate           *time.Time `json:"endDate,omitempty"`
}

type SyncCreateAddressRequest struct {
	SyncAddressData
	CreatedBy   string     `json:"createdBy"`
	CreatedTime *time.Time `json:"createdTime,omitempty"`
}

type SyncUpdateAddressRequest struct {
	SyncAddressData
	UpdatedBy   string     `json:"updatedBy"`
	UpdatedTime *time.Time `json:"updatedTime,omitempty"`
}

// SyncPhoneData holds the mutable phone fields.
type SyncPhoneData struct {
	OrganisationID int64   `json:"organisationId"`
	PhoneType      string  `json:"phoneType"`
	PhoneNumber    string  `json:"phoneNumber"`
	ExtNumber      *string `json:"extNumber,omitempty"`
}

type SyncCreatePhoneRequest struct {
	SyncPhoneData
	CreatedBy   string     `json:"createdBy"`
	CreatedTime *time.Time `json:"createdTime,omitempty"`
}

type SyncUpdatePhoneRequest struct {
	SyncPhoneData
	UpdatedBy   string     `json:"updatedBy"`
	UpdatedTime *time.Time `json:"updatedTime,omitempty"`
}

// SyncEmailData holds the mutable email fields.
type SyncEmailData struct {
	OrganisationID int64  `json:"organisationId"`
	EmailAddress   string `json:"emailAddress"`
}

type SyncCreateEmailRequest struct {
	SyncEmailData
	CreatedBy   string     `json:"createdBy"`
	CreatedTime *time.Time `json:"createdTime,omitempty"`
}

type SyncUpdateEmailRequest struct {
	SyncEmailData
	UpdatedBy   string     `json:"updatedBy"`
	UpdatedTime *time.Time `json:"updatedTime,omitempty"`
}

// SyncWebData holds the mutable web address fields.
type SyncWebData struct {
	OrganisationID int64  `json:"organisationId"`
	WebAddress     string `json:"webAddress"`
}

type SyncCreateWebRequest struct {
	SyncWebData
	CreatedBy   string     `json:"createdBy"`
	CreatedTime *time.Time `json:"createdTime,omitempty"`
}

type SyncUpdateWebRequest struct {
	SyncWebData
	UpdatedBy   string     `json:"updatedBy"`
	UpdatedTime *time.Time `json:"updatedTime,omitempty"`
}

// SyncTypeData is one entry of a replacement type set.
type SyncTypeData struct {
	Type        string     `json:"type"`
	CreatedBy   string     `json:"createdBy"`
	CreatedTime *time.Time `json:"createdTime,omitempty"`
}

// SyncUpdateTypesRequest replaces the whole type set for an organisation. An
// empty list is valid and clears the set.
type SyncUpdateTypesRequest struct {
	OrganisationID int64          `json:"organisationId"`
	Types          []SyncTypeData `json:"types"`
}

// SyncCreateAddressPhoneRequest creates a fresh phone row and links it to the
// given address. The parent organisation is taken from the address.
type SyncCreateAddressPhoneRequest struct {
	OrganisationAddressID int64      `json:"organisationAddressId"`
	PhoneType             string     `json:"phoneType"`
	PhoneNumber           string     `json:"phoneNumber"`
	ExtNumber             *string    `json:"extNumber,omitempty"`
	CreatedBy             string     `json:"createdBy"`
	CreatedTime           *time.Time `json:"createdTime,omitempty"`
}

type SyncUpdateAddressPhoneRequest struct {
	OrganisationID int64      `json:"organisationId"`
	PhoneType      string     `json:"phoneType"`
	PhoneNumber    string     `json:"phoneNumber"`
	ExtNumber      *string    `json:"extNumber,omitempty"`
	UpdatedBy      string     `json:"updatedBy"`
	UpdatedTime    *time.Time `json:"updatedTime,omitempty"`
}
