// Package models defines the domain models for organisation records and the
// request/response shapes exchanged with callers. The entity structs carry GORM
// tags and are persisted directly.
package models

import (
	"time"
)

// IDSource describes how an organisation obtained its identifier. UI-created
// organisations get store-generated IDs; sync/migration-created organisations
// keep the fixed corporate ID supplied by the legacy system. The two numeric
// ranges are partitioned externally and never overlap.
type IDSource string

const (
	IDGenerated IDSource = "GENERATED"
	IDFixed     IDSource = "FIXED"
)

// Audit is the audit quad carried by the organisation and every child entity.
type Audit struct {
	CreatedBy   string     `gorm:"size:100" json:"createdBy"`
	CreatedTime time.Time  `json:"createdTime"`
	UpdatedBy   *string    `gorm:"size:100" json:"updatedBy,omitempty"`
	UpdatedTime *time.Time `json:"updatedTime,omitempty"`
}

// Organisation is the aggregate root. A single struct backs both lifecycle
// variants; IDSource is a non-persisted discriminator set by the factory paths.
type Organisation struct {
	OrganisationID   int64      `gorm:"primaryKey;autoIncrement" json:"organisationId"`
	OrganisationName string     `gorm:"size:40" json:"organisationName"`
	ProgrammeNumber  *string    `gorm:"size:40" json:"programmeNumber,omitempty"`
	VATNumber        *string    `gorm:"column:vat_number;size:12" json:"vatNumber,omitempty"`
	CaseloadID       *string    `gorm:"size:6" json:"caseloadId,omitempty"`
	Comments         *string    `gorm:"size:240" json:"comments,omitempty"`
	Active           bool       `json:"active"`
	DeactivatedDate  *time.Time `json:"deactivatedDate,omitempty"`
	IDSource         IDSource   `gorm:"-" json:"-"`
	Audit            `gorm:"embedded"`
}

// OrganisationSummary is a read-only projection backing search and the summary
// endpoint: organisation fields plus the primary address (if any) and one
// business phone attached to that address.
type OrganisationSummary struct {
	OrganisationID               int64   `gorm:"primaryKey" json:"organisationId"`
	OrganisationName             string  `json:"organisationName"`
	Active                       bool    `json:"active"`
	Flat                         *string `json:"flat,omitempty"`
	Property                     *string `json:"property,omitempty"`
	Street                       *string `json:"street,omitempty"`
	Area                         *string `json:"area,omitempty"`
	CityCode                     *string `json:"cityCode,omitempty"`
	CountyCode                   *string `json:"countyCode,omitempty"`
	PostCode                     *string `json:"postCode,omitempty"`
	CountryCode                  *string `json:"countryCode,omitempty"`
	BusinessPhoneNumber          *string `json:"businessPhoneNumber,omitempty"`
	BusinessPhoneNumberExtension *string `json:"businessPhoneNumberExtension,omitempty"`
}

// TableName maps the projection onto the organisation_summary view.
func (OrganisationSummary) TableName() string {
	return "organisation_summary"
}

// OrganisationSummaryPage is one page of search results.
type OrganisationSummaryPage struct {
	Content       []OrganisationSummary `json:"content"`
	Page          int                   `json:"page"`
	Size          int                   `json:"size"`
	TotalElements int64                 `json:"totalElements"`
	TotalPages    int                   `json:"totalPages"`
}

// ReferenceCode is a coded value with a human-readable description, used only
// to decorate responses.
type ReferenceCode struct {
	GroupCode   string `gorm:"primaryKey;size:40"`
	Code        string `gorm:"primaryKey;size:40"`
	Description string `gorm:"size:100"`
}
