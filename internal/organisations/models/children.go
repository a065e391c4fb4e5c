package models

import (
	"time"
)

// OrganisationAddress is a postal address owned by one organisation. At most
// one address per organisation is flagged primary by convention; the store does
// not enforce it and last write wins.
type OrganisationAddress struct {
	OrganisationAddressID int64      `gorm:"primaryKey;autoIncrement" json:"organisationAddressId"`
	OrganisationID        int64      `gorm:"index" json:"organisationId"`
	AddressType           *string    `gorm:"size:12" json:"addressType,omitempty"`
	PrimaryAddress        bool       `json:"primaryAddress"`
	MailAddress           bool       `json:"mailAddress"`
	ServiceAddress        bool       `json:"serviceAddress"`
	NoFixedAddress        bool       `json:"noFixedAddress"`
	Flat                  *string    `gorm:"size:30" json:"flat,omitempty"`
	Property              *string    `gorm:"size:50" json:"property,omitempty"`
	Street                *string    `gorm:"size:160" json:"street,omitempty"`
	Area                  *string    `gorm:"size:70" json:"area,omitempty"`
	CityCode              *string    `gorm:"size:12" json:"cityCode,omitempty"`
	CountyCode            *string    `gorm:"size:12" json:"countyCode,omitempty"`
	PostCode              *string    `gorm:"size:12" json:"postCode,omitempty"`
	CountryCode           *string    `gorm:"size:12" json:"countryCode,omitempty"`
	SpecialNeedsCode      *string    `gorm:"size:12" json:"specialNeedsCode,omitempty"`
	ContactPersonName     *string    `gorm:"size:40" json:"contactPersonName,omitempty"`
	BusinessHours         *string    `gorm:"size:60" json:"businessHours,omitempty"`
	StartDate             *time.Time `json:"startDate,omitempty"`
	EndDate               *time.Time `json:"endDate,omitempty"`
	Audit                 `gorm:"embedded"`
}

// OrganisationPhone is a phone number owned by one organisation. It either
// stands alone at organisation level or is attached to an address through an
// OrganisationAddressPhone link row.
type OrganisationPhone struct {
	OrganisationPhoneID int64   `gorm:"primaryKey;autoIncrement" json:"organisationPhoneId"`
	OrganisationID      int64   `gorm:"index" json:"organisationId"`
	PhoneType           string  `gorm:"size:12" json:"phoneType"`
	PhoneNumber         string  `gorm:"size:40" json:"phoneNumber"`
	ExtNumber           *string `gorm:"size:7" json:"extNumber,omitempty"`
	Audit               `gorm:"embedded"`
}

// OrganisationEmail is an email address owned by one organisation.
type OrganisationEmail struct {
	OrganisationEmailID int64  `gorm:"primaryKey;autoIncrement" json:"organisationEmailId"`
	OrganisationID      int64  `gorm:"index" json:"organisationId"`
	EmailAddress        string `gorm:"size:240" json:"emailAddress"`
	Audit               `gorm:"embedded"`
}

// OrganisationWebAddress is a web address owned by one organisation.
type OrganisationWebAddress struct {
	OrganisationWebAddressID int64  `gorm:"primaryKey;autoIncrement" json:"organisationWebAddressId"`
	OrganisationID           int64  `gorm:"index" json:"organisationId"`
	WebAddress               string `gorm:"size:240" json:"webAddress"`
	Audit                    `gorm:"embedded"`
}

// OrganisationType is a set membership keyed by (organisationId, type code).
// Replacing the set means delete-all-then-insert.
type OrganisationType struct {
	OrganisationID   int64  `gorm:"primaryKey;autoIncrement:false" json:"organisationId"`
	OrganisationType string `gorm:"primaryKey;size:12" json:"organisationType"`
	Audit            `gorm:"embedded"`
}

// OrganisationAddressPhone links a phone row to a specific address. Deleting
// the link also deletes the underlying phone row.
type OrganisationAddressPhone struct {
	OrganisationAddressPhoneID int64 `gorm:"primaryKey;autoIncrement" json:"organisationAddressPhoneId"`
	OrganisationID             int64 `gorm:"index" json:"organisationId"`
	OrganisationAddressID      int64 `gorm:"index" json:"organisationAddressId"`
	OrganisationPhoneID        int64 `json:"organisationPhoneId"`
	Audit                      `gorm:"embedded"`
}
