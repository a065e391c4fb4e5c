// Package events defines the outbound domain event taxonomy and the
// fire-and-forget dispatch pipeline. Every successful mutation produces one
// typed event tagged with its origin so downstream consumers can tell
// UI-driven changes (DPS) from sync-driven ones (NOMIS) and avoid feedback
// loops.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies which system originated a mutation.
type Source string

const (
	SourceDPS   Source = "DPS"
	SourceNOMIS Source = "NOMIS"
)

// Kind is the internal tag for an event type.
type Kind string

const (
	OrganisationCreated Kind = "ORGANISATION_CREATED"
	OrganisationUpdated Kind = "ORGANISATION_UPDATED"
	OrganisationDeleted Kind = "ORGANISATION_DELETED"

	PhoneCreated Kind = "ORGANISATION_PHONE_CREATED"
	PhoneUpdated Kind = "ORGANISATION_PHONE_UPDATED"
	PhoneDeleted Kind = "ORGANISATION_PHONE_DELETED"

	EmailCreated Kind = "ORGANISATION_EMAIL_CREATED"
	EmailUpdated Kind = "ORGANISATION_EMAIL_UPDATED"
	EmailDeleted Kind = "ORGANISATION_EMAIL_DELETED"

	WebCreated Kind = "ORGANISATION_WEB_CREATED"
	WebUpdated Kind = "ORGANISATION_WEB_UPDATED"
	WebDeleted Kind = "ORGANISATION_WEB_DELETED"

	AddressCreated Kind = "ORGANISATION_ADDRESS_CREATED"
	AddressUpdated Kind = "ORGANISATION_ADDRESS_UPDATED"
	AddressDeleted Kind = "ORGANISATION_ADDRESS_DELETED"

	AddressPhoneCreated Kind = "ORGANISATION_ADDRESS_PHONE_CREATED"
	AddressPhoneUpdated Kind = "ORGANISATION_ADDRESS_PHONE_UPDATED"
	AddressPhoneDeleted Kind = "ORGANISATION_ADDRESS_PHONE_DELETED"

	// TypesUpdated is the only event for the type set: one per replace-all
	// call, however many rows changed.
	TypesUpdated Kind = "ORGANISATION_TYPES_UPDATED"
)

type template struct {
	eventType   string
	description string
}

// templates maps each kind to its externally visible type string and
// description. A plain lookup table, no per-kind behavior.
var templates = map[Kind]template{
	OrganisationCreated: {"organisations-api.organisation.created", "An organisation has been created"},
	OrganisationUpdated: {"organisations-api.organisation.updated", "An organisation has been updated"},
	OrganisationDeleted: {"organisations-api.organisation.deleted", "An organisation has been deleted"},

	PhoneCreated: {"organisations-api.organisation-phone.created", "An organisation phone number has been created"},
	PhoneUpdated: {"organisations-api.organisation-phone.updated", "An organisation phone number has been updated"},
	PhoneDeleted: {"organisations-api.organisation-phone.deleted", "An organisation phone number has been deleted"},

	EmailCreated: {"organisations-api.organisation-email.created", "An organisation email address has been created"},
	EmailUpdated: {"organisations-api.organisation-email.updated", "An organisation email address has been updated"},
	EmailDeleted: {"organisations-api.organisation-email.deleted", "An organisation email address has been deleted"},

	WebCreated: {"organisations-api.organisation-web.created", "An organisation web address has been created"},
	WebUpdated: {"organisations-api.organisation-web.updated", "An organisation web address has been updated"},
	WebDeleted: {"organisations-api.organisation-web.deleted", "An organisation web address has been deleted"},

	AddressCreated: {"organisations-api.organisation-address.created", "An organisation address has been created"},
	AddressUpdated: {"organisations-api.organisation-address.updated", "An organisation address has been updated"},
	AddressDeleted: {"organisations-api.organisation-address.deleted", "An organisation address has been deleted"},

	AddressPhoneCreated: {"organisations-api.organisation-address-phone.created", "An organisation address phone number has been created"},
	AddressPhoneUpdated: {"organisations-api.organisation-address-phone.updated", "An organisation address phone number has been updated"},
	AddressPhoneDeleted: {"organisations-api.organisation-address-phone.deleted", "An organisation address phone number has been deleted"},

	TypesUpdated: {"organisations-api.organisation-types.updated", "An organisation's types have been updated"},
}

const eventVersion = 1

// AdditionalInformation identifies the affected entity and the origin of the
// mutation. Identifier is the child entity's own ID, or the organisation ID
// itself for organisation-level events.
type AdditionalInformation struct {
	OrganisationID int64  `json:"organisationId"`
	Identifier     int64  `json:"identifier"`
	Source         Source `json:"source"`
}

// OutboundEvent is the externally consumable domain event envelope.
type OutboundEvent struct {
	EventID               uuid.UUID             `json:"eventId"`
	EventType             string                `json:"eventType"`
	Version               int                   `json:"version"`
	Description           string                `json:"description"`
	OccurredAt            time.Time             `json:"occurredAt"`
	AdditionalInformation AdditionalInformation `json:"additionalInformation"`
}
