// Package sync implements the reconciliation services used by the NOMIS sync
// feed: one service per entity kind, sharing a common contract. Creates verify
// the referenced parent exists, updates are whole-row replacements guarded by
// an ownership cross-check, and deletes return the pre-delete snapshot so the
// caller can build the deletion event payload. Every mutation through this
// package emits a NOMIS-sourced event.
package sync

import (
	"time"

	"github.com/gartstein/organisations/internal/organisations/events"
	"github.com/gartstein/organisations/internal/organisations/models"
)

// Notifier dispatches one outbound domain event per successful mutation.
type Notifier interface {
	Send(kind events.Kind, organisationID, identifier int64, source events.Source)
}

// createdAudit builds the audit quad for a new row. Sync payloads may carry
// the legacy creation time; absent, the current time is used.
func createdAudit(by string, at *time.Time) models.Audit {
	t := time.Now().UTC()
	if at != nil {
		t = *at
	}
	return models.Audit{CreatedBy: by, CreatedTime: t}
}

// stampUpdate sets updatedBy/updatedTime, leaving createdBy/createdTime
// untouched.
func stampUpdate(a *models.Audit, by string, at *time.Time) {
	t := time.Now().UTC()
	if at != nil {
		t = *at
	}
	a.UpdatedBy = &by
	a.UpdatedTime = &t
}
