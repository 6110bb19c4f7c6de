package models

import (
	"database/sql"
	"time"
)

// Approval represents a row of the approvals table. Multiple rows may exist
// for the same (entity_type, entity_id); the one with the greatest created_at
// is the current approval.
type Approval struct {
	ApprovalID string         `db:"approval_id"`
	EntityType string         `db:"entity_type"`
	EntityID   string         `db:"entity_id"`
	UserID     string         `db:"user_id"`
	Status     string         `db:"status"`
	Note       string         `db:"note"`
	ResolvedBy sql.NullString `db:"resolved_by"`
	ResolvedAt sql.NullTime   `db:"resolved_at"`
	CreatedAt  time.Time      `db:"created_at"`
}
