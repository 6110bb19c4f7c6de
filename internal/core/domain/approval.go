package domain

import "time"

// ApprovalStatus tracks the resolution of one approval request.
// REVISION means "sent back for edits"; CANCELLED means the requester withdrew
// the request. Both are distinct, terminal outcomes.
type ApprovalStatus string

const (
	ApprovalPending   ApprovalStatus = "PENDING"
	ApprovalApproved  ApprovalStatus = "APPROVED"
	ApprovalRejected  ApprovalStatus = "REJECTED"
	ApprovalRevision  ApprovalStatus = "REVISION"
	ApprovalCancelled ApprovalStatus = "CANCELLED"
)

// ValidApprovalStatus reports whether s is a known approval status.
func ValidApprovalStatus(s ApprovalStatus) bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected, ApprovalRevision, ApprovalCancelled:
		return true
	}
	return false
}

// Approval is one approval request for a specific entity instance. A
// resubmission after revision creates a new Approval row; earlier rows remain
// as immutable history and the row with the latest CreatedAt is the current one.
type Approval struct {
	ApprovalID string         `json:"approvalID"`
	EntityType EntityType     `json:"entityType"`
	EntityID   string         `json:"entityID"`
	UserID     string         `json:"userID"` // requester
	Status     ApprovalStatus `json:"status"`
	Note       string         `json:"note"`
	ResolvedBy string         `json:"resolvedBy,omitempty"`
	ResolvedAt *time.Time     `json:"resolvedAt,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// CanTransitionTo reports whether an approval in its current status may move
// to the target status. Only PENDING approvals may move; all other statuses
// are terminal and a resubmission creates a fresh Approval row instead.
func (a *Approval) CanTransitionTo(target ApprovalStatus) bool {
	if a.Status != ApprovalPending {
		return false
	}
	switch target {
	case ApprovalApproved, ApprovalRejected, ApprovalRevision, ApprovalCancelled:
		return true
	}
	return false
}

// EntityStatusAfter maps a resolved approval status to the status the owning
// entity should carry afterwards. A cancelled request returns the entity to
// DRAFT so it can be edited and resubmitted.
func EntityStatusAfter(s ApprovalStatus) Status {
	switch s {
	case ApprovalApproved:
		return StatusApproved
	case ApprovalRejected:
		return StatusRejected
	case ApprovalRevision:
		return StatusRevision
	case ApprovalCancelled:
		return StatusDraft
	default:
		return StatusPending
	}
}

// ApprovalSummary is the pending-count-per-entity-type aggregate used by
// dashboard views.
type ApprovalSummary struct {
	EntityType EntityType `json:"entityType"`
	Pending    int64      `json:"pending"`
}
