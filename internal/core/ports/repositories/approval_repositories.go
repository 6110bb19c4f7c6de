package repositories

import (
	"context"
	"time"

	"github.com/orghub/org_management_app/internal/core/domain"
)

// ApprovalFilter narrows an approval listing. When LatestOnly is set the
// repository collapses the approval history to one row per
// (entity_type, entity_id), keeping the row with the greatest created_at.
type ApprovalFilter struct {
	EntityType string
	Status     string
	LatestOnly bool
	Limit      int
	Offset     int
}

// ApprovalReader defines read operations for approval data.
type ApprovalReader interface {
	FindApprovalByID(ctx context.Context, approvalID string) (*domain.Approval, error)

	// FindLatestApproval returns the current approval for an entity, or
	// apperrors.ErrNotFound when none exists.
	FindLatestApproval(ctx context.Context, entityType domain.EntityType, entityID string) (*domain.Approval, error)

	ListApprovals(ctx context.Context, filter ApprovalFilter) ([]domain.Approval, int64, error)

	// CountPendingByEntityType returns pending counts grouped by entity type.
	CountPendingByEntityType(ctx context.Context) ([]domain.ApprovalSummary, error)
}

// ApprovalWriter defines write operations for approval data. Both operations
// touch the approval row and the owning entity's status in one transaction so
// the two can never diverge.
type ApprovalWriter interface {
	// SubmitWithApproval inserts the approval row and sets the owning entity's
	// status to PENDING atomically.
	SubmitWithApproval(ctx context.Context, approval domain.Approval) error

	// ResolveApproval updates the approval row's status, note and resolution
	// audit fields, and moves the owning entity to entityStatus, atomically.
	ResolveApproval(ctx context.Context, approval domain.Approval, entityStatus domain.Status, resolvedBy string, now time.Time) error
}

// ApprovalRepositoryFacade combines all approval repository interfaces.
type ApprovalRepositoryFacade interface {
	ApprovalReader
	ApprovalWriter
}
