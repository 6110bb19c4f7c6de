package services

import (
	"context"
	"io"

	"github.com/orghub/org_management_app/internal/core/domain"
	"github.com/orghub/org_management_app/internal/dto"
)

// ApprovalSvcFacade defines the approval workflow operations.
type ApprovalSvcFacade interface {
	ListApprovals(ctx context.Context, params dto.ListApprovalsParams) (*dto.ListApprovalsResponse, error)
	GetApprovalByID(ctx context.Context, approvalID string) (*domain.Approval, error)

	// ResolveApproval applies an admin decision to a pending approval and
	// moves the owning entity's status in the same transaction.
	ResolveApproval(ctx context.Context, approvalID string, req dto.ResolveApprovalRequest, actor domain.Actor) (*domain.Approval, error)

	// Summary returns pending counts grouped by entity type.
	Summary(ctx context.Context) ([]domain.ApprovalSummary, error)
}

// ApprovalSubmitter is the narrow interface entity services use to open an
// approval request for one of their records.
type ApprovalSubmitter interface {
	Submit(ctx context.Context, entityType domain.EntityType, entityID string, actor domain.Actor) (*domain.Approval, error)
}

// AttachmentUpload describes one candidate file for the attachment lifecycle.
type AttachmentUpload struct {
	Content     io.Reader
	Filename    string // original filename, used for extension checks
	Size        int64
	DisplayName string // human-readable base for the final stored name
	EntityType  domain.EntityType
}

// AttachmentSvcFacade runs the attachment lifecycle against external storage:
// upload under a temporary name, rename to the final deterministic name, then
// make the file public. The returned file id is the stable reference entity
// records store.
type AttachmentSvcFacade interface {
	Attach(ctx context.Context, upload AttachmentUpload) (string, error)

	// Replace removes oldRef best-effort before attaching the new file.
	Replace(ctx context.Context, oldRef string, upload AttachmentUpload) (string, error)

	// Remove deletes the referenced file best-effort; an already-deleted file
	// is not an error.
	Remove(ctx context.Context, ref string) error

	// Folders lists the configured destination folder per entity type.
	Folders() []dto.FolderResponse
}
