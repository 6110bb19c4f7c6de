package dto

import (
	"time"

	"github.com/orghub/org_management_app/internal/core/domain"
)

// ResolveApprovalRequest carries an admin's decision on a pending approval.
type ResolveApprovalRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED REJECTED REVISION CANCELLED"`
	Note   string `json:"note"`
}

// ListApprovalsParams defines query parameters for listing approvals.
// LatestOnly collapses the history to one row per (entityType, entityID),
// keeping the row with the greatest createdAt.
type ListApprovalsParams struct {
	PageParams
	EntityType string `form:"entityType" binding:"omitempty,approvable_entity"`
	Status     string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED REVISION CANCELLED"`
	LatestOnly bool   `form:"latestOnly,default=true"`
}

// ApprovalResponse defines the data returned for an approval record.
type ApprovalResponse struct {
	ApprovalID string                `json:"approvalID"`
	EntityType domain.EntityType     `json:"entityType"`
	EntityID   string                `json:"entityID"`
	UserID     string                `json:"userID"`
	Status     domain.ApprovalStatus `json:"status"`
	Note       string                `json:"note,omitempty"`
	ResolvedBy string                `json:"resolvedBy,omitempty"`
	ResolvedAt *time.Time            `json:"resolvedAt,omitempty"`
	CreatedAt  time.Time             `json:"createdAt"`
}

// ToApprovalResponse converts a domain.Approval to ApprovalResponse.
func ToApprovalResponse(a *domain.Approval) ApprovalResponse {
	return ApprovalResponse{
		ApprovalID: a.ApprovalID,
		EntityType: a.EntityType,
		EntityID:   a.EntityID,
		UserID:     a.UserID,
		Status:     a.Status,
		Note:       a.Note,
		ResolvedBy: a.ResolvedBy,
		ResolvedAt: a.ResolvedAt,
		CreatedAt:  a.CreatedAt,
	}
}

// ListApprovalsResponse wraps a page of approvals.
type ListApprovalsResponse struct {
	Approvals  []ApprovalResponse `json:"approvals"`
	Pagination Pagination         `json:"pagination"`
}

// ToListApprovalsResponse converts a page of domain records plus its total count.
func ToListApprovalsResponse(items []domain.Approval, page, limit int, total int64) *ListApprovalsResponse {
	res := make([]ApprovalResponse, len(items))
	for i := range items {
		res[i] = ToApprovalResponse(&items[i])
	}
	return &ListApprovalsResponse{Approvals: res, Pagination: NewPagination(page, limit, total)}
}

// ApprovalSummaryResponse returns pending counts grouped by entity type.
type ApprovalSummaryResponse struct {
	Summary []domain.ApprovalSummary `json:"summary"`
}
