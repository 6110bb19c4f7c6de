package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/orghub/org_management_app/internal/apperrors"
	"github.com/orghub/org_management_app/internal/core/domain"
	portsrepo "github.com/orghub/org_management_app/internal/core/ports/repositories"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/dto"
)

// ApprovalService owns the approval workflow. It is both the admin-facing
// facade (list, resolve, summary) and the submitter the entity services call
// when a record is sent for review.
type ApprovalService struct {
	BaseService
	approvalRepo portsrepo.ApprovalRepositoryFacade
}

// NewApprovalService creates a new approval service.
func NewApprovalService(approvalRepo portsrepo.ApprovalRepositoryFacade) *ApprovalService {
	return &ApprovalService{approvalRepo: approvalRepo}
}

var (
	_ portssvc.ApprovalSvcFacade = (*ApprovalService)(nil)
	_ portssvc.ApprovalSubmitter = (*ApprovalService)(nil)
)

// Submit opens a new approval request for an entity. The repository inserts
// the approval row and flips the entity to PENDING in one transaction.
// Submitting while an approval is already pending is a conflict.
func (s *ApprovalService) Submit(ctx context.Context, entityType domain.EntityType, entityID string, actor domain.Actor) (*domain.Approval, error) {
	if !entityType.IsApprovable() {
		return nil, fmt.Errorf("%w: %s records do not go through approval", apperrors.ErrValidation, entityType)
	}

	latest, err := s.approvalRepo.FindLatestApproval(ctx, entityType, entityID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check latest approval",
			slog.String("entity_type", string(entityType)),
			slog.String("entity_id", entityID))
		return nil, err
	}
	if latest != nil && latest.Status == domain.ApprovalPending {
		return nil, fmt.Errorf("%w: an approval request is already pending for this record", apperrors.ErrConflict)
	}

	approval := domain.Approval{
		ApprovalID: uuid.NewString(),
		EntityType: entityType,
		EntityID:   entityID,
		UserID:     actor.UserID,
		Status:     domain.ApprovalPending,
		CreatedAt:  time.Now(),
	}
	if err := s.approvalRepo.SubmitWithApproval(ctx, approval); err != nil {
		s.LogError(ctx, err, "Failed to submit for approval",
			slog.String("entity_type", string(entityType)),
			slog.String("entity_id", entityID))
		return nil, err
	}

	s.LogInfo(ctx, "Approval requested",
		slog.String("approval_id", approval.ApprovalID),
		slog.String("entity_type", string(entityType)),
		slog.String("entity_id", entityID))
	return &approval, nil
}

func (s *ApprovalService) ListApprovals(ctx context.Context, params dto.ListApprovalsParams) (*dto.ListApprovalsResponse, error) {
	filter := portsrepo.ApprovalFilter{
		EntityType: params.EntityType,
		Status:     params.Status,
		LatestOnly: params.LatestOnly,
		Limit:      params.Limit,
		Offset:     params.Offset(),
	}
	approvals, total, err := s.approvalRepo.ListApprovals(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list approvals")
		return nil, err
	}
	return dto.ToListApprovalsResponse(approvals, params.Page, params.Limit, total), nil
}

func (s *ApprovalService) GetApprovalByID(ctx context.Context, approvalID string) (*domain.Approval, error) {
	return s.approvalRepo.FindApprovalByID(ctx, approvalID)
}

// ResolveApproval applies an admin decision. The requester may only cancel
// their own pending request; every other resolution needs the admin role. The
// approval row and the owning entity's status move in one transaction.
func (s *ApprovalService) ResolveApproval(ctx context.Context, approvalID string, req dto.ResolveApprovalRequest, actor domain.Actor) (*domain.Approval, error) {
	target := domain.ApprovalStatus(req.Status)
	if !domain.ValidApprovalStatus(target) || target == domain.ApprovalPending {
		return nil, fmt.Errorf("%w: invalid resolution status %q", apperrors.ErrValidation, req.Status)
	}

	approval, err := s.approvalRepo.FindApprovalByID(ctx, approvalID)
	if err != nil {
		return nil, err
	}

	if target == domain.ApprovalCancelled {
		if approval.UserID != actor.UserID && !actor.IsAdmin() {
			return nil, fmt.Errorf("%w: only the requester may cancel an approval request", apperrors.ErrForbidden)
		}
	} else if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: resolving approvals requires the admin role", apperrors.ErrForbidden)
	}

	if !approval.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: approval is %s and can no longer be resolved", apperrors.ErrConflict, approval.Status)
	}

	now := time.Now()
	approval.Status = target
	approval.Note = req.Note
	entityStatus := domain.EntityStatusAfter(target)

	if err := s.approvalRepo.ResolveApproval(ctx, *approval, entityStatus, actor.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to resolve approval",
			slog.String("approval_id", approvalID),
			slog.String("status", string(target)))
		return nil, err
	}

	approval.ResolvedBy = actor.UserID
	approval.ResolvedAt = &now
	s.LogInfo(ctx, "Approval resolved",
		slog.String("approval_id", approvalID),
		slog.String("status", string(target)),
		slog.String("entity_status", string(entityStatus)))
	return approval, nil
}

func (s *ApprovalService) Summary(ctx context.Context) ([]domain.ApprovalSummary, error) {
	summary, err := s.approvalRepo.CountPendingByEntityType(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to build approval summary")
		return nil, err
	}
	if summary == nil {
		return []domain.ApprovalSummary{}, nil
	}
	return summary, nil
}
