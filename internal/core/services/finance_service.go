package services

import (
	"context"
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

type financeService struct {
	BaseService
	financeRepo portsrepo.FinanceRepositoryFacade
	attachments portssvc.AttachmentSvcFacade
	submitter   portssvc.ApprovalSubmitter
}

// NewFinanceService creates a new finance service.
func NewFinanceService(
	financeRepo portsrepo.FinanceRepositoryFacade,
	attachments portssvc.AttachmentSvcFacade,
	submitter portssvc.ApprovalSubmitter,
) portssvc.FinanceSvcFacade {
	return &financeService{
		financeRepo: financeRepo,
		attachments: attachments,
		submitter:   submitter,
	}
}

var _ portssvc.FinanceSvcFacade = (*financeService)(nil)

func (s *financeService) CreateFinance(ctx context.Context, req dto.CreateFinanceRequest, actor domain.Actor) (*domain.Finance, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	proofID, err := normalizeRef(strVal(req.ProofFileID))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	finance := domain.Finance{
		FinanceID:     uuid.NewString(),
		Title:         req.Title,
		Description:   req.Description,
		Type:          domain.FinanceType(req.Type),
		Amount:        req.Amount,
		Date:          req.Date,
		CategoryID:    strVal(req.CategoryID),
		WorkProgramID: strVal(req.WorkProgramID),
		PeriodID:      strVal(req.PeriodID),
		ProofFileID:   proofID,
		Status:        domain.StatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.financeRepo.SaveFinance(ctx, finance); err != nil {
		s.LogError(ctx, err, "Failed to create finance record")
		return nil, err
	}

	s.LogInfo(ctx, "Finance record created", slog.String("finance_id", finance.FinanceID))
	return &finance, nil
}

func (s *financeService) GetFinanceByID(ctx context.Context, financeID string) (*domain.Finance, error) {
	return s.financeRepo.FindFinanceByID(ctx, financeID)
}

func (s *financeService) ListFinances(ctx context.Context, params dto.ListFinancesParams) (*dto.ListFinancesResponse, error) {
	filter := portsrepo.FinanceFilter{
		Type:          params.Type,
		Status:        params.Status,
		CategoryID:    params.CategoryID,
		WorkProgramID: params.WorkProgramID,
		PeriodID:      params.PeriodID,
		Search:        params.Search,
		StartDate:     params.StartDate,
		EndDate:       params.EndDate,
		Limit:         params.Limit,
		Offset:        params.Offset(),
	}
	finances, total, err := s.financeRepo.ListFinances(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list finance records")
		return nil, err
	}
	return dto.ToListFinancesResponse(finances, params.Page, params.Limit, total), nil
}

func (s *financeService) UpdateFinance(ctx context.Context, financeID string, req dto.UpdateFinanceRequest, actor domain.Actor) (*domain.Finance, error) {
	finance, err := s.financeRepo.FindFinanceByID(ctx, financeID)
	if err != nil {
		return nil, err
	}
	if err := checkEditable(finance.Status, actor); err != nil {
		return nil, err
	}

	if req.Title != nil {
		finance.Title = *req.Title
	}
	if req.Description != nil {
		finance.Description = *req.Description
	}
	if req.Type != nil {
		finance.Type = domain.FinanceType(*req.Type)
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() || req.Amount.IsZero() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		finance.Amount = *req.Amount
	}
	if req.Date != nil {
		finance.Date = *req.Date
	}
	if req.CategoryID != nil {
		finance.CategoryID = *req.CategoryID
	}
	if req.WorkProgramID != nil {
		finance.WorkProgramID = *req.WorkProgramID
	}
	if req.PeriodID != nil {
		finance.PeriodID = *req.PeriodID
	}

	oldProof := finance.ProofFileID
	if req.RemoveProof {
		finance.ProofFileID = ""
	} else if req.ProofFileID != nil {
		proofID, err := normalizeRef(*req.ProofFileID)
		if err != nil {
			return nil, err
		}
		finance.ProofFileID = proofID
	}

	finance.LastUpdatedAt = time.Now()
	finance.LastUpdatedBy = actor.UserID

	if err := s.financeRepo.UpdateFinance(ctx, *finance); err != nil {
		s.LogError(ctx, err, "Failed to update finance record", slog.String("finance_id", financeID))
		return nil, err
	}

	// The record now points elsewhere; drop the superseded proof file.
	if oldProof != "" && oldProof != finance.ProofFileID {
		if err := s.attachments.Remove(ctx, oldProof); err != nil {
			s.LogError(ctx, err, "Failed to remove superseded proof file",
				slog.String("finance_id", financeID), slog.String("file_id", oldProof))
		}
	}

	return finance, nil
}

func (s *financeService) DeleteFinance(ctx context.Context, financeID string, actor domain.Actor) error {
	finance, err := s.financeRepo.FindFinanceByID(ctx, financeID)
	if err != nil {
		return err
	}
	if finance.CreatedBy != actor.UserID && !actor.IsAdmin() {
		return fmt.Errorf("%w: only the creator or an admin may delete this record", apperrors.ErrForbidden)
	}
	if err := checkEditable(finance.Status, actor); err != nil {
		return err
	}

	if err := s.financeRepo.DeleteFinance(ctx, financeID); err != nil {
		s.LogError(ctx, err, "Failed to delete finance record", slog.String("finance_id", financeID))
		return err
	}

	if finance.ProofFileID != "" {
		if err := s.attachments.Remove(ctx, finance.ProofFileID); err != nil {
			s.LogError(ctx, err, "Failed to remove proof file of deleted record",
				slog.String("finance_id", financeID))
		}
	}

	s.LogInfo(ctx, "Finance record deleted", slog.String("finance_id", financeID))
	return nil
}

func (s *financeService) BulkDeleteFinances(ctx context.Context, financeIDs []string, actor domain.Actor) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: bulk delete requires the admin role", apperrors.ErrForbidden)
	}
	if err := s.financeRepo.DeleteFinances(ctx, financeIDs); err != nil {
		s.LogError(ctx, err, "Failed to bulk delete finance records", slog.Int("count", len(financeIDs)))
		return err
	}
	s.LogInfo(ctx, "Finance records bulk deleted", slog.Int("count", len(financeIDs)))
	return nil
}

func (s *financeService) SubmitFinanceForApproval(ctx context.Context, financeID string, actor domain.Actor) (*domain.Approval, error) {
	finance, err := s.financeRepo.FindFinanceByID(ctx, financeID)
	if err != nil {
		return nil, err
	}
	if err := checkSubmittable(finance.Status); err != nil {
		return nil, err
	}
	return s.submitter.Submit(ctx, domain.EntityFinance, financeID, actor)
}
