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

type letterService struct {
	BaseService
	letterRepo  portsrepo.LetterRepositoryFacade
	attachments portssvc.AttachmentSvcFacade
	submitter   portssvc.ApprovalSubmitter
}

// NewLetterService creates a new letter service.
func NewLetterService(
	letterRepo portsrepo.LetterRepositoryFacade,
	attachments portssvc.AttachmentSvcFacade,
	submitter portssvc.ApprovalSubmitter,
) portssvc.LetterSvcFacade {
	return &letterService{
		letterRepo:  letterRepo,
		attachments: attachments,
		submitter:   submitter,
	}
}

var _ portssvc.LetterSvcFacade = (*letterService)(nil)

func (s *letterService) CreateLetter(ctx context.Context, req dto.CreateLetterRequest, actor domain.Actor) (*domain.Letter, error) {
	letterType := domain.LetterType(req.Type)
	if letterType == domain.LetterIncoming && req.Origin == "" {
		return nil, fmt.Errorf("%w: incoming letters require an origin", apperrors.ErrValidation)
	}
	if letterType == domain.LetterOutgoing && req.Destination == "" {
		return nil, fmt.Errorf("%w: outgoing letters require a destination", apperrors.ErrValidation)
	}
	fileID, err := normalizeRef(strVal(req.LetterFileID))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	letter := domain.Letter{
		LetterID:     uuid.NewString(),
		Number:       req.Number,
		Subject:      req.Subject,
		Type:         letterType,
		Origin:       req.Origin,
		Destination:  req.Destination,
		Date:         req.Date,
		PeriodID:     strVal(req.PeriodID),
		LetterFileID: fileID,
		Status:       domain.StatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.letterRepo.SaveLetter(ctx, letter); err != nil {
		s.LogError(ctx, err, "Failed to create letter", slog.String("number", req.Number))
		return nil, err
	}

	s.LogInfo(ctx, "Letter created", slog.String("letter_id", letter.LetterID), slog.String("number", letter.Number))
	return &letter, nil
}

func (s *letterService) GetLetterByID(ctx context.Context, letterID string) (*domain.Letter, error) {
	return s.letterRepo.FindLetterByID(ctx, letterID)
}

func (s *letterService) ListLetters(ctx context.Context, params dto.ListLettersParams) (*dto.ListLettersResponse, error) {
	filter := portsrepo.LetterFilter{
		Type:      params.Type,
		Status:    params.Status,
		PeriodID:  params.PeriodID,
		Search:    params.Search,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Limit:     params.Limit,
		Offset:    params.Offset(),
	}
	letters, total, err := s.letterRepo.ListLetters(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list letters")
		return nil, err
	}
	return dto.ToListLettersResponse(letters, params.Page, params.Limit, total), nil
}

func (s *letterService) UpdateLetter(ctx context.Context, letterID string, req dto.UpdateLetterRequest, actor domain.Actor) (*domain.Letter, error) {
	letter, err := s.letterRepo.FindLetterByID(ctx, letterID)
	if err != nil {
		return nil, err
	}
	if err := checkEditable(letter.Status, actor); err != nil {
		return nil, err
	}

	if req.Number != nil {
		letter.Number = *req.Number
	}
	if req.Subject != nil {
		letter.Subject = *req.Subject
	}
	if req.Type != nil {
		letter.Type = domain.LetterType(*req.Type)
	}
	if req.Origin != nil {
		letter.Origin = *req.Origin
	}
	if req.Destination != nil {
		letter.Destination = *req.Destination
	}
	if req.Date != nil {
		letter.Date = *req.Date
	}
	if req.PeriodID != nil {
		letter.PeriodID = *req.PeriodID
	}

	oldFile := letter.LetterFileID
	if req.RemoveFile {
		letter.LetterFileID = ""
	} else if req.LetterFileID != nil {
		fileID, err := normalizeRef(*req.LetterFileID)
		if err != nil {
			return nil, err
		}
		letter.LetterFileID = fileID
	}

	letter.LastUpdatedAt = time.Now()
	letter.LastUpdatedBy = actor.UserID

	if err := s.letterRepo.UpdateLetter(ctx, *letter); err != nil {
		s.LogError(ctx, err, "Failed to update letter", slog.String("letter_id", letterID))
		return nil, err
	}

	if oldFile != "" && oldFile != letter.LetterFileID {
		if err := s.attachments.Remove(ctx, oldFile); err != nil {
			s.LogError(ctx, err, "Failed to remove superseded letter file",
				slog.String("letter_id", letterID), slog.String("file_id", oldFile))
		}
	}

	return letter, nil
}

func (s *letterService) DeleteLetter(ctx context.Context, letterID string, actor domain.Actor) error {
	letter, err := s.letterRepo.FindLetterByID(ctx, letterID)
	if err != nil {
		return err
	}
	if letter.CreatedBy != actor.UserID && !actor.IsAdmin() {
		return fmt.Errorf("%w: only the creator or an admin may delete this record", apperrors.ErrForbidden)
	}
	if err := checkEditable(letter.Status, actor); err != nil {
		return err
	}

	if err := s.letterRepo.DeleteLetter(ctx, letterID); err != nil {
		s.LogError(ctx, err, "Failed to delete letter", slog.String("letter_id", letterID))
		return err
	}

	if letter.LetterFileID != "" {
		if err := s.attachments.Remove(ctx, letter.LetterFileID); err != nil {
			s.LogError(ctx, err, "Failed to remove file of deleted letter",
				slog.String("letter_id", letterID))
		}
	}

	s.LogInfo(ctx, "Letter deleted", slog.String("letter_id", letterID))
	return nil
}

func (s *letterService) BulkDeleteLetters(ctx context.Context, letterIDs []string, actor domain.Actor) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: bulk delete requires the admin role", apperrors.ErrForbidden)
	}
	if err := s.letterRepo.DeleteLetters(ctx, letterIDs); err != nil {
		s.LogError(ctx, err, "Failed to bulk delete letters", slog.Int("count", len(letterIDs)))
		return err
	}
	s.LogInfo(ctx, "Letters bulk deleted", slog.Int("count", len(letterIDs)))
	return nil
}

func (s *letterService) SubmitLetterForApproval(ctx context.Context, letterID string, actor domain.Actor) (*domain.Approval, error) {
	letter, err := s.letterRepo.FindLetterByID(ctx, letterID)
	if err != nil {
		return nil, err
	}
	if err := checkSubmittable(letter.Status); err != nil {
		return nil, err
	}
	return s.submitter.Submit(ctx, domain.EntityLetter, letterID, actor)
}
