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

type managementService struct {
	BaseService
	managementRepo portsrepo.ManagementRepositoryFacade
	userRepo       portsrepo.UserReader
	attachments    portssvc.AttachmentSvcFacade
}

// NewManagementService creates a new management roster service.
func NewManagementService(
	managementRepo portsrepo.ManagementRepositoryFacade,
	userRepo portsrepo.UserReader,
	attachments portssvc.AttachmentSvcFacade,
) portssvc.ManagementSvcFacade {
	return &managementService{
		managementRepo: managementRepo,
		userRepo:       userRepo,
		attachments:    attachments,
	}
}

var _ portssvc.ManagementSvcFacade = (*managementService)(nil)

func (s *managementService) CreateManagement(ctx context.Context, req dto.CreateManagementRequest, actor domain.Actor) (*domain.Management, error) {
	if _, err := s.userRepo.FindUserByID(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("%w: roster member must be a registered user", apperrors.ErrValidation)
	}
	photoID, err := normalizeRef(strVal(req.PhotoFileID))
	if err != nil {
		return nil, err
	}

	status := domain.Status(req.Status)
	if status == "" {
		status = domain.StatusPublished
	}

	now := time.Now()
	management := domain.Management{
		ManagementID: uuid.NewString(),
		UserID:       req.UserID,
		Position:     req.Position,
		PeriodID:     req.PeriodID,
		PhotoFileID:  photoID,
		Status:       status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.managementRepo.SaveManagement(ctx, management); err != nil {
		s.LogError(ctx, err, "Failed to create roster member")
		return nil, err
	}

	s.LogInfo(ctx, "Roster member created", slog.String("management_id", management.ManagementID))
	return &management, nil
}

func (s *managementService) GetManagementByID(ctx context.Context, managementID string) (*domain.Management, error) {
	return s.managementRepo.FindManagementByID(ctx, managementID)
}

func (s *managementService) ListManagements(ctx context.Context, params dto.ListManagementsParams) (*dto.ListManagementsResponse, error) {
	filter := portsrepo.ManagementFilter{
		PeriodID: params.PeriodID,
		Status:   params.Status,
		Search:   params.Search,
		Limit:    params.Limit,
		Offset:   params.Offset(),
	}
	managements, total, err := s.managementRepo.ListManagements(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list roster members")
		return nil, err
	}
	return dto.ToListManagementsResponse(managements, params.Page, params.Limit, total), nil
}

func (s *managementService) UpdateManagement(ctx context.Context, managementID string, req dto.UpdateManagementRequest, actor domain.Actor) (*domain.Management, error) {
	management, err := s.managementRepo.FindManagementByID(ctx, managementID)
	if err != nil {
		return nil, err
	}

	if req.Position != nil {
		management.Position = *req.Position
	}
	if req.PeriodID != nil {
		management.PeriodID = *req.PeriodID
	}
	if req.Status != nil {
		management.Status = domain.Status(*req.Status)
	}

	oldPhoto := management.PhotoFileID
	if req.RemovePhoto {
		management.PhotoFileID = ""
	} else if req.PhotoFileID != nil {
		photoID, err := normalizeRef(*req.PhotoFileID)
		if err != nil {
			return nil, err
		}
		management.PhotoFileID = photoID
	}

	management.LastUpdatedAt = time.Now()
	management.LastUpdatedBy = actor.UserID

	if err := s.managementRepo.UpdateManagement(ctx, *management); err != nil {
		s.LogError(ctx, err, "Failed to update roster member", slog.String("management_id", managementID))
		return nil, err
	}

	if oldPhoto != "" && oldPhoto != management.PhotoFileID {
		if err := s.attachments.Remove(ctx, oldPhoto); err != nil {
			s.LogError(ctx, err, "Failed to remove superseded member photo",
				slog.String("management_id", managementID), slog.String("file_id", oldPhoto))
		}
	}

	return management, nil
}

func (s *managementService) DeleteManagement(ctx context.Context, managementID string, actor domain.Actor) error {
	management, err := s.managementRepo.FindManagementByID(ctx, managementID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: deleting roster members requires the admin role", apperrors.ErrForbidden)
	}

	if err := s.managementRepo.DeleteManagement(ctx, managementID); err != nil {
		s.LogError(ctx, err, "Failed to delete roster member", slog.String("management_id", managementID))
		return err
	}

	if management.PhotoFileID != "" {
		if err := s.attachments.Remove(ctx, management.PhotoFileID); err != nil {
			s.LogError(ctx, err, "Failed to remove photo of deleted roster member",
				slog.String("management_id", managementID))
		}
	}

	s.LogInfo(ctx, "Roster member deleted", slog.String("management_id", managementID))
	return nil
}

func (s *managementService) BulkDeleteManagements(ctx context.Context, managementIDs []string, actor domain.Actor) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: bulk delete requires the admin role", apperrors.ErrForbidden)
	}
	if err := s.managementRepo.DeleteManagements(ctx, managementIDs); err != nil {
		s.LogError(ctx, err, "Failed to bulk delete roster members", slog.Int("count", len(managementIDs)))
		return err
	}
	s.LogInfo(ctx, "Roster members bulk deleted", slog.Int("count", len(managementIDs)))
	return nil
}
