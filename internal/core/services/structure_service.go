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

type structureService struct {
	BaseService
	structureRepo portsrepo.StructureRepositoryFacade
	attachments   portssvc.AttachmentSvcFacade
}

// NewStructureService creates a new structure service.
func NewStructureService(
	structureRepo portsrepo.StructureRepositoryFacade,
	attachments portssvc.AttachmentSvcFacade,
) portssvc.StructureSvcFacade {
	return &structureService{
		structureRepo: structureRepo,
		attachments:   attachments,
	}
}

var _ portssvc.StructureSvcFacade = (*structureService)(nil)

func (s *structureService) CreateStructure(ctx context.Context, req dto.CreateStructureRequest, actor domain.Actor) (*domain.Structure, error) {
	decreeID, err := normalizeRef(strVal(req.DecreeFileID))
	if err != nil {
		return nil, err
	}
	if parentID := strVal(req.ParentID); parentID != "" {
		if _, err := s.structureRepo.FindStructureByID(ctx, parentID); err != nil {
			return nil, fmt.Errorf("%w: parent structure node not found", apperrors.ErrValidation)
		}
	}

	status := domain.Status(req.Status)
	if status == "" {
		status = domain.StatusPublished
	}

	now := time.Now()
	structure := domain.Structure{
		StructureID:  uuid.NewString(),
		PositionName: req.PositionName,
		MemberName:   req.MemberName,
		ParentID:     strVal(req.ParentID),
		PeriodID:     req.PeriodID,
		DecreeFileID: decreeID,
		Status:       status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.structureRepo.SaveStructure(ctx, structure); err != nil {
		s.LogError(ctx, err, "Failed to create structure node")
		return nil, err
	}

	s.LogInfo(ctx, "Structure node created", slog.String("structure_id", structure.StructureID))
	return &structure, nil
}

func (s *structureService) GetStructureByID(ctx context.Context, structureID string) (*domain.Structure, error) {
	return s.structureRepo.FindStructureByID(ctx, structureID)
}

func (s *structureService) ListStructures(ctx context.Context, params dto.ListStructuresParams) (*dto.ListStructuresResponse, error) {
	filter := portsrepo.StructureFilter{
		PeriodID: params.PeriodID,
		Status:   params.Status,
		Search:   params.Search,
		Limit:    params.Limit,
		Offset:   params.Offset(),
	}
	structures, total, err := s.structureRepo.ListStructures(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list structure nodes")
		return nil, err
	}
	return dto.ToListStructuresResponse(structures, params.Page, params.Limit, total), nil
}

func (s *structureService) UpdateStructure(ctx context.Context, structureID string, req dto.UpdateStructureRequest, actor domain.Actor) (*domain.Structure, error) {
	structure, err := s.structureRepo.FindStructureByID(ctx, structureID)
	if err != nil {
		return nil, err
	}

	if req.PositionName != nil {
		structure.PositionName = *req.PositionName
	}
	if req.MemberName != nil {
		structure.MemberName = *req.MemberName
	}
	if req.ParentID != nil {
		if *req.ParentID == structureID {
			return nil, fmt.Errorf("%w: a structure node cannot be its own parent", apperrors.ErrValidation)
		}
		if *req.ParentID != "" {
			if _, err := s.structureRepo.FindStructureByID(ctx, *req.ParentID); err != nil {
				return nil, fmt.Errorf("%w: parent structure node not found", apperrors.ErrValidation)
			}
		}
		structure.ParentID = *req.ParentID
	}
	if req.PeriodID != nil {
		structure.PeriodID = *req.PeriodID
	}
	if req.Status != nil {
		structure.Status = domain.Status(*req.Status)
	}

	oldDecree := structure.DecreeFileID
	if req.RemoveDecree {
		structure.DecreeFileID = ""
	} else if req.DecreeFileID != nil {
		decreeID, err := normalizeRef(*req.DecreeFileID)
		if err != nil {
			return nil, err
		}
		structure.DecreeFileID = decreeID
	}

	structure.LastUpdatedAt = time.Now()
	structure.LastUpdatedBy = actor.UserID

	if err := s.structureRepo.UpdateStructure(ctx, *structure); err != nil {
		s.LogError(ctx, err, "Failed to update structure node", slog.String("structure_id", structureID))
		return nil, err
	}

	if oldDecree != "" && oldDecree != structure.DecreeFileID {
		if err := s.attachments.Remove(ctx, oldDecree); err != nil {
			s.LogError(ctx, err, "Failed to remove superseded decree file",
				slog.String("structure_id", structureID), slog.String("file_id", oldDecree))
		}
	}

	return structure, nil
}

func (s *structureService) DeleteStructure(ctx context.Context, structureID string, actor domain.Actor) error {
	structure, err := s.structureRepo.FindStructureByID(ctx, structureID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: deleting structure nodes requires the admin role", apperrors.ErrForbidden)
	}

	if err := s.structureRepo.DeleteStructure(ctx, structureID); err != nil {
		s.LogError(ctx, err, "Failed to delete structure node", slog.String("structure_id", structureID))
		return err
	}

	if structure.DecreeFileID != "" {
		if err := s.attachments.Remove(ctx, structure.DecreeFileID); err != nil {
			s.LogError(ctx, err, "Failed to remove decree file of deleted node",
				slog.String("structure_id", structureID))
		}
	}

	s.LogInfo(ctx, "Structure node deleted", slog.String("structure_id", structureID))
	return nil
}

func (s *structureService) BulkDeleteStructures(ctx context.Context, structureIDs []string, actor domain.Actor) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: bulk delete requires the admin role", apperrors.ErrForbidden)
	}
	if err := s.structureRepo.DeleteStructures(ctx, structureIDs); err != nil {
		s.LogError(ctx, err, "Failed to bulk delete structure nodes", slog.Int("count", len(structureIDs)))
		return err
	}
	s.LogInfo(ctx, "Structure nodes bulk deleted", slog.Int("count", len(structureIDs)))
	return nil
}
