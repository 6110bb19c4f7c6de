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

type galleryService struct {
	BaseService
	galleryRepo portsrepo.GalleryRepositoryFacade
	attachments portssvc.AttachmentSvcFacade
}

// NewGalleryService creates a new gallery service.
func NewGalleryService(
	galleryRepo portsrepo.GalleryRepositoryFacade,
	attachments portssvc.AttachmentSvcFacade,
) portssvc.GallerySvcFacade {
	return &galleryService{
		galleryRepo: galleryRepo,
		attachments: attachments,
	}
}

var _ portssvc.GallerySvcFacade = (*galleryService)(nil)

func (s *galleryService) CreateGallery(ctx context.Context, req dto.CreateGalleryRequest, actor domain.Actor) (*domain.Gallery, error) {
	photoID, err := normalizeRef(req.PhotoFileID)
	if err != nil {
		return nil, err
	}
	if photoID == "" {
		return nil, fmt.Errorf("%w: a photo is required", apperrors.ErrValidation)
	}

	status := domain.Status(req.Status)
	if status == "" {
		status = domain.StatusPublished
	}

	now := time.Now()
	gallery := domain.Gallery{
		GalleryID:   uuid.NewString(),
		Title:       req.Title,
		Caption:     req.Caption,
		EventID:     strVal(req.EventID),
		PhotoFileID: photoID,
		Status:      status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.galleryRepo.SaveGallery(ctx, gallery); err != nil {
		s.LogError(ctx, err, "Failed to create gallery photo")
		return nil, err
	}

	s.LogInfo(ctx, "Gallery photo created", slog.String("gallery_id", gallery.GalleryID))
	return &gallery, nil
}

func (s *galleryService) GetGalleryByID(ctx context.Context, galleryID string) (*domain.Gallery, error) {
	return s.galleryRepo.FindGalleryByID(ctx, galleryID)
}

func (s *galleryService) ListGalleries(ctx context.Context, params dto.ListGalleriesParams) (*dto.ListGalleriesResponse, error) {
	filter := portsrepo.GalleryFilter{
		EventID: params.EventID,
		Status:  params.Status,
		Search:  params.Search,
		Limit:   params.Limit,
		Offset:  params.Offset(),
	}
	galleries, total, err := s.galleryRepo.ListGalleries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list gallery photos")
		return nil, err
	}
	return dto.ToListGalleriesResponse(galleries, params.Page, params.Limit, total), nil
}

func (s *galleryService) UpdateGallery(ctx context.Context, galleryID string, req dto.UpdateGalleryRequest, actor domain.Actor) (*domain.Gallery, error) {
	gallery, err := s.galleryRepo.FindGalleryByID(ctx, galleryID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		gallery.Title = *req.Title
	}
	if req.Caption != nil {
		gallery.Caption = *req.Caption
	}
	if req.EventID != nil {
		gallery.EventID = *req.EventID
	}
	if req.Status != nil {
		gallery.Status = domain.Status(*req.Status)
	}

	oldPhoto := gallery.PhotoFileID
	if req.PhotoFileID != nil {
		photoID, err := normalizeRef(*req.PhotoFileID)
		if err != nil {
			return nil, err
		}
		if photoID == "" {
			return nil, fmt.Errorf("%w: a photo is required", apperrors.ErrValidation)
		}
		gallery.PhotoFileID = photoID
	}

	gallery.LastUpdatedAt = time.Now()
	gallery.LastUpdatedBy = actor.UserID

	if err := s.galleryRepo.UpdateGallery(ctx, *gallery); err != nil {
		s.LogError(ctx, err, "Failed to update gallery photo", slog.String("gallery_id", galleryID))
		return nil, err
	}

	if oldPhoto != "" && oldPhoto != gallery.PhotoFileID {
		if err := s.attachments.Remove(ctx, oldPhoto); err != nil {
			s.LogError(ctx, err, "Failed to remove superseded photo",
				slog.String("gallery_id", galleryID), slog.String("file_id", oldPhoto))
		}
	}

	return gallery, nil
}

func (s *galleryService) DeleteGallery(ctx context.Context, galleryID string, actor domain.Actor) error {
	gallery, err := s.galleryRepo.FindGalleryByID(ctx, galleryID)
	if err != nil {
		return err
	}
	if gallery.CreatedBy != actor.UserID && !actor.IsAdmin() {
		return fmt.Errorf("%w: only the creator or an admin may delete this record", apperrors.ErrForbidden)
	}

	if err := s.galleryRepo.DeleteGallery(ctx, galleryID); err != nil {
		s.LogError(ctx, err, "Failed to delete gallery photo", slog.String("gallery_id", galleryID))
		return err
	}

	if err := s.attachments.Remove(ctx, gallery.PhotoFileID); err != nil {
		s.LogError(ctx, err, "Failed to remove photo of deleted gallery entry",
			slog.String("gallery_id", galleryID))
	}

	s.LogInfo(ctx, "Gallery photo deleted", slog.String("gallery_id", galleryID))
	return nil
}

func (s *galleryService) BulkDeleteGalleries(ctx context.Context, galleryIDs []string, actor domain.Actor) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: bulk delete requires the admin role", apperrors.ErrForbidden)
	}
	if err := s.galleryRepo.DeleteGalleries(ctx, galleryIDs); err != nil {
		s.LogError(ctx, err, "Failed to bulk delete gallery photos", slog.Int("count", len(galleryIDs)))
		return err
	}
	s.LogInfo(ctx, "Gallery photos bulk deleted", slog.Int("count", len(galleryIDs)))
	return nil
}
