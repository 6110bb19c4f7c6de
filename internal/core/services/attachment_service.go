package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/orghub/org_management_app/internal/apperrors"
	"github.com/orghub/org_management_app/internal/core/domain"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/core/ports/storage"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/orghub/org_management_app/internal/utils"
)

// attachmentService runs the upload lifecycle against the external file store.
// The lifecycle is upload under a temporary name, rename to the final name,
// then grant public read access. A failure after the upload succeeded leaves
// an orphan in storage, so every post-upload failure triggers a compensating
// delete before the error is returned.
type attachmentService struct {
	BaseService
	store   storage.FileStore
	folders map[string]string // entity type -> destination folder id
	now     func() time.Time
}

// NewAttachmentService creates the attachment service. folders maps entity
// type names to storage folder ids, usually straight from configuration.
func NewAttachmentService(store storage.FileStore, folders map[string]string) portssvc.AttachmentSvcFacade {
	return &attachmentService{
		store:   store,
		folders: folders,
		now:     time.Now,
	}
}

var _ portssvc.AttachmentSvcFacade = (*attachmentService)(nil)

func (s *attachmentService) Attach(ctx context.Context, upload portssvc.AttachmentUpload) (string, error) {
	kind, err := domain.AttachmentKindFor(upload.EntityType)
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if err := kind.ValidateFile(upload.Filename, upload.Size); err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	folderID, ok := s.folders[string(upload.EntityType)]
	if !ok || folderID == "" {
		return "", fmt.Errorf("%w: no storage folder configured for %s", apperrors.ErrStorage, upload.EntityType)
	}

	// Upload under a random temporary name first so a half-finished upload is
	// never mistaken for a finished file.
	tempName := "tmp-" + uuid.NewString() + strings.ToLower(filepath.Ext(upload.Filename))
	fileID, err := s.store.Upload(ctx, upload.Content, tempName, folderID)
	if err != nil {
		s.LogError(ctx, err, "Attachment upload failed",
			slog.String("entity_type", string(upload.EntityType)),
			slog.String("filename", upload.Filename))
		return "", err
	}

	finalName := s.finalName(upload)
	if err := s.store.Rename(ctx, fileID, finalName); err != nil {
		s.compensate(ctx, fileID)
		return "", err
	}
	if err := s.store.SetPublicAccess(ctx, fileID); err != nil {
		s.compensate(ctx, fileID)
		return "", err
	}

	s.LogInfo(ctx, "Attachment stored",
		slog.String("file_id", fileID),
		slog.String("name", finalName),
		slog.String("entity_type", string(upload.EntityType)))
	return fileID, nil
}

func (s *attachmentService) Replace(ctx context.Context, oldRef string, upload portssvc.AttachmentUpload) (string, error) {
	fileID, err := s.Attach(ctx, upload)
	if err != nil {
		return "", err
	}
	// The new file is live; removing the old one is best effort so a storage
	// hiccup here cannot fail the caller's write.
	if err := s.Remove(ctx, oldRef); err != nil {
		s.LogError(ctx, err, "Failed to remove replaced attachment",
			slog.String("old_ref", oldRef))
	}
	return fileID, nil
}

func (s *attachmentService) Remove(ctx context.Context, ref string) error {
	parsed, err := domain.ParseAttachmentRef(ref)
	if err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if parsed.IsEmpty() {
		return nil
	}
	if err := s.store.Delete(ctx, parsed.FileID); err != nil {
		return err
	}
	s.LogDebug(ctx, "Attachment removed", slog.String("file_id", parsed.FileID))
	return nil
}

func (s *attachmentService) Folders() []dto.FolderResponse {
	folders := make([]dto.FolderResponse, 0, len(s.folders))
	for entityType, folderID := range s.folders {
		folders = append(folders, dto.FolderResponse{EntityType: entityType, FolderID: folderID})
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].EntityType < folders[j].EntityType })
	return folders
}

// finalName builds the stored display name: slugged display name, upload
// timestamp, original extension.
func (s *attachmentService) finalName(upload portssvc.AttachmentUpload) string {
	base := utils.Slugify(upload.DisplayName)
	if base == "" {
		base = strings.ToLower(string(upload.EntityType))
	}
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	return fmt.Sprintf("%s-%s%s", base, s.now().UTC().Format("20060102-150405"), ext)
}

// compensate deletes a file whose lifecycle failed after upload. The delete
// itself is best effort; the original error is what the caller sees.
func (s *attachmentService) compensate(ctx context.Context, fileID string) {
	if err := s.store.Delete(ctx, fileID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Compensating delete failed, file orphaned",
			slog.String("file_id", fileID))
	}
}
