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

type documentService struct {
	BaseService
	documentRepo portsrepo.DocumentRepositoryFacade
	attachments  portssvc.AttachmentSvcFacade
	submitter    portssvc.ApprovalSubmitter
}

// NewDocumentService creates a new document service.
func NewDocumentService(
	documentRepo portsrepo.DocumentRepositoryFacade,
	attachments portssvc.AttachmentSvcFacade,
	submitter portssvc.ApprovalSubmitter,
) portssvc.DocumentSvcFacade {
	return &documentService{
		documentRepo: documentRepo,
		attachments:  attachments,
		submitter:    submitter,
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

func (s *documentService) CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, actor domain.Actor) (*domain.Document, error) {
	fileID, err := normalizeRef(strVal(req.DocumentFileID))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	document := domain.Document{
		DocumentID:     uuid.NewString(),
		Title:          req.Title,
		Description:    req.Description,
		Category:       domain.DocumentCategory(req.Category),
		PeriodID:       strVal(req.PeriodID),
		DocumentFileID: fileID,
		Status:         domain.StatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.documentRepo.SaveDocument(ctx, document); err != nil {
		s.LogError(ctx, err, "Failed to create document")
		return nil, err
	}

	s.LogInfo(ctx, "Document created", slog.String("document_id", document.DocumentID))
	return &document, nil
}

func (s *documentService) GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	return s.documentRepo.FindDocumentByID(ctx, documentID)
}

func (s *documentService) ListDocuments(ctx context.Context, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error) {
	filter := portsrepo.DocumentFilter{
		Category: params.Category,
		Status:   params.Status,
		PeriodID: params.PeriodID,
		Search:   params.Search,
		Limit:    params.Limit,
		Offset:   params.Offset(),
	}
	documents, total, err := s.documentRepo.ListDocuments(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents")
		return nil, err
	}
	return dto.ToListDocumentsResponse(documents, params.Page, params.Limit, total), nil
}

func (s *documentService) UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, actor domain.Actor) (*domain.Document, error) {
	document, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := checkEditable(document.Status, actor); err != nil {
		return nil, err
	}

	if req.Title != nil {
		document.Title = *req.Title
	}
	if req.Description != nil {
		document.Description = *req.Description
	}
	if req.Category != nil {
		document.Category = domain.DocumentCategory(*req.Category)
	}
	if req.PeriodID != nil {
		document.PeriodID = *req.PeriodID
	}

	oldFile := document.DocumentFileID
	if req.RemoveFile {
		document.DocumentFileID = ""
	} else if req.DocumentFileID != nil {
		fileID, err := normalizeRef(*req.DocumentFileID)
		if err != nil {
			return nil, err
		}
		document.DocumentFileID = fileID
	}

	document.LastUpdatedAt = time.Now()
	document.LastUpdatedBy = actor.UserID

	if err := s.documentRepo.UpdateDocument(ctx, *document); err != nil {
		s.LogError(ctx, err, "Failed to update document", slog.String("document_id", documentID))
		return nil, err
	}

	if oldFile != "" && oldFile != document.DocumentFileID {
		if err := s.attachments.Remove(ctx, oldFile); err != nil {
			s.LogError(ctx, err, "Failed to remove superseded document file",
				slog.String("document_id", documentID), slog.String("file_id", oldFile))
		}
	}

	return document, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, documentID string, actor domain.Actor) error {
	document, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return err
	}
	if document.CreatedBy != actor.UserID && !actor.IsAdmin() {
		return fmt.Errorf("%w: only the creator or an admin may delete this record", apperrors.ErrForbidden)
	}
	if err := checkEditable(document.Status, actor); err != nil {
		return err
	}

	if err := s.documentRepo.DeleteDocument(ctx, documentID); err != nil {
		s.LogError(ctx, err, "Failed to delete document", slog.String("document_id", documentID))
		return err
	}

	if document.DocumentFileID != "" {
		if err := s.attachments.Remove(ctx, document.DocumentFileID); err != nil {
			s.LogError(ctx, err, "Failed to remove file of deleted document",
				slog.String("document_id", documentID))
		}
	}

	s.LogInfo(ctx, "Document deleted", slog.String("document_id", documentID))
	return nil
}

func (s *documentService) BulkDeleteDocuments(ctx context.Context, documentIDs []string, actor domain.Actor) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: bulk delete requires the admin role", apperrors.ErrForbidden)
	}
	if err := s.documentRepo.DeleteDocuments(ctx, documentIDs); err != nil {
		s.LogError(ctx, err, "Failed to bulk delete documents", slog.Int("count", len(documentIDs)))
		return err
	}
	s.LogInfo(ctx, "Documents bulk deleted", slog.Int("count", len(documentIDs)))
	return nil
}

func (s *documentService) SubmitDocumentForApproval(ctx context.Context, documentID string, actor domain.Actor) (*domain.Approval, error) {
	document, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := checkSubmittable(document.Status); err != nil {
		return nil, err
	}
	return s.submitter.Submit(ctx, domain.EntityDocument, documentID, actor)
}
