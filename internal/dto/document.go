package dto

import (
	"time"

	"github.com/orghub/org_management_app/internal/core/domain"
)

// CreateDocumentRequest defines the data needed to archive a document.
type CreateDocumentRequest struct {
	Title          string  `json:"title" binding:"required"`
	Description    string  `json:"description"`
	Category       string  `json:"category" binding:"required,oneof=PROPOSAL REPORT REGULATION OTHER"`
	PeriodID       *string `json:"periodID"`
	DocumentFileID *string `json:"documentFileID"`
}

// UpdateDocumentRequest defines the fields allowed when updating a document.
type UpdateDocumentRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	Category       *string `json:"category" binding:"omitempty,oneof=PROPOSAL REPORT REGULATION OTHER"`
	PeriodID       *string `json:"periodID"`
	DocumentFileID *string `json:"documentFileID"`
	RemoveFile     bool    `json:"removeFile"`
}

// ListDocumentsParams defines query parameters for listing documents.
type ListDocumentsParams struct {
	PageParams
	Category string `form:"category"`
	Status   string `form:"status"`
	PeriodID string `form:"periodId"`
	Search   string `form:"search"`
}

// DocumentResponse defines the data returned for a document.
type DocumentResponse struct {
	DocumentID     string        `json:"documentID"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Category       string        `json:"category"`
	PeriodID       string        `json:"periodID,omitempty"`
	DocumentFileID string        `json:"documentFileID,omitempty"`
	DocumentURL    string        `json:"documentURL,omitempty"`
	Status         domain.Status `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	CreatedBy      string        `json:"createdBy"`
	LastUpdatedAt  time.Time     `json:"lastUpdatedAt"`
	LastUpdatedBy  string        `json:"lastUpdatedBy"`
}

// ToDocumentResponse converts a domain.Document to DocumentResponse.
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	resp := DocumentResponse{
		DocumentID:     d.DocumentID,
		Title:          d.Title,
		Description:    d.Description,
		Category:       string(d.Category),
		PeriodID:       d.PeriodID,
		DocumentFileID: d.DocumentFileID,
		Status:         d.Status,
		CreatedAt:      d.CreatedAt,
		CreatedBy:      d.CreatedBy,
		LastUpdatedAt:  d.LastUpdatedAt,
		LastUpdatedBy:  d.LastUpdatedBy,
	}
	if ref, err := domain.ParseAttachmentRef(d.DocumentFileID); err == nil && !ref.IsEmpty() {
		resp.DocumentURL = ref.ViewURL()
	}
	return resp
}

// ListDocumentsResponse wraps a page of documents.
type ListDocumentsResponse struct {
	Documents  []DocumentResponse `json:"documents"`
	Pagination Pagination         `json:"pagination"`
}

// ToListDocumentsResponse converts a page of domain records plus its total count.
func ToListDocumentsResponse(items []domain.Document, page, limit int, total int64) *ListDocumentsResponse {
	res := make([]DocumentResponse, len(items))
	for i := range items {
		res[i] = ToDocumentResponse(&items[i])
	}
	return &ListDocumentsResponse{Documents: res, Pagination: NewPagination(page, limit, total)}
}
