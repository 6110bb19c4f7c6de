package dto

import (
	"time"

	"github.com/orghub/org_management_app/internal/core/domain"
)

// CreateGalleryRequest defines the data needed to publish a gallery photo.
// The photo itself is uploaded through the attachment endpoint first.
type CreateGalleryRequest struct {
	Title       string  `json:"title" binding:"required"`
	Caption     string  `json:"caption"`
	EventID     *string `json:"eventID"`
	PhotoFileID string  `json:"photoFileID" binding:"required"`
	Status      string  `json:"status" binding:"omitempty,oneof=PUBLISHED PRIVATE"`
}

// UpdateGalleryRequest defines the fields allowed when updating a gallery photo.
type UpdateGalleryRequest struct {
	Title       *string `json:"title"`
	Caption     *string `json:"caption"`
	EventID     *string `json:"eventID"`
	PhotoFileID *string `json:"photoFileID"`
	Status      *string `json:"status" binding:"omitempty,oneof=PUBLISHED PRIVATE"`
}

// ListGalleriesParams defines query parameters for listing gallery photos.
type ListGalleriesParams struct {
	PageParams
	EventID string `form:"eventId"`
	Status  string `form:"status"`
	Search  string `form:"search"`
}

// GalleryResponse defines the data returned for a gallery photo.
type GalleryResponse struct {
	GalleryID     string        `json:"galleryID"`
	Title         string        `json:"title"`
	Caption       string        `json:"caption"`
	EventID       string        `json:"eventID,omitempty"`
	PhotoFileID   string        `json:"photoFileID"`
	PhotoURL      string        `json:"photoURL,omitempty"`
	Status        domain.Status `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	CreatedBy     string        `json:"createdBy"`
	LastUpdatedAt time.Time     `json:"lastUpdatedAt"`
	LastUpdatedBy string        `json:"lastUpdatedBy"`
}

// ToGalleryResponse converts a domain.Gallery to GalleryResponse.
func ToGalleryResponse(g *domain.Gallery) GalleryResponse {
	resp := GalleryResponse{
		GalleryID:     g.GalleryID,
		Title:         g.Title,
		Caption:       g.Caption,
		EventID:       g.EventID,
		PhotoFileID:   g.PhotoFileID,
		Status:        g.Status,
		CreatedAt:     g.CreatedAt,
		CreatedBy:     g.CreatedBy,
		LastUpdatedAt: g.LastUpdatedAt,
		LastUpdatedBy: g.LastUpdatedBy,
	}
	if ref, err := domain.ParseAttachmentRef(g.PhotoFileID); err == nil && !ref.IsEmpty() {
		resp.PhotoURL = ref.ViewURL()
	}
	return resp
}

// ListGalleriesResponse wraps a page of gallery photos.
type ListGalleriesResponse struct {
	Galleries  []GalleryResponse `json:"galleries"`
	Pagination Pagination        `json:"pagination"`
}

// ToListGalleriesResponse converts a page of domain records plus its total count.
func ToListGalleriesResponse(items []domain.Gallery, page, limit int, total int64) *ListGalleriesResponse {
	res := make([]GalleryResponse, len(items))
	for i := range items {
		res[i] = ToGalleryResponse(&items[i])
	}
	return &ListGalleriesResponse{Galleries: res, Pagination: NewPagination(page, limit, total)}
}
