package dto

import (
	"time"

	"github.com/orghub/org_management_app/internal/core/domain"
)

// CreateManagementRequest defines the data needed to add a roster member.
type CreateManagementRequest struct {
	UserID      string  `json:"userID" binding:"required"`
	Position    string  `json:"position" binding:"required"`
	PeriodID    string  `json:"periodID" binding:"required"`
	PhotoFileID *string `json:"photoFileID"`
	Status      string  `json:"status" binding:"omitempty,oneof=PUBLISHED PRIVATE"`
}

// UpdateManagementRequest defines the fields allowed when updating a member.
type UpdateManagementRequest struct {
	Position    *string `json:"position"`
	PeriodID    *string `json:"periodID"`
	PhotoFileID *string `json:"photoFileID"`
	Status      *string `json:"status" binding:"omitempty,oneof=PUBLISHED PRIVATE"`
	RemovePhoto bool    `json:"removePhoto"`
}

// ListManagementsParams defines query parameters for listing roster members.
type ListManagementsParams struct {
	PageParams
	PeriodID string `form:"periodId"`
	Status   string `form:"status"`
	Search   string `form:"search"`
}

// ManagementResponse defines the data returned for a roster member.
type ManagementResponse struct {
	ManagementID  string        `json:"managementID"`
	UserID        string        `json:"userID"`
	Position      string        `json:"position"`
	PeriodID      string        `json:"periodID"`
	PhotoFileID   string        `json:"photoFileID,omitempty"`
	PhotoURL      string        `json:"photoURL,omitempty"`
	Status        domain.Status `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	CreatedBy     string        `json:"createdBy"`
	LastUpdatedAt time.Time     `json:"lastUpdatedAt"`
	LastUpdatedBy string        `json:"lastUpdatedBy"`
}

// ToManagementResponse converts a domain.Management to ManagementResponse.
func ToManagementResponse(m *domain.Management) ManagementResponse {
	resp := ManagementResponse{
		ManagementID:  m.ManagementID,
		UserID:        m.UserID,
		Position:      m.Position,
		PeriodID:      m.PeriodID,
		PhotoFileID:   m.PhotoFileID,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
	if ref, err := domain.ParseAttachmentRef(m.PhotoFileID); err == nil && !ref.IsEmpty() {
		resp.PhotoURL = ref.ViewURL()
	}
	return resp
}

// ListManagementsResponse wraps a page of roster members.
type ListManagementsResponse struct {
	Managements []ManagementResponse `json:"managements"`
	Pagination  Pagination           `json:"pagination"`
}

// ToListManagementsResponse converts a page of domain records plus its total count.
func ToListManagementsResponse(items []domain.Management, page, limit int, total int64) *ListManagementsResponse {
	res := make([]ManagementResponse, len(items))
	for i := range items {
		res[i] = ToManagementResponse(&items[i])
	}
	return &ListManagementsResponse{Managements: res, Pagination: NewPagination(page, limit, total)}
}
