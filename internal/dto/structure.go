package dto

import (
	"time"

	"github.com/orghub/org_management_app/internal/core/domain"
)

// CreateStructureRequest defines the data needed to add a structure node.
type CreateStructureRequest struct {
	PositionName string  `json:"positionName" binding:"required"`
	MemberName   string  `json:"memberName" binding:"required"`
	ParentID     *string `json:"parentID"`
	PeriodID     string  `json:"periodID" binding:"required"`
	DecreeFileID *string `json:"decreeFileID"`
	Status       string  `json:"status" binding:"omitempty,oneof=PUBLISHED PRIVATE"`
}

// UpdateStructureRequest defines the fields allowed when updating a node.
type UpdateStructureRequest struct {
	PositionName *string `json:"positionName"`
	MemberName   *string `json:"memberName"`
	ParentID     *string `json:"parentID"`
	PeriodID     *string `json:"periodID"`
	DecreeFileID *string `json:"decreeFileID"`
	Status       *string `json:"status" binding:"omitempty,oneof=PUBLISHED PRIVATE"`
	RemoveDecree bool    `json:"removeDecree"`
}

// ListStructuresParams defines query parameters for listing structure nodes.
type ListStructuresParams struct {
	PageParams
	PeriodID string `form:"periodId"`
	Status   string `form:"status"`
	Search   string `form:"search"`
}

// StructureResponse defines the data returned for a structure node.
type StructureResponse struct {
	StructureID   string        `json:"structureID"`
	PositionName  string        `json:"positionName"`
	MemberName    string        `json:"memberName"`
	ParentID      string        `json:"parentID,omitempty"`
	PeriodID      string        `json:"periodID"`
	DecreeFileID  string        `json:"decreeFileID,omitempty"`
	DecreeURL     string        `json:"decreeURL,omitempty"`
	Status        domain.Status `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	CreatedBy     string        `json:"createdBy"`
	LastUpdatedAt time.Time     `json:"lastUpdatedAt"`
	LastUpdatedBy string        `json:"lastUpdatedBy"`
}

// ToStructureResponse converts a domain.Structure to StructureResponse.
func ToStructureResponse(s *domain.Structure) StructureResponse {
	resp := StructureResponse{
		StructureID:   s.StructureID,
		PositionName:  s.PositionName,
		MemberName:    s.MemberName,
		ParentID:      s.ParentID,
		PeriodID:      s.PeriodID,
		DecreeFileID:  s.DecreeFileID,
		Status:        s.Status,
		CreatedAt:     s.CreatedAt,
		CreatedBy:     s.CreatedBy,
		LastUpdatedAt: s.LastUpdatedAt,
		LastUpdatedBy: s.LastUpdatedBy,
	}
	if ref, err := domain.ParseAttachmentRef(s.DecreeFileID); err == nil && !ref.IsEmpty() {
		resp.DecreeURL = ref.ViewURL()
	}
	return resp
}

// ListStructuresResponse wraps a page of structure nodes.
type ListStructuresResponse struct {
	Structures []StructureResponse `json:"structures"`
	Pagination Pagination          `json:"pagination"`
}

// ToListStructuresResponse converts a page of domain records plus its total count.
func ToListStructuresResponse(items []domain.Structure, page, limit int, total int64) *ListStructuresResponse {
	res := make([]StructureResponse, len(items))
	for i := range items {
		res[i] = ToStructureResponse(&items[i])
	}
	return &ListStructuresResponse{Structures: res, Pagination: NewPagination(page, limit, total)}
}
