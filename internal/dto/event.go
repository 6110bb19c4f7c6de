package dto

import (
	"time"

	"github.com/orghub/org_management_app/internal/core/domain"
)

// CreateEventRequest defines the data needed to create an event.
type CreateEventRequest struct {
	Title             string    `json:"title" binding:"required"`
	Description       string    `json:"description"`
	Location          string    `json:"location" binding:"required"`
	StartDate         time.Time `json:"startDate" binding:"required"`
	EndDate           time.Time `json:"endDate" binding:"required"`
	ResponsibleUserID *string   `json:"responsibleUserID"`
	PeriodID          *string   `json:"periodID"`
	ThumbnailFileID   *string   `json:"thumbnailFileID"`
}

// UpdateEventRequest defines the fields allowed when updating an event.
type UpdateEventRequest struct {
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	Location          *string    `json:"location"`
	StartDate         *time.Time `json:"startDate"`
	EndDate           *time.Time `json:"endDate"`
	ResponsibleUserID *string    `json:"responsibleUserID"`
	PeriodID          *string    `json:"periodID"`
	ThumbnailFileID   *string    `json:"thumbnailFileID"`
	Status            *string    `json:"status" binding:"omitempty,oneof=ONGOING COMPLETED CANCELLED POSTPONED"`
	RemoveThumbnail   bool       `json:"removeThumbnail"`
}

// ListEventsParams defines query parameters for listing events.
type ListEventsParams struct {
	PageParams
	Status    string     `form:"status"`
	PeriodID  string     `form:"periodId"`
	Search    string     `form:"search"`
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// EventResponse defines the data returned for an event.
type EventResponse struct {
	EventID           string        `json:"eventID"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Location          string        `json:"location"`
	StartDate         time.Time     `json:"startDate"`
	EndDate           time.Time     `json:"endDate"`
	ResponsibleUserID string        `json:"responsibleUserID,omitempty"`
	PeriodID          string        `json:"periodID,omitempty"`
	ThumbnailFileID   string        `json:"thumbnailFileID,omitempty"`
	ThumbnailURL      string        `json:"thumbnailURL,omitempty"`
	Status            domain.Status `json:"status"`
	CreatedAt         time.Time     `json:"createdAt"`
	CreatedBy         string        `json:"createdBy"`
	LastUpdatedAt     time.Time     `json:"lastUpdatedAt"`
	LastUpdatedBy     string        `json:"lastUpdatedBy"`
}

// ToEventResponse converts a domain.Event to EventResponse.
func ToEventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		EventID:           e.EventID,
		Title:             e.Title,
		Description:       e.Description,
		Location:          e.Location,
		StartDate:         e.StartDate,
		EndDate:           e.EndDate,
		ResponsibleUserID: e.ResponsibleUserID,
		PeriodID:          e.PeriodID,
		ThumbnailFileID:   e.ThumbnailFileID,
		Status:            e.Status,
		CreatedAt:         e.CreatedAt,
		CreatedBy:         e.CreatedBy,
		LastUpdatedAt:     e.LastUpdatedAt,
		LastUpdatedBy:     e.LastUpdatedBy,
	}
	if ref, err := domain.ParseAttachmentRef(e.ThumbnailFileID); err == nil && !ref.IsEmpty() {
		resp.ThumbnailURL = ref.ViewURL()
	}
	return resp
}

// ListEventsResponse wraps a page of events.
type ListEventsResponse struct {
	Events     []EventResponse `json:"events"`
	Pagination Pagination      `json:"pagination"`
}

// ToListEventsResponse converts a page of domain records plus its total count.
func ToListEventsResponse(items []domain.Event, page, limit int, total int64) *ListEventsResponse {
	res := make([]EventResponse, len(items))
	for i := range items {
		res[i] = ToEventResponse(&items[i])
	}
	return &ListEventsResponse{Events: res, Pagination: NewPagination(page, limit, total)}
}
