package dto

import (
	"time"

	"github.com/orghub/org_management_app/internal/core/domain"
)

// CreateLetterRequest defines the data needed to record a letter.
type CreateLetterRequest struct {
	Number       string    `json:"number" binding:"required"`
	Subject      string    `json:"subject" binding:"required"`
	Type         string    `json:"type" binding:"required,oneof=INCOMING OUTGOING"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Date         time.Time `json:"date" binding:"required"`
	PeriodID     *string   `json:"periodID"`
	LetterFileID *string   `json:"letterFileID"`
}

// UpdateLetterRequest defines the fields allowed when updating a letter.
type UpdateLetterRequest struct {
	Number       *string    `json:"number"`
	Subject      *string    `json:"subject"`
	Type         *string    `json:"type" binding:"omitempty,oneof=INCOMING OUTGOING"`
	Origin       *string    `json:"origin"`
	Destination  *string    `json:"destination"`
	Date         *time.Time `json:"date"`
	PeriodID     *string    `json:"periodID"`
	LetterFileID *string    `json:"letterFileID"`
	RemoveFile   bool       `json:"removeFile"`
}

// ListLettersParams defines query parameters for listing letters.
type ListLettersParams struct {
	PageParams
	Type      string     `form:"type" binding:"omitempty,oneof=INCOMING OUTGOING"`
	Status    string     `form:"status"`
	PeriodID  string     `form:"periodId"`
	Search    string     `form:"search"`
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// LetterResponse defines the data returned for a letter.
type LetterResponse struct {
	LetterID      string        `json:"letterID"`
	Number        string        `json:"number"`
	Subject       string        `json:"subject"`
	Type          string        `json:"type"`
	Origin        string        `json:"origin,omitempty"`
	Destination   string        `json:"destination,omitempty"`
	Date          time.Time     `json:"date"`
	PeriodID      string        `json:"periodID,omitempty"`
	LetterFileID  string        `json:"letterFileID,omitempty"`
	LetterURL     string        `json:"letterURL,omitempty"`
	Status        domain.Status `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	CreatedBy     string        `json:"createdBy"`
	LastUpdatedAt time.Time     `json:"lastUpdatedAt"`
	LastUpdatedBy string        `json:"lastUpdatedBy"`
}

// ToLetterResponse converts a domain.Letter to LetterResponse.
func ToLetterResponse(l *domain.Letter) LetterResponse {
	resp := LetterResponse{
		LetterID:      l.LetterID,
		Number:        l.Number,
		Subject:       l.Subject,
		Type:          string(l.Type),
		Origin:        l.Origin,
		Destination:   l.Destination,
		Date:          l.Date,
		PeriodID:      l.PeriodID,
		LetterFileID:  l.LetterFileID,
		Status:        l.Status,
		CreatedAt:     l.CreatedAt,
		CreatedBy:     l.CreatedBy,
		LastUpdatedAt: l.LastUpdatedAt,
		LastUpdatedBy: l.LastUpdatedBy,
	}
	if ref, err := domain.ParseAttachmentRef(l.LetterFileID); err == nil && !ref.IsEmpty() {
		resp.LetterURL = ref.ViewURL()
	}
	return resp
}

// ListLettersResponse wraps a page of letters.
type ListLettersResponse struct {
	Letters    []LetterResponse `json:"letters"`
	Pagination Pagination       `json:"pagination"`
}

// ToListLettersResponse converts a page of domain records plus its total count.
func ToListLettersResponse(items []domain.Letter, page, limit int, total int64) *ListLettersResponse {
	res := make([]LetterResponse, len(items))
	for i := range items {
		res[i] = ToLetterResponse(&items[i])
	}
	return &ListLettersResponse{Letters: res, Pagination: NewPagination(page, limit, total)}
}
