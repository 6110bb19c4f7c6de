package dto

import (
	"time"

	"github.com/orghub/org_management_app/internal/core/domain"
)

// CreatePeriodRequest defines the data needed to create a period.
type CreatePeriodRequest struct {
	Name      string `json:"name" binding:"required"`
	StartYear int    `json:"startYear" binding:"required,min=1900"`
	EndYear   int    `json:"endYear" binding:"required,min=1900,gtefield=StartYear"`
}

// UpdatePeriodRequest defines the fields allowed when updating a period.
type UpdatePeriodRequest struct {
	Name      *string `json:"name"`
	StartYear *int    `json:"startYear"`
	EndYear   *int    `json:"endYear"`
	IsActive  *bool   `json:"isActive"`
}

// PeriodResponse defines the data returned for a period.
type PeriodResponse struct {
	PeriodID  string    `json:"periodID"`
	Name      string    `json:"name"`
	StartYear int       `json:"startYear"`
	EndYear   int       `json:"endYear"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToPeriodResponse converts a domain.Period to PeriodResponse.
func ToPeriodResponse(p *domain.Period) PeriodResponse {
	return PeriodResponse{
		PeriodID:  p.PeriodID,
		Name:      p.Name,
		StartYear: p.StartYear,
		EndYear:   p.EndYear,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
	}
}

// ToListPeriodsResponse converts a slice of domain.Period to response DTOs.
func ToListPeriodsResponse(items []domain.Period) []PeriodResponse {
	res := make([]PeriodResponse, len(items))
	for i := range items {
		res[i] = ToPeriodResponse(&items[i])
	}
	return res
}
