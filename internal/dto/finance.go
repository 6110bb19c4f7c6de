package dto

import (
	"time"

	"github.com/orghub/org_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFinanceRequest defines the data needed to create a finance record.
// Optional foreign keys are pointers so "not provided" and "empty" can be told
// apart; empty strings are normalized to NULL by the service.
type CreateFinanceRequest struct {
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description"`
	Type          string          `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
	CategoryID    *string         `json:"categoryID"`
	WorkProgramID *string         `json:"workProgramID"`
	PeriodID      *string         `json:"periodID"`
	ProofFileID   *string         `json:"proofFileID"`
}

// UpdateFinanceRequest defines the fields allowed when updating a finance record.
type UpdateFinanceRequest struct {
	Title         *string          `json:"title"`
	Description   *string          `json:"description"`
	Type          *string          `json:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Amount        *decimal.Decimal `json:"amount"`
	Date          *time.Time       `json:"date"`
	CategoryID    *string          `json:"categoryID"`
	WorkProgramID *string          `json:"workProgramID"`
	PeriodID      *string          `json:"periodID"`
	ProofFileID   *string          `json:"proofFileID"`
	RemoveProof   bool             `json:"removeProof"`
}

// ListFinancesParams defines query parameters for listing finances.
type ListFinancesParams struct {
	PageParams
	Type          string     `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Status        string     `form:"status"`
	CategoryID    string     `form:"categoryId"`
	WorkProgramID string     `form:"workProgramId"`
	PeriodID      string     `form:"periodId"`
	Search        string     `form:"search"`
	StartDate     *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate       *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// FinanceResponse defines the data returned for a finance record.
type FinanceResponse struct {
	FinanceID     string          `json:"financeID"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	CategoryID    string          `json:"categoryID,omitempty"`
	WorkProgramID string          `json:"workProgramID,omitempty"`
	PeriodID      string          `json:"periodID,omitempty"`
	ProofFileID   string          `json:"proofFileID,omitempty"`
	ProofURL      string          `json:"proofURL,omitempty"`
	Status        domain.Status   `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToFinanceResponse converts a domain.Finance to FinanceResponse.
func ToFinanceResponse(f *domain.Finance) FinanceResponse {
	resp := FinanceResponse{
		FinanceID:     f.FinanceID,
		Title:         f.Title,
		Description:   f.Description,
		Type:          string(f.Type),
		Amount:        f.Amount,
		Date:          f.Date,
		CategoryID:    f.CategoryID,
		WorkProgramID: f.WorkProgramID,
		PeriodID:      f.PeriodID,
		ProofFileID:   f.ProofFileID,
		Status:        f.Status,
		CreatedAt:     f.CreatedAt,
		CreatedBy:     f.CreatedBy,
		LastUpdatedAt: f.LastUpdatedAt,
		LastUpdatedBy: f.LastUpdatedBy,
	}
	if ref, err := domain.ParseAttachmentRef(f.ProofFileID); err == nil && !ref.IsEmpty() {
		resp.ProofURL = ref.ViewURL()
	}
	return resp
}

// ListFinancesResponse wraps a page of finance records.
type ListFinancesResponse struct {
	Finances   []FinanceResponse `json:"finances"`
	Pagination Pagination        `json:"pagination"`
}

// ToListFinancesResponse converts a page of domain records plus its total count.
func ToListFinancesResponse(items []domain.Finance, page, limit int, total int64) *ListFinancesResponse {
	res := make([]FinanceResponse, len(items))
	for i := range items {
		res[i] = ToFinanceResponse(&items[i])
	}
	return &ListFinancesResponse{Finances: res, Pagination: NewPagination(page, limit, total)}
}
