package repositories

import (
	"context"
	"time"

	"github.com/orghub/org_management_app/internal/core/domain"
)

// FinanceFilter narrows a finance listing. Zero values mean "no constraint".
type FinanceFilter struct {
	Type          string
	Status        string
	CategoryID    string
	WorkProgramID string
	PeriodID      string
	Search        string
	StartDate     *time.Time
	EndDate       *time.Time
	Limit         int
	Offset        int
}

// FinanceReader defines read operations for finance data.
type FinanceReader interface {
	FindFinanceByID(ctx context.Context, financeID string) (*domain.Finance, error)

	// ListFinances returns one page of records matching the filter plus the
	// total number of matching rows.
	ListFinances(ctx context.Context, filter FinanceFilter) ([]domain.Finance, int64, error)
}

// FinanceWriter defines write operations for finance data.
type FinanceWriter interface {
	SaveFinance(ctx context.Context, finance domain.Finance) error
	UpdateFinance(ctx context.Context, finance domain.Finance) error
	DeleteFinance(ctx context.Context, financeID string) error

	// DeleteFinances removes multiple records in a single transaction; either
	// all ids are deleted or none are.
	DeleteFinances(ctx context.Context, financeIDs []string) error
}

// FinanceRepositoryFacade combines all finance repository interfaces.
type FinanceRepositoryFacade interface {
	FinanceReader
	FinanceWriter
}
