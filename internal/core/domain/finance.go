package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinanceType distinguishes money coming in from money going out.
type FinanceType string

const (
	FinanceIncome  FinanceType = "INCOME"
	FinanceExpense FinanceType = "EXPENSE"
)

// Finance is a single income or expense record. ProofFileID references the
// uploaded proof document in external storage; optional foreign keys are empty
// strings when unset and are stored as NULL.
type Finance struct {
	FinanceID     string          `json:"financeID"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Type          FinanceType     `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	CategoryID    string          `json:"categoryID"`    // optional
	WorkProgramID string          `json:"workProgramID"` // optional
	PeriodID      string          `json:"periodID"`      // optional
	ProofFileID   string          `json:"proofFileID"`   // optional attachment
	Status        Status          `json:"status"`        // DRAFT, PENDING, APPROVED, REJECTED, REVISION
	AuditFields
}
