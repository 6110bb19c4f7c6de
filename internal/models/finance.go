package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Finance represents a row of the finances table.
// Optional foreign keys (category_id, work_program_id, period_id) and the
// proof_file_id attachment reference are nullable.
type Finance struct {
	FinanceID     string          `db:"finance_id"`
	Title         string          `db:"title"`
	Description   string          `db:"description"`
	Type          string          `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"date"`
	CategoryID    string          `db:"category_id"`
	WorkProgramID string          `db:"work_program_id"`
	PeriodID      string          `db:"period_id"`
	ProofFileID   string          `db:"proof_file_id"`
	Status        string          `db:"status"`
	AuditFields
}
