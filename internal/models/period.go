package models

// Period represents a row of the periods table.
type Period struct {
	PeriodID  string `db:"period_id"`
	Name      string `db:"name"`
	StartYear int    `db:"start_year"`
	EndYear   int    `db:"end_year"`
	IsActive  bool   `db:"is_active"`
	AuditFields
}
