package models

// Document represents a row of the documents table.
type Document struct {
	DocumentID     string `db:"document_id"`
	Title          string `db:"title"`
	Description    string `db:"description"`
	Category       string `db:"category"`
	PeriodID       string `db:"period_id"`
	DocumentFileID string `db:"document_file_id"`
	Status         string `db:"status"`
	AuditFields
}
