package models

import "time"

// Letter represents a row of the letters table.
type Letter struct {
	LetterID     string    `db:"letter_id"`
	Number       string    `db:"number"`
	Subject      string    `db:"subject"`
	Type         string    `db:"type"`
	Origin       string    `db:"origin"`
	Destination  string    `db:"destination"`
	Date         time.Time `db:"date"`
	PeriodID     string    `db:"period_id"`
	LetterFileID string    `db:"letter_file_id"`
	Status       string    `db:"status"`
	AuditFields
}
