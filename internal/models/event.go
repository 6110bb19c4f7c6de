package models

import "time"

// Event represents a row of the events table.
type Event struct {
	EventID           string    `db:"event_id"`
	Title             string    `db:"title"`
	Description       string    `db:"description"`
	Location          string    `db:"location"`
	StartDate         time.Time `db:"start_date"`
	EndDate           time.Time `db:"end_date"`
	ResponsibleUserID string    `db:"responsible_user_id"`
	PeriodID          string    `db:"period_id"`
	ThumbnailFileID   string    `db:"thumbnail_file_id"`
	Status            string    `db:"status"`
	AuditFields
}
