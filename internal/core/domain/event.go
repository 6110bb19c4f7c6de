package domain

import "time"

// Event is an organizational event. Besides the approval statuses it uses the
// scheduling subset: ONGOING, COMPLETED, CANCELLED, POSTPONED.
type Event struct {
	EventID           string    `json:"eventID"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Location          string    `json:"location"`
	StartDate         time.Time `json:"startDate"`
	EndDate           time.Time `json:"endDate"`
	ResponsibleUserID string    `json:"responsibleUserID"` // optional
	PeriodID          string    `json:"periodID"`          // optional
	ThumbnailFileID   string    `json:"thumbnailFileID"`   // optional attachment
	Status            Status    `json:"status"`
	AuditFields
}
