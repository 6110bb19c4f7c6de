package domain

import "time"

// LetterType distinguishes incoming correspondence from outgoing.
type LetterType string

const (
	LetterIncoming LetterType = "INCOMING"
	LetterOutgoing LetterType = "OUTGOING"
)

// Letter is a piece of official correspondence. LetterFileID references the
// scanned letter in external storage.
type Letter struct {
	LetterID     string     `json:"letterID"`
	Number       string     `json:"number"` // human-readable letter number, unique
	Subject      string     `json:"subject"`
	Type         LetterType `json:"type"`
	Origin       string     `json:"origin"`      // sender for incoming, empty for outgoing
	Destination  string     `json:"destination"` // recipient for outgoing, empty for incoming
	Date         time.Time  `json:"date"`
	PeriodID     string     `json:"periodID"`     // optional
	LetterFileID string     `json:"letterFileID"` // optional attachment
	Status       Status     `json:"status"`       // DRAFT, PENDING, APPROVED, REJECTED, REVISION, ARCHIVED
	AuditFields
}
