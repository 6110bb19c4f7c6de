package domain

// DocumentCategory loosely classifies stored organizational documents.
type DocumentCategory string

const (
	DocumentProposal   DocumentCategory = "PROPOSAL"
	DocumentReport     DocumentCategory = "REPORT"
	DocumentRegulation DocumentCategory = "REGULATION"
	DocumentOther      DocumentCategory = "OTHER"
)

// Document is an archived organizational document.
type Document struct {
	DocumentID     string           `json:"documentID"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Category       DocumentCategory `json:"category"`
	PeriodID       string           `json:"periodID"`       // optional
	DocumentFileID string           `json:"documentFileID"` // optional attachment
	Status         Status           `json:"status"`         // DRAFT, PENDING, APPROVED, REJECTED, REVISION, ARCHIVED
	AuditFields
}
