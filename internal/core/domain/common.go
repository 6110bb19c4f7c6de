package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// Status is the shared lifecycle status enum across entities.
// Not every entity uses every value; each entity documents its own subset.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusRevision  Status = "REVISION"
	StatusArchived  Status = "ARCHIVED"
	StatusPublished Status = "PUBLISHED"
	StatusPrivate   Status = "PRIVATE"
	StatusOngoing   Status = "ONGOING"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusPostponed Status = "POSTPONED"
)

// EntityType tags the kind of domain record an approval (or attachment) refers to.
type EntityType string

const (
	EntityFinance    EntityType = "FINANCE"
	EntityLetter     EntityType = "LETTER"
	EntityDocument   EntityType = "DOCUMENT"
	EntityEvent      EntityType = "EVENT"
	EntityGallery    EntityType = "GALLERY"
	EntityArticle    EntityType = "ARTICLE"
	EntityStructure  EntityType = "STRUCTURE"
	EntityManagement EntityType = "MANAGEMENT"
)

// ApprovableEntityTypes lists the entity types whose PENDING records are gated by approvals.
var ApprovableEntityTypes = []EntityType{EntityFinance, EntityLetter, EntityDocument, EntityEvent}

// IsApprovable reports whether records of this type go through the approval workflow.
func (t EntityType) IsApprovable() bool {
	for _, a := range ApprovableEntityTypes {
		if t == a {
			return true
		}
	}
	return false
}
