package domain

// Gallery is a published photo, optionally linked to the event it was taken at.
// Uses the visibility subset of Status: PUBLISHED, PRIVATE.
type Gallery struct {
	GalleryID   string `json:"galleryID"`
	Title       string `json:"title"`
	Caption     string `json:"caption"`
	EventID     string `json:"eventID"`     // optional
	PhotoFileID string `json:"photoFileID"` // required attachment
	Status      Status `json:"status"`
	AuditFields
}
