package models

// Gallery represents a row of the galleries table.
type Gallery struct {
	GalleryID   string `db:"gallery_id"`
	Title       string `db:"title"`
	Caption     string `db:"caption"`
	EventID     string `db:"event_id"`
	PhotoFileID string `db:"photo_file_id"`
	Status      string `db:"status"`
	AuditFields
}
