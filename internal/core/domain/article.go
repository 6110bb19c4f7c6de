package domain

// Article is a published piece of writing. Uses the publishing subset of
// Status: DRAFT, PUBLISHED, ARCHIVED.
type Article struct {
	ArticleID    string `json:"articleID"`
	Title        string `json:"title"`
	Slug         string `json:"slug"` // unique, derived from title
	Content      string `json:"content"`
	AuthorUserID string `json:"authorUserID"`
	ImageFileID  string `json:"imageFileID"` // optional cover image
	Status       Status `json:"status"`
	AuditFields
}
