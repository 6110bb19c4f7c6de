package models

// Article represents a row of the articles table.
type Article struct {
	ArticleID    string `db:"article_id"`
	Title        string `db:"title"`
	Slug         string `db:"slug"`
	Content      string `db:"content"`
	AuthorUserID string `db:"author_user_id"`
	ImageFileID  string `db:"image_file_id"`
	Status       string `db:"status"`
	AuditFields
}
