package dto

import (
	"time"

	"github.com/orghub/org_management_app/internal/core/domain"
)

// CreateArticleRequest defines the data needed to create an article.
type CreateArticleRequest struct {
	Title       string  `json:"title" binding:"required"`
	Content     string  `json:"content" binding:"required"`
	ImageFileID *string `json:"imageFileID"`
	Status      string  `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
}

// UpdateArticleRequest defines the fields allowed when updating an article.
type UpdateArticleRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	ImageFileID *string `json:"imageFileID"`
	Status      *string `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	RemoveImage bool    `json:"removeImage"`
}

// ListArticlesParams defines query parameters for listing articles.
type ListArticlesParams struct {
	PageParams
	Status string `form:"status"`
	Author string `form:"author"`
	Search string `form:"search"`
}

// ArticleResponse defines the data returned for an article.
type ArticleResponse struct {
	ArticleID     string        `json:"articleID"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	Content       string        `json:"content"`
	AuthorUserID  string        `json:"authorUserID"`
	ImageFileID   string        `json:"imageFileID,omitempty"`
	ImageURL      string        `json:"imageURL,omitempty"`
	Status        domain.Status `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	CreatedBy     string        `json:"createdBy"`
	LastUpdatedAt time.Time     `json:"lastUpdatedAt"`
	LastUpdatedBy string        `json:"lastUpdatedBy"`
}

// ToArticleResponse converts a domain.Article to ArticleResponse.
func ToArticleResponse(a *domain.Article) ArticleResponse {
	resp := ArticleResponse{
		ArticleID:     a.ArticleID,
		Title:         a.Title,
		Slug:          a.Slug,
		Content:       a.Content,
		AuthorUserID:  a.AuthorUserID,
		ImageFileID:   a.ImageFileID,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
	if ref, err := domain.ParseAttachmentRef(a.ImageFileID); err == nil && !ref.IsEmpty() {
		resp.ImageURL = ref.ViewURL()
	}
	return resp
}

// ListArticlesResponse wraps a page of articles.
type ListArticlesResponse struct {
	Articles   []ArticleResponse `json:"articles"`
	Pagination Pagination        `json:"pagination"`
}

// ToListArticlesResponse converts a page of domain records plus its total count.
func ToListArticlesResponse(items []domain.Article, page, limit int, total int64) *ListArticlesResponse {
	res := make([]ArticleResponse, len(items))
	for i := range items {
		res[i] = ToArticleResponse(&items[i])
	}
	return &ListArticlesResponse{Articles: res, Pagination: NewPagination(page, limit, total)}
}
