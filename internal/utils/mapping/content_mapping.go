package mapping

import (
	"github.com/orghub/org_management_app/internal/core/domain"
	"github.com/orghub/org_management_app/internal/models"
)

// ToModelGallery converts a domain Gallery to a model Gallery
func ToModelGallery(d domain.Gallery) models.Gallery {
	return models.Gallery{
		GalleryID:   d.GalleryID,
		Title:       d.Title,
		Caption:     d.Caption,
		EventID:     d.EventID,
		PhotoFileID: d.PhotoFileID,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGallery converts a model Gallery to a domain Gallery
func ToDomainGallery(m models.Gallery) domain.Gallery {
	return domain.Gallery{
		GalleryID:   m.GalleryID,
		Title:       m.Title,
		Caption:     m.Caption,
		EventID:     m.EventID,
		PhotoFileID: m.PhotoFileID,
		Status:      domain.Status(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGallerySlice converts a slice of model Galleries to domain Galleries
func ToDomainGallerySlice(ms []models.Gallery) []domain.Gallery {
	ds := make([]domain.Gallery, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGallery(m)
	}
	return ds
}

// ToModelArticle converts a domain Article to a model Article
func ToModelArticle(d domain.Article) models.Article {
	return models.Article{
		ArticleID:    d.ArticleID,
		Title:        d.Title,
		Slug:         d.Slug,
		Content:      d.Content,
		AuthorUserID: d.AuthorUserID,
		ImageFileID:  d.ImageFileID,
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainArticle converts a model Article to a domain Article
func ToDomainArticle(m models.Article) domain.Article {
	return domain.Article{
		ArticleID:    m.ArticleID,
		Title:        m.Title,
		Slug:         m.Slug,
		Content:      m.Content,
		AuthorUserID: m.AuthorUserID,
		ImageFileID:  m.ImageFileID,
		Status:       domain.Status(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainArticleSlice converts a slice of model Articles to domain Articles
func ToDomainArticleSlice(ms []models.Article) []domain.Article {
	ds := make([]domain.Article, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainArticle(m)
	}
	return ds
}
