package repositories

import (
	"context"
	"time"

	"github.com/orghub/org_management_app/internal/core/domain"
)

// DocumentFilter narrows a document listing.
type DocumentFilter struct {
	Category string
	Status   string
	PeriodID string
	Search   string
	Limit    int
	Offset   int
}

// DocumentReader defines read operations for document data.
type DocumentReader interface {
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)
	ListDocuments(ctx context.Context, filter DocumentFilter) ([]domain.Document, int64, error)
}

// DocumentWriter defines write operations for document data.
type DocumentWriter interface {
	SaveDocument(ctx context.Context, document domain.Document) error
	UpdateDocument(ctx context.Context, document domain.Document) error
	DeleteDocument(ctx context.Context, documentID string) error
	DeleteDocuments(ctx context.Context, documentIDs []string) error
}

// DocumentRepositoryFacade combines all document repository interfaces.
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}

// EventFilter narrows an event listing.
type EventFilter struct {
	Status    string
	PeriodID  string
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// EventReader defines read operations for event data.
type EventReader interface {
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)
	ListEvents(ctx context.Context, filter EventFilter) ([]domain.Event, int64, error)
}

// EventWriter defines write operations for event data.
type EventWriter interface {
	SaveEvent(ctx context.Context, event domain.Event) error
	UpdateEvent(ctx context.Context, event domain.Event) error
	DeleteEvent(ctx context.Context, eventID string) error
	DeleteEvents(ctx context.Context, eventIDs []string) error
}

// EventRepositoryFacade combines all event repository interfaces.
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}

// GalleryFilter narrows a gallery listing.
type GalleryFilter struct {
	EventID string
	Status  string
	Search  string
	Limit   int
	Offset  int
}

// GalleryReader defines read operations for gallery data.
type GalleryReader interface {
	FindGalleryByID(ctx context.Context, galleryID string) (*domain.Gallery, error)
	ListGalleries(ctx context.Context, filter GalleryFilter) ([]domain.Gallery, int64, error)
}

// GalleryWriter defines write operations for gallery data.
type GalleryWriter interface {
	SaveGallery(ctx context.Context, gallery domain.Gallery) error
	UpdateGallery(ctx context.Context, gallery domain.Gallery) error
	DeleteGallery(ctx context.Context, galleryID string) error
	DeleteGalleries(ctx context.Context, galleryIDs []string) error
}

// GalleryRepositoryFacade combines all gallery repository interfaces.
type GalleryRepositoryFacade interface {
	GalleryReader
	GalleryWriter
}

// ArticleFilter narrows an article listing.
type ArticleFilter struct {
	Status string
	Author string
	Search string
	Limit  int
	Offset int
}

// ArticleReader defines read operations for article data.
type ArticleReader interface {
	FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error)
	FindArticleBySlug(ctx context.Context, slug string) (*domain.Article, error)
	ListArticles(ctx context.Context, filter ArticleFilter) ([]domain.Article, int64, error)
}

// ArticleWriter defines write operations for article data.
type ArticleWriter interface {
	SaveArticle(ctx context.Context, article domain.Article) error
	UpdateArticle(ctx context.Context, article domain.Article) error
	DeleteArticle(ctx context.Context, articleID string) error
	DeleteArticles(ctx context.Context, articleIDs []string) error
}

// ArticleRepositoryFacade combines all article repository interfaces.
type ArticleRepositoryFacade interface {
	ArticleReader
	ArticleWriter
}
