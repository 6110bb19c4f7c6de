package services

import (
	"context"

	"github.com/orghub/org_management_app/internal/core/domain"
	"github.com/orghub/org_management_app/internal/dto"
)

// FinanceSvcFacade defines the finance operations exposed to handlers.
type FinanceSvcFacade interface {
	CreateFinance(ctx context.Context, req dto.CreateFinanceRequest, actor domain.Actor) (*domain.Finance, error)
	GetFinanceByID(ctx context.Context, financeID string) (*domain.Finance, error)
	ListFinances(ctx context.Context, params dto.ListFinancesParams) (*dto.ListFinancesResponse, error)
	UpdateFinance(ctx context.Context, financeID string, req dto.UpdateFinanceRequest, actor domain.Actor) (*domain.Finance, error)
	DeleteFinance(ctx context.Context, financeID string, actor domain.Actor) error
	BulkDeleteFinances(ctx context.Context, financeIDs []string, actor domain.Actor) error
	SubmitFinanceForApproval(ctx context.Context, financeID string, actor domain.Actor) (*domain.Approval, error)
}

// LetterSvcFacade defines the letter operations exposed to handlers.
type LetterSvcFacade interface {
	CreateLetter(ctx context.Context, req dto.CreateLetterRequest, actor domain.Actor) (*domain.Letter, error)
	GetLetterByID(ctx context.Context, letterID string) (*domain.Letter, error)
	ListLetters(ctx context.Context, params dto.ListLettersParams) (*dto.ListLettersResponse, error)
	UpdateLetter(ctx context.Context, letterID string, req dto.UpdateLetterRequest, actor domain.Actor) (*domain.Letter, error)
	DeleteLetter(ctx context.Context, letterID string, actor domain.Actor) error
	BulkDeleteLetters(ctx context.Context, letterIDs []string, actor domain.Actor) error
	SubmitLetterForApproval(ctx context.Context, letterID string, actor domain.Actor) (*domain.Approval, error)
}

// DocumentSvcFacade defines the document operations exposed to handlers.
type DocumentSvcFacade interface {
	CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, actor domain.Actor) (*domain.Document, error)
	GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)
	ListDocuments(ctx context.Context, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error)
	UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, actor domain.Actor) (*domain.Document, error)
	DeleteDocument(ctx context.Context, documentID string, actor domain.Actor) error
	BulkDeleteDocuments(ctx context.Context, documentIDs []string, actor domain.Actor) error
	SubmitDocumentForApproval(ctx context.Context, documentID string, actor domain.Actor) (*domain.Approval, error)
}

// EventSvcFacade defines the event operations exposed to handlers.
type EventSvcFacade interface {
	CreateEvent(ctx context.Context, req dto.CreateEventRequest, actor domain.Actor) (*domain.Event, error)
	GetEventByID(ctx context.Context, eventID string) (*domain.Event, error)
	ListEvents(ctx context.Context, params dto.ListEventsParams) (*dto.ListEventsResponse, error)
	UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, actor domain.Actor) (*domain.Event, error)
	DeleteEvent(ctx context.Context, eventID string, actor domain.Actor) error
	BulkDeleteEvents(ctx context.Context, eventIDs []string, actor domain.Actor) error
	SubmitEventForApproval(ctx context.Context, eventID string, actor domain.Actor) (*domain.Approval, error)
}

// GallerySvcFacade defines the gallery operations exposed to handlers.
type GallerySvcFacade interface {
	CreateGallery(ctx context.Context, req dto.CreateGalleryRequest, actor domain.Actor) (*domain.Gallery, error)
	GetGalleryByID(ctx context.Context, galleryID string) (*domain.Gallery, error)
	ListGalleries(ctx context.Context, params dto.ListGalleriesParams) (*dto.ListGalleriesResponse, error)
	UpdateGallery(ctx context.Context, galleryID string, req dto.UpdateGalleryRequest, actor domain.Actor) (*domain.Gallery, error)
	DeleteGallery(ctx context.Context, galleryID string, actor domain.Actor) error
	BulkDeleteGalleries(ctx context.Context, galleryIDs []string, actor domain.Actor) error
}

// ArticleSvcFacade defines the article operations exposed to handlers.
type ArticleSvcFacade interface {
	CreateArticle(ctx context.Context, req dto.CreateArticleRequest, actor domain.Actor) (*domain.Article, error)
	GetArticleByID(ctx context.Context, articleID string) (*domain.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*domain.Article, error)
	ListArticles(ctx context.Context, params dto.ListArticlesParams) (*dto.ListArticlesResponse, error)
	UpdateArticle(ctx context.Context, articleID string, req dto.UpdateArticleRequest, actor domain.Actor) (*domain.Article, error)
	DeleteArticle(ctx context.Context, articleID string, actor domain.Actor) error
	BulkDeleteArticles(ctx context.Context, articleIDs []string, actor domain.Actor) error
}

// StructureSvcFacade defines the structure operations exposed to handlers.
type StructureSvcFacade interface {
	CreateStructure(ctx context.Context, req dto.CreateStructureRequest, actor domain.Actor) (*domain.Structure, error)
	GetStructureByID(ctx context.Context, structureID string) (*domain.Structure, error)
	ListStructures(ctx context.Context, params dto.ListStructuresParams) (*dto.ListStructuresResponse, error)
	UpdateStructure(ctx context.Context, structureID string, req dto.UpdateStructureRequest, actor domain.Actor) (*domain.Structure, error)
	DeleteStructure(ctx context.Context, structureID string, actor domain.Actor) error
	BulkDeleteStructures(ctx context.Context, structureIDs []string, actor domain.Actor) error
}

// ManagementSvcFacade defines the roster operations exposed to handlers.
type ManagementSvcFacade interface {
	CreateManagement(ctx context.Context, req dto.CreateManagementRequest, actor domain.Actor) (*domain.Management, error)
	GetManagementByID(ctx context.Context, managementID string) (*domain.Management, error)
	ListManagements(ctx context.Context, params dto.ListManagementsParams) (*dto.ListManagementsResponse, error)
	UpdateManagement(ctx context.Context, managementID string, req dto.UpdateManagementRequest, actor domain.Actor) (*domain.Management, error)
	DeleteManagement(ctx context.Context, managementID string, actor domain.Actor) error
	BulkDeleteManagements(ctx context.Context, managementIDs []string, actor domain.Actor) error
}
