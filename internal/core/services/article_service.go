package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/orghub/org_management_app/internal/apperrors"
	"github.com/orghub/org_management_app/internal/core/domain"
	portsrepo "github.com/orghub/org_management_app/internal/core/ports/repositories"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/orghub/org_management_app/internal/utils"
)

type articleService struct {
	BaseService
	articleRepo portsrepo.ArticleRepositoryFacade
	attachments portssvc.AttachmentSvcFacade
}

// NewArticleService creates a new article service.
func NewArticleService(
	articleRepo portsrepo.ArticleRepositoryFacade,
	attachments portssvc.AttachmentSvcFacade,
) portssvc.ArticleSvcFacade {
	return &articleService{
		articleRepo: articleRepo,
		attachments: attachments,
	}
}

var _ portssvc.ArticleSvcFacade = (*articleService)(nil)

func (s *articleService) CreateArticle(ctx context.Context, req dto.CreateArticleRequest, actor domain.Actor) (*domain.Article, error) {
	imageID, err := normalizeRef(strVal(req.ImageFileID))
	if err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, req.Title)
	if err != nil {
		return nil, err
	}

	status := domain.Status(req.Status)
	if status == "" {
		status = domain.StatusDraft
	}

	now := time.Now()
	article := domain.Article{
		ArticleID:    uuid.NewString(),
		Title:        req.Title,
		Slug:         slug,
		Content:      req.Content,
		AuthorUserID: actor.UserID,
		ImageFileID:  imageID,
		Status:       status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.articleRepo.SaveArticle(ctx, article); err != nil {
		s.LogError(ctx, err, "Failed to create article", slog.String("slug", slug))
		return nil, err
	}

	s.LogInfo(ctx, "Article created", slog.String("article_id", article.ArticleID), slog.String("slug", slug))
	return &article, nil
}

func (s *articleService) GetArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	return s.articleRepo.FindArticleByID(ctx, articleID)
}

func (s *articleService) GetArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return s.articleRepo.FindArticleBySlug(ctx, slug)
}

func (s *articleService) ListArticles(ctx context.Context, params dto.ListArticlesParams) (*dto.ListArticlesResponse, error) {
	filter := portsrepo.ArticleFilter{
		Status: params.Status,
		Author: params.Author,
		Search: params.Search,
		Limit:  params.Limit,
		Offset: params.Offset(),
	}
	articles, total, err := s.articleRepo.ListArticles(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list articles")
		return nil, err
	}
	return dto.ToListArticlesResponse(articles, params.Page, params.Limit, total), nil
}

func (s *articleService) UpdateArticle(ctx context.Context, articleID string, req dto.UpdateArticleRequest, actor domain.Actor) (*domain.Article, error) {
	article, err := s.articleRepo.FindArticleByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article.AuthorUserID != actor.UserID && !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only the author or an admin may edit this article", apperrors.ErrForbidden)
	}

	if req.Title != nil && *req.Title != article.Title {
		article.Title = *req.Title
		slug, err := s.uniqueSlug(ctx, *req.Title)
		if err != nil {
			return nil, err
		}
		article.Slug = slug
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Status != nil {
		article.Status = domain.Status(*req.Status)
	}

	oldImage := article.ImageFileID
	if req.RemoveImage {
		article.ImageFileID = ""
	} else if req.ImageFileID != nil {
		imageID, err := normalizeRef(*req.ImageFileID)
		if err != nil {
			return nil, err
		}
		article.ImageFileID = imageID
	}

	article.LastUpdatedAt = time.Now()
	article.LastUpdatedBy = actor.UserID

	if err := s.articleRepo.UpdateArticle(ctx, *article); err != nil {
		s.LogError(ctx, err, "Failed to update article", slog.String("article_id", articleID))
		return nil, err
	}

	if oldImage != "" && oldImage != article.ImageFileID {
		if err := s.attachments.Remove(ctx, oldImage); err != nil {
			s.LogError(ctx, err, "Failed to remove superseded cover image",
				slog.String("article_id", articleID), slog.String("file_id", oldImage))
		}
	}

	return article, nil
}

func (s *articleService) DeleteArticle(ctx context.Context, articleID string, actor domain.Actor) error {
	article, err := s.articleRepo.FindArticleByID(ctx, articleID)
	if err != nil {
		return err
	}
	if article.AuthorUserID != actor.UserID && !actor.IsAdmin() {
		return fmt.Errorf("%w: only the author or an admin may delete this article", apperrors.ErrForbidden)
	}

	if err := s.articleRepo.DeleteArticle(ctx, articleID); err != nil {
		s.LogError(ctx, err, "Failed to delete article", slog.String("article_id", articleID))
		return err
	}

	if article.ImageFileID != "" {
		if err := s.attachments.Remove(ctx, article.ImageFileID); err != nil {
			s.LogError(ctx, err, "Failed to remove cover image of deleted article",
				slog.String("article_id", articleID))
		}
	}

	s.LogInfo(ctx, "Article deleted", slog.String("article_id", articleID))
	return nil
}

func (s *articleService) BulkDeleteArticles(ctx context.Context, articleIDs []string, actor domain.Actor) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: bulk delete requires the admin role", apperrors.ErrForbidden)
	}
	if err := s.articleRepo.DeleteArticles(ctx, articleIDs); err != nil {
		s.LogError(ctx, err, "Failed to bulk delete articles", slog.Int("count", len(articleIDs)))
		return err
	}
	s.LogInfo(ctx, "Articles bulk deleted", slog.Int("count", len(articleIDs)))
	return nil
}

// uniqueSlug derives a slug from the title, appending a short random suffix
// when the plain slug is already taken.
func (s *articleService) uniqueSlug(ctx context.Context, title string) (string, error) {
	slug := utils.Slugify(title)
	if slug == "" {
		return "", fmt.Errorf("%w: title produces an empty slug", apperrors.ErrValidation)
	}
	_, err := s.articleRepo.FindArticleBySlug(ctx, slug)
	if errors.Is(err, apperrors.ErrNotFound) {
		return slug, nil
	}
	if err != nil {
		return "", err
	}
	return slug + "-" + uuid.NewString()[:8], nil
}
