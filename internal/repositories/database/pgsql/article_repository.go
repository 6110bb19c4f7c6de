package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orghub/org_management_app/internal/apperrors"
	"github.com/orghub/org_management_app/internal/core/domain"
	portsrepo "github.com/orghub/org_management_app/internal/core/ports/repositories"
	"github.com/orghub/org_management_app/internal/models"
	"github.com/orghub/org_management_app/internal/utils/mapping"
)

const articleColumns = `article_id, title, slug, content, author_user_id, COALESCE(image_file_id, ''),
	status, created_at, created_by, last_updated_at, last_updated_by`

type PgxArticleRepository struct {
	BaseRepository
}

func newPgxArticleRepository(pool *pgxpool.Pool) portsrepo.ArticleRepositoryFacade {
	return &PgxArticleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ArticleRepositoryFacade = (*PgxArticleRepository)(nil)

func scanArticle(row pgx.Row) (models.Article, error) {
	var m models.Article
	err := row.Scan(
		&m.ArticleID,
		&m.Title,
		&m.Slug,
		&m.Content,
		&m.AuthorUserID,
		&m.ImageFileID,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxArticleRepository) SaveArticle(ctx context.Context, article domain.Article) error {
	m := mapping.ToModelArticle(article)
	query := `
		INSERT INTO articles (article_id, title, slug, content, author_user_id, image_file_id,
			status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ArticleID, m.Title, m.Slug, m.Content, m.AuthorUserID, m.ImageFileID,
		m.Status, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		// slug carries a unique constraint
		return fmt.Errorf("failed to save article %s: %w", m.ArticleID, translateError(err))
	}
	return nil
}

func (r *PgxArticleRepository) FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE article_id = $1;`
	m, err := scanArticle(r.Pool.QueryRow(ctx, query, articleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find article %s: %w", articleID, err)
	}
	d := mapping.ToDomainArticle(m)
	return &d, nil
}

func (r *PgxArticleRepository) FindArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE slug = $1;`
	m, err := scanArticle(r.Pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find article by slug %s: %w", slug, err)
	}
	d := mapping.ToDomainArticle(m)
	return &d, nil
}

func (r *PgxArticleRepository) ListArticles(ctx context.Context, filter portsrepo.ArticleFilter) ([]domain.Article, int64, error) {
	where := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != "" {
		where = append(where, "status = "+arg(filter.Status))
	}
	if filter.Author != "" {
		where = append(where, "author_user_id = "+arg(filter.Author))
	}
	if filter.Search != "" {
		where = append(where, "(title ILIKE "+arg("%"+filter.Search+"%")+" OR content ILIKE "+arg("%"+filter.Search+"%")+")")
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM articles"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	query := "SELECT " + articleColumns + " FROM articles" + whereClause +
		" ORDER BY created_at DESC LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Article, error) {
		return scanArticle(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan articles: %w", err)
	}

	return mapping.ToDomainArticleSlice(ms), total, nil
}

func (r *PgxArticleRepository) UpdateArticle(ctx context.Context, article domain.Article) error {
	m := mapping.ToModelArticle(article)
	query := `
		UPDATE articles SET
			title = $2, slug = $3, content = $4, image_file_id = NULLIF($5, ''), status = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE article_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ArticleID, m.Title, m.Slug, m.Content, m.ImageFileID, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update article %s: %w", m.ArticleID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxArticleRepository) DeleteArticle(ctx context.Context, articleID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM articles WHERE article_id = $1;`, articleID)
	if err != nil {
		return fmt.Errorf("failed to delete article %s: %w", articleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxArticleRepository) DeleteArticles(ctx context.Context, articleIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM articles WHERE article_id = ANY($1);`, articleIDs)
	if err != nil {
		return fmt.Errorf("failed to bulk delete articles: %w", err)
	}
	if tag.RowsAffected() != int64(len(articleIDs)) {
		return fmt.Errorf("%w: %d of %d articles not found", apperrors.ErrNotFound, int64(len(articleIDs))-tag.RowsAffected(), len(articleIDs))
	}
	return tx.Commit(ctx)
}
