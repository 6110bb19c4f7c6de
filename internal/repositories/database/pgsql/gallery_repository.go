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

const galleryColumns = `gallery_id, title, caption, COALESCE(event_id, ''), photo_file_id,
	status, created_at, created_by, last_updated_at, last_updated_by`

type PgxGalleryRepository struct {
	BaseRepository
}

func newPgxGalleryRepository(pool *pgxpool.Pool) portsrepo.GalleryRepositoryFacade {
	return &PgxGalleryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.GalleryRepositoryFacade = (*PgxGalleryRepository)(nil)

func scanGallery(row pgx.Row) (models.Gallery, error) {
	var m models.Gallery
	err := row.Scan(
		&m.GalleryID,
		&m.Title,
		&m.Caption,
		&m.EventID,
		&m.PhotoFileID,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxGalleryRepository) SaveGallery(ctx context.Context, gallery domain.Gallery) error {
	m := mapping.ToModelGallery(gallery)
	query := `
		INSERT INTO galleries (gallery_id, title, caption, event_id, photo_file_id, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.GalleryID, m.Title, m.Caption, m.EventID, m.PhotoFileID, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save gallery photo %s: %w", m.GalleryID, translateError(err))
	}
	return nil
}

func (r *PgxGalleryRepository) FindGalleryByID(ctx context.Context, galleryID string) (*domain.Gallery, error) {
	query := `SELECT ` + galleryColumns + ` FROM galleries WHERE gallery_id = $1;`
	m, err := scanGallery(r.Pool.QueryRow(ctx, query, galleryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find gallery photo %s: %w", galleryID, err)
	}
	d := mapping.ToDomainGallery(m)
	return &d, nil
}

func (r *PgxGalleryRepository) ListGalleries(ctx context.Context, filter portsrepo.GalleryFilter) ([]domain.Gallery, int64, error) {
	where := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.EventID != "" {
		where = append(where, "event_id = "+arg(filter.EventID))
	}
	if filter.Status != "" {
		where = append(where, "status = "+arg(filter.Status))
	}
	if filter.Search != "" {
		where = append(where, "(title ILIKE "+arg("%"+filter.Search+"%")+" OR caption ILIKE "+arg("%"+filter.Search+"%")+")")
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM galleries"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count gallery photos: %w", err)
	}

	query := "SELECT " + galleryColumns + " FROM galleries" + whereClause +
		" ORDER BY created_at DESC LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query gallery photos: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Gallery, error) {
		return scanGallery(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan gallery photos: %w", err)
	}

	return mapping.ToDomainGallerySlice(ms), total, nil
}

func (r *PgxGalleryRepository) UpdateGallery(ctx context.Context, gallery domain.Gallery) error {
	m := mapping.ToModelGallery(gallery)
	query := `
		UPDATE galleries SET
			title = $2, caption = $3, event_id = NULLIF($4, ''), photo_file_id = $5, status = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE gallery_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.GalleryID, m.Title, m.Caption, m.EventID, m.PhotoFileID, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update gallery photo %s: %w", m.GalleryID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxGalleryRepository) DeleteGallery(ctx context.Context, galleryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM galleries WHERE gallery_id = $1;`, galleryID)
	if err != nil {
		return fmt.Errorf("failed to delete gallery photo %s: %w", galleryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxGalleryRepository) DeleteGalleries(ctx context.Context, galleryIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM galleries WHERE gallery_id = ANY($1);`, galleryIDs)
	if err != nil {
		return fmt.Errorf("failed to bulk delete gallery photos: %w", err)
	}
	if tag.RowsAffected() != int64(len(galleryIDs)) {
		return fmt.Errorf("%w: %d of %d gallery photos not found", apperrors.ErrNotFound, int64(len(galleryIDs))-tag.RowsAffected(), len(galleryIDs))
	}
	return tx.Commit(ctx)
}
