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

const documentColumns = `document_id, title, description, category, COALESCE(period_id, ''),
	COALESCE(document_file_id, ''), status, created_at, created_by, last_updated_at, last_updated_by`

type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

func scanDocument(row pgx.Row) (models.Document, error) {
	var m models.Document
	err := row.Scan(
		&m.DocumentID,
		&m.Title,
		&m.Description,
		&m.Category,
		&m.PeriodID,
		&m.DocumentFileID,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) error {
	m := mapping.ToModelDocument(document)
	query := `
		INSERT INTO documents (document_id, title, description, category, period_id,
			document_file_id, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DocumentID, m.Title, m.Description, m.Category, m.PeriodID,
		m.DocumentFileID, m.Status, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", m.DocumentID, translateError(err))
	}
	return nil
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE document_id = $1;`
	m, err := scanDocument(r.Pool.QueryRow(ctx, query, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document %s: %w", documentID, err)
	}
	d := mapping.ToDomainDocument(m)
	return &d, nil
}

func (r *PgxDocumentRepository) ListDocuments(ctx context.Context, filter portsrepo.DocumentFilter) ([]domain.Document, int64, error) {
	where := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Category != "" {
		where = append(where, "category = "+arg(filter.Category))
	}
	if filter.Status != "" {
		where = append(where, "status = "+arg(filter.Status))
	}
	if filter.PeriodID != "" {
		where = append(where, "period_id = "+arg(filter.PeriodID))
	}
	if filter.Search != "" {
		where = append(where, "(title ILIKE "+arg("%"+filter.Search+"%")+" OR description ILIKE "+arg("%"+filter.Search+"%")+")")
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM documents"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	query := "SELECT " + documentColumns + " FROM documents" + whereClause +
		" ORDER BY created_at DESC LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Document, error) {
		return scanDocument(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan documents: %w", err)
	}

	return mapping.ToDomainDocumentSlice(ms), total, nil
}

func (r *PgxDocumentRepository) UpdateDocument(ctx context.Context, document domain.Document) error {
	m := mapping.ToModelDocument(document)
	query := `
		UPDATE documents SET
			title = $2, description = $3, category = $4, period_id = NULLIF($5, ''),
			document_file_id = NULLIF($6, ''), status = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE document_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.DocumentID, m.Title, m.Description, m.Category, m.PeriodID,
		m.DocumentFileID, m.Status, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update document %s: %w", m.DocumentID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM documents WHERE document_id = $1;`, documentID)
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", documentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDocumentRepository) DeleteDocuments(ctx context.Context, documentIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM documents WHERE document_id = ANY($1);`, documentIDs)
	if err != nil {
		return fmt.Errorf("failed to bulk delete documents: %w", err)
	}
	if tag.RowsAffected() != int64(len(documentIDs)) {
		return fmt.Errorf("%w: %d of %d documents not found", apperrors.ErrNotFound, int64(len(documentIDs))-tag.RowsAffected(), len(documentIDs))
	}
	return tx.Commit(ctx)
}
