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

const managementColumns = `management_id, user_id, position, period_id, COALESCE(photo_file_id, ''),
	status, created_at, created_by, last_updated_at, last_updated_by`

type PgxManagementRepository struct {
	BaseRepository
}

func newPgxManagementRepository(pool *pgxpool.Pool) portsrepo.ManagementRepositoryFacade {
	return &PgxManagementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ManagementRepositoryFacade = (*PgxManagementRepository)(nil)

func scanManagement(row pgx.Row) (models.Management, error) {
	var m models.Management
	err := row.Scan(
		&m.ManagementID,
		&m.UserID,
		&m.Position,
		&m.PeriodID,
		&m.PhotoFileID,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxManagementRepository) SaveManagement(ctx context.Context, management domain.Management) error {
	m := mapping.ToModelManagement(management)
	query := `
		INSERT INTO managements (management_id, user_id, position, period_id, photo_file_id,
			status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ManagementID, m.UserID, m.Position, m.PeriodID, m.PhotoFileID,
		m.Status, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save roster entry %s: %w", m.ManagementID, translateError(err))
	}
	return nil
}

func (r *PgxManagementRepository) FindManagementByID(ctx context.Context, managementID string) (*domain.Management, error) {
	query := `SELECT ` + managementColumns + ` FROM managements WHERE management_id = $1;`
	m, err := scanManagement(r.Pool.QueryRow(ctx, query, managementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find roster entry %s: %w", managementID, err)
	}
	d := mapping.ToDomainManagement(m)
	return &d, nil
}

func (r *PgxManagementRepository) ListManagements(ctx context.Context, filter portsrepo.ManagementFilter) ([]domain.Management, int64, error) {
	where := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.PeriodID != "" {
		where = append(where, "period_id = "+arg(filter.PeriodID))
	}
	if filter.Status != "" {
		where = append(where, "status = "+arg(filter.Status))
	}
	if filter.Search != "" {
		where = append(where, "position ILIKE "+arg("%"+filter.Search+"%"))
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM managements"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count roster entries: %w", err)
	}

	query := "SELECT " + managementColumns + " FROM managements" + whereClause +
		" ORDER BY created_at LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query roster entries: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Management, error) {
		return scanManagement(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan roster entries: %w", err)
	}

	return mapping.ToDomainManagementSlice(ms), total, nil
}

func (r *PgxManagementRepository) UpdateManagement(ctx context.Context, management domain.Management) error {
	m := mapping.ToModelManagement(management)
	query := `
		UPDATE managements SET
			user_id = $2, position = $3, period_id = $4, photo_file_id = NULLIF($5, ''),
			status = $6, last_updated_at = $7, last_updated_by = $8
		WHERE management_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ManagementID, m.UserID, m.Position, m.PeriodID, m.PhotoFileID,
		m.Status, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update roster entry %s: %w", m.ManagementID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxManagementRepository) DeleteManagement(ctx context.Context, managementID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM managements WHERE management_id = $1;`, managementID)
	if err != nil {
		return fmt.Errorf("failed to delete roster entry %s: %w", managementID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxManagementRepository) DeleteManagements(ctx context.Context, managementIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM managements WHERE management_id = ANY($1);`, managementIDs)
	if err != nil {
		return fmt.Errorf("failed to bulk delete roster entries: %w", translateError(err))
	}
	if tag.RowsAffected() != int64(len(managementIDs)) {
		return fmt.Errorf("%w: %d of %d roster entries not found", apperrors.ErrNotFound, int64(len(managementIDs))-tag.RowsAffected(), len(managementIDs))
	}
	return tx.Commit(ctx)
}
