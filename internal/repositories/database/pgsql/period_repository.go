package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orghub/org_management_app/internal/apperrors"
	"github.com/orghub/org_management_app/internal/core/domain"
	portsrepo "github.com/orghub/org_management_app/internal/core/ports/repositories"
	"github.com/orghub/org_management_app/internal/models"
	"github.com/orghub/org_management_app/internal/utils/mapping"
)

const periodColumns = `period_id, name, start_year, end_year, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPeriodRepository struct {
	BaseRepository
}

func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

func scanPeriod(row pgx.Row) (models.Period, error) {
	var m models.Period
	err := row.Scan(
		&m.PeriodID,
		&m.Name,
		&m.StartYear,
		&m.EndYear,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.Period) error {
	m := mapping.ToModelPeriod(period)
	query := `
		INSERT INTO periods (period_id, name, start_year, end_year, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PeriodID, m.Name, m.StartYear, m.EndYear, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save period %s: %w", m.PeriodID, translateError(err))
	}
	return nil
}

func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods WHERE period_id = $1;`
	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find period %s: %w", periodID, err)
	}
	d := mapping.ToDomainPeriod(m)
	return &d, nil
}

// ListPeriods returns every period, newest first. The set is small enough
// that pagination would be noise.
func (r *PgxPeriodRepository) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods ORDER BY start_year DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query periods: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Period, error) {
		return scanPeriod(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan periods: %w", err)
	}

	return mapping.ToDomainPeriodSlice(ms), nil
}

func (r *PgxPeriodRepository) UpdatePeriod(ctx context.Context, period domain.Period) error {
	m := mapping.ToModelPeriod(period)
	query := `
		UPDATE periods SET
			name = $2, start_year = $3, end_year = $4, is_active = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE period_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.PeriodID, m.Name, m.StartYear, m.EndYear, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update period %s: %w", m.PeriodID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPeriodRepository) DeletePeriod(ctx context.Context, periodID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM periods WHERE period_id = $1;`, periodID)
	if err != nil {
		return fmt.Errorf("failed to delete period %s: %w", periodID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
