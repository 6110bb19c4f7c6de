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

const financeColumns = `finance_id, title, description, type, amount, date,
	COALESCE(category_id, ''), COALESCE(work_program_id, ''), COALESCE(period_id, ''),
	COALESCE(proof_file_id, ''), status, created_at, created_by, last_updated_at, last_updated_by`

type PgxFinanceRepository struct {
	BaseRepository
}

// newPgxFinanceRepository creates a new repository for finance data.
func newPgxFinanceRepository(pool *pgxpool.Pool) portsrepo.FinanceRepositoryFacade {
	return &PgxFinanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FinanceRepositoryFacade = (*PgxFinanceRepository)(nil)

func scanFinance(row pgx.Row) (models.Finance, error) {
	var m models.Finance
	err := row.Scan(
		&m.FinanceID,
		&m.Title,
		&m.Description,
		&m.Type,
		&m.Amount,
		&m.Date,
		&m.CategoryID,
		&m.WorkProgramID,
		&m.PeriodID,
		&m.ProofFileID,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxFinanceRepository) SaveFinance(ctx context.Context, finance domain.Finance) error {
	m := mapping.ToModelFinance(finance)
	query := `
		INSERT INTO finances (finance_id, title, description, type, amount, date,
			category_id, work_program_id, period_id, proof_file_id, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.FinanceID, m.Title, m.Description, m.Type, m.Amount, m.Date,
		m.CategoryID, m.WorkProgramID, m.PeriodID, m.ProofFileID, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save finance %s: %w", m.FinanceID, translateError(err))
	}
	return nil
}

func (r *PgxFinanceRepository) FindFinanceByID(ctx context.Context, financeID string) (*domain.Finance, error) {
	query := `SELECT ` + financeColumns + ` FROM finances WHERE finance_id = $1;`
	m, err := scanFinance(r.Pool.QueryRow(ctx, query, financeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find finance %s: %w", financeID, err)
	}
	d := mapping.ToDomainFinance(m)
	return &d, nil
}

func (r *PgxFinanceRepository) ListFinances(ctx context.Context, filter portsrepo.FinanceFilter) ([]domain.Finance, int64, error) {
	where := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Type != "" {
		where = append(where, "type = "+arg(filter.Type))
	}
	if filter.Status != "" {
		where = append(where, "status = "+arg(filter.Status))
	}
	if filter.CategoryID != "" {
		where = append(where, "category_id = "+arg(filter.CategoryID))
	}
	if filter.WorkProgramID != "" {
		where = append(where, "work_program_id = "+arg(filter.WorkProgramID))
	}
	if filter.PeriodID != "" {
		where = append(where, "period_id = "+arg(filter.PeriodID))
	}
	if filter.Search != "" {
		where = append(where, "(title ILIKE "+arg("%"+filter.Search+"%")+" OR description ILIKE "+arg("%"+filter.Search+"%")+")")
	}
	if filter.StartDate != nil {
		where = append(where, "date >= "+arg(*filter.StartDate))
	}
	if filter.EndDate != nil {
		where = append(where, "date <= "+arg(*filter.EndDate))
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM finances"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count finances: %w", err)
	}

	query := "SELECT " + financeColumns + " FROM finances" + whereClause +
		" ORDER BY date DESC, created_at DESC LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query finances: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Finance, error) {
		return scanFinance(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan finances: %w", err)
	}

	return mapping.ToDomainFinanceSlice(ms), total, nil
}

func (r *PgxFinanceRepository) UpdateFinance(ctx context.Context, finance domain.Finance) error {
	m := mapping.ToModelFinance(finance)
	query := `
		UPDATE finances SET
			title = $2, description = $3, type = $4, amount = $5, date = $6,
			category_id = NULLIF($7, ''), work_program_id = NULLIF($8, ''), period_id = NULLIF($9, ''),
			proof_file_id = NULLIF($10, ''), status = $11,
			last_updated_at = $12, last_updated_by = $13
		WHERE finance_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.FinanceID, m.Title, m.Description, m.Type, m.Amount, m.Date,
		m.CategoryID, m.WorkProgramID, m.PeriodID, m.ProofFileID, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update finance %s: %w", m.FinanceID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxFinanceRepository) DeleteFinance(ctx context.Context, financeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM finances WHERE finance_id = $1;`, financeID)
	if err != nil {
		return fmt.Errorf("failed to delete finance %s: %w", financeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteFinances removes the given records in one transaction. When any id is
// missing the whole delete rolls back.
func (r *PgxFinanceRepository) DeleteFinances(ctx context.Context, financeIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM finances WHERE finance_id = ANY($1);`, financeIDs)
	if err != nil {
		return fmt.Errorf("failed to bulk delete finances: %w", err)
	}
	if tag.RowsAffected() != int64(len(financeIDs)) {
		return fmt.Errorf("%w: %d of %d finance records not found", apperrors.ErrNotFound, int64(len(financeIDs))-tag.RowsAffected(), len(financeIDs))
	}
	return tx.Commit(ctx)
}
