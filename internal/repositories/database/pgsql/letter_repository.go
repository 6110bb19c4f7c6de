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

const letterColumns = `letter_id, number, subject, type, COALESCE(origin, ''), COALESCE(destination, ''),
	date, COALESCE(period_id, ''), COALESCE(letter_file_id, ''), status,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxLetterRepository struct {
	BaseRepository
}

func newPgxLetterRepository(pool *pgxpool.Pool) portsrepo.LetterRepositoryFacade {
	return &PgxLetterRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LetterRepositoryFacade = (*PgxLetterRepository)(nil)

func scanLetter(row pgx.Row) (models.Letter, error) {
	var m models.Letter
	err := row.Scan(
		&m.LetterID,
		&m.Number,
		&m.Subject,
		&m.Type,
		&m.Origin,
		&m.Destination,
		&m.Date,
		&m.PeriodID,
		&m.LetterFileID,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLetterRepository) SaveLetter(ctx context.Context, letter domain.Letter) error {
	m := mapping.ToModelLetter(letter)
	query := `
		INSERT INTO letters (letter_id, number, subject, type, origin, destination, date,
			period_id, letter_file_id, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LetterID, m.Number, m.Subject, m.Type, m.Origin, m.Destination, m.Date,
		m.PeriodID, m.LetterFileID, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		// number carries a unique constraint
		return fmt.Errorf("failed to save letter %s: %w", m.LetterID, translateError(err))
	}
	return nil
}

func (r *PgxLetterRepository) FindLetterByID(ctx context.Context, letterID string) (*domain.Letter, error) {
	query := `SELECT ` + letterColumns + ` FROM letters WHERE letter_id = $1;`
	m, err := scanLetter(r.Pool.QueryRow(ctx, query, letterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find letter %s: %w", letterID, err)
	}
	d := mapping.ToDomainLetter(m)
	return &d, nil
}

func (r *PgxLetterRepository) ListLetters(ctx context.Context, filter portsrepo.LetterFilter) ([]domain.Letter, int64, error) {
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
	if filter.PeriodID != "" {
		where = append(where, "period_id = "+arg(filter.PeriodID))
	}
	if filter.Search != "" {
		where = append(where, "(number ILIKE "+arg("%"+filter.Search+"%")+" OR subject ILIKE "+arg("%"+filter.Search+"%")+")")
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
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM letters"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count letters: %w", err)
	}

	query := "SELECT " + letterColumns + " FROM letters" + whereClause +
		" ORDER BY date DESC, created_at DESC LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query letters: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Letter, error) {
		return scanLetter(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan letters: %w", err)
	}

	return mapping.ToDomainLetterSlice(ms), total, nil
}

func (r *PgxLetterRepository) UpdateLetter(ctx context.Context, letter domain.Letter) error {
	m := mapping.ToModelLetter(letter)
	query := `
		UPDATE letters SET
			number = $2, subject = $3, type = $4, origin = NULLIF($5, ''), destination = NULLIF($6, ''),
			date = $7, period_id = NULLIF($8, ''), letter_file_id = NULLIF($9, ''), status = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE letter_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.LetterID, m.Number, m.Subject, m.Type, m.Origin, m.Destination,
		m.Date, m.PeriodID, m.LetterFileID, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update letter %s: %w", m.LetterID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLetterRepository) DeleteLetter(ctx context.Context, letterID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM letters WHERE letter_id = $1;`, letterID)
	if err != nil {
		return fmt.Errorf("failed to delete letter %s: %w", letterID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLetterRepository) DeleteLetters(ctx context.Context, letterIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM letters WHERE letter_id = ANY($1);`, letterIDs)
	if err != nil {
		return fmt.Errorf("failed to bulk delete letters: %w", err)
	}
	if tag.RowsAffected() != int64(len(letterIDs)) {
		return fmt.Errorf("%w: %d of %d letters not found", apperrors.ErrNotFound, int64(len(letterIDs))-tag.RowsAffected(), len(letterIDs))
	}
	return tx.Commit(ctx)
}
