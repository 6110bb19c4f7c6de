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

const eventColumns = `event_id, title, description, location, start_date, end_date,
	COALESCE(responsible_user_id, ''), COALESCE(period_id, ''), COALESCE(thumbnail_file_id, ''),
	status, created_at, created_by, last_updated_at, last_updated_by`

type PgxEventRepository struct {
	BaseRepository
}

func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

func scanEvent(row pgx.Row) (models.Event, error) {
	var m models.Event
	err := row.Scan(
		&m.EventID,
		&m.Title,
		&m.Description,
		&m.Location,
		&m.StartDate,
		&m.EndDate,
		&m.ResponsibleUserID,
		&m.PeriodID,
		&m.ThumbnailFileID,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	m := mapping.ToModelEvent(event)
	query := `
		INSERT INTO events (event_id, title, description, location, start_date, end_date,
			responsible_user_id, period_id, thumbnail_file_id, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EventID, m.Title, m.Description, m.Location, m.StartDate, m.EndDate,
		m.ResponsibleUserID, m.PeriodID, m.ThumbnailFileID, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save event %s: %w", m.EventID, translateError(err))
	}
	return nil
}

func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1;`
	m, err := scanEvent(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}
	d := mapping.ToDomainEvent(m)
	return &d, nil
}

func (r *PgxEventRepository) ListEvents(ctx context.Context, filter portsrepo.EventFilter) ([]domain.Event, int64, error) {
	where := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != "" {
		where = append(where, "status = "+arg(filter.Status))
	}
	if filter.PeriodID != "" {
		where = append(where, "period_id = "+arg(filter.PeriodID))
	}
	if filter.Search != "" {
		where = append(where, "(title ILIKE "+arg("%"+filter.Search+"%")+" OR location ILIKE "+arg("%"+filter.Search+"%")+")")
	}
	if filter.StartDate != nil {
		where = append(where, "start_date >= "+arg(*filter.StartDate))
	}
	if filter.EndDate != nil {
		where = append(where, "start_date <= "+arg(*filter.EndDate))
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM events"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	query := "SELECT " + eventColumns + " FROM events" + whereClause +
		" ORDER BY start_date DESC LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Event, error) {
		return scanEvent(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan events: %w", err)
	}

	return mapping.ToDomainEventSlice(ms), total, nil
}

func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	m := mapping.ToModelEvent(event)
	query := `
		UPDATE events SET
			title = $2, description = $3, location = $4, start_date = $5, end_date = $6,
			responsible_user_id = NULLIF($7, ''), period_id = NULLIF($8, ''),
			thumbnail_file_id = NULLIF($9, ''), status = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE event_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EventID, m.Title, m.Description, m.Location, m.StartDate, m.EndDate,
		m.ResponsibleUserID, m.PeriodID, m.ThumbnailFileID, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update event %s: %w", m.EventID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM events WHERE event_id = $1;`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEventRepository) DeleteEvents(ctx context.Context, eventIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM events WHERE event_id = ANY($1);`, eventIDs)
	if err != nil {
		return fmt.Errorf("failed to bulk delete events: %w", err)
	}
	if tag.RowsAffected() != int64(len(eventIDs)) {
		return fmt.Errorf("%w: %d of %d events not found", apperrors.ErrNotFound, int64(len(eventIDs))-tag.RowsAffected(), len(eventIDs))
	}
	return tx.Commit(ctx)
}
