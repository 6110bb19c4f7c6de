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

const structureColumns = `structure_id, position_name, member_name, COALESCE(parent_id, ''), period_id,
	COALESCE(decree_file_id, ''), status, created_at, created_by, last_updated_at, last_updated_by`

type PgxStructureRepository struct {
	BaseRepository
}

func newPgxStructureRepository(pool *pgxpool.Pool) portsrepo.StructureRepositoryFacade {
	return &PgxStructureRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.StructureRepositoryFacade = (*PgxStructureRepository)(nil)

func scanStructure(row pgx.Row) (models.Structure, error) {
	var m models.Structure
	err := row.Scan(
		&m.StructureID,
		&m.PositionName,
		&m.MemberName,
		&m.ParentID,
		&m.PeriodID,
		&m.DecreeFileID,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxStructureRepository) SaveStructure(ctx context.Context, structure domain.Structure) error {
	m := mapping.ToModelStructure(structure)
	query := `
		INSERT INTO structures (structure_id, position_name, member_name, parent_id, period_id,
			decree_file_id, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.StructureID, m.PositionName, m.MemberName, m.ParentID, m.PeriodID,
		m.DecreeFileID, m.Status, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save structure node %s: %w", m.StructureID, translateError(err))
	}
	return nil
}

func (r *PgxStructureRepository) FindStructureByID(ctx context.Context, structureID string) (*domain.Structure, error) {
	query := `SELECT ` + structureColumns + ` FROM structures WHERE structure_id = $1;`
	m, err := scanStructure(r.Pool.QueryRow(ctx, query, structureID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find structure node %s: %w", structureID, err)
	}
	d := mapping.ToDomainStructure(m)
	return &d, nil
}

func (r *PgxStructureRepository) ListStructures(ctx context.Context, filter portsrepo.StructureFilter) ([]domain.Structure, int64, error) {
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
		where = append(where, "(position_name ILIKE "+arg("%"+filter.Search+"%")+" OR member_name ILIKE "+arg("%"+filter.Search+"%")+")")
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM structures"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count structure nodes: %w", err)
	}

	query := "SELECT " + structureColumns + " FROM structures" + whereClause +
		" ORDER BY created_at LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query structure nodes: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Structure, error) {
		return scanStructure(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan structure nodes: %w", err)
	}

	return mapping.ToDomainStructureSlice(ms), total, nil
}

func (r *PgxStructureRepository) UpdateStructure(ctx context.Context, structure domain.Structure) error {
	m := mapping.ToModelStructure(structure)
	query := `
		UPDATE structures SET
			position_name = $2, member_name = $3, parent_id = NULLIF($4, ''), period_id = $5,
			decree_file_id = NULLIF($6, ''), status = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE structure_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.StructureID, m.PositionName, m.MemberName, m.ParentID, m.PeriodID,
		m.DecreeFileID, m.Status, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update structure node %s: %w", m.StructureID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxStructureRepository) DeleteStructure(ctx context.Context, structureID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM structures WHERE structure_id = $1;`, structureID)
	if err != nil {
		return fmt.Errorf("failed to delete structure node %s: %w", structureID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxStructureRepository) DeleteStructures(ctx context.Context, structureIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM structures WHERE structure_id = ANY($1);`, structureIDs)
	if err != nil {
		return fmt.Errorf("failed to bulk delete structure nodes: %w", translateError(err))
	}
	if tag.RowsAffected() != int64(len(structureIDs)) {
		return fmt.Errorf("%w: %d of %d structure nodes not found", apperrors.ErrNotFound, int64(len(structureIDs))-tag.RowsAffected(), len(structureIDs))
	}
	return tx.Commit(ctx)
}
