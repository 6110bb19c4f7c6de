package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orghub/org_management_app/internal/apperrors"
	"github.com/orghub/org_management_app/internal/core/domain"
	portsrepo "github.com/orghub/org_management_app/internal/core/ports/repositories"
	"github.com/orghub/org_management_app/internal/models"
	"github.com/orghub/org_management_app/internal/utils/mapping"
)

const approvalColumns = `approval_id, entity_type, entity_id, user_id, status,
	COALESCE(note, ''), resolved_by, resolved_at, created_at`

// approvalTarget names the table and key column holding the entity a given
// approval row governs. Only approvable entity types appear here.
type approvalTarget struct {
	table    string
	idColumn string
}

var approvalTargets = map[domain.EntityType]approvalTarget{
	domain.EntityFinance:  {table: "finances", idColumn: "finance_id"},
	domain.EntityLetter:   {table: "letters", idColumn: "letter_id"},
	domain.EntityDocument: {table: "documents", idColumn: "document_id"},
	domain.EntityEvent:    {table: "events", idColumn: "event_id"},
}

type PgxApprovalRepository struct {
	BaseRepository
}

func newPgxApprovalRepository(pool *pgxpool.Pool) portsrepo.ApprovalRepositoryFacade {
	return &PgxApprovalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ApprovalRepositoryFacade = (*PgxApprovalRepository)(nil)

func scanApproval(row pgx.Row) (models.Approval, error) {
	var m models.Approval
	err := row.Scan(
		&m.ApprovalID,
		&m.EntityType,
		&m.EntityID,
		&m.UserID,
		&m.Status,
		&m.Note,
		&m.ResolvedBy,
		&m.ResolvedAt,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxApprovalRepository) FindApprovalByID(ctx context.Context, approvalID string) (*domain.Approval, error) {
	query := `SELECT ` + approvalColumns + ` FROM approvals WHERE approval_id = $1;`
	m, err := scanApproval(r.Pool.QueryRow(ctx, query, approvalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find approval %s: %w", approvalID, err)
	}
	d := mapping.ToDomainApproval(m)
	return &d, nil
}

func (r *PgxApprovalRepository) FindLatestApproval(ctx context.Context, entityType domain.EntityType, entityID string) (*domain.Approval, error) {
	query := `
		SELECT ` + approvalColumns + ` FROM approvals
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC LIMIT 1;
	`
	m, err := scanApproval(r.Pool.QueryRow(ctx, query, string(entityType), entityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest approval for %s %s: %w", entityType, entityID, err)
	}
	d := mapping.ToDomainApproval(m)
	return &d, nil
}

func (r *PgxApprovalRepository) ListApprovals(ctx context.Context, filter portsrepo.ApprovalFilter) ([]domain.Approval, int64, error) {
	// With LatestOnly the history collapses to the newest row per entity
	// before filters apply, so a PENDING filter never surfaces a superseded
	// request.
	from := "approvals"
	if filter.LatestOnly {
		from = `(
			SELECT DISTINCT ON (entity_type, entity_id) *
			FROM approvals
			ORDER BY entity_type, entity_id, created_at DESC
		) AS approvals`
	}

	where := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.EntityType != "" {
		where = append(where, "entity_type = "+arg(filter.EntityType))
	}
	if filter.Status != "" {
		where = append(where, "status = "+arg(filter.Status))
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+from+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count approvals: %w", err)
	}

	query := "SELECT " + approvalColumns + " FROM " + from + whereClause +
		" ORDER BY created_at DESC LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query approvals: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Approval, error) {
		return scanApproval(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan approvals: %w", err)
	}

	return mapping.ToDomainApprovalSlice(ms), total, nil
}

func (r *PgxApprovalRepository) CountPendingByEntityType(ctx context.Context) ([]domain.ApprovalSummary, error) {
	query := `
		SELECT entity_type, COUNT(*) FROM (
			SELECT DISTINCT ON (entity_type, entity_id) entity_type, status
			FROM approvals
			ORDER BY entity_type, entity_id, created_at DESC
		) AS latest
		WHERE status = 'PENDING'
		GROUP BY entity_type
		ORDER BY entity_type;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending approvals: %w", err)
	}
	defer rows.Close()

	summaries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ApprovalSummary, error) {
		var s domain.ApprovalSummary
		err := row.Scan(&s.EntityType, &s.Pending)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan pending counts: %w", err)
	}
	return summaries, nil
}

func (r *PgxApprovalRepository) SubmitWithApproval(ctx context.Context, approval domain.Approval) error {
	target, ok := approvalTargets[approval.EntityType]
	if !ok {
		return fmt.Errorf("%w: entity type %q cannot carry approvals", apperrors.ErrValidation, approval.EntityType)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	m := mapping.ToModelApproval(approval)
	insert := `
		INSERT INTO approvals (approval_id, entity_type, entity_id, user_id, status, note, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7);
	`
	if _, err := tx.Exec(ctx, insert,
		m.ApprovalID, m.EntityType, m.EntityID, m.UserID, m.Status, m.Note, m.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to save approval %s: %w", m.ApprovalID, translateError(err))
	}

	update := fmt.Sprintf(
		`UPDATE %s SET status = $2, last_updated_at = $3, last_updated_by = $4 WHERE %s = $1;`,
		target.table, target.idColumn,
	)
	tag, err := tx.Exec(ctx, update, m.EntityID, string(domain.StatusPending), m.CreatedAt, m.UserID)
	if err != nil {
		return fmt.Errorf("failed to mark %s %s pending: %w", approval.EntityType, m.EntityID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, approval.EntityType, m.EntityID)
	}

	return tx.Commit(ctx)
}

func (r *PgxApprovalRepository) ResolveApproval(ctx context.Context, approval domain.Approval, entityStatus domain.Status, resolvedBy string, now time.Time) error {
	target, ok := approvalTargets[approval.EntityType]
	if !ok {
		return fmt.Errorf("%w: entity type %q cannot carry approvals", apperrors.ErrValidation, approval.EntityType)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	resolve := `
		UPDATE approvals SET status = $2, note = NULLIF($3, ''), resolved_by = $4, resolved_at = $5
		WHERE approval_id = $1;
	`
	tag, err := tx.Exec(ctx, resolve,
		approval.ApprovalID, string(approval.Status), approval.Note, resolvedBy, now,
	)
	if err != nil {
		return fmt.Errorf("failed to resolve approval %s: %w", approval.ApprovalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	update := fmt.Sprintf(
		`UPDATE %s SET status = $2, last_updated_at = $3, last_updated_by = $4 WHERE %s = $1;`,
		target.table, target.idColumn,
	)
	tag, err = tx.Exec(ctx, update, approval.EntityID, string(entityStatus), now, resolvedBy)
	if err != nil {
		return fmt.Errorf("failed to move %s %s to %s: %w", approval.EntityType, approval.EntityID, entityStatus, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, approval.EntityType, approval.EntityID)
	}

	return tx.Commit(ctx)
}
