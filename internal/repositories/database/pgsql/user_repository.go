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

const userColumns = `user_id, name, email, password_hash, role, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.Role,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, name, email, password_hash, role, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Name, m.Email, m.PasswordHash, m.Role, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		// email carries a unique constraint, surfaced as ErrDuplicate
		return fmt.Errorf("failed to save user %s: %w", m.UserID, translateError(err))
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	d := mapping.ToDomainUser(m)
	return &d, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	d := mapping.ToDomainUser(m)
	return &d, nil
}

func (r *PgxUserRepository) ListUsers(ctx context.Context, filter portsrepo.UserFilter) ([]domain.User, int64, error) {
	where := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Role != "" {
		where = append(where, "role = "+arg(filter.Role))
	}
	if filter.Search != "" {
		where = append(where, "(name ILIKE "+arg("%"+filter.Search+"%")+" OR email ILIKE "+arg("%"+filter.Search+"%")+")")
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM users"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := "SELECT " + userColumns + " FROM users" + whereClause +
		" ORDER BY name LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan users: %w", err)
	}

	return mapping.ToDomainUserSlice(ms), total, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users SET
			name = $2, email = $3, password_hash = $4, role = $5, is_active = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE user_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Name, m.Email, m.PasswordHash, m.Role, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", m.UserID, translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) DeactivateUser(ctx context.Context, userID string, updatedBy string) error {
	query := `
		UPDATE users SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
