package repositories

import (
	"context"

	"github.com/orghub/org_management_app/internal/core/domain"
)

// UserFilter narrows a user listing.
type UserFilter struct {
	Role   string
	Search string
	Limit  int
	Offset int
}

// UserReader defines read operations for user data.
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]domain.User, int64, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	UpdateUser(ctx context.Context, user domain.User) error
	DeactivateUser(ctx context.Context, userID string, updatedBy string) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
