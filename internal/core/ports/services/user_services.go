package services

import (
	"context"

	"github.com/orghub/org_management_app/internal/core/domain"
	"github.com/orghub/org_management_app/internal/dto"
)

// UserSvcFacade defines user and authentication operations.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate verifies credentials and returns the user on success.
	Authenticate(ctx context.Context, email string, password string) (*domain.User, error)

	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, params dto.ListUsersParams) (*dto.ListUsersResponse, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actor domain.Actor) (*domain.User, error)
	DeactivateUser(ctx context.Context, userID string, actor domain.Actor) error
}

// PeriodSvcFacade defines period lookup operations.
type PeriodSvcFacade interface {
	CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, actor domain.Actor) (*domain.Period, error)
	GetPeriodByID(ctx context.Context, periodID string) (*domain.Period, error)
	ListPeriods(ctx context.Context) ([]domain.Period, error)
	UpdatePeriod(ctx context.Context, periodID string, req dto.UpdatePeriodRequest, actor domain.Actor) (*domain.Period, error)
	DeletePeriod(ctx context.Context, periodID string, actor domain.Actor) error
}
