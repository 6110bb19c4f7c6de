package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/orghub/org_management_app/internal/apperrors"
	"github.com/orghub/org_management_app/internal/core/domain"
	portsrepo "github.com/orghub/org_management_app/internal/core/ports/repositories"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/orghub/org_management_app/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         domain.RoleMember,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email is already registered", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to register user")
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// Authenticate verifies credentials. The same error comes back for an unknown
// email and a wrong password so callers cannot probe for registered emails.
func (s *userService) Authenticate(ctx context.Context, email string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is deactivated", apperrors.ErrForbidden)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context, params dto.ListUsersParams) (*dto.ListUsersResponse, error) {
	filter := portsrepo.UserFilter{
		Role:   params.Role,
		Search: params.Search,
		Limit:  params.Limit,
		Offset: params.Offset(),
	}
	users, total, err := s.userRepo.ListUsers(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, err
	}
	return dto.ToListUsersResponse(users, params.Page, params.Limit, total), nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actor domain.Actor) (*domain.User, error) {
	if userID != actor.UserID && !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: users may only update their own profile", apperrors.ErrForbidden)
	}
	if (req.Role != nil || req.IsActive != nil) && !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: changing role or active state requires the admin role", apperrors.ErrForbidden)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = domain.UserRole(*req.Role)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = actor.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *userService) DeactivateUser(ctx context.Context, userID string, actor domain.Actor) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: deactivating users requires the admin role", apperrors.ErrForbidden)
	}
	if userID == actor.UserID {
		return fmt.Errorf("%w: admins cannot deactivate themselves", apperrors.ErrValidation)
	}
	if err := s.userRepo.DeactivateUser(ctx, userID, actor.UserID); err != nil {
		s.LogError(ctx, err, "Failed to deactivate user", slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "User deactivated", slog.String("user_id", userID))
	return nil
}
