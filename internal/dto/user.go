package dto

import (
	"time"

	"github.com/orghub/org_management_app/internal/core/domain"
)

// RegisterRequest defines the data needed to register a user.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the issued access token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserRequest defines the fields allowed when updating a user.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role" binding:"omitempty,oneof=ADMIN MEMBER"`
	IsActive *bool   `json:"isActive"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	PageParams
	Role   string `form:"role" binding:"omitempty,oneof=ADMIN MEMBER"`
	Search string `form:"search"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID    string          `json:"userID"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      domain.UserRole `json:"role"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ListUsersResponse wraps a page of users.
type ListUsersResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}

// ToListUsersResponse converts a page of domain records plus its total count.
func ToListUsersResponse(items []domain.User, page, limit int, total int64) *ListUsersResponse {
	res := make([]UserResponse, len(items))
	for i := range items {
		res[i] = ToUserResponse(&items[i])
	}
	return &ListUsersResponse{Users: res, Pagination: NewPagination(page, limit, total)}
}
