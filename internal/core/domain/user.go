package domain

// UserRole gates privileged operations: resolving approvals and bulk deletes
// require RoleAdmin.
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleMember UserRole = "MEMBER"
)

// Actor identifies the authenticated caller of a service operation, as
// extracted from the access token.
type Actor struct {
	UserID string
	Role   UserRole
}

// IsAdmin reports whether the actor may perform privileged operations.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// User is an authenticated member of the organization.
type User struct {
	UserID       string   `json:"userID"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	IsActive     bool     `json:"isActive"`
	AuditFields
}
