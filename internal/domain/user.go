package domain

import "time"

// UserRole enumerates supported roles.
type UserRole string

const (
	UserRoleMember UserRole = "member"
	UserRoleAdmin  UserRole = "admin"
)

// User represents an account within the platform. Donations must reference
// one of these at write time.
type User struct {
	ID        string
	Email     string
	Name      string
	Phone     string
	Locale    string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user may perform admin-only operations.
func (u User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
