package user

import "time"

// Role represents user roles in the system
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleTechnician Role = "technician"
	RoleViewer     Role = "viewer"
)

// User represents an account in the system. PasswordHash never leaves the
// server.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleTechnician, RoleViewer:
		return true
	default:
		return false
	}
}

// HasPermission checks whether the user's role allows an action.
func (u *User) HasPermission(action string) bool {
	switch u.Role {
	case RoleAdmin:
		return true
	case RoleManager:
		return action != "manage_users"
	case RoleTechnician:
		switch action {
		case "view_assets", "view_schedules", "view_occurrences",
			"record_completion", "create_workorder", "update_workorder",
			"view_workorders":
			return true
		}
		return false
	case RoleViewer:
		switch action {
		case "view_assets", "view_schedules", "view_occurrences", "view_workorders":
			return true
		}
		return false
	default:
		return false
	}
}
