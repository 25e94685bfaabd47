package models

import "time"

// Role identifies what a user is allowed to do in the fraud desk.
type Role string

const (
	RoleAnalyst       Role = "FRAUD_ANALYST"
	RoleSeniorAnalyst Role = "SENIOR_ANALYST"
	RoleManager       Role = "FRAUD_MANAGER"
	RoleAdmin         Role = "ADMIN"
)

// Roles lists every known role, in escalation order.
var Roles = []Role{RoleAnalyst, RoleSeniorAnalyst, RoleManager, RoleAdmin}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User is a fraud-desk operator account. A user is always replaced
// wholesale, never partially mutated.
type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Role        Role       `json:"role"`
	Department  string     `json:"department,omitempty"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// FullName returns the display name for the user.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
