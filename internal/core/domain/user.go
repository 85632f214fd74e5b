package domain

import "time"

// Role is the closed set of access levels a user can hold.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDeveloper    Role = "developer"
	RoleSimpleMortal Role = "simple mortal"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDeveloper, RoleSimpleMortal:
		return true
	}
	return false
}

// User models an account in the identity store.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
	PasswordHash string     `json:"-"`
}
