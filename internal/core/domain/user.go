package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// IsValidRole reports whether role is one of the known access levels.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User models a registered account. PasswordHash always holds a bcrypt hash
// once the record has been created.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Claims is the identity carried inside a bearer token.
type Claims struct {
	UserID string
	Role   string
}
