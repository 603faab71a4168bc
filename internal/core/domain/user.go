package domain

import "time"

// UserRole controls access to administrative operations.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// IsValid reports whether r is a known role.
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents an operator of the application in the domain.
type User struct {
	ID                     string     `json:"id"`
	Username               string     `json:"username"`
	PasswordHash           string     `json:"passwordHash"`
	Role                   UserRole   `json:"role"`
	FullName               string     `json:"fullName"`
	Email                  string     `json:"email,omitempty"`
	IsActive               bool       `json:"isActive"`
	LastLogin              *time.Time `json:"lastLogin,omitempty"`
	RefreshTokenHash       string     `json:"refreshTokenHash,omitempty"`
	RefreshTokenExpiryTime *time.Time `json:"refreshTokenExpiryTime,omitempty"`
	CreatedAt              time.Time  `json:"createdAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// GetUserID returns the user's ID.
func (u *User) GetUserID() string {
	return u.ID
}

// GetUsername returns the user's username.
func (u *User) GetUsername() string {
	return u.Username
}

// GetName returns the user's display name.
func (u *User) GetName() string {
	return u.FullName
}
