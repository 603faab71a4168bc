package dto

import (
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
)

// UserResponse never carries the password or refresh token hashes.
type UserResponse struct {
	UserID    string          `json:"userID"`
	Username  string          `json:"username"`
	FullName  string          `json:"fullName"`
	Email     string          `json:"email,omitempty"`
	Role      domain.UserRole `json:"role"`
	IsActive  bool            `json:"isActive"`
	LastLogin *time.Time      `json:"lastLogin,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.GetUserID(),
		Username:  user.GetUsername(),
		FullName:  user.GetName(),
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
}
