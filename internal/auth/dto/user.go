package dto

import (
	"time"

	"github.com/authcore-id/auth-backend/internal/auth/domain"
)

type UserOutput struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		ID:         u.ID,
		Email:      u.Email,
		Role:       string(u.Role),
		IsVerified: u.IsVerified,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// UserUpdateInput carries admin-editable fields. Pointers distinguish
// "not provided" from zero values.
type UserUpdateInput struct {
	Email      *string `json:"email"`
	Role       *string `json:"role"`
	IsVerified *bool   `json:"is_verified"`
	IsActive   *bool   `json:"is_active"`
}
