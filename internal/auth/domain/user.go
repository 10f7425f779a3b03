package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	IsVerified   bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RefreshToken struct {
	ID         string
	UserID     string
	TokenHash  string
	Revoked    bool
	CreatedAt  time.Time
	ExpiresAt  time.Time
	ReplacedBy string
}

type ResetToken struct {
	ID        string
	UserID    string
	TokenHash string
	Used      bool
	ExpiresAt time.Time
	CreatedAt time.Time
}
