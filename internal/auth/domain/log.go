package domain

import "time"

// LoginAttempt is the brute-force evidence record. Email may be empty when
// the attempt failed before the address could be resolved.
type LoginAttempt struct {
	ID        string
	Email     string
	IP        string
	Success   bool
	CreatedAt time.Time
}

// PasswordResetLog records a reset request for the reset-specific rate
// limits. Unlike login attempts these are never cleared automatically.
type PasswordResetLog struct {
	ID        string
	Email     string
	IP        string
	CreatedAt time.Time
}

// SecurityLog is a write-once audit trail entry. StatusCode is a semantic
// outcome string ("success"/"fail"), not an HTTP code.
type SecurityLog struct {
	ID         string
	UserID     string
	Email      string
	Action     string
	IP         string
	Path       string
	Method     string
	StatusCode string
	Detail     string
	CreatedAt  time.Time
}

// SecurityLogFilter narrows audit queries. Zero values mean "no filter".
type SecurityLogFilter struct {
	Email      string
	IP         string
	Action     string
	StatusCode string
	From       time.Time
	To         time.Time
	Offset     int
	Limit      int
}
