package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	SetVerified(ctx context.Context, userID string) error
	SetActive(ctx context.Context, userID string, active bool) error
	List(ctx context.Context, offset, limit int) ([]User, error)
	Delete(ctx context.Context, userID string) error
}

type TokenRepository interface {
	StoreRefreshToken(ctx context.Context, rt *RefreshToken) error
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*RefreshToken, error)
	// RotateRefreshToken revokes the token identified by oldID and inserts
	// next in one transaction. The update is conditional on the old row still
	// being live; the boolean result reports whether this caller won the
	// rotation.
	RotateRefreshToken(ctx context.Context, oldID string, next *RefreshToken) (bool, error)
	// RevokeRefreshToken marks a single token revoked. Returns false when the
	// token was already revoked.
	RevokeRefreshToken(ctx context.Context, id string) (bool, error)
	RevokeAllForUser(ctx context.Context, userID string) error

	StoreResetToken(ctx context.Context, rt *ResetToken) error
	GetResetTokenByHash(ctx context.Context, tokenHash string) (*ResetToken, error)
	MarkResetTokenUsed(ctx context.Context, id string) error
}

type AttemptRepository interface {
	RecordLoginAttempt(ctx context.Context, email, ip string, success bool) error
	CountFailedByEmailSince(ctx context.Context, email string, since time.Time) (int, error)
	CountFailedByIPSince(ctx context.Context, ip string, since time.Time) (int, error)
	// ClearLoginAttempts deletes every attempt matching the email OR the ip.
	// The broad predicate is intentional: a successful login also clears the
	// originating IP's history for other addresses.
	ClearLoginAttempts(ctx context.Context, email, ip string) error

	RecordResetRequest(ctx context.Context, email, ip string) error
	CountResetsByEmailSince(ctx context.Context, email string, since time.Time) (int, error)
	CountResetsByIPSince(ctx context.Context, ip string, since time.Time) (int, error)
}

type SecurityLogRepository interface {
	Insert(ctx context.Context, entry *SecurityLog) error
	List(ctx context.Context, filter SecurityLogFilter) ([]SecurityLog, int, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
