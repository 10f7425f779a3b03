package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrEmailNotVerified         = errors.New("email not verified")
	ErrEmailAlreadyInUse        = errors.New("email already in use")
	ErrTooManyAttemptsIP        = errors.New("too many attempts from this ip")
	ErrTooManyAttemptsMail      = errors.New("too many attempts for this email")
	ErrInvalidRefreshToken      = errors.New("invalid refresh token")
	ErrInvalidResetToken        = errors.New("invalid or expired reset token")
	ErrInvalidAccessToken       = errors.New("invalid access token")
	ErrInvalidVerificationToken = errors.New("invalid or expired verification token")
	ErrInvalidRole              = errors.New("invalid role")
	ErrForbidden                = errors.New("forbidden")
	ErrAccountDisabled          = errors.New("account disabled")
	ErrNotFound                 = errors.New("not found")
)

// RateLimited reports whether err is one of the brute-force guard rejections.
func RateLimited(err error) bool {
	return errors.Is(err, ErrTooManyAttemptsIP) || errors.Is(err, ErrTooManyAttemptsMail)
}
