package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/authcore-id/auth-backend/config"
	"github.com/authcore-id/auth-backend/internal/auth/crypto"
	"github.com/authcore-id/auth-backend/internal/auth/domain"
	"github.com/authcore-id/auth-backend/internal/auth/dto"
	autherror "github.com/authcore-id/auth-backend/internal/errors"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// ResetService owns the password-reset token lifecycle: issuance behind the
// reset-specific rate limits, delivery, and single-use consumption.
type ResetService struct {
	users    domain.UserRepository
	tokens   domain.TokenRepository
	attempts domain.AttemptRepository
	seclog   *SecurityLogger
	mailer   domain.Mailer
	clock    clockwork.Clock
	cfg      *config.Config
}

func NewResetService(
	users domain.UserRepository,
	tokens domain.TokenRepository,
	attempts domain.AttemptRepository,
	seclog *SecurityLogger,
	mailer domain.Mailer,
	clock clockwork.Clock,
	cfg *config.Config,
) *ResetService {
	return &ResetService{
		users:    users,
		tokens:   tokens,
		attempts: attempts,
		seclog:   seclog,
		mailer:   mailer,
		clock:    clock,
		cfg:      cfg,
	}
}

// RequestReset issues a reset token and mails it. Whether or not the account
// exists the caller sees the same outcome; only the rate limits are allowed
// to reject loudly.
func (s *ResetService) RequestReset(ctx context.Context, input dto.ResetRequestInput) error {
	email := NormalizeEmail(input.Email)
	since := s.clock.Now().Add(-time.Duration(s.cfg.ResetWindowMin) * time.Minute)

	emailCount, err := s.attempts.CountResetsByEmailSince(ctx, email, since)
	if err != nil {
		return fmt.Errorf("failed to count reset requests: %w", err)
	}
	if emailCount >= s.cfg.ResetMaxPerEmail {
		s.seclog.Record(ctx, "reset_rate_limited", "fail", "Too many reset requests for this email", "", email)
		return autherror.ErrTooManyAttemptsMail
	}

	ipCount, err := s.attempts.CountResetsByIPSince(ctx, input.IP, since)
	if err != nil {
		return fmt.Errorf("failed to count reset requests: %w", err)
	}
	if ipCount >= s.cfg.ResetMaxPerIP {
		s.seclog.Record(ctx, "reset_rate_limited", "fail", "Too many reset requests from this IP", "", email)
		return autherror.ErrTooManyAttemptsIP
	}

	// Recorded before the account lookup so the rate limiter behaves the
	// same for existing and unknown addresses.
	if err := s.attempts.RecordResetRequest(ctx, email, input.IP); err != nil {
		log.Printf("warn: failed to record reset request for %s: %v", email, err)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		// Success-shaped silence: no token, no email, no distinguishable
		// response.
		return nil
	}

	plain, err := crypto.GenerateOpaqueToken()
	if err != nil {
		return err
	}

	now := s.clock.Now()
	token := &domain.ResetToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: crypto.HashToken(plain),
		Used:      false,
		ExpiresAt: now.Add(time.Duration(s.cfg.ResetTokenExpiryMin) * time.Minute),
		CreatedAt: now,
	}

	if err := s.tokens.StoreResetToken(ctx, token); err != nil {
		return err
	}

	url := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.FrontendURL, plain)
	body := fmt.Sprintf(`
		<h2>Password Reset</h2>
		<p>Click the link below to reset your password:</p>
		<a href="%s">Reset Password</a>
		<p>This link expires in %d minutes.</p>
	`, url, s.cfg.ResetTokenExpiryMin)

	if err := s.mailer.Send(ctx, user.Email, "Password Reset Request", body); err != nil {
		log.Printf("warn: failed to send reset email to %s: %v", email, err)
	}

	s.seclog.Record(ctx, "reset_requested", "success", "Password reset requested", user.ID, email)

	return nil
}

// ResetPassword consumes a reset token. The password is updated before the
// token is marked used: if the process dies in between, the stale token can
// only repeat a change the user already made.
func (s *ResetService) ResetPassword(ctx context.Context, input dto.ResetPasswordInput) error {
	since := s.clock.Now().Add(-time.Duration(s.cfg.ResetWindowMin) * time.Minute)

	ipCount, err := s.attempts.CountResetsByIPSince(ctx, input.IP, since)
	if err != nil {
		return fmt.Errorf("failed to count reset requests: %w", err)
	}
	if ipCount >= s.cfg.ResetMaxPerIP {
		s.seclog.Record(ctx, "reset_rate_limited", "fail", "Too many reset attempts from this IP", "", "")
		return autherror.ErrTooManyAttemptsIP
	}

	rec, err := s.tokens.GetResetTokenByHash(ctx, crypto.HashToken(input.Token))
	if err != nil {
		return err
	}
	if rec == nil || rec.Used || s.clock.Now().After(rec.ExpiresAt) {
		s.seclog.Record(ctx, "reset_failed", "fail", "Invalid or expired reset token", "", "")
		return autherror.ErrInvalidResetToken
	}

	hashedPassword, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, rec.UserID, hashedPassword); err != nil {
		return err
	}

	if err := s.tokens.MarkResetTokenUsed(ctx, rec.ID); err != nil {
		return fmt.Errorf("password updated but failed to mark reset token used: %w", err)
	}

	s.seclog.Record(ctx, "reset_success", "success", "Password reset successfully", rec.UserID, "")

	return nil
}
