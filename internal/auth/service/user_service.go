package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/authcore-id/auth-backend/config"
	"github.com/authcore-id/auth-backend/internal/auth/crypto"
	"github.com/authcore-id/auth-backend/internal/auth/domain"
	"github.com/authcore-id/auth-backend/internal/auth/dto"
	autherror "github.com/authcore-id/auth-backend/internal/errors"
	"github.com/authcore-id/auth-backend/pkg/constant"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type UserService struct {
	users    domain.UserRepository
	tokens   domain.TokenRepository
	attempts domain.AttemptRepository
	seclog   *SecurityLogger

	tokenService TokenGenerator
	mailer       domain.Mailer
	clock        clockwork.Clock
	cfg          *config.Config
}

func NewUserService(
	users domain.UserRepository,
	tokens domain.TokenRepository,
	attempts domain.AttemptRepository,
	seclog *SecurityLogger,
	tokenService TokenGenerator,
	mailer domain.Mailer,
	clock clockwork.Clock,
	cfg *config.Config,
) *UserService {
	return &UserService{
		users:        users,
		tokens:       tokens,
		attempts:     attempts,
		seclog:       seclog,
		tokenService: tokenService,
		mailer:       mailer,
		clock:        clock,
		cfg:          cfg,
	}
}

// NormalizeEmail is applied to every inbound address before lookup or
// storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account. The first account ever created becomes
// superadmin, the second admin, everyone else user; the role is derived once
// here and never recomputed.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	email := NormalizeEmail(input.Email)

	existingUser, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         domain.DeriveInitialRole(count),
		IsVerified:   false,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.seclog.Record(ctx, "register_success", "success", "User registered", user.ID, email)

	return user, nil
}

// Login verifies credentials behind the brute-force guard and returns an
// access/refresh token pair. The response never reveals which sub-check
// failed; the audit log detail does.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	email := NormalizeEmail(input.Email)
	since := s.clock.Now().Add(-time.Duration(s.cfg.LoginWindowMin) * time.Minute)

	ipFailures, err := s.attempts.CountFailedByIPSince(ctx, input.IP, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count login failures: %w", err)
	}
	if ipFailures >= s.cfg.LoginMaxFailures {
		s.seclog.Record(ctx, "ip_blocked", "fail", "Too many login attempts from this IP", "", email)
		return nil, autherror.ErrTooManyAttemptsIP
	}

	emailFailures, err := s.attempts.CountFailedByEmailSince(ctx, email, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count login failures: %w", err)
	}
	if emailFailures >= s.cfg.LoginMaxFailures {
		s.seclog.Record(ctx, "email_blocked", "fail", "Too many attempts for this email", "", email)
		return nil, autherror.ErrTooManyAttemptsMail
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil || !crypto.VerifyPassword(input.Password, user.PasswordHash) {
		detail := "unknown email"
		if user != nil {
			detail = "password mismatch"
		}
		s.recordFailedAttempt(ctx, email, input.IP)
		s.seclog.Record(ctx, "login_failed", "fail", detail, "", email)

		return nil, autherror.ErrInvalidCredentials
	}

	if !user.IsActive {
		// Same externally visible failure as a bad password.
		s.recordFailedAttempt(ctx, email, input.IP)
		s.seclog.Record(ctx, "login_failed", "fail", "account disabled", user.ID, email)

		return nil, autherror.ErrInvalidCredentials
	}

	if !user.IsVerified {
		s.recordFailedAttempt(ctx, email, input.IP)
		s.seclog.Record(ctx, "login_failed", "fail", "Email not verified", user.ID, email)

		return nil, autherror.ErrEmailNotVerified
	}

	// Success: reset the failure window for this email or IP before
	// recording the successful attempt.
	if err := s.attempts.ClearLoginAttempts(ctx, email, input.IP); err != nil {
		log.Printf("warn: failed to clear login attempts for %s: %v", email, err)
	}
	if err := s.attempts.RecordLoginAttempt(ctx, email, input.IP, true); err != nil {
		log.Printf("warn: failed to record login attempt for %s: %v", email, err)
	}

	s.seclog.Record(ctx, "login_success", "success", "Login successful", user.ID, email)

	return s.issueTokenPair(ctx, user)
}

// Refresh rotates a refresh token. Presenting a token that is revoked or
// expired is treated as evidence of theft: every token the account owns is
// revoked, and the caller gets the same error as for an unknown token.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	rec, err := s.tokens.GetRefreshTokenByHash(ctx, crypto.HashToken(input.RefreshToken))
	if err != nil {
		return nil, err
	}
	if rec == nil {
		s.seclog.Record(ctx, "refresh_invalid", "fail", "Refresh token not found", "", "")
		return nil, autherror.ErrInvalidRefreshToken
	}

	if rec.Revoked || s.clock.Now().After(rec.ExpiresAt) {
		return nil, s.handleRefreshReuse(ctx, rec)
	}

	newPlain, err := crypto.GenerateOpaqueToken()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	next := &domain.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    rec.UserID,
		TokenHash: crypto.HashToken(newPlain),
		Revoked:   false,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(s.cfg.RefreshExpiryMin) * time.Minute),
	}

	won, err := s.tokens.RotateRefreshToken(ctx, rec.ID, next)
	if err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if !won {
		// Lost a race against another rotation of the same token. A race is
		// indistinguishable from replay and gets the same containment.
		return nil, s.handleRefreshReuse(ctx, rec)
	}

	user, err := s.users.GetByID(ctx, rec.UserID)
	if err != nil || user == nil {
		return nil, fmt.Errorf("user not found for token refresh")
	}

	accessToken, _, err := s.tokenService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.seclog.Record(ctx, "refresh_success", "success", "Token rotated successfully", user.ID, user.Email)

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		TokenType:    constant.DefaultTokenType,
		ExpiresIn:    int(s.tokenService.GetAccessTokenExpiry().Seconds()),
		RefreshToken: newPlain,
	}, nil
}

func (s *UserService) handleRefreshReuse(ctx context.Context, rec *domain.RefreshToken) error {
	if err := s.tokens.RevokeAllForUser(ctx, rec.UserID); err != nil {
		return fmt.Errorf("failed to revoke tokens after reuse: %w", err)
	}

	s.seclog.Record(ctx, "refresh_reuse_detected", "fail",
		"Revoked refresh token presented, all sessions revoked", rec.UserID, "")

	return autherror.ErrInvalidRefreshToken
}

// Logout revokes exactly the presented token. A second logout with the same
// token fails; it does not silently succeed.
func (s *UserService) Logout(ctx context.Context, input dto.LogoutInput) error {
	rec, err := s.tokens.GetRefreshTokenByHash(ctx, crypto.HashToken(input.RefreshToken))
	if err != nil {
		return err
	}
	if rec == nil {
		s.seclog.Record(ctx, "logout_invalid", "fail", "Refresh token not found", "", "")
		return autherror.ErrInvalidRefreshToken
	}

	revoked, err := s.tokens.RevokeRefreshToken(ctx, rec.ID)
	if err != nil {
		return err
	}
	if !revoked {
		s.seclog.Record(ctx, "logout_invalid", "fail", "Refresh token already revoked", rec.UserID, "")
		return autherror.ErrInvalidRefreshToken
	}

	s.seclog.Record(ctx, "logout_success", "success", "User logged out", rec.UserID, "")

	return nil
}

func (s *UserService) issueTokenPair(ctx context.Context, user *domain.User) (*dto.TokenResponse, error) {
	accessToken, _, err := s.tokenService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	plain, err := crypto.GenerateOpaqueToken()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	rt := &domain.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: crypto.HashToken(plain),
		Revoked:   false,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(s.cfg.RefreshExpiryMin) * time.Minute),
	}

	if err := s.tokens.StoreRefreshToken(ctx, rt); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		TokenType:    constant.DefaultTokenType,
		ExpiresIn:    int(s.tokenService.GetAccessTokenExpiry().Seconds()),
		RefreshToken: plain,
	}, nil
}

func (s *UserService) recordFailedAttempt(ctx context.Context, email, ip string) {
	if err := s.attempts.RecordLoginAttempt(ctx, email, ip, false); err != nil {
		log.Printf("warn: failed to record login attempt for %s: %v", email, err)
	}
}

// SendVerificationEmail mails a verification link when the account exists
// and is not yet verified. The returned message never reveals whether the
// account exists.
func (s *UserService) SendVerificationEmail(ctx context.Context, email string) (string, error) {
	email = NormalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return constant.GenericVerifyResponse, nil
	}
	if user.IsVerified {
		return "Email already verified", nil
	}

	token, err := s.tokenService.GenerateVerificationToken(user.ID)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/verify-email?token=%s", s.cfg.FrontendURL, token)
	body := fmt.Sprintf(`
		<h2>Verify your email</h2>
		<p>Click the link below to verify your email address:</p>
		<a href="%s">Verify Email</a>
	`, url)

	if err := s.mailer.Send(ctx, user.Email, "Verify your email", body); err != nil {
		log.Printf("warn: failed to send verification email to %s: %v", email, err)
	}

	s.seclog.Record(ctx, "verification_email_sent", "success", "Verification email sent", user.ID, email)

	return "Verification email sent", nil
}

// VerifyEmail consumes a verification token and marks the account verified.
func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	userID, err := s.tokenService.VerifyVerificationToken(token)
	if err != nil {
		s.seclog.Record(ctx, "email_verify_failed", "fail", "Invalid or expired verification token", "", "")
		return autherror.ErrInvalidVerificationToken
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrNotFound
	}

	if err := s.users.SetVerified(ctx, user.ID); err != nil {
		return err
	}

	s.seclog.Record(ctx, "email_verified", "success", "Email verified successfully", user.ID, user.Email)

	return nil
}

// GetUserByID returns the account or ErrNotFound.
func (s *UserService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrNotFound
	}
	return user, nil
}
