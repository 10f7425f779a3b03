package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/authcore-id/auth-backend/config"
	"github.com/authcore-id/auth-backend/internal/auth/crypto"
	"github.com/authcore-id/auth-backend/internal/auth/domain"
	"github.com/authcore-id/auth-backend/internal/auth/dto"
	"github.com/authcore-id/auth-backend/internal/auth/service"
	autherror "github.com/authcore-id/auth-backend/internal/errors"
	"github.com/authcore-id/auth-backend/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userServiceFixture struct {
	users    *mocks.MockUserRepository
	tokens   *mocks.MockTokenRepository
	attempts *mocks.MockAttemptRepository
	seclog   *mocks.MockSecurityLogRepository
	mailer   *mocks.MockMailer
	clock    *clockwork.FakeClock
	service  *service.UserService
}

func testConfig() *config.Config {
	return &config.Config{
		AccessTokenSecret:      testSecret,
		AccessExpiryMin:        30,
		RefreshExpiryMin:       10080,
		LoginMaxFailures:       5,
		LoginWindowMin:         15,
		ResetMaxPerEmail:       1,
		ResetMaxPerIP:          3,
		ResetWindowMin:         10,
		ResetTokenExpiryMin:    15,
		VerifyTokenExpiryHours: 24,
		FrontendURL:            "http://localhost:3000",
	}
}

func newUserServiceFixture(t *testing.T) *userServiceFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &userServiceFixture{
		users:    mocks.NewMockUserRepository(ctrl),
		tokens:   mocks.NewMockTokenRepository(ctrl),
		attempts: mocks.NewMockAttemptRepository(ctrl),
		seclog:   mocks.NewMockSecurityLogRepository(ctrl),
		mailer:   mocks.NewMockMailer(ctrl),
		clock:    clockwork.NewFakeClockAt(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	}

	// Audit writes are best-effort and not the subject of most tests.
	f.seclog.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := testConfig()
	f.service = service.NewUserService(
		f.users, f.tokens, f.attempts,
		service.NewSecurityLogger(f.seclog, f.clock),
		service.NewTokenService(cfg.AccessTokenSecret, cfg.AccessExpiryMin, cfg.VerifyTokenExpiryHours, f.clock),
		f.mailer, f.clock, cfg,
	)

	return f
}

func verifiedUser(email, password string) *domain.User {
	hash, _ := crypto.HashPassword(password)
	return &domain.User{
		ID:           "user-1",
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		IsVerified:   true,
		IsActive:     true,
	}
}

func TestRegisterAssignsPositionalRoles(t *testing.T) {
	tests := []struct {
		name          string
		existingCount int
		wantRole      domain.Role
	}{
		{"first account is superadmin", 0, domain.RoleSuperadmin},
		{"second account is admin", 1, domain.RoleAdmin},
		{"third account is user", 2, domain.RoleUser},
		{"later accounts are user", 41, domain.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserServiceFixture(t)
			ctx := context.Background()

			f.users.EXPECT().GetByEmail(ctx, "new@example.com").Return(nil, nil)
			f.users.EXPECT().Count(ctx).Return(tt.existingCount, nil)

			var created *domain.User
			f.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, u *domain.User) error {
					created = u
					return nil
				})

			user, err := f.service.Register(ctx, dto.RegisterInput{
				Email:    "New@Example.com ",
				Password: "s3cretpass",
				IP:       "10.0.0.1",
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantRole, user.Role)
			assert.Equal(t, "new@example.com", created.Email)
			assert.True(t, crypto.VerifyPassword("s3cretpass", created.PasswordHash))
			assert.False(t, created.IsVerified)
			assert.True(t, created.IsActive)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.users.EXPECT().GetByEmail(ctx, "taken@example.com").
		Return(&domain.User{ID: "user-1", Email: "taken@example.com"}, nil)

	_, err := f.service.Register(ctx, dto.RegisterInput{
		Email:    "taken@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, autherror.ErrEmailAlreadyInUse)
}

func TestLoginSuccess(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	user := verifiedUser("alice@example.com", "correct-horse")

	f.attempts.EXPECT().CountFailedByIPSince(ctx, "10.0.0.1", gomock.Any()).Return(0, nil)
	f.attempts.EXPECT().CountFailedByEmailSince(ctx, "alice@example.com", gomock.Any()).Return(2, nil)
	f.users.EXPECT().GetByEmail(ctx, "alice@example.com").Return(user, nil)
	f.attempts.EXPECT().ClearLoginAttempts(ctx, "alice@example.com", "10.0.0.1").Return(nil)
	f.attempts.EXPECT().RecordLoginAttempt(ctx, "alice@example.com", "10.0.0.1", true).Return(nil)

	var stored *domain.RefreshToken
	f.tokens.EXPECT().StoreRefreshToken(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rt *domain.RefreshToken) error {
			stored = rt
			return nil
		})

	resp, err := f.service.Login(ctx, dto.LoginInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
		IP:       "10.0.0.1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 1800, resp.ExpiresIn)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Len(t, resp.RefreshToken, 64)

	// Only the hash is persisted.
	assert.Equal(t, crypto.HashToken(resp.RefreshToken), stored.TokenHash)
	assert.Equal(t, user.ID, stored.UserID)
	assert.Equal(t, f.clock.Now().Add(10080*time.Minute), stored.ExpiresAt)
}

func TestLoginBlockedByIPGuard(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.attempts.EXPECT().CountFailedByIPSince(ctx, "10.0.0.1", gomock.Any()).Return(5, nil)

	_, err := f.service.Login(ctx, dto.LoginInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
		IP:       "10.0.0.1",
	})
	assert.ErrorIs(t, err, autherror.ErrTooManyAttemptsIP)
}

func TestLoginBlockedByEmailGuard(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.attempts.EXPECT().CountFailedByIPSince(ctx, "10.0.0.1", gomock.Any()).Return(0, nil)
	f.attempts.EXPECT().CountFailedByEmailSince(ctx, "alice@example.com", gomock.Any()).Return(5, nil)

	_, err := f.service.Login(ctx, dto.LoginInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
		IP:       "10.0.0.1",
	})
	assert.ErrorIs(t, err, autherror.ErrTooManyAttemptsMail)
}

func TestLoginGuardWindowStart(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	user := verifiedUser("alice@example.com", "correct-horse")

	// Counts must only consider the last LoginWindowMin minutes.
	wantSince := f.clock.Now().Add(-15 * time.Minute)

	f.attempts.EXPECT().CountFailedByIPSince(ctx, "10.0.0.1", wantSince).Return(0, nil)
	f.attempts.EXPECT().CountFailedByEmailSince(ctx, "alice@example.com", wantSince).Return(0, nil)
	f.users.EXPECT().GetByEmail(ctx, "alice@example.com").Return(user, nil)
	f.attempts.EXPECT().ClearLoginAttempts(ctx, "alice@example.com", "10.0.0.1").Return(nil)
	f.attempts.EXPECT().RecordLoginAttempt(ctx, "alice@example.com", "10.0.0.1", true).Return(nil)
	f.tokens.EXPECT().StoreRefreshToken(ctx, gomock.Any()).Return(nil)

	_, err := f.service.Login(ctx, dto.LoginInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
		IP:       "10.0.0.1",
	})
	require.NoError(t, err)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	disabled := verifiedUser("alice@example.com", "correct-horse")
	disabled.IsActive = false

	tests := []struct {
		name     string
		user     *domain.User
		password string
	}{
		{"unknown email", nil, "correct-horse"},
		{"wrong password", verifiedUser("alice@example.com", "correct-horse"), "wrong"},
		{"disabled account", disabled, "correct-horse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserServiceFixture(t)
			ctx := context.Background()

			f.attempts.EXPECT().CountFailedByIPSince(ctx, "10.0.0.1", gomock.Any()).Return(0, nil)
			f.attempts.EXPECT().CountFailedByEmailSince(ctx, "alice@example.com", gomock.Any()).Return(0, nil)
			f.users.EXPECT().GetByEmail(ctx, "alice@example.com").Return(tt.user, nil)
			f.attempts.EXPECT().RecordLoginAttempt(ctx, "alice@example.com", "10.0.0.1", false).Return(nil)

			_, err := f.service.Login(ctx, dto.LoginInput{
				Email:    "alice@example.com",
				Password: tt.password,
				IP:       "10.0.0.1",
			})
			assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
		})
	}
}

func TestLoginUnverifiedEmail(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	user := verifiedUser("alice@example.com", "correct-horse")
	user.IsVerified = false

	f.attempts.EXPECT().CountFailedByIPSince(ctx, "10.0.0.1", gomock.Any()).Return(0, nil)
	f.attempts.EXPECT().CountFailedByEmailSince(ctx, "alice@example.com", gomock.Any()).Return(0, nil)
	f.users.EXPECT().GetByEmail(ctx, "alice@example.com").Return(user, nil)
	f.attempts.EXPECT().RecordLoginAttempt(ctx, "alice@example.com", "10.0.0.1", false).Return(nil)

	_, err := f.service.Login(ctx, dto.LoginInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
		IP:       "10.0.0.1",
	})
	assert.ErrorIs(t, err, autherror.ErrEmailNotVerified)
}

func liveRefreshToken(clock clockwork.Clock, plain string) *domain.RefreshToken {
	return &domain.RefreshToken{
		ID:        "rt-1",
		UserID:    "user-1",
		TokenHash: crypto.HashToken(plain),
		Revoked:   false,
		CreatedAt: clock.Now().Add(-time.Hour),
		ExpiresAt: clock.Now().Add(time.Hour),
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	plain := "old-refresh-token"
	rec := liveRefreshToken(f.clock, plain)
	user := verifiedUser("alice@example.com", "pw")

	f.tokens.EXPECT().GetRefreshTokenByHash(ctx, crypto.HashToken(plain)).Return(rec, nil)

	var next *domain.RefreshToken
	f.tokens.EXPECT().RotateRefreshToken(ctx, "rt-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, rt *domain.RefreshToken) (bool, error) {
			next = rt
			return true, nil
		})
	f.users.EXPECT().GetByID(ctx, "user-1").Return(user, nil)

	resp, err := f.service.Refresh(ctx, dto.RefreshInput{RefreshToken: plain, IP: "10.0.0.1"})
	require.NoError(t, err)

	assert.Len(t, resp.RefreshToken, 64)
	assert.NotEqual(t, plain, resp.RefreshToken)
	assert.Equal(t, crypto.HashToken(resp.RefreshToken), next.TokenHash)
	assert.Equal(t, "user-1", next.UserID)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshReuseRevokesAllSessions(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	plain := "stolen-token"
	rec := liveRefreshToken(f.clock, plain)
	rec.Revoked = true

	f.tokens.EXPECT().GetRefreshTokenByHash(ctx, crypto.HashToken(plain)).Return(rec, nil)
	f.tokens.EXPECT().RevokeAllForUser(ctx, "user-1").Return(nil)

	_, err := f.service.Refresh(ctx, dto.RefreshInput{RefreshToken: plain})
	assert.ErrorIs(t, err, autherror.ErrInvalidRefreshToken)
}

func TestRefreshExpiredTokenRevokesAllSessions(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	plain := "expired-token"
	rec := liveRefreshToken(f.clock, plain)
	rec.ExpiresAt = f.clock.Now().Add(-time.Minute)

	f.tokens.EXPECT().GetRefreshTokenByHash(ctx, crypto.HashToken(plain)).Return(rec, nil)
	f.tokens.EXPECT().RevokeAllForUser(ctx, "user-1").Return(nil)

	_, err := f.service.Refresh(ctx, dto.RefreshInput{RefreshToken: plain})
	assert.ErrorIs(t, err, autherror.ErrInvalidRefreshToken)
}

func TestRefreshLostRaceRevokesAllSessions(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	plain := "raced-token"
	rec := liveRefreshToken(f.clock, plain)

	f.tokens.EXPECT().GetRefreshTokenByHash(ctx, crypto.HashToken(plain)).Return(rec, nil)
	f.tokens.EXPECT().RotateRefreshToken(ctx, "rt-1", gomock.Any()).Return(false, nil)
	f.tokens.EXPECT().RevokeAllForUser(ctx, "user-1").Return(nil)

	_, err := f.service.Refresh(ctx, dto.RefreshInput{RefreshToken: plain})
	assert.ErrorIs(t, err, autherror.ErrInvalidRefreshToken)
}

func TestRefreshUnknownToken(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.tokens.EXPECT().GetRefreshTokenByHash(ctx, gomock.Any()).Return(nil, nil)

	_, err := f.service.Refresh(ctx, dto.RefreshInput{RefreshToken: "never-issued"})
	assert.ErrorIs(t, err, autherror.ErrInvalidRefreshToken)
}

func TestLogoutRevokesToken(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	plain := "session-token"
	rec := liveRefreshToken(f.clock, plain)

	f.tokens.EXPECT().GetRefreshTokenByHash(ctx, crypto.HashToken(plain)).Return(rec, nil)
	f.tokens.EXPECT().RevokeRefreshToken(ctx, "rt-1").Return(true, nil)

	err := f.service.Logout(ctx, dto.LogoutInput{RefreshToken: plain})
	assert.NoError(t, err)
}

func TestLogoutTwiceFails(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	plain := "session-token"
	rec := liveRefreshToken(f.clock, plain)
	rec.Revoked = true

	f.tokens.EXPECT().GetRefreshTokenByHash(ctx, crypto.HashToken(plain)).Return(rec, nil)
	f.tokens.EXPECT().RevokeRefreshToken(ctx, "rt-1").Return(false, nil)

	err := f.service.Logout(ctx, dto.LogoutInput{RefreshToken: plain})
	assert.ErrorIs(t, err, autherror.ErrInvalidRefreshToken)
}

func TestSendVerificationEmailUnknownAddress(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.users.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, nil)

	// No mailer expectation: an unknown address must not trigger a send.
	msg, err := f.service.SendVerificationEmail(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, msg)
}

func TestSendVerificationEmailDelivers(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	user := verifiedUser("alice@example.com", "pw")
	user.IsVerified = false

	f.users.EXPECT().GetByEmail(ctx, "alice@example.com").Return(user, nil)
	f.mailer.EXPECT().Send(ctx, "alice@example.com", gomock.Any(), gomock.Any()).Return(nil)

	msg, err := f.service.SendVerificationEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Verification email sent", msg)
}

func TestVerifyEmail(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	user := verifiedUser("alice@example.com", "pw")
	user.IsVerified = false

	ts := service.NewTokenService(testSecret, 30, 24, f.clock)
	token, err := ts.GenerateVerificationToken("user-1")
	require.NoError(t, err)

	f.users.EXPECT().GetByID(ctx, "user-1").Return(user, nil)
	f.users.EXPECT().SetVerified(ctx, "user-1").Return(nil)

	assert.NoError(t, f.service.VerifyEmail(ctx, token))
}

func TestVerifyEmailBadToken(t *testing.T) {
	f := newUserServiceFixture(t)

	err := f.service.VerifyEmail(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, autherror.ErrInvalidVerificationToken)
}
