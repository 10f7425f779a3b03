package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/authcore-id/auth-backend/internal/auth/domain"
	"github.com/authcore-id/auth-backend/internal/auth/repository/postgres"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "email", "password_hash", "role", "is_verified", "is_active", "created_at", "updated_at"}

func newUserRepo(t *testing.T) (pgxmock.PgxPoolIface, *postgres.UserRepository) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, postgres.NewUserRepository(mock)
}

func sampleUser() *domain.User {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		PasswordHash: "bcrypt-hash",
		Role:         domain.RoleUser,
		IsVerified:   true,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func userRow(u *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows(userCols).
		AddRow(u.ID, u.Email, u.PasswordHash, u.Role, u.IsVerified, u.IsActive, u.CreatedAt, u.UpdatedAt)
}

func TestGetByEmail(t *testing.T) {
	mock, repo := newUserRepo(t)
	u := sampleUser()

	mock.ExpectQuery("SELECT .+ FROM users WHERE email").
		WithArgs("alice@example.com").
		WillReturnRows(userRow(u))

	got, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, domain.RoleUser, got.Role)
}

func TestGetByEmailNotFound(t *testing.T) {
	mock, repo := newUserRepo(t)

	mock.ExpectQuery("SELECT .+ FROM users WHERE email").
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetByID(t *testing.T) {
	mock, repo := newUserRepo(t)
	u := sampleUser()

	mock.ExpectQuery("SELECT .+ FROM users WHERE id").
		WithArgs("user-1").
		WillReturnRows(userRow(u))

	got, err := repo.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)
}

func TestCount(t *testing.T) {
	mock, repo := newUserRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestCreateUser(t *testing.T) {
	mock, repo := newUserRepo(t)
	u := sampleUser()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(u.ID, u.Email, u.PasswordHash, u.Role, u.IsVerified, u.IsActive, u.CreatedAt, u.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), u))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePassword(t *testing.T) {
	mock, repo := newUserRepo(t)

	mock.ExpectExec("UPDATE users SET password_hash").
		WithArgs("user-1", "new-hash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdatePassword(context.Background(), "user-1", "new-hash"))
}

func TestSetVerified(t *testing.T) {
	mock, repo := newUserRepo(t)

	mock.ExpectExec("UPDATE users SET is_verified = TRUE").
		WithArgs("user-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.SetVerified(context.Background(), "user-1"))
}

func TestSetActive(t *testing.T) {
	mock, repo := newUserRepo(t)

	mock.ExpectExec("UPDATE users SET is_active").
		WithArgs("user-1", false).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.SetActive(context.Background(), "user-1", false))
}

func TestListUsers(t *testing.T) {
	mock, repo := newUserRepo(t)
	u := sampleUser()
	u2 := sampleUser()
	u2.ID = "user-2"
	u2.Email = "bob@example.com"

	mock.ExpectQuery("SELECT .+ FROM users ORDER BY created_at").
		WithArgs(0, 20).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(u.ID, u.Email, u.PasswordHash, u.Role, u.IsVerified, u.IsActive, u.CreatedAt, u.UpdatedAt).
			AddRow(u2.ID, u2.Email, u2.PasswordHash, u2.Role, u2.IsVerified, u2.IsActive, u2.CreatedAt, u2.UpdatedAt))

	users, err := repo.List(context.Background(), 0, 20)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bob@example.com", users[1].Email)
}

func TestDeleteUser(t *testing.T) {
	mock, repo := newUserRepo(t)

	mock.ExpectExec("DELETE FROM users").
		WithArgs("user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), "user-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
