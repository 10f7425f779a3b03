package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/authcore-id/auth-backend/internal/auth/domain"
	"github.com/authcore-id/auth-backend/internal/auth/repository/postgres"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logCols = []string{"id", "user_id", "email", "action", "ip", "path", "method", "status_code", "detail", "created_at"}

func newSecurityLogRepo(t *testing.T) (pgxmock.PgxPoolIface, *postgres.SecurityLogRepository) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, postgres.NewSecurityLogRepository(mock)
}

func TestInsertSecurityLog(t *testing.T) {
	mock, repo := newSecurityLogRepo(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	entry := &domain.SecurityLog{
		UserID:     "user-1",
		Email:      "alice@example.com",
		Action:     "login_success",
		IP:         "192.0.2.7",
		Path:       "/api/v1/auth/login",
		Method:     "POST",
		StatusCode: "success",
		Detail:     "Login successful",
		CreatedAt:  now,
	}

	mock.ExpectExec("INSERT INTO security_logs").
		WithArgs(entry.UserID, entry.Email, entry.Action, entry.IP, entry.Path,
			entry.Method, entry.StatusCode, entry.Detail, entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Insert(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSecurityLogsUnfiltered(t *testing.T) {
	mock, repo := newSecurityLogRepo(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM security_logs`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT id, .+ FROM security_logs").
		WithArgs(0, 20).
		WillReturnRows(pgxmock.NewRows(logCols).
			AddRow("log-2", "user-1", "alice@example.com", "login_success", "192.0.2.7",
				"/api/v1/auth/login", "POST", "success", "", now.Add(time.Minute)).
			AddRow("log-1", "", "", "refresh_invalid", "192.0.2.9",
				"/api/v1/auth/refresh", "POST", "fail", "Refresh token not found", now))

	entries, total, err := repo.List(context.Background(), domain.SecurityLogFilter{Offset: 0, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, entries, 2)
	assert.Equal(t, "log-2", entries[0].ID)
	assert.Empty(t, entries[1].UserID)
}

func TestListSecurityLogsFiltered(t *testing.T) {
	mock, repo := newSecurityLogRepo(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	from := now.Add(-time.Hour)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM security_logs WHERE email = \$1 AND action = \$2 AND created_at >= \$3`).
		WithArgs("alice@example.com", "login_failed", from).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT id, .+ FROM security_logs WHERE email").
		WithArgs("alice@example.com", "login_failed", from, 0, 20).
		WillReturnRows(pgxmock.NewRows(logCols).
			AddRow("log-1", "user-1", "alice@example.com", "login_failed", "192.0.2.7",
				"/api/v1/auth/login", "POST", "fail", "password mismatch", now))

	entries, total, err := repo.List(context.Background(), domain.SecurityLogFilter{
		Email:  "alice@example.com",
		Action: "login_failed",
		From:   from,
		Offset: 0,
		Limit:  20,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, entries, 1)
	assert.Equal(t, "password mismatch", entries[0].Detail)
	assert.NoError(t, mock.ExpectationsWereMet())
}
