package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/authcore-id/auth-backend/internal/auth/domain"
)

type SecurityLogRepository struct {
	db DB
}

func NewSecurityLogRepository(db DB) *SecurityLogRepository {
	return &SecurityLogRepository{db: db}
}

func (r *SecurityLogRepository) Insert(ctx context.Context, entry *domain.SecurityLog) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO security_logs (id, user_id, email, action, ip, path, method, status_code, detail, created_at)
		VALUES (gen_random_uuid(), NULLIF($1, '')::uuid, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9)
	`, entry.UserID, entry.Email, entry.Action, entry.IP, entry.Path, entry.Method,
		entry.StatusCode, entry.Detail, entry.CreatedAt)
	return err
}

// List returns matching audit entries newest first, plus the total match
// count for pagination.
func (r *SecurityLogRepository) List(ctx context.Context, filter domain.SecurityLogFilter) ([]domain.SecurityLog, int, error) {
	var conds []string
	var args []any

	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Email != "" {
		add("email = $%d", filter.Email)
	}
	if filter.IP != "" {
		add("ip = $%d", filter.IP)
	}
	if filter.Action != "" {
		add("action = $%d", filter.Action)
	}
	if filter.StatusCode != "" {
		add("status_code = $%d", filter.StatusCode)
	}
	if !filter.From.IsZero() {
		add("created_at >= $%d", filter.From)
	}
	if !filter.To.IsZero() {
		add("created_at <= $%d", filter.To)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM security_logs" + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count security logs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, COALESCE(user_id::text, ''), COALESCE(email, ''), action, COALESCE(ip, ''),
		       path, method, status_code, detail, created_at
		FROM security_logs%s
		ORDER BY created_at DESC OFFSET $%d LIMIT $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, filter.Offset, filter.Limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list security logs: %w", err)
	}
	defer rows.Close()

	var entries []domain.SecurityLog
	for rows.Next() {
		var e domain.SecurityLog
		if err := rows.Scan(&e.ID, &e.UserID, &e.Email, &e.Action, &e.IP,
			&e.Path, &e.Method, &e.StatusCode, &e.Detail, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}

	return entries, total, rows.Err()
}
