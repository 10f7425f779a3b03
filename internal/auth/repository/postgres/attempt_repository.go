package postgres

import (
	"context"
	"fmt"
	"time"
)

type AttemptRepository struct {
	db DB
}

func NewAttemptRepository(db DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

func (r *AttemptRepository) RecordLoginAttempt(ctx context.Context, email, ip string, success bool) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_attempts (id, email, ip, success, created_at)
		VALUES (gen_random_uuid(), NULLIF($1, ''), $2, $3, now())
	`, email, ip, success)
	return err
}

func (r *AttemptRepository) CountFailedByEmailSince(ctx context.Context, email string, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM login_attempts
		WHERE email = $1 AND success = FALSE AND created_at >= $2
	`, email, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count login failures by email: %w", err)
	}
	return count, nil
}

func (r *AttemptRepository) CountFailedByIPSince(ctx context.Context, ip string, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM login_attempts
		WHERE ip = $1 AND success = FALSE AND created_at >= $2
	`, ip, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count login failures by ip: %w", err)
	}
	return count, nil
}

func (r *AttemptRepository) ClearLoginAttempts(ctx context.Context, email, ip string) error {
	// OR on purpose: a successful login also wipes the IP's history for
	// other email addresses.
	_, err := r.db.Exec(ctx, `
		DELETE FROM login_attempts WHERE email = $1 OR ip = $2
	`, email, ip)
	return err
}

func (r *AttemptRepository) RecordResetRequest(ctx context.Context, email, ip string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO password_reset_logs (id, email, ip, created_at)
		VALUES (gen_random_uuid(), $1, $2, now())
	`, email, ip)
	return err
}

func (r *AttemptRepository) CountResetsByEmailSince(ctx context.Context, email string, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM password_reset_logs
		WHERE email = $1 AND created_at >= $2
	`, email, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reset requests by email: %w", err)
	}
	return count, nil
}

func (r *AttemptRepository) CountResetsByIPSince(ctx context.Context, ip string, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM password_reset_logs
		WHERE ip = $1 AND created_at >= $2
	`, ip, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reset requests by ip: %w", err)
	}
	return count, nil
}
