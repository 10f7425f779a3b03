package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/authcore-id/auth-backend/internal/auth/domain"
	"github.com/jackc/pgx/v5"
)

type TokenRepository struct {
	db DB
}

func NewTokenRepository(db DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) StoreRefreshToken(ctx context.Context, rt *domain.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (id, user_id, token_hash, revoked, created_at, expires_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		rt.ID, rt.UserID, rt.TokenHash, rt.Revoked, rt.CreatedAt, rt.ExpiresAt)
	return err
}

func (r *TokenRepository) GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query := `SELECT id, user_id, token_hash, revoked, created_at, expires_at, replaced_by
	          FROM refresh_tokens WHERE token_hash = $1 LIMIT 1`

	var rt domain.RefreshToken
	var replacedBy sql.NullString
	err := r.db.QueryRow(ctx, query, tokenHash).Scan(&rt.ID, &rt.UserID, &rt.TokenHash,
		&rt.Revoked, &rt.CreatedAt, &rt.ExpiresAt, &replacedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	rt.ReplacedBy = replacedBy.String

	return &rt, nil
}

// RotateRefreshToken retires the old token and stores its replacement in one
// transaction. The UPDATE only matches a live row, so out of any number of
// concurrent rotators exactly one sees rowsAffected == 1; the rest roll back
// and report false.
func (r *TokenRepository) RotateRefreshToken(ctx context.Context, oldID string, next *domain.RefreshToken) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin rotation: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE refresh_tokens SET revoked = TRUE, replaced_by = $2
		WHERE id = $1 AND revoked = FALSE
	`, oldID, next.ID)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO refresh_tokens (id, user_id, token_hash, revoked, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, next.ID, next.UserID, next.TokenHash, next.Revoked, next.CreatedAt, next.ExpiresAt)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

func (r *TokenRepository) RevokeRefreshToken(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET revoked = TRUE WHERE id = $1 AND revoked = FALSE
	`, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

func (r *TokenRepository) RevokeAllForUser(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET revoked = TRUE WHERE user_id = $1 AND revoked = FALSE
	`, userID)
	return err
}

func (r *TokenRepository) StoreResetToken(ctx context.Context, rt *domain.ResetToken) error {
	query := `INSERT INTO reset_tokens (id, user_id, token_hash, used, expires_at, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		rt.ID, rt.UserID, rt.TokenHash, rt.Used, rt.ExpiresAt, rt.CreatedAt)
	return err
}

func (r *TokenRepository) GetResetTokenByHash(ctx context.Context, tokenHash string) (*domain.ResetToken, error) {
	query := `SELECT id, user_id, token_hash, used, expires_at, created_at
	          FROM reset_tokens WHERE token_hash = $1 LIMIT 1`

	var rt domain.ResetToken
	err := r.db.QueryRow(ctx, query, tokenHash).Scan(&rt.ID, &rt.UserID, &rt.TokenHash,
		&rt.Used, &rt.ExpiresAt, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &rt, nil
}

func (r *TokenRepository) MarkResetTokenUsed(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE reset_tokens SET used = TRUE WHERE id = $1`, id)
	return err
}
