package service

import (
	"context"

	"github.com/authcore-id/auth-backend/internal/auth/domain"
	"github.com/authcore-id/auth-backend/internal/auth/dto"
	autherror "github.com/authcore-id/auth-backend/internal/errors"
)

// Admin-facing account management. Role enforcement happens in the handler
// middleware; these methods assume the caller is already authorized.

func (s *UserService) ListUsers(ctx context.Context, page, limit int) ([]domain.User, error) {
	if page < 1 {
		page = 1
	}
	return s.users.List(ctx, (page-1)*limit, limit)
}

// UpdateUser applies the provided fields. Email changes are re-checked for
// uniqueness; role changes must name a known role.
func (s *UserService) UpdateUser(ctx context.Context, id string, input dto.UserUpdateInput) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email := NormalizeEmail(*input.Email)
		if email != user.Email {
			existing, err := s.users.GetByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, autherror.ErrEmailAlreadyInUse
			}
			user.Email = email
		}
	}

	if input.Role != nil {
		role := domain.Role(*input.Role)
		if !role.Valid() {
			return nil, autherror.ErrInvalidRole
		}
		user.Role = role
	}

	if input.IsVerified != nil {
		user.IsVerified = *input.IsVerified
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	user.UpdatedAt = s.clock.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.seclog.Record(ctx, "admin_user_updated", "success", "User updated by admin", user.ID, user.Email)

	return user, nil
}

func (s *UserService) SetUserActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.users.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	user.IsActive = active

	action := "admin_user_disabled"
	if active {
		action = "admin_user_enabled"
	}
	s.seclog.Record(ctx, action, "success", "", user.ID, user.Email)

	return user, nil
}

// DeleteUser removes the account. Refresh and reset tokens go with it via
// the schema's ON DELETE CASCADE.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.seclog.Record(ctx, "admin_user_deleted", "success", "User deleted by superadmin", user.ID, user.Email)

	return nil
}
