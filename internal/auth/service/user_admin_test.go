package service_test

import (
	"context"
	"testing"

	"github.com/authcore-id/auth-backend/internal/auth/domain"
	"github.com/authcore-id/auth-backend/internal/auth/dto"
	autherror "github.com/authcore-id/auth-backend/internal/errors"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestListUsersPagination(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.users.EXPECT().List(ctx, 40, 20).Return([]domain.User{{ID: "user-1"}}, nil)

	users, err := f.service.ListUsers(ctx, 3, 20)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUpdateUserChangesRole(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	user := verifiedUser("alice@example.com", "pw")

	f.users.EXPECT().GetByID(ctx, "user-1").Return(user, nil)
	f.users.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	updated, err := f.service.UpdateUser(ctx, "user-1", dto.UserUpdateInput{Role: strptr("admin")})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, updated.Role)
}

func TestUpdateUserRejectsUnknownRole(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.users.EXPECT().GetByID(ctx, "user-1").Return(verifiedUser("alice@example.com", "pw"), nil)

	_, err := f.service.UpdateUser(ctx, "user-1", dto.UserUpdateInput{Role: strptr("overlord")})
	assert.ErrorIs(t, err, autherror.ErrInvalidRole)
}

func TestUpdateUserRejectsTakenEmail(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.users.EXPECT().GetByID(ctx, "user-1").Return(verifiedUser("alice@example.com", "pw"), nil)
	f.users.EXPECT().GetByEmail(ctx, "bob@example.com").
		Return(&domain.User{ID: "user-2", Email: "bob@example.com"}, nil)

	_, err := f.service.UpdateUser(ctx, "user-1", dto.UserUpdateInput{Email: strptr("bob@example.com")})
	assert.ErrorIs(t, err, autherror.ErrEmailAlreadyInUse)
}

func TestUpdateUserPatchesFlags(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	user := verifiedUser("alice@example.com", "pw")

	f.users.EXPECT().GetByID(ctx, "user-1").Return(user, nil)
	f.users.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	updated, err := f.service.UpdateUser(ctx, "user-1", dto.UserUpdateInput{IsActive: boolptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.True(t, updated.IsVerified)
}

func TestSetUserActive(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	user := verifiedUser("alice@example.com", "pw")

	f.users.EXPECT().GetByID(ctx, "user-1").Return(user, nil)
	f.users.EXPECT().SetActive(ctx, "user-1", false).Return(nil)

	updated, err := f.service.SetUserActive(ctx, "user-1", false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestDeleteUser(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.users.EXPECT().GetByID(ctx, "user-1").Return(verifiedUser("alice@example.com", "pw"), nil)
	f.users.EXPECT().Delete(ctx, "user-1").Return(nil)

	assert.NoError(t, f.service.DeleteUser(ctx, "user-1"))
}

func TestDeleteUserNotFound(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.users.EXPECT().GetByID(ctx, "ghost").Return(nil, nil)

	err := f.service.DeleteUser(ctx, "ghost")
	assert.ErrorIs(t, err, autherror.ErrNotFound)
}
