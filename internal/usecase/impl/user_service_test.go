package impl

import (
	"context"
	"testing"

	domainerrors "alufactory/internal/domain/errors"
	"alufactory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	out, err := env.users.Register(ctx, usecase.RegisterInput{
		Username: "alice",
		Phone:    "0911111111",
		Password: "secret123",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "alice", out.User.Username)
	assert.True(t, out.User.IsActive)

	login, err := env.users.Login(ctx, usecase.LoginInput{Phone: "0911111111", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, login.User.ID)
	assert.NotNil(t, env.store.users[out.User.ID].LastLogin)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.users.Register(ctx, usecase.RegisterInput{Username: "alice", Phone: "0911111111", Password: "secret123"})
	require.NoError(t, err)

	_, err = env.users.Register(ctx, usecase.RegisterInput{Username: "bob", Phone: "0911111111", Password: "secret123"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.registerUser(t, "0911111111")

	_, err := env.users.Login(ctx, usecase.LoginInput{Phone: "0911111111", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	actor := env.registerUser(t, "0911111111")
	env.store.users[actor.UserID].IsActive = false

	_, err := env.users.Login(ctx, usecase.LoginInput{Phone: "0911111111", Password: "secret123"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
}

func TestGetUserAccessControl(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := env.registerUser(t, "0911111111")
	other := env.registerUser(t, "0922222222")
	admin := env.registerAdmin(t, "0933333333")

	_, err := env.users.GetUser(ctx, other, owner.UserID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	detail, err := env.users.GetUser(ctx, owner, owner.UserID)
	require.NoError(t, err)
	assert.Equal(t, owner.UserID, detail.User.ID)

	_, err = env.users.GetUser(ctx, admin, owner.UserID)
	assert.NoError(t, err)
}

func TestUpdateUserMembershipRequiresAdmin(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := env.registerUser(t, "0911111111")
	admin := env.registerAdmin(t, "0933333333")
	level := "vip"

	_, err := env.users.UpdateUser(ctx, owner, owner.UserID, usecase.UpdateUserInput{MembershipLevel: &level})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	updated, err := env.users.UpdateUser(ctx, admin, owner.UserID, usecase.UpdateUserInput{MembershipLevel: &level})
	require.NoError(t, err)
	assert.Equal(t, "vip", updated.MembershipLevel.String())

	bogus := "platinum"
	_, err = env.users.UpdateUser(ctx, admin, owner.UserID, usecase.UpdateUserInput{MembershipLevel: &bogus})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMembership)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	actor := env.registerUser(t, "0911111111")

	err := env.users.ChangePassword(ctx, actor, usecase.ChangePasswordInput{
		OldPassword: "wrong",
		NewPassword: "newsecret",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	err = env.users.ChangePassword(ctx, actor, usecase.ChangePasswordInput{
		OldPassword: "secret123",
		NewPassword: "newsecret",
	})
	require.NoError(t, err)

	_, err = env.users.Login(ctx, usecase.LoginInput{Phone: "0911111111", Password: "newsecret"})
	assert.NoError(t, err)
}
