package impl

import (
	"context"
	"testing"

	domainerrors "alufactory/internal/domain/errors"
	"alufactory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAddressDefaultFlag(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	actor := env.registerUser(t, "0911111111")

	first, err := env.addrs.CreateAddress(ctx, actor, actor.UserID, usecase.CreateAddressInput{
		RecipientName: "王小明",
		Phone:         "0912345678",
		Province:      "台北市",
		Detail:        "信義路一段 1 號",
		IsDefault:     true,
	})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	// A second default must demote the first one in the same transaction.
	second, err := env.addrs.CreateAddress(ctx, actor, actor.UserID, usecase.CreateAddressInput{
		RecipientName: "王小明",
		Phone:         "0912345678",
		Province:      "新北市",
		Detail:        "板橋區文化路 2 號",
		IsDefault:     true,
	})
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	addresses, err := env.addrs.ListAddresses(ctx, actor, actor.UserID)
	require.NoError(t, err)
	require.Len(t, addresses, 2)

	var defaults int
	for _, address := range addresses {
		if address.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
	assert.Equal(t, second.ID, addresses[0].ID, "default address sorts first")
}

func TestCreateAddressOnlyOwnBook(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := env.registerUser(t, "0911111111")
	admin := env.registerAdmin(t, "0933333333")

	// Even admins cannot write into somebody else's address book.
	_, err := env.addrs.CreateAddress(ctx, admin, owner.UserID, usecase.CreateAddressInput{
		RecipientName: "王小明",
		Phone:         "0912345678",
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUpdateAddressPromoteToDefault(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	actor := env.registerUser(t, "0911111111")

	first, err := env.addrs.CreateAddress(ctx, actor, actor.UserID, usecase.CreateAddressInput{
		RecipientName: "王小明", Phone: "0912345678", IsDefault: true,
	})
	require.NoError(t, err)
	second, err := env.addrs.CreateAddress(ctx, actor, actor.UserID, usecase.CreateAddressInput{
		RecipientName: "王小明", Phone: "0912345678",
	})
	require.NoError(t, err)

	makeDefault := true
	updated, err := env.addrs.UpdateAddress(ctx, actor, second.ID, usecase.UpdateAddressInput{IsDefault: &makeDefault})
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)
	assert.False(t, env.store.addresses[first.ID].IsDefault)
}

func TestUpdateAddressOwnerOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := env.registerUser(t, "0911111111")
	other := env.registerUser(t, "0922222222")

	address, err := env.addrs.CreateAddress(ctx, owner, owner.UserID, usecase.CreateAddressInput{
		RecipientName: "王小明", Phone: "0912345678",
	})
	require.NoError(t, err)

	name := "李大華"
	_, err = env.addrs.UpdateAddress(ctx, other, address.ID, usecase.UpdateAddressInput{RecipientName: &name})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = env.addrs.DeleteAddress(ctx, other, address.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDeleteAddress(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	actor := env.registerUser(t, "0911111111")

	address, err := env.addrs.CreateAddress(ctx, actor, actor.UserID, usecase.CreateAddressInput{
		RecipientName: "王小明", Phone: "0912345678",
	})
	require.NoError(t, err)

	require.NoError(t, env.addrs.DeleteAddress(ctx, actor, address.ID))

	err = env.addrs.DeleteAddress(ctx, actor, address.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}
