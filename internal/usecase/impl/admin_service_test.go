package impl

import (
	"bytes"
	"context"
	"testing"

	"alufactory/internal/domain/entity"
	domainerrors "alufactory/internal/domain/errors"
	"alufactory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestAdminGateOnEveryEntryPoint(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	user := env.registerUser(t, "0911111111")

	_, err := env.admin.ListUsers(ctx, user, usecase.PageInput{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = env.admin.Statistics(ctx, user)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = env.admin.ExportOrders(ctx, user, "")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = env.admin.SetUserActive(ctx, user, user.UserID, false)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = env.admin.ListProfiles(ctx, user, usecase.PageInput{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAdminListUsersPagination(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	admin := env.registerAdmin(t, "0900000000")
	for _, phone := range []string{"0911111111", "0922222222", "0933333333"} {
		env.registerUser(t, phone)
	}

	page, err := env.admin.ListUsers(ctx, admin, usecase.PageInput{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 4, page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Len(t, page.Users, 2)
}

func TestAdminDeleteUserRequiresPassword(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	admin := env.registerAdmin(t, "0900000000")
	victim := env.registerUser(t, "0911111111")

	err := env.admin.DeleteUser(ctx, admin, victim.UserID, "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	err = env.admin.DeleteUser(ctx, admin, victim.UserID, "secret123")
	require.NoError(t, err)

	_, ok := env.store.users[victim.UserID]
	assert.False(t, ok)
}

func TestAdminDeleteUserCascadesOwnedRecords(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	admin := env.registerAdmin(t, "0900000000")
	victim := env.registerUser(t, "0911111111")

	_, err := env.addrs.CreateAddress(ctx, victim, victim.UserID, usecase.CreateAddressInput{
		RecipientName: "王小明",
		Phone:         "0912345678",
		Province:      "台北市",
		Detail:        "信義路一段 1 號",
		IsDefault:     true,
	})
	require.NoError(t, err)

	_, err = env.carts.AddItem(ctx, victim, usecase.AddCartItemInput{
		ProductID:   "pegboard-60",
		ProductName: "洞洞板 60x60",
		ProductType: entity.ProductTypePegboard,
		Quantity:    1,
		UnitPrice:   350,
	})
	require.NoError(t, err)

	env.placeOrder(t, victim, entity.ProductTypePegboard, 350)

	_, err = env.profiles.Create(ctx, victim, usecase.CreateProfileInput{ProfileName: "客廳相框"})
	require.NoError(t, err)

	require.NoError(t, env.admin.DeleteUser(ctx, admin, victim.UserID, "secret123"))

	for _, address := range env.store.addresses {
		assert.NotEqual(t, victim.UserID, address.UserID)
	}
	for _, cart := range env.store.carts {
		assert.NotEqual(t, victim.UserID, cart.UserID)
	}
	assert.Empty(t, env.store.cartItems)
	for _, order := range env.store.orders {
		assert.NotEqual(t, victim.UserID, order.UserID)
	}
	for _, profile := range env.store.profiles {
		assert.NotEqual(t, victim.UserID, profile.UserID)
	}
}

func TestAdminUserPatches(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	admin := env.registerAdmin(t, "0900000000")
	user := env.registerUser(t, "0911111111")

	deactivated, err := env.admin.SetUserActive(ctx, admin, user.UserID, false)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)

	promoted, err := env.admin.PromoteUser(ctx, admin, user.UserID)
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin)

	vip, err := env.admin.SetMembership(ctx, admin, user.UserID, entity.MembershipVIP)
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipVIP, vip.MembershipLevel)

	_, err = env.admin.SetMembership(ctx, admin, user.UserID, entity.MembershipLevel("platinum"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMembership)
}

func TestAdminResetPassword(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	admin := env.registerAdmin(t, "0900000000")
	user := env.registerUser(t, "0911111111")

	require.NoError(t, env.admin.ResetPassword(ctx, admin, user.UserID, "freshpass"))

	_, err := env.users.Login(ctx, usecase.LoginInput{Phone: "0911111111", Password: "freshpass"})
	assert.NoError(t, err)
}

func TestAdminExportOrders(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	admin := env.registerAdmin(t, "0900000000")
	user := env.registerUser(t, "0911111111")

	env.placeOrder(t, user, entity.ProductTypeFrame, 100)
	env.placeOrder(t, user, entity.ProductTypeFrame, 200)

	workbook, err := env.admin.ExportOrders(ctx, admin, "")
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Orders")
	require.NoError(t, err)
	assert.Len(t, rows, 3, "header plus one row per order")
}

func TestAdminStatistics(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	admin := env.registerAdmin(t, "0900000000")
	user := env.registerUser(t, "0911111111")
	inactive := env.registerUser(t, "0922222222")

	_, err := env.admin.SetUserActive(ctx, admin, inactive.UserID, false)
	require.NoError(t, err)

	order := env.placeOrder(t, user, entity.ProductTypeFrame, 300)
	status := entity.OrderStatusDelivered
	_, err = env.orders.UpdateOrder(ctx, admin, order.ID, usecase.UpdateOrderInput{Status: &status})
	require.NoError(t, err)

	stats, err := env.admin.Statistics(ctx, admin)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalUsers)
	assert.EqualValues(t, 2, stats.ActiveUsers)
	assert.EqualValues(t, 1, stats.TotalOrders)
	assert.InDelta(t, 300, stats.TotalRevenue, 0.001)
}

func TestAdminFrameOptionLifecycle(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	admin := env.registerAdmin(t, "0900000000")

	mat := 3.5
	option, err := env.admin.CreateFrameOption(ctx, admin, usecase.CreateFrameOptionInput{
		Style: "modern", Material: "aluminum", Color: "black",
		WidthCm: 21, HeightCm: 29.7, MatBorderCm: &mat, ExtraPrice: 120,
	})
	require.NoError(t, err)
	assert.True(t, option.IsActive)

	color := "silver"
	updated, err := env.admin.UpdateFrameOption(ctx, admin, option.ID, usecase.UpdateFrameOptionInput{Color: &color})
	require.NoError(t, err)
	assert.Equal(t, "silver", updated.Color)

	require.NoError(t, env.admin.DeactivateFrameOption(ctx, admin, option.ID))

	all, err := env.admin.ListFrameOptions(ctx, admin)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsActive)

	visible, err := env.boards.ListFrameOptions(ctx)
	require.NoError(t, err)
	assert.Empty(t, visible)
}
