package impl

import (
	"context"
	"testing"

	"alufactory/internal/domain/entity"
	domainerrors "alufactory/internal/domain/errors"
	"alufactory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCartCreatesEmptyCart(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	actor := env.registerUser(t, "0911111111")

	out, err := env.carts.GetCart(ctx, actor)
	require.NoError(t, err)
	assert.Empty(t, out.Cart.Items)
	assert.Zero(t, out.TotalPrice)

	// The same cart row is reused on subsequent calls.
	again, err := env.carts.GetCart(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, out.Cart.ID, again.Cart.ID)
}

func TestAddItemMergesSameProduct(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	actor := env.registerUser(t, "0911111111")

	input := usecase.AddCartItemInput{
		ProductID:   "pegboard-60",
		ProductName: "洞洞板 60x60",
		ProductType: entity.ProductTypePegboard,
		Quantity:    2,
		UnitPrice:   350,
	}
	out, err := env.carts.AddItem(ctx, actor, input)
	require.NoError(t, err)
	require.Len(t, out.Cart.Items, 1)
	assert.Equal(t, 2, out.Cart.Items[0].Quantity)
	assert.InDelta(t, 700, out.Cart.Items[0].TotalPrice, 0.001)

	// Adding the same product merges the line; the stored unit price wins
	// even when the new add carries a different one.
	input.Quantity = 3
	input.UnitPrice = 999
	out, err = env.carts.AddItem(ctx, actor, input)
	require.NoError(t, err)
	require.Len(t, out.Cart.Items, 1)
	assert.Equal(t, 5, out.Cart.Items[0].Quantity)
	assert.InDelta(t, 350, out.Cart.Items[0].UnitPrice, 0.001)
	assert.InDelta(t, 1750, out.Cart.Items[0].TotalPrice, 0.001)
	assert.InDelta(t, 1750, out.TotalPrice, 0.001)
}

func TestAddItemDistinctProducts(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	actor := env.registerUser(t, "0911111111")

	_, err := env.carts.AddItem(ctx, actor, usecase.AddCartItemInput{
		ProductID: "pegboard-60", ProductName: "洞洞板", ProductType: entity.ProductTypePegboard,
		Quantity: 1, UnitPrice: 350,
	})
	require.NoError(t, err)

	out, err := env.carts.AddItem(ctx, actor, usecase.AddCartItemInput{
		ProductID: "frame-a4", ProductName: "相框", ProductType: entity.ProductTypeFrame,
		Quantity: 1, UnitPrice: 520,
	})
	require.NoError(t, err)
	assert.Len(t, out.Cart.Items, 2)
	assert.InDelta(t, 870, out.TotalPrice, 0.001)
}

func TestUpdateItemClampsQuantity(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	actor := env.registerUser(t, "0911111111")

	out, err := env.carts.AddItem(ctx, actor, usecase.AddCartItemInput{
		ProductID: "pegboard-60", ProductName: "洞洞板", ProductType: entity.ProductTypePegboard,
		Quantity: 3, UnitPrice: 350,
	})
	require.NoError(t, err)
	itemID := out.Cart.Items[0].ID

	zero := 0
	out, err = env.carts.UpdateItem(ctx, actor, itemID, usecase.UpdateCartItemInput{Quantity: &zero})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Cart.Items[0].Quantity)
	assert.InDelta(t, 350, out.Cart.Items[0].TotalPrice, 0.001)
}

func TestCartItemForeignLineIsForbidden(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	owner := env.registerUser(t, "0911111111")
	other := env.registerUser(t, "0922222222")

	out, err := env.carts.AddItem(ctx, owner, usecase.AddCartItemInput{
		ProductID: "pegboard-60", ProductName: "洞洞板", ProductType: entity.ProductTypePegboard,
		Quantity: 1, UnitPrice: 350,
	})
	require.NoError(t, err)
	itemID := out.Cart.Items[0].ID

	two := 2
	_, err = env.carts.UpdateItem(ctx, other, itemID, usecase.UpdateCartItemInput{Quantity: &two})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = env.carts.RemoveItem(ctx, other, itemID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestClearCartKeepsCartRow(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	actor := env.registerUser(t, "0911111111")

	out, err := env.carts.AddItem(ctx, actor, usecase.AddCartItemInput{
		ProductID: "pegboard-60", ProductName: "洞洞板", ProductType: entity.ProductTypePegboard,
		Quantity: 2, UnitPrice: 350,
	})
	require.NoError(t, err)
	cartID := out.Cart.ID

	cleared, err := env.carts.Clear(ctx, actor)
	require.NoError(t, err)
	assert.Empty(t, cleared.Cart.Items)
	assert.Equal(t, cartID, cleared.Cart.ID)
}
