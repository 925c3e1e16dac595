package usecase

import (
	"context"

	"alufactory/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCartItemInput defines the data required to add a product to the cart.
type AddCartItemInput struct {
	ProductID   string
	ProductName string
	ProductType entity.ProductType
	Quantity    int
	UnitPrice   float64
	Config      map[string]any
}

// UpdateCartItemInput is a partial update of a cart line. Nil pointers
// leave the stored value untouched.
type UpdateCartItemInput struct {
	Quantity *int
	Config   *map[string]any
}

// CartOutput bundles the cart with its computed total.
type CartOutput struct {
	Cart       *entity.Cart
	TotalPrice float64
}

// CartUsecase defines the interface for shopping cart operations. The
// caller always operates on their own cart, which is created lazily.
type CartUsecase interface {
	// GetCart returns the caller's cart, creating an empty one on first access.
	GetCart(ctx context.Context, actor Actor) (*CartOutput, error)

	// AddItem adds a product to the caller's cart. Adding a product that
	// is already in the cart merges into the existing line: quantities
	// add up and the stored unit price wins.
	AddItem(ctx context.Context, actor Actor, input AddCartItemInput) (*CartOutput, error)

	// UpdateItem patches a cart line. The quantity is clamped to a
	// minimum of 1 and the line total recomputed.
	UpdateItem(ctx context.Context, actor Actor, itemID uuid.UUID, input UpdateCartItemInput) (*CartOutput, error)

	// RemoveItem deletes a single cart line.
	RemoveItem(ctx context.Context, actor Actor, itemID uuid.UUID) (*CartOutput, error)

	// Clear removes every line from the caller's cart, keeping the cart row.
	Clear(ctx context.Context, actor Actor) (*CartOutput, error)
}
