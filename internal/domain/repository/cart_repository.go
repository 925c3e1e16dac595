package repository

import (
	"context"
	"errors"

	"alufactory/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when a user has no cart yet.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a cart line item is not found.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the interface for cart persistence. Every user
// owns at most one cart; a product appears at most once per cart.
type CartRepository interface {
	// FindByUser retrieves the user's cart with all line items.
	// Returns ErrCartNotFound when the user has no cart yet.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Create persists a new empty cart for a user.
	Create(ctx context.Context, cart *entity.Cart) error

	// FindItemByID retrieves a single line item by its unique ID.
	FindItemByID(ctx context.Context, itemID uuid.UUID) (*entity.CartItem, error)

	// UpsertItem atomically inserts the line item, or on a (cart_id,
	// product_id) conflict increments the stored quantity by the new
	// item's quantity and recomputes the line total from the stored unit
	// price. Concurrent adds of the same product never produce duplicate
	// rows.
	UpsertItem(ctx context.Context, item *entity.CartItem) error

	// UpdateItem updates an existing line item.
	UpdateItem(ctx context.Context, item *entity.CartItem) error

	// DeleteItem removes a single line item.
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	// DeleteItemsByCart removes every line item of a cart.
	DeleteItemsByCart(ctx context.Context, cartID uuid.UUID) error

	// Touch bumps the cart's updated timestamp.
	Touch(ctx context.Context, cartID uuid.UUID) error
}
