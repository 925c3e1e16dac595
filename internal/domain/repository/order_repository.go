package repository

import (
	"context"
	"errors"

	"alufactory/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows order listings. Zero values mean "no filter".
type OrderFilter struct {
	UserID      uuid.UUID          // Restrict to one user's orders.
	Status      entity.OrderStatus // Restrict to one lifecycle state.
	ProductType entity.ProductType // Restrict to orders containing this product type.
	Offset      int
	Limit       int // Zero means no limit.
}

// OrderRepository defines the interface for order persistence. Orders and
// their items are immutable snapshots except for the status fields.
type OrderRepository interface {
	// Create persists an order together with all of its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List retrieves orders matching the filter, newest first, with items.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// CountByFilter returns the number of orders matching the filter,
	// ignoring its pagination fields.
	CountByFilter(ctx context.Context, filter OrderFilter) (int64, error)

	// Update persists the mutable columns of an order: status, its
	// timestamps, tracking number and memo.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order and cascades to its items.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindItemsByProductType retrieves order items of the given product
	// type whose parent order is not cancelled. Used to compute shared
	// board reservations.
	FindItemsByProductType(ctx context.Context, productType entity.ProductType) ([]*entity.OrderItem, error)

	// CountByStatus returns order counts grouped by lifecycle state.
	CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error)

	// SumRevenue sums total_amount over orders in the given states.
	SumRevenue(ctx context.Context, statuses []entity.OrderStatus) (float64, error)
}
