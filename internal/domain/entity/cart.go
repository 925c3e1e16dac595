// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is a user's shopping cart. Exactly one cart exists per user,
// created lazily on first access and deleted with the user.
type Cart struct {
	ID        uuid.UUID   // The unique identifier for the cart.
	UserID    uuid.UUID   // The owning user (one cart per user).
	Items     []*CartItem // Line items currently in the cart.
	CreatedAt time.Time   // Timestamp of when this cart was created.
	UpdatedAt time.Time   // Touched by every cart mutation.
}

// TotalPrice sums the line totals of all items in the cart.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.TotalPrice
	}

	return total
}

// CartItem is a line item in a cart. A product appears at most once per
// cart; adding the same product again merges into the existing line.
type CartItem struct {
	ID          uuid.UUID      // The unique identifier for the line item.
	CartID      uuid.UUID      // The parent cart.
	ProductID   string         // Catalog identifier of the product.
	ProductName string         // Display name at the time the item was added.
	ProductType ProductType    // Fabrication product family.
	Quantity    int            // Always at least 1.
	UnitPrice   float64        // Price per unit, fixed when the line is first created.
	TotalPrice  float64        // Always UnitPrice * Quantity.
	Config      map[string]any // Free-form product configuration; shape varies per product type.
	CreatedAt   time.Time      // Timestamp of when this line was created.
	UpdatedAt   time.Time      // Timestamp of the last modification.
}

// Recalculate clamps the quantity to a minimum of 1 and recomputes the
// line total from the stored unit price.
func (i *CartItem) Recalculate() {
	if i.Quantity < 1 {
		i.Quantity = 1
	}
	i.TotalPrice = i.UnitPrice * float64(i.Quantity)
}
