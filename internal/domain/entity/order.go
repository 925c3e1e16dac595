// Package entity contains the core business objects of the project.
package entity

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial state of every order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed means the order has been accepted for fabrication.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusShipped means the order has left the workshop.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered is a terminal state.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled is a terminal state.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is an immutable priced snapshot created at checkout. Address and
// pricing fields are copied, not referenced, so later edits to the cart or
// address book never alter a placed order.
type Order struct {
	ID          uuid.UUID // The unique identifier for the order.
	OrderNumber string    // Human-friendly unique number, derived from timestamp + random suffix.
	UserID      uuid.UUID // The owning user.

	// Shipping address snapshot taken at creation time.
	RecipientName string
	Phone         string
	Province      string
	AddressDetail string

	// Totals are caller-supplied and stored verbatim; the system does not
	// recompute them from the items.
	Subtotal    float64
	ShippingFee float64
	TotalAmount float64

	Status         OrderStatus
	TrackingNumber string
	Memo           string

	Items []*OrderItem

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ShippedAt   *time.Time // Stamped on transition to shipped; re-stamped on repeat transitions.
	DeliveredAt *time.Time // Stamped on transition to delivered.
	CancelledAt *time.Time // Stamped on transition to cancelled.
}

// ApplyStatus writes the new status and stamps the matching timestamp.
// Any status in the allowed set may be written from any other state; a
// repeated transition re-stamps the timestamp rather than preserving the
// original time.
func (o *Order) ApplyStatus(status OrderStatus, now time.Time) {
	o.Status = status
	switch status {
	case OrderStatusShipped:
		o.ShippedAt = &now
	case OrderStatusDelivered:
		o.DeliveredAt = &now
	case OrderStatusCancelled:
		o.CancelledAt = &now
	case OrderStatusPending, OrderStatusConfirmed:
		// No timestamp fields for these states.
	}
}

// OrderItem is a product snapshot frozen at order creation. It is
// immutable afterwards and removed only with its parent order.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   string
	ProductName string
	ProductType ProductType
	Quantity    int
	UnitPrice   float64
	TotalPrice  float64
	Config      map[string]any
	CreatedAt   time.Time
}

// NewOrderNumber builds an order number from the current UTC timestamp and
// a random 8-character uppercase hex suffix. Collisions are treated as
// negligible and not guarded by a retry loop.
func NewOrderNumber(now time.Time) string {
	suffix := make([]byte, 4)
	// rand.Read never fails on supported platforms.
	_, _ = rand.Read(suffix)

	return "ORD" + now.UTC().Format("20060102150405") + strings.ToUpper(hex.EncodeToString(suffix))
}
