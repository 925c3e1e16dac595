package usecase

import (
	"context"

	"alufactory/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one priced line of a new order. Prices arrive from
// the client and are stored verbatim as a snapshot.
type OrderItemInput struct {
	ProductID   string
	ProductName string
	ProductType entity.ProductType
	Quantity    int
	UnitPrice   float64
	TotalPrice  float64
	Config      map[string]any
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	Items         []OrderItemInput
	RecipientName string
	Phone         string
	Province      string
	AddressDetail string
	Subtotal      float64
	ShippingFee   float64
	TotalAmount   float64
	Memo          string
}

// UpdateOrderInput patches an order's mutable fields. Status changes are
// admin-only; nil pointers leave the stored value untouched.
type UpdateOrderInput struct {
	Status         *entity.OrderStatus
	TrackingNumber *string
	Memo           *string
}

// ListOrdersInput narrows an order listing. Non-admin callers always see
// only their own orders regardless of the filter.
type ListOrdersInput struct {
	Status      entity.OrderStatus
	ProductType entity.ProductType
	Page        int
	PerPage     int
}

// OrderListOutput is a page of orders with pagination metadata.
type OrderListOutput struct {
	Orders      []*entity.Order
	Total       int64
	Pages       int
	CurrentPage int
}

// AttachOrderDocumentInput carries an uploaded PDF for an order.
type AttachOrderDocumentInput struct {
	PDFBase64   string
	PDFFilename string
}

// OrderStats summarizes the order book for the admin dashboard.
type OrderStats struct {
	CountsByStatus map[entity.OrderStatus]int64
	TotalOrders    int64
	TotalRevenue   float64
}

// OrderUsecase defines the interface for order lifecycle operations.
type OrderUsecase interface {
	// CreateOrder persists a new order snapshot with all of its items in
	// one transaction. Totals are stored as supplied, never recomputed.
	CreateOrder(ctx context.Context, actor Actor, input CreateOrderInput) (*entity.Order, error)

	// GetOrder returns a single order; owner or admin only.
	GetOrder(ctx context.Context, actor Actor, orderID uuid.UUID) (*entity.Order, error)

	// ListOrders returns the caller's orders, or all orders with optional
	// filters when the caller is an admin.
	ListOrders(ctx context.Context, actor Actor, input ListOrdersInput) (*OrderListOutput, error)

	// UpdateOrder patches tracking number and memo; status changes
	// require the admin role and stamp the lifecycle timestamps.
	UpdateOrder(ctx context.Context, actor Actor, orderID uuid.UUID, input UpdateOrderInput) (*entity.Order, error)

	// DeleteOrder removes an order and its items; owner or admin only.
	DeleteOrder(ctx context.Context, actor Actor, orderID uuid.UUID) error

	// AttachDocument stores an uploaded PDF on the caller's profile,
	// creating the profile when absent. The order must exist and be
	// accessible to the caller.
	AttachDocument(ctx context.Context, actor Actor, orderID uuid.UUID, input AttachOrderDocumentInput) (*entity.Profile, error)

	// OrderQR renders the order number as a PNG QR code; owner or admin only.
	OrderQR(ctx context.Context, actor Actor, orderID uuid.UUID) ([]byte, error)

	// Stats returns order counts and revenue; admin only. Revenue sums
	// confirmed, shipped and delivered orders.
	Stats(ctx context.Context, actor Actor) (*OrderStats, error)
}
