package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. Address and pricing columns are
// snapshots frozen at creation; only status, tracking and memo mutate.
type OrderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber string    `gorm:"type:varchar(32);unique;not null"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_on_user"`

	RecipientName string `gorm:"type:varchar(100);not null"`
	Phone         string `gorm:"type:varchar(20);not null"`
	Province      string `gorm:"type:varchar(100);not null"`
	AddressDetail string `gorm:"type:text;not null"`

	Subtotal    float64 `gorm:"type:decimal(12,2);not null;default:0"`
	ShippingFee float64 `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount float64 `gorm:"type:decimal(12,2);not null"`

	Status         string `gorm:"type:varchar(20);not null;default:'pending';index:idx_orders_on_status"`
	TrackingNumber string `gorm:"type:varchar(100)"`
	Memo           string `gorm:"type:text"`

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time

	Items []*OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Rows are immutable
// product snapshots removed only with their parent order.
type OrderItemModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_order_items_on_order"`
	ProductID   string         `gorm:"type:varchar(100);not null"`
	ProductName string         `gorm:"type:varchar(255);not null"`
	ProductType string         `gorm:"type:varchar(50);not null;index:idx_order_items_on_type"`
	Quantity    int            `gorm:"not null;default:1"`
	UnitPrice   float64        `gorm:"type:decimal(12,2);not null"`
	TotalPrice  float64        `gorm:"type:decimal(12,2);not null"`
	Config      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
