package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CartModel mirrors the 'carts' table. One cart per user.
type CartModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []*CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table. The composite unique index
// on (cart_id, product_id) backs the merge-on-add upsert, so concurrent
// adds of the same product can never create duplicate lines.
type CartItemModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CartID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_cart_items_cart_product"`
	ProductID   string         `gorm:"type:varchar(100);not null;uniqueIndex:uq_cart_items_cart_product"`
	ProductName string         `gorm:"type:varchar(255);not null"`
	ProductType string         `gorm:"type:varchar(50);not null"`
	Quantity    int            `gorm:"not null;default:1"`
	UnitPrice   float64        `gorm:"type:decimal(12,2);not null"`
	TotalPrice  float64        `gorm:"type:decimal(12,2);not null"`
	Config      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
