package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username         string    `gorm:"type:varchar(80);unique;not null"`
	Phone            string    `gorm:"type:varchar(20);unique;not null"`
	// Email is optional. A pointer maps absent emails to NULL so the
	// unique constraint never collides on empty strings.
	Email            *string   `gorm:"type:varchar(255);unique"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	FullName         string    `gorm:"type:varchar(100)"`
	MembershipLevel  string    `gorm:"type:varchar(20);not null;default:'standard'"`
	MembershipPoints int       `gorm:"not null;default:0"`
	IsActive         bool      `gorm:"not null;default:true"`
	IsAdmin          bool      `gorm:"not null;default:false"`
	LastLogin        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Addresses []*AddressModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Cart      *CartModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Orders    []*OrderModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Profiles  []*ProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
