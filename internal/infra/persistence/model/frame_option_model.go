package model

import (
	"time"

	"github.com/google/uuid"
)

// FrameOptionModel mirrors the 'frame_options' table. Deletion is soft:
// rows flip is_active to false and stay referenced by old order items.
type FrameOptionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Style       string    `gorm:"type:varchar(100);not null"`
	Material    string    `gorm:"type:varchar(100);not null"`
	Color       string    `gorm:"type:varchar(100);not null"`
	WidthCm     float64   `gorm:"type:decimal(8,2);not null"`
	HeightCm    float64   `gorm:"type:decimal(8,2);not null"`
	MatBorderCm *float64  `gorm:"type:decimal(8,2)"`
	ExtraPrice  float64   `gorm:"type:decimal(12,2);not null;default:0"`
	IsActive    bool      `gorm:"not null;default:true;index:idx_frame_options_on_active"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FrameOptionModel) TableName() string {
	return "frame_options"
}
