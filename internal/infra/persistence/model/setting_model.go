package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SystemSettingModel mirrors the 'system_settings' table, a keyed JSON
// document store for admin-tunable configuration.
type SystemSettingModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Key       string         `gorm:"type:varchar(100);unique;not null"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SystemSettingModel) TableName() string {
	return "system_settings"
}
