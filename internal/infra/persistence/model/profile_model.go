package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProfileModel mirrors the 'profiles' table. The unique user_id index
// enforces one saved profile per user. pdf_base64 is the durable copy of
// the uploaded document; pdf_path points at the filesystem copy.
type ProfileModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID      `gorm:"type:uuid;unique;not null"`
	ProfileName string         `gorm:"type:varchar(255);not null"`
	ProfileData datatypes.JSON `gorm:"type:jsonb"`
	Address     datatypes.JSON `gorm:"type:jsonb"`
	PDFPath     string         `gorm:"type:varchar(512)"`
	PDFFilename string         `gorm:"type:varchar(255)"`
	PDFBase64   string         `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
