package repository

import (
	"context"
	"errors"

	"alufactory/internal/domain/entity"
)

// ErrSettingNotFound is returned when a system setting key does not exist.
var ErrSettingNotFound = errors.New("setting not found")

// SettingRepository defines the interface for keyed JSON system settings.
type SettingRepository interface {
	// FindByKey retrieves a setting row by its unique key.
	// Returns ErrSettingNotFound when the key has never been written.
	FindByKey(ctx context.Context, key string) (*entity.SystemSetting, error)

	// Upsert writes the value under the key, inserting the row on first
	// write and replacing the stored value afterwards.
	Upsert(ctx context.Context, setting *entity.SystemSetting) error
}
