// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SystemSetting is a single configuration namespace persisted as one row
// of schema-less JSON. Defaults are supplied in code when the row is absent.
type SystemSetting struct {
	ID        uuid.UUID
	Key       string // Namespace key, e.g. "shared_board_pegboard_settings".
	Value     map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}
