// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FrameOption is a catalog entry for the frame configurator: a selectable
// combination of style, material and color with an optional mat. Options
// are never hard-deleted; deactivation hides them from customers while
// keeping existing order snapshots intact.
type FrameOption struct {
	ID          uuid.UUID
	Style       string
	Material    string
	Color       string
	WidthCm     float64
	HeightCm    float64
	MatBorderCm *float64 // Mat border width; nil when the option has no mat.
	ExtraPrice  float64  // Surcharge over the size-derived base price.
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
