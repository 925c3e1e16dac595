package repository

import (
	"context"
	"errors"

	"alufactory/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFrameOptionNotFound is returned when a frame option is not found.
var ErrFrameOptionNotFound = errors.New("frame option not found")

// FrameOptionRepository defines the interface for the frame option catalog.
// Options are soft-deleted by clearing the active flag.
type FrameOptionRepository interface {
	// Create persists a new frame option.
	Create(ctx context.Context, option *entity.FrameOption) error

	// FindByID retrieves a frame option by its unique ID, active or not.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FrameOption, error)

	// FindActive retrieves all active frame options, oldest first.
	FindActive(ctx context.Context) ([]*entity.FrameOption, error)

	// FindAll retrieves every frame option including inactive ones.
	FindAll(ctx context.Context) ([]*entity.FrameOption, error)

	// Update updates an existing frame option record.
	Update(ctx context.Context, option *entity.FrameOption) error
}
