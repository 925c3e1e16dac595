package repository

import (
	"context"
	"errors"

	"alufactory/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileDuplicate is returned when the user already has a profile.
	ErrProfileDuplicate = errors.New("user already has a profile")
)

// ProfileRepository defines the interface for saved-profile persistence.
// Each user owns at most one profile.
type ProfileRepository interface {
	// Create persists a new profile.
	// Returns ErrProfileDuplicate when the user already has one.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByID retrieves a profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByUser retrieves all profiles of a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Profile, error)

	// Update updates an existing profile record.
	Update(ctx context.Context, profile *entity.Profile) error

	// Delete removes a profile by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves a page of profiles ordered by creation time, newest first.
	List(ctx context.Context, offset, limit int) ([]*entity.Profile, error)

	// Count returns the total number of profiles.
	Count(ctx context.Context) (int64, error)
}
