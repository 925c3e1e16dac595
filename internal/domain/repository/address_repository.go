package repository

import (
	"context"
	"errors"

	"alufactory/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for shipping address persistence.
// Each address belongs to exactly one user; at most one address per user
// carries the default flag.
type AddressRepository interface {
	// Create persists a new address for a user.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindByUser retrieves all addresses of a user, default address first,
	// then newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// Update updates an existing address record.
	Update(ctx context.Context, address *entity.Address) error

	// Delete removes an address by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// ClearDefault unsets the default flag on every address of the user.
	// Called in the same transaction that sets a new default.
	ClearDefault(ctx context.Context, userID uuid.UUID) error
}
