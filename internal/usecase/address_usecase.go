package usecase

import (
	"context"

	"alufactory/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAddressInput defines the data required to add a shipping address.
type CreateAddressInput struct {
	RecipientName string
	Phone         string
	Province      string
	Detail        string
	IsDefault     bool
}

// UpdateAddressInput is a partial update of an address. Nil pointers leave
// the stored value untouched.
type UpdateAddressInput struct {
	RecipientName *string
	Phone         *string
	Province      *string
	Detail        *string
	IsDefault     *bool
}

// AddressUsecase defines the interface for address book operations.
type AddressUsecase interface {
	// ListAddresses returns a user's addresses; owner or admin only.
	ListAddresses(ctx context.Context, actor Actor, userID uuid.UUID) ([]*entity.Address, error)

	// CreateAddress adds an address to the caller's own book. Setting
	// IsDefault clears the default flag on every other address in the
	// same transaction.
	CreateAddress(ctx context.Context, actor Actor, userID uuid.UUID, input CreateAddressInput) (*entity.Address, error)

	// UpdateAddress patches an address; owner only.
	UpdateAddress(ctx context.Context, actor Actor, addressID uuid.UUID, input UpdateAddressInput) (*entity.Address, error)

	// DeleteAddress removes an address; owner only.
	DeleteAddress(ctx context.Context, actor Actor, addressID uuid.UUID) error
}
