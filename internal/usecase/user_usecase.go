package usecase

import (
	"context"

	"alufactory/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer.
type RegisterInput struct {
	Username string
	Phone    string
	Password string
	Email    string
	FullName string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Phone    string
	Password string
}

// ChangePasswordInput carries the old and new passwords for a password change.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// UpdateUserInput is a partial update of a user's editable fields.
// Nil pointers leave the stored value untouched. MembershipLevel and
// IsActive are applied only when the caller is an admin.
type UpdateUserInput struct {
	FullName        *string
	Email           *string
	MembershipLevel *string
	IsActive        *bool
}

// --- Output DTOs ---

// AuthOutput returns the user together with a fresh access token.
type AuthOutput struct {
	User        *entity.User
	AccessToken string
}

// UserDetail bundles a user with their address book.
type UserDetail struct {
	User      *entity.User
	Addresses []*entity.Address
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new customer account and logs it in.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login authenticates by phone and password and stamps last_login.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// GetUser returns a user with their addresses; owner or admin only.
	GetUser(ctx context.Context, actor Actor, userID uuid.UUID) (*UserDetail, error)

	// UpdateUser patches a user's editable fields; owner or admin only.
	// Membership and activation changes require the admin role.
	UpdateUser(ctx context.Context, actor Actor, userID uuid.UUID, input UpdateUserInput) (*entity.User, error)

	// ChangePassword verifies the old password and stores a new hash.
	ChangePassword(ctx context.Context, actor Actor, input ChangePasswordInput) error
}
