package usecase

import (
	"context"

	"alufactory/internal/domain/entity"

	"github.com/google/uuid"
)

// PageInput is a 1-based pagination request.
type PageInput struct {
	Page    int
	PerPage int
}

// UserListOutput is a page of users with pagination metadata.
type UserListOutput struct {
	Users       []*entity.User
	Total       int64
	Pages       int
	CurrentPage int
}

// ProfileListOutput is a page of profiles with pagination metadata.
type ProfileListOutput struct {
	Profiles    []*entity.Profile
	Total       int64
	Pages       int
	CurrentPage int
}

// AdminStatistics is the admin dashboard summary.
type AdminStatistics struct {
	TotalUsers     int64
	ActiveUsers    int64
	TotalOrders    int64
	CountsByStatus map[entity.OrderStatus]int64
	TotalRevenue   float64
}

// CreateFrameOptionInput defines the data for a new frame option.
type CreateFrameOptionInput struct {
	Style       string
	Material    string
	Color       string
	WidthCm     float64
	HeightCm    float64
	MatBorderCm *float64
	ExtraPrice  float64
}

// UpdateFrameOptionInput is a partial update of a frame option.
type UpdateFrameOptionInput struct {
	Style       *string
	Material    *string
	Color       *string
	WidthCm     *float64
	HeightCm    *float64
	MatBorderCm *float64
	ExtraPrice  *float64
	IsActive    *bool
}

// AdminUsecase groups the operations of the admin console. Every method
// requires the admin role and returns ErrForbidden otherwise.
type AdminUsecase interface {
	// ListUsers returns a page of users, newest first.
	ListUsers(ctx context.Context, actor Actor, page PageInput) (*UserListOutput, error)

	// CreateUser registers an account on behalf of a customer.
	CreateUser(ctx context.Context, actor Actor, input RegisterInput) (*entity.User, error)

	// DeleteUser removes a user and everything they own. The admin's own
	// password is re-checked before the cascade runs.
	DeleteUser(ctx context.Context, actor Actor, userID uuid.UUID, adminPassword string) error

	// SetUserActive flips a user's activation flag.
	SetUserActive(ctx context.Context, actor Actor, userID uuid.UUID, active bool) (*entity.User, error)

	// PromoteUser grants the admin role to a user.
	PromoteUser(ctx context.Context, actor Actor, userID uuid.UUID) (*entity.User, error)

	// SetMembership changes a user's membership level.
	SetMembership(ctx context.Context, actor Actor, userID uuid.UUID, level entity.MembershipLevel) (*entity.User, error)

	// ResetPassword overwrites a user's password hash.
	ResetPassword(ctx context.Context, actor Actor, userID uuid.UUID, newPassword string) error

	// ExportOrders renders orders matching the status filter as an .xlsx
	// workbook. An empty status exports everything.
	ExportOrders(ctx context.Context, actor Actor, status entity.OrderStatus) ([]byte, error)

	// Statistics returns user and order totals for the dashboard.
	Statistics(ctx context.Context, actor Actor) (*AdminStatistics, error)

	// ListProfiles returns a page of saved profiles, newest first.
	ListProfiles(ctx context.Context, actor Actor, page PageInput) (*ProfileListOutput, error)

	// CreateFrameOption adds a catalog entry.
	CreateFrameOption(ctx context.Context, actor Actor, input CreateFrameOptionInput) (*entity.FrameOption, error)

	// ListFrameOptions returns every frame option including inactive ones.
	ListFrameOptions(ctx context.Context, actor Actor) ([]*entity.FrameOption, error)

	// UpdateFrameOption patches a catalog entry.
	UpdateFrameOption(ctx context.Context, actor Actor, optionID uuid.UUID, input UpdateFrameOptionInput) (*entity.FrameOption, error)

	// DeactivateFrameOption soft-deletes a catalog entry by clearing its
	// active flag.
	DeactivateFrameOption(ctx context.Context, actor Actor, optionID uuid.UUID) error
}
