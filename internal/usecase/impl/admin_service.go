package impl

import (
	"context"
	"log/slog"

	deliverycontext "alufactory/internal/delivery/context"
	"alufactory/internal/domain/entity"
	domainerrors "alufactory/internal/domain/errors"
	"alufactory/internal/domain/repository"
	"alufactory/internal/domain/service"
	"alufactory/internal/infra/report"
	"alufactory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface. Every entry point
// gates on the admin role before touching any repository.
type adminService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	orderRepo   repository.OrderRepository
	profileRepo repository.ProfileRepository
	frameRepo   repository.FrameOptionRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	OrderRepo   repository.OrderRepository
	ProfileRepo repository.ProfileRepository
	FrameRepo   repository.FrameOptionRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		orderRepo:   params.OrderRepo,
		profileRepo: params.ProfileRepo,
		frameRepo:   params.FrameRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns a page of users, newest first.
func (srv *adminService) ListUsers(ctx context.Context, actor usecase.Actor, page usecase.PageInput) (*usecase.UserListOutput, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	pageNum, perPage := normalizePage(page.Page, page.PerPage)

	users, err := srv.userRepo.List(ctx, (pageNum-1)*perPage, perPage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	total, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	return &usecase.UserListOutput{
		Users:       users,
		Total:       total,
		Pages:       pageCount(total, perPage),
		CurrentPage: pageNum,
	}, nil
}

// CreateUser registers an account on a customer's behalf.
func (srv *adminService) CreateUser(ctx context.Context, actor usecase.Actor, input usecase.RegisterInput) (*entity.User, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.User{
		Username:        input.Username,
		Phone:           input.Phone,
		Email:           input.Email,
		FullName:        input.FullName,
		PasswordHash:    hash,
		MembershipLevel: entity.MembershipStandard,
		IsActive:        true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewUserRepository().Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserDuplicate) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, err
	}

	srv.log(ctx).Info("User created by admin",
		slog.Any("userID", user.ID),
		slog.Any("adminID", actor.UserID),
	)

	return user, nil
}

// DeleteUser removes a user and, through the database cascade, every
// address, cart, order and profile they own. The admin must confirm the
// action with their own password.
func (srv *adminService) DeleteUser(ctx context.Context, actor usecase.Actor, userID uuid.UUID, adminPassword string) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden
	}

	admin, err := srv.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to load admin account")
	}
	if !srv.hasher.Check(adminPassword, admin.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Delete(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return err
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("User deleted",
		slog.Any("userID", userID),
		slog.Any("adminID", actor.UserID),
	)

	return nil
}

// SetUserActive flips a user's activation flag.
func (srv *adminService) SetUserActive(ctx context.Context, actor usecase.Actor, userID uuid.UUID, active bool) (*entity.User, error) {
	return srv.patchUser(ctx, actor, userID, func(user *entity.User) error {
		user.IsActive = active

		return nil
	})
}

// PromoteUser grants the admin role to a user.
func (srv *adminService) PromoteUser(ctx context.Context, actor usecase.Actor, userID uuid.UUID) (*entity.User, error) {
	return srv.patchUser(ctx, actor, userID, func(user *entity.User) error {
		user.IsAdmin = true

		return nil
	})
}

// SetMembership changes a user's membership level.
func (srv *adminService) SetMembership(ctx context.Context, actor usecase.Actor, userID uuid.UUID, level entity.MembershipLevel) (*entity.User, error) {
	if !level.IsValid() {
		return nil, domainerrors.ErrInvalidMembership
	}

	return srv.patchUser(ctx, actor, userID, func(user *entity.User) error {
		user.MembershipLevel = level

		return nil
	})
}

// ResetPassword overwrites a user's password hash.
func (srv *adminService) ResetPassword(ctx context.Context, actor usecase.Actor, userID uuid.UUID, newPassword string) error {
	hash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed
	}

	_, err = srv.patchUser(ctx, actor, userID, func(user *entity.User) error {
		user.PasswordHash = hash

		return nil
	})

	return err
}

// ExportOrders renders orders matching the status filter as an .xlsx
// workbook. An empty status exports everything.
func (srv *adminService) ExportOrders(ctx context.Context, actor usecase.Actor, status entity.OrderStatus) ([]byte, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	orders, err := srv.orderRepo.List(ctx, repository.OrderFilter{Status: status})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders for export")
	}

	workbook, err := report.GenerateOrderExport(orders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render order export")
	}

	srv.log(ctx).Info("Orders exported",
		slog.Int("count", len(orders)),
		slog.Any("adminID", actor.UserID),
	)

	return workbook, nil
}

// Statistics returns user and order totals for the dashboard.
func (srv *adminService) Statistics(ctx context.Context, actor usecase.Actor) (*usecase.AdminStatistics, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	totalUsers, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	activeUsers, err := srv.userRepo.CountActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active users")
	}

	counts, err := srv.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	var totalOrders int64
	for _, count := range counts {
		totalOrders += count
	}

	revenue, err := srv.orderRepo.SumRevenue(ctx, revenueStatuses)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}

	return &usecase.AdminStatistics{
		TotalUsers:     totalUsers,
		ActiveUsers:    activeUsers,
		TotalOrders:    totalOrders,
		CountsByStatus: counts,
		TotalRevenue:   revenue,
	}, nil
}

// ListProfiles returns a page of saved profiles, newest first.
func (srv *adminService) ListProfiles(ctx context.Context, actor usecase.Actor, page usecase.PageInput) (*usecase.ProfileListOutput, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	pageNum, perPage := normalizePage(page.Page, page.PerPage)

	profiles, err := srv.profileRepo.List(ctx, (pageNum-1)*perPage, perPage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	total, err := srv.profileRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count profiles")
	}

	return &usecase.ProfileListOutput{
		Profiles:    profiles,
		Total:       total,
		Pages:       pageCount(total, perPage),
		CurrentPage: pageNum,
	}, nil
}

// CreateFrameOption adds a catalog entry, active by default.
func (srv *adminService) CreateFrameOption(ctx context.Context, actor usecase.Actor, input usecase.CreateFrameOptionInput) (*entity.FrameOption, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	option := &entity.FrameOption{
		Style:       input.Style,
		Material:    input.Material,
		Color:       input.Color,
		WidthCm:     input.WidthCm,
		HeightCm:    input.HeightCm,
		MatBorderCm: input.MatBorderCm,
		ExtraPrice:  input.ExtraPrice,
		IsActive:    true,
	}

	if err := srv.frameRepo.Create(ctx, option); err != nil {
		return nil, errors.Wrap(err, "failed to create frame option")
	}

	return option, nil
}

// ListFrameOptions returns every frame option including inactive ones.
func (srv *adminService) ListFrameOptions(ctx context.Context, actor usecase.Actor) ([]*entity.FrameOption, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	options, err := srv.frameRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list frame options")
	}

	return options, nil
}

// UpdateFrameOption patches a catalog entry.
func (srv *adminService) UpdateFrameOption(ctx context.Context, actor usecase.Actor, optionID uuid.UUID, input usecase.UpdateFrameOptionInput) (*entity.FrameOption, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	option, err := srv.frameRepo.FindByID(ctx, optionID)
	if err != nil {
		if errors.Is(err, repository.ErrFrameOptionNotFound) {
			return nil, domainerrors.ErrFrameOptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find frame option")
	}

	if input.Style != nil {
		option.Style = *input.Style
	}
	if input.Material != nil {
		option.Material = *input.Material
	}
	if input.Color != nil {
		option.Color = *input.Color
	}
	if input.WidthCm != nil {
		option.WidthCm = *input.WidthCm
	}
	if input.HeightCm != nil {
		option.HeightCm = *input.HeightCm
	}
	if input.MatBorderCm != nil {
		option.MatBorderCm = input.MatBorderCm
	}
	if input.ExtraPrice != nil {
		option.ExtraPrice = *input.ExtraPrice
	}
	if input.IsActive != nil {
		option.IsActive = *input.IsActive
	}

	if err := srv.frameRepo.Update(ctx, option); err != nil {
		return nil, errors.Wrap(err, "failed to update frame option")
	}

	return option, nil
}

// DeactivateFrameOption hides a catalog entry from customers without
// touching the order snapshots that reference it.
func (srv *adminService) DeactivateFrameOption(ctx context.Context, actor usecase.Actor, optionID uuid.UUID) error {
	inactive := false
	_, err := srv.UpdateFrameOption(ctx, actor, optionID, usecase.UpdateFrameOptionInput{IsActive: &inactive})

	return err
}

// patchUser loads a user inside a transaction, applies the mutation and
// writes the row back. All callers are admin-gated here in one place.
func (srv *adminService) patchUser(ctx context.Context, actor usecase.Actor, userID uuid.UUID, mutate func(*entity.User) error) (*entity.User, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		if err := mutate(user); err != nil {
			return err
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return err
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
