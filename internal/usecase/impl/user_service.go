// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "alufactory/internal/delivery/context"
	"alufactory/internal/domain/entity"
	domainerrors "alufactory/internal/domain/errors"
	"alufactory/internal/domain/repository"
	"alufactory/internal/domain/service"
	"alufactory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	addressRepo  repository.AddressRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AddressRepo  repository.AddressRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		addressRepo:  params.AddressRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new customer account and logs it in.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Registering user", slog.String("username", input.Username))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		Username:        input.Username,
		Phone:           input.Phone,
		Email:           input.Email,
		PasswordHash:    hash,
		FullName:        input.FullName,
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
		srv.log(ctx).Error("Failed to register user", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: user, AccessToken: token}, nil
}

// Login authenticates by phone and password and stamps last_login.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByPhone(ctx, input.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected, bad credentials", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrAccountInactive
	}

	now := time.Now()
	user.LastLogin = &now
	if err := srv.userRepo.Update(ctx, user); err != nil {
		// A failed stamp should not block the login itself.
		srv.log(ctx).Warn("Failed to stamp last login", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{User: user, AccessToken: token}, nil
}

// GetUser returns a user with their addresses; owner or admin only.
func (srv *userService) GetUser(ctx context.Context, actor usecase.Actor, userID uuid.UUID) (*usecase.UserDetail, error) {
	if !actor.CanAccess(userID) {
		return nil, domainerrors.ErrForbidden
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	addresses, err := srv.addressRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load addresses")
	}

	return &usecase.UserDetail{User: user, Addresses: addresses}, nil
}

// UpdateUser patches a user's editable fields; owner or admin only.
func (srv *userService) UpdateUser(ctx context.Context, actor usecase.Actor, userID uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	if !actor.CanAccess(userID) {
		return nil, domainerrors.ErrForbidden
	}

	// Membership and activation are admin-only levers.
	if (input.MembershipLevel != nil || input.IsActive != nil) && !actor.IsAdmin() {
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

		if input.FullName != nil {
			user.FullName = *input.FullName
		}
		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.MembershipLevel != nil {
			level := entity.MembershipLevel(*input.MembershipLevel)
			if !level.IsValid() {
				return domainerrors.ErrInvalidMembership
			}
			user.MembershipLevel = level
		}
		if input.IsActive != nil {
			user.IsActive = *input.IsActive
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserDuplicate) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to update user")
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// ChangePassword verifies the old password and stores a new hash.
func (srv *userService) ChangePassword(ctx context.Context, actor usecase.Actor, input usecase.ChangePasswordInput) error {
	user, err := srv.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials.WrapMessage("old password mismatch")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	user.PasswordHash = hash

	return srv.userRepo.Update(ctx, user)
}
