package impl

import (
	"context"
	"log/slog"

	deliverycontext "alufactory/internal/delivery/context"
	"alufactory/internal/domain/entity"
	domainerrors "alufactory/internal/domain/errors"
	"alufactory/internal/domain/repository"
	"alufactory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for addressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses returns a user's addresses; owner or admin only.
func (srv *addressService) ListAddresses(ctx context.Context, actor usecase.Actor, userID uuid.UUID) ([]*entity.Address, error) {
	if !actor.CanAccess(userID) {
		return nil, domainerrors.ErrForbidden
	}

	return srv.addressRepo.FindByUser(ctx, userID)
}

// CreateAddress adds an address to the caller's own book. When the new
// address is flagged default, every other default flag of the user is
// cleared in the same transaction, keeping the single-default invariant.
func (srv *addressService) CreateAddress(ctx context.Context, actor usecase.Actor, userID uuid.UUID, input usecase.CreateAddressInput) (*entity.Address, error) {
	// The address book is personal; admins manage users, not their books.
	if actor.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	address := &entity.Address{
		UserID:        userID,
		RecipientName: input.RecipientName,
		Phone:         input.Phone,
		Province:      input.Province,
		Detail:        input.Detail,
		IsDefault:     input.IsDefault,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		if input.IsDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return err
			}
		}

		return addressRepo.Create(ctx, address)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create address", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return address, nil
}

// UpdateAddress patches an address; owner only.
func (srv *addressService) UpdateAddress(ctx context.Context, actor usecase.Actor, addressID uuid.UUID, input usecase.UpdateAddressInput) (*entity.Address, error) {
	var updated *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := addressRepo.FindByID(ctx, addressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return errors.Wrap(err, "failed to find address")
		}

		if address.UserID != actor.UserID {
			return domainerrors.ErrForbidden
		}

		if input.RecipientName != nil {
			address.RecipientName = *input.RecipientName
		}
		if input.Phone != nil {
			address.Phone = *input.Phone
		}
		if input.Province != nil {
			address.Province = *input.Province
		}
		if input.Detail != nil {
			address.Detail = *input.Detail
		}
		if input.IsDefault != nil {
			if *input.IsDefault && !address.IsDefault {
				if err := addressRepo.ClearDefault(ctx, address.UserID); err != nil {
					return err
				}
			}
			address.IsDefault = *input.IsDefault
		}

		if err := addressRepo.Update(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}

		updated = address

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteAddress removes an address; owner only.
func (srv *addressService) DeleteAddress(ctx context.Context, actor usecase.Actor, addressID uuid.UUID) error {
	address, err := srv.addressRepo.FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to find address")
	}

	if address.UserID != actor.UserID {
		return domainerrors.ErrForbidden
	}

	return srv.addressRepo.Delete(ctx, addressID)
}
