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

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// getOrCreate loads the caller's cart, creating an empty one on first access.
func (srv *cartService) getOrCreate(ctx context.Context, cartRepo repository.CartRepository, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := cartRepo.FindByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart = &entity.Cart{UserID: userID}
	if err := cartRepo.Create(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	return cart, nil
}

func cartOutput(cart *entity.Cart) *usecase.CartOutput {
	return &usecase.CartOutput{Cart: cart, TotalPrice: cart.TotalPrice()}
}

// GetCart returns the caller's cart, creating an empty one on first access.
func (srv *cartService) GetCart(ctx context.Context, actor usecase.Actor) (*usecase.CartOutput, error) {
	cart, err := srv.getOrCreate(ctx, srv.cartRepo, actor.UserID)
	if err != nil {
		return nil, err
	}

	return cartOutput(cart), nil
}

// AddItem adds a product to the caller's cart via an atomic upsert, so
// two concurrent adds of the same product merge instead of duplicating.
func (srv *cartService) AddItem(ctx context.Context, actor usecase.Actor, input usecase.AddCartItemInput) (*usecase.CartOutput, error) {
	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		current, err := srv.getOrCreate(ctx, cartRepo, actor.UserID)
		if err != nil {
			return err
		}

		item := &entity.CartItem{
			CartID:      current.ID,
			ProductID:   input.ProductID,
			ProductName: input.ProductName,
			ProductType: input.ProductType,
			Quantity:    input.Quantity,
			UnitPrice:   input.UnitPrice,
			Config:      input.Config,
		}
		item.Recalculate()

		if err := cartRepo.UpsertItem(ctx, item); err != nil {
			return err
		}

		if err := cartRepo.Touch(ctx, current.ID); err != nil {
			return err
		}

		cart, err = cartRepo.FindByUser(ctx, actor.UserID)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add cart item", slog.Any("userID", actor.UserID), slog.Any("error", err))

		return nil, err
	}

	return cartOutput(cart), nil
}

// findOwnedItem loads a cart line and verifies the parent cart belongs to
// the actor. A foreign line yields ErrForbidden, not ErrCartItemNotFound,
// matching the API contract for cross-user probing.
func (srv *cartService) findOwnedItem(ctx context.Context, cartRepo repository.CartRepository, actor usecase.Actor, itemID uuid.UUID) (*entity.CartItem, *entity.Cart, error) {
	item, err := cartRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, nil, domainerrors.ErrCartItemNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find cart item")
	}

	cart, err := cartRepo.FindByUser(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, nil, domainerrors.ErrForbidden
		}

		return nil, nil, errors.Wrap(err, "failed to load cart")
	}

	if item.CartID != cart.ID {
		return nil, nil, domainerrors.ErrForbidden
	}

	return item, cart, nil
}

// UpdateItem patches a cart line, clamping the quantity and recomputing
// the line total from the stored unit price.
func (srv *cartService) UpdateItem(ctx context.Context, actor usecase.Actor, itemID uuid.UUID, input usecase.UpdateCartItemInput) (*usecase.CartOutput, error) {
	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		item, current, err := srv.findOwnedItem(ctx, cartRepo, actor, itemID)
		if err != nil {
			return err
		}

		if input.Quantity != nil {
			item.Quantity = *input.Quantity
		}
		if input.Config != nil {
			item.Config = *input.Config
		}
		item.Recalculate()

		if err := cartRepo.UpdateItem(ctx, item); err != nil {
			return err
		}

		if err := cartRepo.Touch(ctx, current.ID); err != nil {
			return err
		}

		cart, err = cartRepo.FindByUser(ctx, actor.UserID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return cartOutput(cart), nil
}

// RemoveItem deletes a single cart line.
func (srv *cartService) RemoveItem(ctx context.Context, actor usecase.Actor, itemID uuid.UUID) (*usecase.CartOutput, error) {
	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		item, current, err := srv.findOwnedItem(ctx, cartRepo, actor, itemID)
		if err != nil {
			return err
		}

		if err := cartRepo.DeleteItem(ctx, item.ID); err != nil {
			return err
		}

		if err := cartRepo.Touch(ctx, current.ID); err != nil {
			return err
		}

		cart, err = cartRepo.FindByUser(ctx, actor.UserID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return cartOutput(cart), nil
}

// Clear removes every line from the caller's cart, keeping the cart row.
func (srv *cartService) Clear(ctx context.Context, actor usecase.Actor) (*usecase.CartOutput, error) {
	var cart *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		current, err := srv.getOrCreate(ctx, cartRepo, actor.UserID)
		if err != nil {
			return err
		}

		if err := cartRepo.DeleteItemsByCart(ctx, current.ID); err != nil {
			return err
		}

		if err := cartRepo.Touch(ctx, current.ID); err != nil {
			return err
		}

		cart, err = cartRepo.FindByUser(ctx, actor.UserID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return cartOutput(cart), nil
}
