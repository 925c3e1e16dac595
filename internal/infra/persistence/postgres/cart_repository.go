// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"alufactory/internal/domain/entity"
	domainerrors "alufactory/internal/domain/errors"
	"alufactory/internal/domain/repository"
	"alufactory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the domain.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByUser retrieves the user's cart with all line items.
func (repo *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		First(&cartM, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return toCartDomain(&cartM), nil
}

// Create persists a new empty cart for a user.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	cartM := &model.CartModel{ID: cart.ID, UserID: cart.UserID}

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// FindItemByID retrieves a single line item by its unique ID.
func (repo *cartRepository) FindItemByID(ctx context.Context, itemID uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel
	if err := repo.db.WithContext(ctx).First(&itemM, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by ID")
	}

	return toCartItemDomain(&itemM), nil
}

// UpsertItem atomically inserts the line item, or merges into the existing
// line on a (cart_id, product_id) conflict. The merge adds the incoming
// quantity to the stored quantity and recomputes the line total from the
// STORED unit price, so a price change between adds never splits a line.
// In PostgreSQL every SET expression of ON CONFLICT sees the pre-update
// row, which keeps the quantity and total consistent under concurrency.
func (repo *cartRepository) UpsertItem(ctx context.Context, item *entity.CartItem) error {
	itemM := fromCartItemDomain(item)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":    gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
				"total_price": gorm.Expr("cart_items.unit_price * (cart_items.quantity + EXCLUDED.quantity)"),
				"updated_at":  gorm.Expr("NOW()"),
			}),
		}).
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCartNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart item")
	}

	return nil
}

// UpdateItem updates an existing line item.
func (repo *cartRepository) UpdateItem(ctx context.Context, item *entity.CartItem) error {
	itemM := fromCartItemDomain(item)

	if err := repo.db.WithContext(ctx).Save(itemM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update cart item")
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// DeleteItem removes a single line item.
func (repo *cartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.CartItemModel{}, "id = ?", itemID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteItemsByCart removes every line item of a cart.
func (repo *cartRepository) DeleteItemsByCart(ctx context.Context, cartID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Delete(&model.CartItemModel{}, "cart_id = ?", cartID).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart items")
	}

	return nil
}

// Touch bumps the cart's updated timestamp.
func (repo *cartRepository) Touch(ctx context.Context, cartID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Model(&model.CartModel{}).
		Where("id = ?", cartID).
		Update("updated_at", gorm.Expr("NOW()")).Error; err != nil {
		return errors.Wrap(err, "failed to touch cart")
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain Cart entity.
func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]*entity.CartItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, toCartItemDomain(itemM))
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toCartItemDomain converts a GORM CartItemModel to a domain CartItem entity.
func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:          data.ID,
		CartID:      data.CartID,
		ProductID:   data.ProductID,
		ProductName: data.ProductName,
		ProductType: entity.ProductType(data.ProductType),
		Quantity:    data.Quantity,
		UnitPrice:   data.UnitPrice,
		TotalPrice:  data.TotalPrice,
		Config:      fromJSONColumn(data.Config),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromCartItemDomain converts a domain CartItem entity to a GORM CartItemModel.
func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		ID:          data.ID,
		CartID:      data.CartID,
		ProductID:   data.ProductID,
		ProductName: data.ProductName,
		ProductType: data.ProductType.String(),
		Quantity:    data.Quantity,
		UnitPrice:   data.UnitPrice,
		TotalPrice:  data.TotalPrice,
		Config:      toJSONColumn(data.Config),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
