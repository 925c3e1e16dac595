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
)

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists an order together with all of its items. GORM inserts
// the associated item rows in the same statement batch.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = itemM.OrderID
		order.Items[i].CreatedAt = itemM.CreatedAt
	}

	return nil
}

// FindByID retrieves an order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.created_at ASC")
		}).
		First(&orderM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// List retrieves orders matching the filter, newest first, with items.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	query := repo.applyFilter(repo.db.WithContext(ctx), filter).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.created_at ASC")
		}).
		Order("orders.created_at DESC").
		Offset(filter.Offset)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// CountByFilter returns the number of orders matching the filter.
func (repo *orderRepository) CountByFilter(ctx context.Context, filter repository.OrderFilter) (int64, error) {
	var count int64
	if err := repo.applyFilter(repo.db.WithContext(ctx), filter).
		Model(&model.OrderModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// applyFilter translates an OrderFilter into WHERE clauses. The product
// type filter joins order_items, so it deduplicates via DISTINCT.
func (repo *orderRepository) applyFilter(db *gorm.DB, filter repository.OrderFilter) *gorm.DB {
	query := db
	if filter.UserID != uuid.Nil {
		query = query.Where("orders.user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("orders.status = ?", filter.Status.String())
	}
	if filter.ProductType != "" {
		query = query.
			Joins("JOIN order_items ON order_items.order_id = orders.id").
			Where("order_items.product_type = ?", filter.ProductType.String()).
			Distinct("orders.*")
	}

	return query
}

// Update persists the mutable columns of an order.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	updates := map[string]any{
		"status":          order.Status.String(),
		"tracking_number": order.TrackingNumber,
		"memo":            order.Memo,
		"shipped_at":      order.ShippedAt,
		"delivered_at":    order.DeliveredAt,
		"cancelled_at":    order.CancelledAt,
	}

	result := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes an order; item rows are removed by ON DELETE CASCADE.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.OrderModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// FindItemsByProductType retrieves order items of the given product type
// whose parent order is not cancelled.
func (repo *orderRepository) FindItemsByProductType(ctx context.Context, productType entity.ProductType) ([]*entity.OrderItem, error) {
	var itemModels []*model.OrderItemModel
	if err := repo.db.WithContext(ctx).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.product_type = ? AND orders.status <> ?",
			productType.String(), entity.OrderStatusCancelled.String()).
		Order("order_items.created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find order items by product type")
	}

	items := make([]*entity.OrderItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toOrderItemDomain(itemM))
	}

	return items, nil
}

// CountByStatus returns order counts grouped by lifecycle state.
func (repo *orderRepository) CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	counts := make(map[entity.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.OrderStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// SumRevenue sums total_amount over orders in the given states.
func (repo *orderRepository) SumRevenue(ctx context.Context, statuses []entity.OrderStatus) (float64, error) {
	if len(statuses) == 0 {
		return 0, nil
	}

	statusStrings := make([]string, 0, len(statuses))
	for _, status := range statuses {
		statusStrings = append(statusStrings, status.String())
	}

	var revenue float64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status IN ?", statusStrings).
		Scan(&revenue).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum order revenue")
	}

	return revenue, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, toOrderItemDomain(itemM))
	}

	return &entity.Order{
		ID:             data.ID,
		OrderNumber:    data.OrderNumber,
		UserID:         data.UserID,
		RecipientName:  data.RecipientName,
		Phone:          data.Phone,
		Province:       data.Province,
		AddressDetail:  data.AddressDetail,
		Subtotal:       data.Subtotal,
		ShippingFee:    data.ShippingFee,
		TotalAmount:    data.TotalAmount,
		Status:         entity.OrderStatus(data.Status),
		TrackingNumber: data.TrackingNumber,
		Memo:           data.Memo,
		Items:          items,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		ShippedAt:      data.ShippedAt,
		DeliveredAt:    data.DeliveredAt,
		CancelledAt:    data.CancelledAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]*model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, fromOrderItemDomain(item))
	}

	return &model.OrderModel{
		ID:             data.ID,
		OrderNumber:    data.OrderNumber,
		UserID:         data.UserID,
		RecipientName:  data.RecipientName,
		Phone:          data.Phone,
		Province:       data.Province,
		AddressDetail:  data.AddressDetail,
		Subtotal:       data.Subtotal,
		ShippingFee:    data.ShippingFee,
		TotalAmount:    data.TotalAmount,
		Status:         data.Status.String(),
		TrackingNumber: data.TrackingNumber,
		Memo:           data.Memo,
		Items:          items,
		ShippedAt:      data.ShippedAt,
		DeliveredAt:    data.DeliveredAt,
		CancelledAt:    data.CancelledAt,
	}
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderItem entity.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:          data.ID,
		OrderID:     data.OrderID,
		ProductID:   data.ProductID,
		ProductName: data.ProductName,
		ProductType: entity.ProductType(data.ProductType),
		Quantity:    data.Quantity,
		UnitPrice:   data.UnitPrice,
		TotalPrice:  data.TotalPrice,
		Config:      fromJSONColumn(data.Config),
		CreatedAt:   data.CreatedAt,
	}
}

// fromOrderItemDomain converts a domain OrderItem entity to a GORM OrderItemModel.
func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:          data.ID,
		OrderID:     data.OrderID,
		ProductID:   data.ProductID,
		ProductName: data.ProductName,
		ProductType: data.ProductType.String(),
		Quantity:    data.Quantity,
		UnitPrice:   data.UnitPrice,
		TotalPrice:  data.TotalPrice,
		Config:      toJSONColumn(data.Config),
	}
}
