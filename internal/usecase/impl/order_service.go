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

// revenueStatuses are the lifecycle states that count as realized revenue.
var revenueStatuses = []entity.OrderStatus{
	entity.OrderStatusConfirmed,
	entity.OrderStatusShipped,
	entity.OrderStatusDelivered,
}

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager     repository.TransactionManager
	orderRepo     repository.OrderRepository
	profileRepo   repository.ProfileRepository
	documentStore service.DocumentStore
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	OrderRepo     repository.OrderRepository
	ProfileRepo   repository.ProfileRepository
	DocumentStore service.DocumentStore
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:     params.TxManager,
		orderRepo:     params.OrderRepo,
		profileRepo:   params.ProfileRepo,
		documentStore: params.DocumentStore,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder persists a new order snapshot with all of its items in one
// transaction. Caller-supplied totals are stored verbatim.
func (srv *orderService) CreateOrder(ctx context.Context, actor usecase.Actor, input usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart.WrapMessage("an order needs at least one item")
	}

	items := make([]*entity.OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		quantity := in.Quantity
		if quantity < 1 {
			quantity = 1
		}
		items = append(items, &entity.OrderItem{
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			ProductType: in.ProductType,
			Quantity:    quantity,
			UnitPrice:   in.UnitPrice,
			TotalPrice:  in.TotalPrice,
			Config:      in.Config,
		})
	}

	order := &entity.Order{
		OrderNumber:   entity.NewOrderNumber(time.Now()),
		UserID:        actor.UserID,
		RecipientName: input.RecipientName,
		Phone:         input.Phone,
		Province:      input.Province,
		AddressDetail: input.AddressDetail,
		Subtotal:      input.Subtotal,
		ShippingFee:   input.ShippingFee,
		TotalAmount:   input.TotalAmount,
		Status:        entity.OrderStatusPending,
		Memo:          input.Memo,
		Items:         items,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewOrderRepository().Create(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create order", slog.Any("userID", actor.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderNumber", order.OrderNumber),
		slog.Any("userID", actor.UserID),
	)

	return order, nil
}

// GetOrder returns a single order; owner or admin only.
func (srv *orderService) GetOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !actor.CanAccess(order.UserID) {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// ListOrders returns the caller's orders, or all orders with optional
// filters when the caller is an admin.
func (srv *orderService) ListOrders(ctx context.Context, actor usecase.Actor, input usecase.ListOrdersInput) (*usecase.OrderListOutput, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	page, perPage := normalizePage(input.Page, input.PerPage)

	filter := repository.OrderFilter{
		Status:      input.Status,
		ProductType: input.ProductType,
		Offset:      (page - 1) * perPage,
		Limit:       perPage,
	}
	if !actor.IsAdmin() {
		filter.UserID = actor.UserID
	}

	orders, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	total, err := srv.orderRepo.CountByFilter(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	return &usecase.OrderListOutput{
		Orders:      orders,
		Total:       total,
		Pages:       pageCount(total, perPage),
		CurrentPage: page,
	}, nil
}

// UpdateOrder patches tracking number and memo; status changes require
// the admin role. Any status within the allowed set may be written from
// any other state; the matching timestamp is stamped on every write.
func (srv *orderService) UpdateOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID, input usecase.UpdateOrderInput) (*entity.Order, error) {
	if input.Status != nil {
		if !actor.IsAdmin() {
			return nil, domainerrors.ErrForbidden
		}
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrInvalidOrderStatus
		}
	}

	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		if !actor.CanAccess(order.UserID) {
			return domainerrors.ErrForbidden
		}

		if input.Status != nil {
			order.ApplyStatus(*input.Status, time.Now())
		}
		if input.TrackingNumber != nil {
			order.TrackingNumber = *input.TrackingNumber
		}
		if input.Memo != nil {
			order.Memo = *input.Memo
		}

		if err := orderRepo.Update(ctx, order); err != nil {
			return err
		}

		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteOrder removes an order and its items; owner or admin only.
func (srv *orderService) DeleteOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) error {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to find order")
	}

	if !actor.CanAccess(order.UserID) {
		return domainerrors.ErrForbidden
	}

	return srv.orderRepo.Delete(ctx, orderID)
}

// AttachDocument stores an uploaded PDF on the caller's profile, creating
// the profile when absent. The decoded bytes go to the filesystem and the
// base64 payload stays in the row; a failed file write only degrades
// redundancy and is logged as a warning.
func (srv *orderService) AttachDocument(ctx context.Context, actor usecase.Actor, orderID uuid.UUID, input usecase.AttachOrderDocumentInput) (*entity.Profile, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !actor.CanAccess(order.UserID) {
		return nil, domainerrors.ErrForbidden
	}

	data, err := decodeDocumentBase64(input.PDFBase64)
	if err != nil {
		return nil, err
	}

	filename := input.PDFFilename
	if filename == "" {
		filename = order.OrderNumber + ".pdf"
	}

	storedPath := ""
	if path, saveErr := srv.documentStore.Save(actor.UserID.String(), filename, data); saveErr != nil {
		srv.log(ctx).Warn("Failed to write order document to disk, keeping base64 copy only",
			slog.Any("orderID", orderID), slog.Any("error", saveErr))
	} else {
		storedPath = path
	}

	var profile *entity.Profile
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		profiles, err := profileRepo.FindByUser(ctx, actor.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to load profiles")
		}

		if len(profiles) == 0 {
			profile = &entity.Profile{
				UserID:      actor.UserID,
				ProfileName: order.OrderNumber,
				PDFPath:     storedPath,
				PDFFilename: filename,
				PDFBase64:   input.PDFBase64,
			}

			return profileRepo.Create(ctx, profile)
		}

		profile = profiles[0]
		profile.PDFPath = storedPath
		profile.PDFFilename = filename
		profile.PDFBase64 = input.PDFBase64

		return profileRepo.Update(ctx, profile)
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// OrderQR renders the order number as a PNG QR code; owner or admin only.
func (srv *orderService) OrderQR(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}

	return srv.qrcodeService.GenerateOrderQR(order.OrderNumber)
}

// Stats returns order counts and revenue; admin only.
func (srv *orderService) Stats(ctx context.Context, actor usecase.Actor) (*usecase.OrderStats, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	counts, err := srv.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	var total int64
	for _, count := range counts {
		total += count
	}

	revenue, err := srv.orderRepo.SumRevenue(ctx, revenueStatuses)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}

	return &usecase.OrderStats{
		CountsByStatus: counts,
		TotalOrders:    total,
		TotalRevenue:   revenue,
	}, nil
}
