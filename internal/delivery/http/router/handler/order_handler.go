package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"alufactory/internal/delivery/http/response"
	"alufactory/internal/domain/entity"
	"alufactory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers, including
// the shared board and frame catalog surface that lives under /orders.
type OrderHandler struct {
	orders usecase.OrderUsecase
	boards usecase.BoardUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(orders usecase.OrderUsecase, boards usecase.BoardUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, boards: boards, logger: logger}
}

type orderItemRequest struct {
	ProductID   string         `json:"product_id" validate:"required,max=64"`
	ProductName string         `json:"product_name" validate:"required,max=128"`
	ProductType string         `json:"product_type" validate:"required"`
	Quantity    int            `json:"quantity" validate:"min=0"`
	UnitPrice   float64        `json:"unit_price" validate:"min=0"`
	TotalPrice  float64        `json:"total_price" validate:"min=0"`
	Config      map[string]any `json:"config"`
}

type createOrderRequest struct {
	Items         []orderItemRequest `json:"items" validate:"required,dive"`
	RecipientName string             `json:"recipient_name" validate:"required,max=64"`
	Phone         string             `json:"phone" validate:"required,max=20"`
	Province      string             `json:"province" validate:"required,max=64"`
	AddressDetail string             `json:"address_detail" validate:"required,max=255"`
	Subtotal      float64            `json:"subtotal" validate:"min=0"`
	ShippingFee   float64            `json:"shipping_fee" validate:"min=0"`
	TotalAmount   float64            `json:"total_amount" validate:"min=0"`
	Memo          string             `json:"memo" validate:"max=500"`
}

// CreateOrder places a new order snapshot.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductType: entity.ProductType(item.ProductType),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
			Config:      item.Config,
		})
	}

	order, err := h.orders.CreateOrder(c.Request().Context(), act, usecase.CreateOrderInput{
		Items:         items,
		RecipientName: req.RecipientName,
		Phone:         req.Phone,
		Province:      req.Province,
		AddressDetail: req.AddressDetail,
		Subtotal:      req.Subtotal,
		ShippingFee:   req.ShippingFee,
		TotalAmount:   req.TotalAmount,
		Memo:          req.Memo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(order), "訂單已建立")
}

// ListOrders returns the caller's orders, or all orders for admins.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	out, err := h.orders.ListOrders(c.Request().Context(), act, usecase.ListOrdersInput{
		Status:      entity.OrderStatus(c.QueryParam("status")),
		ProductType: entity.ProductType(c.QueryParam("product_type")),
		Page:        page,
		PerPage:     perPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pageView[orderView]{
		Items:       toOrderViews(out.Orders),
		Total:       out.Total,
		Pages:       out.Pages,
		CurrentPage: out.CurrentPage,
	}, "")
}

// GetOrder returns a single order; owner or admin only.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orders.GetOrder(c.Request().Context(), act, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "")
}

type updateOrderRequest struct {
	Status         *string `json:"status"`
	TrackingNumber *string `json:"tracking_number"`
	Memo           *string `json:"memo"`
}

// UpdateOrder patches an order; status changes require the admin role.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	input := usecase.UpdateOrderInput{
		TrackingNumber: req.TrackingNumber,
		Memo:           req.Memo,
	}
	if req.Status != nil {
		status := entity.OrderStatus(*req.Status)
		input.Status = &status
	}

	order, err := h.orders.UpdateOrder(c.Request().Context(), act, orderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "訂單已更新")
}

// DeleteOrder removes an order; owner or admin only.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orders.DeleteOrder(c.Request().Context(), act, orderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "訂單已刪除")
}

type attachDocumentRequest struct {
	PDFBase64   string `json:"pdf_base64" validate:"required"`
	PDFFilename string `json:"pdf_filename" validate:"max=255"`
}

// AttachDocument stores an uploaded PDF on the caller's profile.
func (h *OrderHandler) AttachDocument(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req attachDocumentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid document input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.orders.AttachDocument(c.Request().Context(), act, orderID, usecase.AttachOrderDocumentInput{
		PDFBase64:   req.PDFBase64,
		PDFFilename: req.PDFFilename,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileView(profile, false), "文件已上傳")
}

// OrderQR streams the order number as a PNG QR code.
func (h *OrderHandler) OrderQR(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.orders.OrderQR(c.Request().Context(), act, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Stats returns the admin order dashboard numbers.
func (h *OrderHandler) Stats(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	stats, err := h.orders.Stats(c.Request().Context(), act)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"counts_by_status": stats.CountsByStatus,
		"total_orders":     stats.TotalOrders,
		"total_revenue":    stats.TotalRevenue,
	}, "")
}

// sharedBoardProductType reads ?product_type= with the pegboard default.
func sharedBoardProductType(c echo.Context) entity.ProductType {
	productType := entity.ProductType(c.QueryParam("product_type"))
	if productType == "" {
		productType = entity.ProductTypePegboard
	}

	return productType
}

// SharedBoardSettings returns the effective shared board settings.
func (h *OrderHandler) SharedBoardSettings(c echo.Context) error {
	settings, err := h.boards.GetSettings(c.Request().Context(), sharedBoardProductType(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "")
}

// SharedBoardReservations returns the reserved pieces on the shared board.
func (h *OrderHandler) SharedBoardReservations(c echo.Context) error {
	reservations, err := h.boards.GetReservations(c.Request().Context(), sharedBoardProductType(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"product_type": reservations.ProductType.String(),
		"pieces":       reservations.Pieces,
	}, "")
}

// FrameOptions returns the active frame option catalog.
func (h *OrderHandler) FrameOptions(c echo.Context) error {
	options, err := h.boards.ListFrameOptions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toFrameOptionViews(options), "")
}
