package handler

import (
	"log/slog"
	"net/http"

	"alufactory/internal/delivery/http/response"
	"alufactory/internal/domain/entity"
	"alufactory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for shopping cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

// GetCart returns the caller's cart, creating it on first access.
func (h *CartHandler) GetCart(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	out, err := h.uc.GetCart(c.Request().Context(), act)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartView(out), "")
}

type addCartItemRequest struct {
	ProductID   string         `json:"product_id" validate:"required,max=64"`
	ProductName string         `json:"product_name" validate:"required,max=128"`
	ProductType string         `json:"product_type" validate:"required"`
	Quantity    int            `json:"quantity" validate:"min=0"`
	UnitPrice   float64        `json:"unit_price" validate:"min=0"`
	Config      map[string]any `json:"config"`
}

// AddItem adds a product to the cart, merging into an existing line when
// the product is already there.
func (h *CartHandler) AddItem(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.uc.AddItem(c.Request().Context(), act, usecase.AddCartItemInput{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		ProductType: entity.ProductType(req.ProductType),
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Config:      req.Config,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCartView(out), "商品已加入購物車")
}

type updateCartItemRequest struct {
	Quantity *int            `json:"quantity"`
	Config   *map[string]any `json:"config"`
}

// UpdateItem patches a cart line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	out, err := h.uc.UpdateItem(c.Request().Context(), act, itemID, usecase.UpdateCartItemInput{
		Quantity: req.Quantity,
		Config:   req.Config,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartView(out), "購物車已更新")
}

// RemoveItem deletes a single cart line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	out, err := h.uc.RemoveItem(c.Request().Context(), act, itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartView(out), "商品已移除")
}

// Clear removes every line from the caller's cart.
func (h *CartHandler) Clear(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	out, err := h.uc.Clear(c.Request().Context(), act)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartView(out), "購物車已清空")
}
