package handler

import (
	"log/slog"
	"net/http"

	"alufactory/internal/delivery/http/response"
	"alufactory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user and address book handlers.
type UserHandler struct {
	users  usecase.UserUsecase
	addrs  usecase.AddressUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(users usecase.UserUsecase, addrs usecase.AddressUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, addrs: addrs, logger: logger}
}

// GetUser returns a user with their addresses; owner or admin only.
func (h *UserHandler) GetUser(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.users.GetUser(c.Request().Context(), act, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":      toUserView(detail.User),
		"addresses": toAddressViews(detail.Addresses),
	}, "")
}

type updateUserRequest struct {
	FullName        *string `json:"full_name"`
	Email           *string `json:"email" validate:"omitempty,email"`
	MembershipLevel *string `json:"membership_level"`
	IsActive        *bool   `json:"is_active"`
}

// UpdateUser patches a user's editable fields.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.users.UpdateUser(c.Request().Context(), act, userID, usecase.UpdateUserInput{
		FullName:        req.FullName,
		Email:           req.Email,
		MembershipLevel: req.MembershipLevel,
		IsActive:        req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "使用者已更新")
}

// ListAddresses returns a user's address book.
func (h *UserHandler) ListAddresses(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	addresses, err := h.addrs.ListAddresses(c.Request().Context(), act, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressViews(addresses), "")
}

type addressRequest struct {
	RecipientName string `json:"recipient_name" validate:"required,max=64"`
	Phone         string `json:"phone" validate:"required,max=20"`
	Province      string `json:"province" validate:"required,max=64"`
	Detail        string `json:"detail" validate:"required,max=255"`
	IsDefault     bool   `json:"is_default"`
}

// CreateAddress adds an address to the caller's own book.
func (h *UserHandler) CreateAddress(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.addrs.CreateAddress(c.Request().Context(), act, userID, usecase.CreateAddressInput{
		RecipientName: req.RecipientName,
		Phone:         req.Phone,
		Province:      req.Province,
		Detail:        req.Detail,
		IsDefault:     req.IsDefault,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAddressView(address), "地址已新增")
}

type updateAddressRequest struct {
	RecipientName *string `json:"recipient_name"`
	Phone         *string `json:"phone"`
	Province      *string `json:"province"`
	Detail        *string `json:"detail"`
	IsDefault     *bool   `json:"is_default"`
}

// UpdateAddress patches an address; owner only.
func (h *UserHandler) UpdateAddress(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	addressID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	address, err := h.addrs.UpdateAddress(c.Request().Context(), act, addressID, usecase.UpdateAddressInput{
		RecipientName: req.RecipientName,
		Phone:         req.Phone,
		Province:      req.Province,
		Detail:        req.Detail,
		IsDefault:     req.IsDefault,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressView(address), "地址已更新")
}

// DeleteAddress removes an address; owner only.
func (h *UserHandler) DeleteAddress(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	addressID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.addrs.DeleteAddress(c.Request().Context(), act, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "地址已刪除")
}
