package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"alufactory/internal/delivery/http/response"
	"alufactory/internal/domain/entity"
	"alufactory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin console handlers. Route
// level RequireAdmin already gates access; the usecases re-check the role
// so a misconfigured route cannot widen the surface.
type AdminHandler struct {
	admin  usecase.AdminUsecase
	orders usecase.OrderUsecase
	boards usecase.BoardUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(admin usecase.AdminUsecase, orders usecase.OrderUsecase, boards usecase.BoardUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, orders: orders, boards: boards, logger: logger}
}

// ListUsers returns a page of users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	out, err := h.admin.ListUsers(c.Request().Context(), act, pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pageView[userView]{
		Items:       toUserViews(out.Users),
		Total:       out.Total,
		Pages:       out.Pages,
		CurrentPage: out.CurrentPage,
	}, "")
}

// CreateUser registers an account on a customer's behalf.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.admin.CreateUser(c.Request().Context(), act, usecase.RegisterInput{
		Username: req.Username,
		Phone:    req.Phone,
		Password: req.Password,
		Email:    req.Email,
		FullName: req.FullName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(user), "使用者已建立")
}

type deleteUserRequest struct {
	Password string `json:"password" validate:"required"`
}

// DeleteUser removes a user after re-checking the admin's own password.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req deleteUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.admin.DeleteUser(c.Request().Context(), act, userID, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "使用者已刪除")
}

// ActivateUser sets a user's active flag.
func (h *AdminHandler) ActivateUser(c echo.Context) error {
	return h.setUserActive(c, true, "使用者已啟用")
}

// DeactivateUser clears a user's active flag.
func (h *AdminHandler) DeactivateUser(c echo.Context) error {
	return h.setUserActive(c, false, "使用者已停用")
}

func (h *AdminHandler) setUserActive(c echo.Context, active bool, message string) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.admin.SetUserActive(c.Request().Context(), act, userID, active)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), message)
}

// PromoteUser grants the admin role to a user.
func (h *AdminHandler) PromoteUser(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.admin.PromoteUser(c.Request().Context(), act, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "已授予管理員權限")
}

type membershipRequest struct {
	MembershipLevel string `json:"membership_level" validate:"required"`
}

// SetMembership changes a user's membership level.
func (h *AdminHandler) SetMembership(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req membershipRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid membership input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.admin.SetMembership(c.Request().Context(), act, userID, entity.MembershipLevel(req.MembershipLevel))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "會員等級已更新")
}

type resetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,max=72"`
}

// ResetPassword overwrites a user's password.
func (h *AdminHandler) ResetPassword(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.admin.ResetPassword(c.Request().Context(), act, userID, req.NewPassword); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "密碼已重設")
}

// ListOrders returns a filtered page of all orders.
func (h *AdminHandler) ListOrders(c echo.Context) error {
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

type orderStatusRequest struct {
	Status         string  `json:"status" validate:"required"`
	TrackingNumber *string `json:"tracking_number"`
	Memo           *string `json:"memo"`
}

// UpdateOrderStatus moves an order through its lifecycle.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	status := entity.OrderStatus(req.Status)
	order, err := h.orders.UpdateOrder(c.Request().Context(), act, orderID, usecase.UpdateOrderInput{
		Status:         &status,
		TrackingNumber: req.TrackingNumber,
		Memo:           req.Memo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "訂單狀態已更新")
}

// ExportOrders streams an .xlsx workbook of orders.
func (h *AdminHandler) ExportOrders(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	workbook, err := h.admin.ExportOrders(c.Request().Context(), act, entity.OrderStatus(c.QueryParam("status")))
	if err != nil {
		return errors.WithStack(err)
	}

	filename := "orders_" + time.Now().Format("20060102") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

// Statistics returns the admin dashboard summary.
func (h *AdminHandler) Statistics(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	stats, err := h.admin.Statistics(c.Request().Context(), act)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"total_users":      stats.TotalUsers,
		"active_users":     stats.ActiveUsers,
		"total_orders":     stats.TotalOrders,
		"counts_by_status": stats.CountsByStatus,
		"total_revenue":    stats.TotalRevenue,
	}, "")
}

// GetSharedBoardSettings returns the effective shared board settings.
func (h *AdminHandler) GetSharedBoardSettings(c echo.Context) error {
	settings, err := h.boards.GetSettings(c.Request().Context(), sharedBoardProductType(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "")
}

// UpdateSharedBoardSettings upserts the shared board override.
func (h *AdminHandler) UpdateSharedBoardSettings(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	var patch entity.SharedBoardSettingsPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	settings, err := h.boards.UpdateSettings(c.Request().Context(), act, sharedBoardProductType(c), patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "共用板材設定已更新")
}

// ListProfiles returns a page of saved profiles.
func (h *AdminHandler) ListProfiles(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	out, err := h.admin.ListProfiles(c.Request().Context(), act, pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pageView[profileView]{
		Items:       toProfileViews(out.Profiles),
		Total:       out.Total,
		Pages:       out.Pages,
		CurrentPage: out.CurrentPage,
	}, "")
}

type frameOptionRequest struct {
	Style       string   `json:"style" validate:"required,max=64"`
	Material    string   `json:"material" validate:"required,max=64"`
	Color       string   `json:"color" validate:"required,max=64"`
	WidthCm     float64  `json:"width_cm" validate:"gt=0"`
	HeightCm    float64  `json:"height_cm" validate:"gt=0"`
	MatBorderCm *float64 `json:"mat_border_cm"`
	ExtraPrice  float64  `json:"extra_price" validate:"min=0"`
}

// CreateFrameOption adds a frame catalog entry.
func (h *AdminHandler) CreateFrameOption(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	var req frameOptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid frame option input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	option, err := h.admin.CreateFrameOption(c.Request().Context(), act, usecase.CreateFrameOptionInput{
		Style:       req.Style,
		Material:    req.Material,
		Color:       req.Color,
		WidthCm:     req.WidthCm,
		HeightCm:    req.HeightCm,
		MatBorderCm: req.MatBorderCm,
		ExtraPrice:  req.ExtraPrice,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toFrameOptionView(option), "畫框選項已建立")
}

// ListFrameOptions returns every frame option including inactive ones.
func (h *AdminHandler) ListFrameOptions(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	options, err := h.admin.ListFrameOptions(c.Request().Context(), act)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toFrameOptionViews(options), "")
}

type updateFrameOptionRequest struct {
	Style       *string  `json:"style"`
	Material    *string  `json:"material"`
	Color       *string  `json:"color"`
	WidthCm     *float64 `json:"width_cm"`
	HeightCm    *float64 `json:"height_cm"`
	MatBorderCm *float64 `json:"mat_border_cm"`
	ExtraPrice  *float64 `json:"extra_price"`
	IsActive    *bool    `json:"is_active"`
}

// UpdateFrameOption patches a frame catalog entry.
func (h *AdminHandler) UpdateFrameOption(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	optionID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateFrameOptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid frame option input")
	}

	option, err := h.admin.UpdateFrameOption(c.Request().Context(), act, optionID, usecase.UpdateFrameOptionInput{
		Style:       req.Style,
		Material:    req.Material,
		Color:       req.Color,
		WidthCm:     req.WidthCm,
		HeightCm:    req.HeightCm,
		MatBorderCm: req.MatBorderCm,
		ExtraPrice:  req.ExtraPrice,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toFrameOptionView(option), "畫框選項已更新")
}

// DeactivateFrameOption soft-deletes a frame catalog entry.
func (h *AdminHandler) DeactivateFrameOption(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	optionID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.admin.DeactivateFrameOption(c.Request().Context(), act, optionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "畫框選項已停用")
}
