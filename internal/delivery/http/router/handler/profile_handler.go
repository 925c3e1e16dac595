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

// ProfileHandler holds dependencies for saved-profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// ListMine returns the caller's profiles without document payloads.
func (h *ProfileHandler) ListMine(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	profiles, err := h.uc.ListMine(c.Request().Context(), act)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileViews(profiles), "")
}

// Get returns a profile including its base64 document.
func (h *ProfileHandler) Get(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	profileID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.uc.Get(c.Request().Context(), act, profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileView(profile, true), "")
}

type profileAddressRequest struct {
	RecipientName string `json:"recipient_name" validate:"max=64"`
	Phone         string `json:"phone" validate:"max=20"`
	Province      string `json:"province" validate:"max=64"`
	Detail        string `json:"detail" validate:"max=255"`
}

type createProfileRequest struct {
	ProfileName string                 `json:"profile_name" validate:"required,max=128"`
	ProfileData map[string]any         `json:"profile_data"`
	Address     *profileAddressRequest `json:"address"`
	PDFBase64   string                 `json:"pdf_base64"`
	PDFFilename string                 `json:"pdf_filename" validate:"max=255"`
}

// Create saves the caller's profile.
func (h *ProfileHandler) Create(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := usecase.CreateProfileInput{
		ProfileName: req.ProfileName,
		ProfileData: req.ProfileData,
		PDFBase64:   req.PDFBase64,
		PDFFilename: req.PDFFilename,
	}
	if req.Address != nil {
		input.Address = &entity.ProfileAddress{
			RecipientName: req.Address.RecipientName,
			Phone:         req.Address.Phone,
			Province:      req.Address.Province,
			Detail:        req.Address.Detail,
		}
	}

	profile, err := h.uc.Create(c.Request().Context(), act, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProfileView(profile, false), "設定檔已儲存")
}

type updateProfileRequest struct {
	ProfileName *string                `json:"profile_name"`
	ProfileData *map[string]any        `json:"profile_data"`
	Address     *profileAddressRequest `json:"address"`
	PDFBase64   *string                `json:"pdf_base64"`
	PDFFilename *string                `json:"pdf_filename"`
}

// Update patches a profile; owner only.
func (h *ProfileHandler) Update(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	profileID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	input := usecase.UpdateProfileInput{
		ProfileName: req.ProfileName,
		ProfileData: req.ProfileData,
		PDFBase64:   req.PDFBase64,
		PDFFilename: req.PDFFilename,
	}
	if req.Address != nil {
		input.Address = &entity.ProfileAddress{
			RecipientName: req.Address.RecipientName,
			Phone:         req.Address.Phone,
			Province:      req.Address.Province,
			Detail:        req.Address.Detail,
		}
	}

	profile, err := h.uc.Update(c.Request().Context(), act, profileID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileView(profile, false), "設定檔已更新")
}

// Delete removes a profile and its stored document; owner only.
func (h *ProfileHandler) Delete(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	profileID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), act, profileID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "設定檔已刪除")
}

// GetDocument streams the profile's PDF bytes.
func (h *ProfileHandler) GetDocument(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	profileID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	doc, err := h.uc.GetDocument(c.Request().Context(), act, profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+doc.Filename+`"`)

	return c.Blob(http.StatusOK, "application/pdf", doc.Data)
}
