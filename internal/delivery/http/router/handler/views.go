package handler

import (
	"time"

	"alufactory/internal/domain/entity"
	"alufactory/internal/usecase"

	"github.com/google/uuid"
)

// Response views decouple the wire format from the domain entities. They
// keep sensitive columns such as the password hash out of every payload.

type userView struct {
	ID               uuid.UUID  `json:"id"`
	Username         string     `json:"username"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email,omitempty"`
	FullName         string     `json:"full_name,omitempty"`
	MembershipLevel  string     `json:"membership_level"`
	MembershipPoints int        `json:"membership_points"`
	IsActive         bool       `json:"is_active"`
	IsAdmin          bool       `json:"is_admin"`
	CreatedAt        time.Time  `json:"created_at"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:               user.ID,
		Username:         user.Username,
		Phone:            user.Phone,
		Email:            user.Email,
		FullName:         user.FullName,
		MembershipLevel:  user.MembershipLevel.String(),
		MembershipPoints: user.MembershipPoints,
		IsActive:         user.IsActive,
		IsAdmin:          user.IsAdmin,
		CreatedAt:        user.CreatedAt,
		LastLogin:        user.LastLogin,
	}
}

func toUserViews(users []*entity.User) []userView {
	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}

	return views
}

type authView struct {
	User        userView `json:"user"`
	AccessToken string   `json:"access_token"`
}

func toAuthView(out *usecase.AuthOutput) authView {
	return authView{User: toUserView(out.User), AccessToken: out.AccessToken}
}

type addressView struct {
	ID            uuid.UUID `json:"id"`
	RecipientName string    `json:"recipient_name"`
	Phone         string    `json:"phone"`
	Province      string    `json:"province,omitempty"`
	Detail        string    `json:"detail,omitempty"`
	IsDefault     bool      `json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
}

func toAddressView(address *entity.Address) addressView {
	return addressView{
		ID:            address.ID,
		RecipientName: address.RecipientName,
		Phone:         address.Phone,
		Province:      address.Province,
		Detail:        address.Detail,
		IsDefault:     address.IsDefault,
		CreatedAt:     address.CreatedAt,
	}
}

func toAddressViews(addresses []*entity.Address) []addressView {
	views := make([]addressView, 0, len(addresses))
	for _, address := range addresses {
		views = append(views, toAddressView(address))
	}

	return views
}

type cartItemView struct {
	ID          uuid.UUID      `json:"id"`
	ProductID   string         `json:"product_id"`
	ProductName string         `json:"product_name"`
	ProductType string         `json:"product_type"`
	Quantity    int            `json:"quantity"`
	UnitPrice   float64        `json:"unit_price"`
	TotalPrice  float64        `json:"total_price"`
	Config      map[string]any `json:"config,omitempty"`
}

type cartView struct {
	ID         uuid.UUID      `json:"id"`
	Items      []cartItemView `json:"items"`
	TotalPrice float64        `json:"total_price"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func toCartView(out *usecase.CartOutput) cartView {
	items := make([]cartItemView, 0, len(out.Cart.Items))
	for _, item := range out.Cart.Items {
		items = append(items, cartItemView{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductType: item.ProductType.String(),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
			Config:      item.Config,
		})
	}

	return cartView{
		ID:         out.Cart.ID,
		Items:      items,
		TotalPrice: out.TotalPrice,
		UpdatedAt:  out.Cart.UpdatedAt,
	}
}

type orderItemView struct {
	ID          uuid.UUID      `json:"id"`
	ProductID   string         `json:"product_id"`
	ProductName string         `json:"product_name"`
	ProductType string         `json:"product_type"`
	Quantity    int            `json:"quantity"`
	UnitPrice   float64        `json:"unit_price"`
	TotalPrice  float64        `json:"total_price"`
	Config      map[string]any `json:"config,omitempty"`
}

type orderView struct {
	ID             uuid.UUID       `json:"id"`
	OrderNumber    string          `json:"order_number"`
	UserID         uuid.UUID       `json:"user_id"`
	RecipientName  string          `json:"recipient_name"`
	Phone          string          `json:"phone"`
	Province       string          `json:"province,omitempty"`
	AddressDetail  string          `json:"address_detail,omitempty"`
	Subtotal       float64         `json:"subtotal"`
	ShippingFee    float64         `json:"shipping_fee"`
	TotalAmount    float64         `json:"total_amount"`
	Status         string          `json:"status"`
	TrackingNumber string          `json:"tracking_number,omitempty"`
	Memo           string          `json:"memo,omitempty"`
	Items          []orderItemView `json:"items"`
	CreatedAt      time.Time       `json:"created_at"`
	ShippedAt      *time.Time      `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time      `json:"delivered_at,omitempty"`
	CancelledAt    *time.Time      `json:"cancelled_at,omitempty"`
}

func toOrderView(order *entity.Order) orderView {
	items := make([]orderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemView{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductType: item.ProductType.String(),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
			Config:      item.Config,
		})
	}

	return orderView{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		UserID:         order.UserID,
		RecipientName:  order.RecipientName,
		Phone:          order.Phone,
		Province:       order.Province,
		AddressDetail:  order.AddressDetail,
		Subtotal:       order.Subtotal,
		ShippingFee:    order.ShippingFee,
		TotalAmount:    order.TotalAmount,
		Status:         order.Status.String(),
		TrackingNumber: order.TrackingNumber,
		Memo:           order.Memo,
		Items:          items,
		CreatedAt:      order.CreatedAt,
		ShippedAt:      order.ShippedAt,
		DeliveredAt:    order.DeliveredAt,
		CancelledAt:    order.CancelledAt,
	}
}

func toOrderViews(orders []*entity.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}

	return views
}

type profileView struct {
	ID          uuid.UUID             `json:"id"`
	UserID      uuid.UUID             `json:"user_id"`
	ProfileName string                `json:"profile_name"`
	ProfileData map[string]any        `json:"profile_data,omitempty"`
	Address     entity.ProfileAddress `json:"address"`
	PDFFilename string                `json:"pdf_filename,omitempty"`
	PDFBase64   string                `json:"pdf_base64,omitempty"`
	HasDocument bool                  `json:"has_document"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// toProfileView renders a profile. The base64 payload is heavy, so list
// endpoints pass includeDocument=false and detail endpoints include it.
func toProfileView(profile *entity.Profile, includeDocument bool) profileView {
	view := profileView{
		ID:          profile.ID,
		UserID:      profile.UserID,
		ProfileName: profile.ProfileName,
		ProfileData: profile.ProfileData,
		Address:     profile.Address,
		PDFFilename: profile.PDFFilename,
		HasDocument: profile.PDFBase64 != "" || profile.PDFPath != "",
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
	if includeDocument {
		view.PDFBase64 = profile.PDFBase64
	}

	return view
}

func toProfileViews(profiles []*entity.Profile) []profileView {
	views := make([]profileView, 0, len(profiles))
	for _, profile := range profiles {
		views = append(views, toProfileView(profile, false))
	}

	return views
}

type frameOptionView struct {
	ID          uuid.UUID `json:"id"`
	Style       string    `json:"style"`
	Material    string    `json:"material"`
	Color       string    `json:"color"`
	WidthCm     float64   `json:"width_cm"`
	HeightCm    float64   `json:"height_cm"`
	MatBorderCm *float64  `json:"mat_border_cm,omitempty"`
	ExtraPrice  float64   `json:"extra_price"`
	IsActive    bool      `json:"is_active"`
}

func toFrameOptionView(option *entity.FrameOption) frameOptionView {
	return frameOptionView{
		ID:          option.ID,
		Style:       option.Style,
		Material:    option.Material,
		Color:       option.Color,
		WidthCm:     option.WidthCm,
		HeightCm:    option.HeightCm,
		MatBorderCm: option.MatBorderCm,
		ExtraPrice:  option.ExtraPrice,
		IsActive:    option.IsActive,
	}
}

func toFrameOptionViews(options []*entity.FrameOption) []frameOptionView {
	views := make([]frameOptionView, 0, len(options))
	for _, option := range options {
		views = append(views, toFrameOptionView(option))
	}

	return views
}

type pageView[T any] struct {
	Items       []T   `json:"items"`
	Total       int64 `json:"total"`
	Pages       int   `json:"pages"`
	CurrentPage int   `json:"current_page"`
}
