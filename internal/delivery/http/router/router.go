// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"alufactory/internal/delivery/http/middleware"
	"alufactory/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	ProfileHandler *handler.ProfileHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	profileHandler *handler.ProfileHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		profileHandler: params.ProfileHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)

		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.POST("/change-password", r.authHandler.ChangePassword, r.authMiddleware.Authenticate)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// User and address routes
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.PUT("/:id", r.userHandler.UpdateUser)

		userGroup.GET("/:id/addresses", r.userHandler.ListAddresses)
		userGroup.POST("/:id/addresses", r.userHandler.CreateAddress)
		userGroup.PUT("/addresses/:id", r.userHandler.UpdateAddress)
		userGroup.DELETE("/addresses/:id", r.userHandler.DeleteAddress)
	}

	// Cart routes
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
		cartGroup.POST("/clear", r.cartHandler.Clear)
	}

	// Order routes. The static paths register before /:id so echo does
	// not capture them as an order id.
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("/shared-board/settings", r.orderHandler.SharedBoardSettings)
		orderGroup.GET("/shared-board/reservations", r.orderHandler.SharedBoardReservations)
		orderGroup.GET("/frame/options", r.orderHandler.FrameOptions)
		orderGroup.GET("/stats", r.orderHandler.Stats, r.authMiddleware.RequireAdmin)

		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.PUT("/:id", r.orderHandler.UpdateOrder)
		orderGroup.DELETE("/:id", r.orderHandler.DeleteOrder)
		orderGroup.POST("/:id/pdf", r.orderHandler.AttachDocument)
		orderGroup.GET("/:id/qrcode", r.orderHandler.OrderQR)
	}

	// Profile routes
	profileGroup := e.Group("/profiles")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.ListMine)
		profileGroup.POST("", r.profileHandler.Create)
		profileGroup.GET("/:id", r.profileHandler.Get)
		profileGroup.PUT("/:id", r.profileHandler.Update)
		profileGroup.DELETE("/:id", r.profileHandler.Delete)
		profileGroup.GET("/:id/document", r.profileHandler.GetDocument)
	}

	// Admin console routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/users", r.adminHandler.CreateUser)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)
		adminGroup.POST("/users/:id/activate", r.adminHandler.ActivateUser)
		adminGroup.POST("/users/:id/deactivate", r.adminHandler.DeactivateUser)
		adminGroup.POST("/users/:id/promote", r.adminHandler.PromoteUser)
		adminGroup.PUT("/users/:id/membership", r.adminHandler.SetMembership)
		adminGroup.POST("/users/:id/reset-password", r.adminHandler.ResetPassword)

		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.GET("/orders/export", r.adminHandler.ExportOrders)
		adminGroup.PUT("/orders/:id/status", r.adminHandler.UpdateOrderStatus)

		adminGroup.GET("/statistics", r.adminHandler.Statistics)

		adminGroup.GET("/settings/shared-board", r.adminHandler.GetSharedBoardSettings)
		adminGroup.PUT("/settings/shared-board", r.adminHandler.UpdateSharedBoardSettings)

		adminGroup.GET("/frame/options", r.adminHandler.ListFrameOptions)
		adminGroup.POST("/frame/options", r.adminHandler.CreateFrameOption)
		adminGroup.PUT("/frame/options/:id", r.adminHandler.UpdateFrameOption)
		adminGroup.DELETE("/frame/options/:id", r.adminHandler.DeactivateFrameOption)

		adminGroup.GET("/profiles", r.adminHandler.ListProfiles)
	}
}
