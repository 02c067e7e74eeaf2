package router

import (
	"github.com/labstack/echo/v4"

	"jaybesin/internal/adapter/api/handler"
	"jaybesin/internal/adapter/api/middleware"
)

// SetupOrderRouter initializes order routes
func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	orderHandler := handler.GetOrderHandler()

	// Public tracking by code, no auth
	e.GET("/v1/orders/track/:code", orderHandler.Track)

	// Admin routes
	admin := e.Group("/v1/admin/orders")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", orderHandler.ListOrders)
	admin.POST("", orderHandler.SaveOrder)
	admin.PATCH("/:id/status", orderHandler.SetStatus)
	admin.DELETE("/:id", orderHandler.DeleteOrder)
}
