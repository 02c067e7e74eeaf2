package router

import (
	"github.com/labstack/echo/v4"

	"jaybesin/internal/adapter/api/handler"
	"jaybesin/internal/adapter/api/middleware"
)

// SetupChargerRouter initializes charging equipment routes
func SetupChargerRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	chargerHandler := handler.GetChargerHandler()

	// Public routes
	e.GET("/v1/charging", chargerHandler.ListChargers)

	// Admin routes
	admin := e.Group("/v1/admin/charging")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", chargerHandler.CreateCharger)
	admin.PUT("/:id", chargerHandler.UpdateCharger)
	admin.DELETE("/:id", chargerHandler.DeleteCharger)
}
