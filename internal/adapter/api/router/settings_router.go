package router

import (
	"github.com/labstack/echo/v4"

	"jaybesin/internal/adapter/api/handler"
	"jaybesin/internal/adapter/api/middleware"
)

// SetupSettingsRouter initializes site settings routes
func SetupSettingsRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	settingsHandler := handler.GetSettingsHandler()

	// Public read
	e.GET("/v1/settings", settingsHandler.GetSettings)

	// Admin write
	admin := e.Group("/v1/admin/settings")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.PUT("", settingsHandler.UpdateSettings)
}
