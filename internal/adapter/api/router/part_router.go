package router

import (
	"github.com/labstack/echo/v4"

	"jaybesin/internal/adapter/api/handler"
	"jaybesin/internal/adapter/api/middleware"
)

// SetupPartRouter initializes spare parts routes
func SetupPartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	partHandler := handler.GetPartHandler()

	// Public routes
	e.GET("/v1/parts", partHandler.ListParts)

	// Admin routes
	admin := e.Group("/v1/admin/parts")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", partHandler.CreatePart)
	admin.PUT("/:id", partHandler.UpdatePart)
	admin.DELETE("/:id", partHandler.DeletePart)
}
