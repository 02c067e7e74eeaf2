package router

import (
	"github.com/labstack/echo/v4"

	"jaybesin/internal/adapter/api/handler"
	"jaybesin/internal/adapter/api/middleware"
)

// SetupVehicleRouter initializes vehicle catalog routes
func SetupVehicleRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	vehicleHandler := handler.GetVehicleHandler()

	// Public routes
	e.GET("/v1/vehicles", vehicleHandler.ListVehicles)
	e.GET("/v1/vehicles/:id", vehicleHandler.GetVehicle)

	// Admin routes
	admin := e.Group("/v1/admin/vehicles")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", vehicleHandler.CreateVehicle)
	admin.PUT("/:id", vehicleHandler.UpdateVehicle)
	admin.DELETE("/:id", vehicleHandler.DeleteVehicle)
}
