package router

import (
	"github.com/labstack/echo/v4"

	"jaybesin/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, inquiryRateLimit echo.MiddlewareFunc) {
	SetupAuthRouter(e, authMiddleware)
	SetupVehicleRouter(e, authMiddleware, adminMiddleware)
	SetupChargerRouter(e, authMiddleware, adminMiddleware)
	SetupPartRouter(e, authMiddleware, adminMiddleware)
	SetupOrderRouter(e, authMiddleware, adminMiddleware)
	SetupInquiryRouter(e, authMiddleware, adminMiddleware, inquiryRateLimit)
	SetupSettingsRouter(e, authMiddleware, adminMiddleware)
	SetupSeedRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
