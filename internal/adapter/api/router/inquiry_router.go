package router

import (
	"github.com/labstack/echo/v4"

	"jaybesin/internal/adapter/api/handler"
	"jaybesin/internal/adapter/api/middleware"
)

// SetupInquiryRouter initializes inquiry routes
func SetupInquiryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, rateLimit echo.MiddlewareFunc) {
	inquiryHandler := handler.GetInquiryHandler()

	// Public submission, rate limited per IP
	e.POST("/v1/inquiries", inquiryHandler.Submit, rateLimit)

	// Admin routes
	admin := e.Group("/v1/admin/inquiries")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", inquiryHandler.ListInquiries)
	admin.PATCH("/:id/reply", inquiryHandler.MarkReplied)
	admin.DELETE("/:id", inquiryHandler.DeleteInquiry)
}
