package router

import (
	"github.com/labstack/echo/v4"

	"jaybesin/internal/adapter/api/handler"
	"jaybesin/internal/adapter/api/middleware"
)

// SetupLiveFeedRouter sets up the WebSocket live feed route. The token
// travels as a query parameter because the upgrade request cannot carry
// an Authorization header from a browser.
func SetupLiveFeedRouter(e *echo.Echo, liveFeedHandler *handler.LiveFeedHandler, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	e.GET("/v1/live", liveFeedHandler.HandleLiveFeed, authMiddleware.AuthenticateQuery, adminMiddleware.AdminOnly)
}
