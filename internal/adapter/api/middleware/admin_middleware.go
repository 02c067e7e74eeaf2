package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminMiddleware gates the write paths: the verified token must carry
// the admin custom claim. This is the actual authorization boundary, not
// UI-level gating.
type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get("claims").(map[string]interface{})
		if !ok {
			return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
		}

		if admin, ok := claims["admin"].(bool); !ok || !admin {
			return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
		}

		return next(c)
	}
}
