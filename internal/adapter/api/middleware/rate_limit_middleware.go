package middleware

import (
	"github.com/labstack/echo/v4"

	"jaybesin/internal/infrastructure/ratelimit"
	"jaybesin/pkg/errors"
	"jaybesin/pkg/response"
)

// RateLimitByIP guards unauthenticated endpoints against form spam.
func RateLimitByIP(limiter *ratelimit.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, _ := limiter.Allow(c.RealIP())
			if !allowed {
				return response.Error(c, errors.TooManyRequests("Too many requests, slow down"))
			}
			return next(c)
		}
	}
}
