package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContextWithClaims(claims interface{}) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/vehicles", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set("claims", claims)
	}
	return c
}

func TestAdminOnlyAllowsAdminClaim(t *testing.T) {
	m := NewAdminMiddleware()
	called := false
	next := func(c echo.Context) error {
		called = true
		return nil
	}

	c := newContextWithClaims(map[string]interface{}{"admin": true})
	require.NoError(t, m.AdminOnly(next)(c))
	assert.True(t, called)
}

func TestAdminOnlyRejectsMissingClaim(t *testing.T) {
	m := NewAdminMiddleware()
	next := func(c echo.Context) error { return nil }

	for _, claims := range []interface{}{
		nil,
		map[string]interface{}{},
		map[string]interface{}{"admin": false},
		map[string]interface{}{"admin": "true"}, // wrong type
	} {
		c := newContextWithClaims(claims)
		err := m.AdminOnly(next)(c)
		require.Error(t, err)

		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusForbidden, he.Code)
	}
}
