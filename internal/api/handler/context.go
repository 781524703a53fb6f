package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-service/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware. Claims that
// were never set mean the route was mounted without the middleware; treat
// that the same as a request without a token. Empty claim values from a
// valid token pass through unchanged.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	userID, ok := c.Get("user_id").(string)
	if !ok {
		return domain.Claims{}, domain.ErrTokenMissing
	}
	role, _ := c.Get("role").(string)
	return domain.Claims{UserID: userID, Role: role}, nil
}
