package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-service/internal/api/metrics"
	"github.com/99minutos/auth-service/internal/core/domain"
	"github.com/99minutos/auth-service/internal/core/ports"
)

// Auth validates the bearer token and injects its claims into the context
// as "user_id" and "role". It never consults the credential store.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			parts := strings.SplitN(c.Request().Header.Get(echo.HeaderAuthorization), " ", 2)
			if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return domain.ErrTokenMissing
			}
			if !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return domain.ErrTokenInvalid
			}

			claims, err := verifier.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				if errors.Is(err, domain.ErrTokenMissing) {
					metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
					return domain.ErrTokenMissing
				}
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return err
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
