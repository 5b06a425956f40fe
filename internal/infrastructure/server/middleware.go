package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	httpHandlers "github.com/zenith/core/internal/adapters/http"
	"github.com/zenith/core/internal/application/services"
)

// authMiddleware validates bearer tokens against the identity provider's
// signing key and resolves the caller's stable user id before any handler
// touches the store. The user row is upserted on first sight.
func (s *Server) authMiddleware(authService *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization header")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header format")
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				s.logger.Warn("Invalid token", "error", err, "ip", c.RealIP())
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			user, err := authService.EnsureUser(c.Request().Context(), claims)
			if err != nil {
				s.logger.Error("Failed to resolve user", "error", err, "user_id", claims.UserID)
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to resolve user")
			}

			c.Set(httpHandlers.ContextUserID, user.ID)

			return next(c)
		}
	}
}
