// File: internal/middleware/middleware.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"urenregistratie/internal/database"
	"urenregistratie/internal/logger"
	"urenregistratie/internal/model"
	"urenregistratie/internal/policy"
	"urenregistratie/internal/service"
	"urenregistratie/internal/store"

	"github.com/labstack/echo/v4"
)

// ContextUserKey holds the policy.Actor of the authenticated request.
const ContextUserKey = "user"

// Swapped in tests.
var (
	verifyAccessToken = service.VerifyAccessToken
	getUserByID       = store.GetUserByID
)

func extractClaims(c echo.Context, secret string) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := verifyAccessToken(parts[1], secret)
	if err != nil {
		log := logger.Get()
		log.Debug().Err(err).Str("path", c.Path()).Msg("rejected access token")
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// RequireAuth verifies the bearer token and stores the caller as a policy.Actor.
// The role is read from the users table on every request, so a role change or
// a deleted account takes effect before the token expires.
func RequireAuth(db database.Querier, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, secret)
			if err != nil {
				return err
			}
			user, err := getUserByID(c.Request().Context(), db, claims.UserID)
			if errors.Is(err, model.ErrNotFound) {
				return echo.NewHTTPError(http.StatusUnauthorized, "account no longer exists")
			}
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, policy.Actor{UserID: user.ID, Role: user.Role})
			return next(c)
		}
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := Actor(c)
		if err != nil {
			return err
		}
		if !policy.IsAdmin(actor) {
			return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
		}
		return next(c)
	}
}

// Actor returns the authenticated caller, or a 401 when there is none.
func Actor(c echo.Context) (policy.Actor, error) {
	actor, ok := c.Get(ContextUserKey).(policy.Actor)
	if !ok {
		return policy.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return actor, nil
}
