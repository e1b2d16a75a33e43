package http

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/service"
	"github.com/azerguest/azerguest-api/internal/util"
)

const (
	contextUserKey    = "auth.user"
	contextTokenKey   = "auth.token"
	sessionCookieName = "session"
)

// bearerToken reads the token from the Authorization header, falling back to
// the session cookie set at login.
func bearerToken(c echo.Context) string {
	if header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization)); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		return strings.TrimSpace(cookie.Value)
	}
	return ""
}

func RequireAuth(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
			}
			user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return respondError(c, err, "unable to verify session")
			}
			c.Set(contextUserKey, user)
			c.Set(contextTokenKey, token)
			return next(c)
		}
	}
}

// OptionalAuth attaches the caller when a valid token is presented and lets
// anonymous requests through untouched.
func OptionalAuth(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := bearerToken(c); token != "" {
				user, err := auth.Authenticate(c.Request().Context(), token)
				if err == nil {
					c.Set(contextUserKey, user)
					c.Set(contextTokenKey, token)
				} else if !isAuthError(err) {
					log.Printf("optional auth: %v", err)
				}
			}
			return next(c)
		}
	}
}

// RequireUserOrDefault behaves like RequireAuth, except that anonymous callers
// act as defaultUserID when it is positive.
func RequireUserOrDefault(auth *service.AuthService, defaultUserID int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := bearerToken(c); token != "" {
				user, err := auth.Authenticate(c.Request().Context(), token)
				if err != nil {
					return respondError(c, err, "unable to verify session")
				}
				c.Set(contextUserKey, user)
				c.Set(contextTokenKey, token)
				return next(c)
			}
			if defaultUserID <= 0 {
				return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
			}
			user, err := auth.CurrentUser(c.Request().Context(), defaultUserID)
			if err != nil {
				return respondError(c, err, "unable to load default user")
			}
			c.Set(contextUserKey, user)
			return next(c)
		}
	}
}

func RequireAdmin(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
			}
			if !auth.IsAdmin(user) {
				return c.JSON(http.StatusForbidden, util.Error("admin privileges required"))
			}
			return next(c)
		}
	}
}

func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(contextUserKey).(*domain.User)
	return user, ok && user != nil
}

func currentToken(c echo.Context) string {
	if token, ok := c.Get(contextTokenKey).(string); ok && token != "" {
		return token
	}
	return bearerToken(c)
}
