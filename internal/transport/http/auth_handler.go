package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/azerguest/azerguest-api/internal/service"
	"github.com/azerguest/azerguest-api/internal/util"
)

type AuthHandler struct {
	auth *service.AuthService
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService) {
	handler := &AuthHandler{auth: auth}

	group := e.Group("/api/auth")
	group.POST("/register", handler.register)
	group.POST("/login", handler.login)
	group.POST("/google", handler.google)
	group.POST("/logout", handler.logout)

	e.GET("/api/user/current", handler.currentUser, RequireAuth(auth))
}

func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, err, "invalid registration")
	}

	result, err := h.auth.RegisterWithEmail(c.Request().Context(), service.RegisterInput{
		Name:                req.Name,
		Email:               req.Email,
		Password:            req.Password,
		Phone:               req.Phone,
		Gender:              req.Gender,
		Age:                 req.Age,
		Region:              req.Region,
		Family:              req.Family,
		TripsPerYear:        req.TripsPerYear,
		AvgBudgetPerYear:    req.AvgBudgetPerYear,
		FavoriteDestination: req.FavoriteDestination,
		VacationType:        req.VacationType,
		TravelInterest:      req.TravelInterest,
	})
	if err != nil {
		return respondError(c, err, "registration failed")
	}
	return h.sessionResponse(c, http.StatusCreated, "Registration successful", result)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, err, "invalid login")
	}

	result, err := h.auth.LoginWithEmail(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err, "login failed")
	}
	return h.sessionResponse(c, http.StatusOK, "Login successful", result)
}

func (h *AuthHandler) google(c echo.Context) error {
	var req GoogleLoginRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, err, "invalid login")
	}

	result, err := h.auth.LoginWithGoogle(c.Request().Context(), req.IDToken)
	if err != nil {
		return respondError(c, err, "google sign-in failed")
	}
	return h.sessionResponse(c, http.StatusOK, "Login successful", result)
}

// logout revokes the presented session, if any, and always clears the cookie.
func (h *AuthHandler) logout(c echo.Context) error {
	if token := currentToken(c); token != "" {
		if err := h.auth.Logout(c.Request().Context(), token); err != nil && !isAuthError(err) {
			return respondError(c, err, "logout failed")
		}
	}
	c.SetCookie(sessionCookie(c, "", time.Unix(0, 0)))
	return c.JSON(http.StatusOK, util.OK("Logged out", nil))
}

func (h *AuthHandler) currentUser(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	return c.JSON(http.StatusOK, util.OK("", util.Envelope{
		"user":     user,
		"is_admin": h.auth.IsAdmin(user),
	}))
}

func (h *AuthHandler) sessionResponse(c echo.Context, status int, message string, result *service.AuthResult) error {
	c.SetCookie(sessionCookie(c, result.Token, result.ExpiresAt))
	return c.JSON(status, util.OK(message, util.Envelope{
		"token":      result.Token,
		"expires_at": result.ExpiresAt.UTC().Format(time.RFC3339),
		"user":       result.User,
	}))
}

func sessionCookie(c echo.Context, value string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   strings.EqualFold(c.Scheme(), "https"),
	}
	if value == "" {
		cookie.MaxAge = -1
	}
	return cookie
}
