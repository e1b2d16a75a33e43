package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/azerguest/azerguest-api/internal/service"
	"github.com/azerguest/azerguest-api/internal/util"
)

// respondError maps service errors onto the response envelope. Conflicts are
// soft failures and keep a 200 status. Unclassified errors are logged and
// answered with fallback so no internal detail leaks.
func respondError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusOK, util.Error(service.Message(err)))
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, util.Error(service.Message(err)))
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, util.Error(service.Message(err)))
	case errors.Is(err, service.ErrAuthRequired):
		return c.JSON(http.StatusUnauthorized, util.Error(service.Message(err)))
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, util.Error(service.Message(err)))
	case errors.Is(err, service.ErrImageUploadDisabled):
		return c.JSON(http.StatusServiceUnavailable, util.Error(err.Error()))
	default:
		log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(http.StatusInternalServerError, util.Error(fallback))
	}
}

func isAuthError(err error) bool {
	return errors.Is(err, service.ErrAuthRequired) || errors.Is(err, service.ErrNotFound)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, util.Error(message))
}
