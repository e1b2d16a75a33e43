package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/service"
	"github.com/azerguest/azerguest-api/internal/util"
)

type FavoriteHandler struct {
	favorites *service.FavoriteService
}

// RegisterFavorites mounts the favorites API. defaultUserID, when positive,
// stands in for anonymous callers.
func RegisterFavorites(e *echo.Echo, auth *service.AuthService, favorites *service.FavoriteService, defaultUserID int64) {
	handler := &FavoriteHandler{favorites: favorites}

	group := e.Group("/api/favorites", RequireUserOrDefault(auth, defaultUserID))
	group.GET("", handler.listFavorites)
	group.POST("/add", handler.addFavorite)
	group.POST("/remove", handler.removeFavorite)
}

func (h *FavoriteHandler) addFavorite(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	var req FavoriteRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, err, "invalid request")
	}

	updated, err := h.favorites.Save(c.Request().Context(), user.ID, req.PlaceID)
	if err != nil {
		return respondError(c, err, "could not update favorites")
	}

	return c.JSON(http.StatusOK, util.OK("Added to favorites", util.Envelope{
		"points": updated.Points,
		"level":  updated.Level,
	}))
}

func (h *FavoriteHandler) removeFavorite(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	var req FavoriteRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, err, "invalid request")
	}

	if err := h.favorites.Remove(c.Request().Context(), user.ID, req.PlaceID); err != nil {
		return respondError(c, err, "could not update favorites")
	}
	return c.JSON(http.StatusOK, util.OK("Removed from favorites", nil))
}

func (h *FavoriteHandler) listFavorites(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	places, err := h.favorites.List(c.Request().Context(), user.ID)
	if err != nil {
		return respondError(c, err, "unable to load favorites")
	}
	if places == nil {
		places = []domain.Place{}
	}
	return c.JSON(http.StatusOK, util.OK("", util.Envelope{
		"count":  len(places),
		"places": places,
	}))
}
