package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/service"
	"github.com/azerguest/azerguest-api/internal/util"
)

type PlaceHandler struct {
	places *service.PlaceService
}

func RegisterPlaces(e *echo.Echo, places *service.PlaceService) {
	handler := &PlaceHandler{places: places}

	e.GET("/api/places", handler.listPlaces)
	e.GET("/api/places/top", handler.topPlaces)
	e.GET("/api/places/:id", handler.getPlace)
	e.POST("/api/places/filter", handler.filterPlaces)
	e.GET("/api/search", handler.searchPlaces)
}

func placesEnvelope(places []domain.Place) util.Envelope {
	if places == nil {
		places = []domain.Place{}
	}
	return util.OK("", util.Envelope{
		"count":  len(places),
		"places": places,
	})
}

func (h *PlaceHandler) listPlaces(c echo.Context) error {
	places, err := h.places.List(c.Request().Context())
	if err != nil {
		return respondError(c, err, "unable to load places")
	}
	return c.JSON(http.StatusOK, placesEnvelope(places))
}

func (h *PlaceHandler) topPlaces(c echo.Context) error {
	limit := 0
	if raw := strings.TrimSpace(c.QueryParam("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return badRequest(c, "limit must be a positive integer")
		}
		limit = parsed
	}
	places, err := h.places.Top(c.Request().Context(), limit)
	if err != nil {
		return respondError(c, err, "unable to load places")
	}
	return c.JSON(http.StatusOK, placesEnvelope(places))
}

// getPlace returns the detail view and counts it as a view.
func (h *PlaceHandler) getPlace(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid place id")
	}
	place, err := h.places.View(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "unable to load place")
	}
	return c.JSON(http.StatusOK, util.Data("place", place))
}

func (h *PlaceHandler) filterPlaces(c echo.Context) error {
	var req FilterRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, err, "invalid filter")
	}
	places, err := h.places.Filter(c.Request().Context(), service.FilterInput{
		Categories: req.Categories,
		PriceMin:   req.PriceMin,
		PriceMax:   req.PriceMax,
		Ratings:    req.Ratings,
	})
	if err != nil {
		return respondError(c, err, "unable to filter places")
	}
	return c.JSON(http.StatusOK, placesEnvelope(places))
}

// searchPlaces matches regions against from/to. start and end are accepted
// for form compatibility and ignored.
func (h *PlaceHandler) searchPlaces(c echo.Context) error {
	places, err := h.places.Search(c.Request().Context(), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return respondError(c, err, "unable to search places")
	}
	return c.JSON(http.StatusOK, placesEnvelope(places))
}
