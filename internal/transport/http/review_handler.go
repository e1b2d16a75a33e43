package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/service"
	"github.com/azerguest/azerguest-api/internal/util"
)

type ReviewHandler struct {
	reviews *service.ReviewService
}

func RegisterReviews(e *echo.Echo, auth *service.AuthService, reviews *service.ReviewService) {
	handler := &ReviewHandler{reviews: reviews}

	e.GET("/api/places/:id/reviews", handler.listReviews)
	e.POST("/api/places/:id/reviews", handler.createReview, RequireAuth(auth))
}

func (h *ReviewHandler) createReview(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	placeID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid place id")
	}

	var req ReviewRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, err, "invalid review")
	}

	review, err := h.reviews.CreateReview(c.Request().Context(), user.ID, placeID, service.ReviewCreateInput{
		Rating:  *req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return respondError(c, err, "could not save review")
	}
	return c.JSON(http.StatusCreated, util.OK("Review saved", util.Envelope{"review": review}))
}

func (h *ReviewHandler) listReviews(c echo.Context) error {
	placeID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid place id")
	}

	limit, offset := parsePagination(c, 20, 0)
	result, err := h.reviews.ListReviews(c.Request().Context(), placeID, limit, offset)
	if err != nil {
		return respondError(c, err, "unable to load reviews")
	}
	items := result.Items
	if items == nil {
		items = []domain.Review{}
	}
	return c.JSON(http.StatusOK, util.OK("", util.Envelope{
		"reviews": items,
		"pagination": util.Envelope{
			"limit":  result.Limit,
			"offset": result.Offset,
			"count":  len(items),
		},
	}))
}
