package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/service"
	"github.com/azerguest/azerguest-api/internal/util"
)

type BookingHandler struct {
	bookings *service.BookingService
}

func RegisterBookings(e *echo.Echo, auth *service.AuthService, bookings *service.BookingService) {
	handler := &BookingHandler{bookings: bookings}

	e.POST("/api/booking", handler.createBooking, OptionalAuth(auth))

	protected := e.Group("/api/bookings", RequireAuth(auth))
	protected.GET("", handler.listBookings)
	protected.PATCH("/:id/status", handler.updateStatus)
}

func (h *BookingHandler) createBooking(c echo.Context) error {
	var req BookingCreateRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, err, "invalid booking")
	}

	caller, _ := CurrentUser(c)
	booking, err := h.bookings.Create(c.Request().Context(), caller, service.BookingRequest{
		PlaceID:   req.PlaceID,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Guests:    req.Guests,
	})
	if err != nil {
		return respondError(c, err, "could not create booking")
	}

	return c.JSON(http.StatusCreated, util.OK("Booking created", util.Envelope{
		"booking_id":  booking.ID,
		"total_price": booking.TotalPrice,
		"reference":   booking.Reference,
		"status":      booking.Status,
	}))
}

func (h *BookingHandler) listBookings(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	bookings, err := h.bookings.ListByUser(c.Request().Context(), user.ID)
	if err != nil {
		return respondError(c, err, "unable to load bookings")
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return c.JSON(http.StatusOK, util.OK("", util.Envelope{
		"count":    len(bookings),
		"bookings": bookings,
	}))
}

func (h *BookingHandler) updateStatus(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid booking id")
	}

	var req BookingStatusRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, err, "invalid request")
	}

	booking, err := h.bookings.UpdateStatus(c.Request().Context(), user.ID, id, req.Status)
	if err != nil {
		return respondError(c, err, "could not update booking")
	}
	return c.JSON(http.StatusOK, util.OK("Booking updated", util.Envelope{"booking": booking}))
}
