package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

// BookingRequest is a booking as submitted. UserName and UserEmail are only
// required when there is no signed-in caller.
type BookingRequest struct {
	PlaceID   int64
	UserName  string
	UserEmail string
	StartDate string
	EndDate   string
	Guests    int
}

type BookingService struct {
	bookings ports.BookingRepository
	places   ports.PlaceRepository
	notifier BookingNotifier
}

func NewBookingService(bookings ports.BookingRepository, places ports.PlaceRepository, notifier BookingNotifier) *BookingService {
	return &BookingService{
		bookings: bookings,
		places:   places,
		notifier: notifier,
	}
}

// Create validates the request, prices the stay and stores a pending booking.
// Nothing is written when validation or the place lookup fails.
func (s *BookingService) Create(ctx context.Context, caller *domain.User, req BookingRequest) (*domain.Booking, error) {
	if req.PlaceID <= 0 {
		return nil, missingField("place_id")
	}

	name := strings.TrimSpace(req.UserName)
	email := strings.ToLower(strings.TrimSpace(req.UserEmail))
	var userID *int64
	if caller != nil {
		id := caller.ID
		userID = &id
		if name == "" {
			name = caller.Name
		}
		if email == "" {
			email = caller.Email
		}
	}
	if name == "" {
		return nil, missingField("user_name")
	}
	if email == "" {
		return nil, missingField("user_email")
	}
	if !strings.Contains(email, "@") {
		return nil, validationError("user_email", "must be a valid email address")
	}

	start, err := parseBookingDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseBookingDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}
	if req.Guests == 0 {
		return nil, missingField("guests")
	}
	if req.Guests < 0 {
		return nil, validationError("guests", "must be at least 1")
	}
	if req.Guests > domain.MaxBookingGuests {
		return nil, validationError("guests", fmt.Sprintf("must be at most %d", domain.MaxBookingGuests))
	}
	nights := domain.StayNights(start, end)
	if nights <= 0 {
		return nil, validationError("end_date", "must be after start_date")
	}

	place, err := s.places.FindByID(ctx, req.PlaceID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}
	total, ok := domain.BookingPrice(place.Price, req.Guests, nights)
	if !ok {
		return nil, validationError("end_date", "makes the total price out of range")
	}

	booking, err := s.bookings.Create(ctx, &domain.Booking{
		Reference:  uuid.New(),
		PlaceID:    place.ID,
		UserID:     userID,
		UserName:   name,
		UserEmail:  email,
		StartDate:  start,
		EndDate:    end,
		Guests:     req.Guests,
		TotalPrice: total,
		Status:     domain.BookingStatusPending,
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyBooking(ctx, BookingNotice{Booking: *booking, Place: *place}); err != nil {
			log.Printf("booking %d: notify failed: %v", booking.ID, err)
		}
	}
	return booking, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	if userID <= 0 {
		return nil, ErrAuthRequired
	}
	return s.bookings.ListByUser(ctx, userID)
}

// UpdateStatus sets any of the three statuses on a booking owned by userID.
func (s *BookingService) UpdateStatus(ctx context.Context, userID, bookingID int64, status string) (*domain.Booking, error) {
	if userID <= 0 {
		return nil, ErrAuthRequired
	}
	next := domain.BookingStatus(strings.ToLower(strings.TrimSpace(status)))
	if next == "" {
		return nil, missingField("status")
	}
	if !next.Valid() {
		return nil, validationError("status", "must be one of pending, confirmed, cancelled")
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.UserID == nil || *booking.UserID != userID {
		return nil, ErrBookingForbidden
	}

	updated, err := s.bookings.UpdateStatus(ctx, bookingID, next)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return updated, nil
}

func parseBookingDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, missingField(field)
	}
	t, err := time.Parse(domain.BookingDateLayout, value)
	if err != nil {
		return time.Time{}, validationError(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}
