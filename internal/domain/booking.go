package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// BookingDateLayout is the wire format of start_date and end_date.
const BookingDateLayout = "2006-01-02"

// Booking is a priced reservation. Everything except Status is fixed at creation.
type Booking struct {
	ID         int64         `db:"id" json:"id"`
	Reference  uuid.UUID     `db:"reference" json:"reference"`
	PlaceID    int64         `db:"place_id" json:"place_id"`
	UserID     *int64        `db:"user_id" json:"user_id,omitempty"`
	UserName   string        `db:"user_name" json:"user_name"`
	UserEmail  string        `db:"user_email" json:"user_email"`
	StartDate  time.Time     `db:"start_date" json:"start_date"`
	EndDate    time.Time     `db:"end_date" json:"end_date"`
	Guests     int           `db:"guests" json:"guests"`
	TotalPrice int64         `db:"total_price" json:"total_price"`
	Status     BookingStatus `db:"status" json:"status"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
}

// MaxBookingGuests caps the party size of a single booking.
const MaxBookingGuests = 50

const secondsPerDay = 24 * 60 * 60

// StayNights returns the calendar days between start and end; it is zero or negative for inverted ranges.
// It counts Unix day numbers since a time.Duration saturates after about 292 years.
func StayNights(start, end time.Time) int64 {
	return unixDay(end) - unixDay(start)
}

func unixDay(t time.Time) int64 {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.Unix() / secondsPerDay
}

// BookingPrice is rate x guests x nights. ok is false when an operand is
// negative or the product does not fit in an int64.
func BookingPrice(rate int64, guests int, nights int64) (total int64, ok bool) {
	total, ok = mulNonNegative(rate, int64(guests))
	if !ok {
		return 0, false
	}
	return mulNonNegative(total, nights)
}

func mulNonNegative(a, b int64) (int64, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a != 0 && b > math.MaxInt64/a {
		return 0, false
	}
	return a * b, true
}
