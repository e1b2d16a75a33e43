package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

const bookingColumns = `id, reference, place_id, user_id, user_name, user_email, start_date, end_date,
		guests, total_price, status, created_at`

type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepo(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	const query = `
		INSERT INTO bookings (
			reference, place_id, user_id, user_name, user_email,
			start_date, end_date, guests, total_price, status
		) VALUES (
			:reference, :place_id, :user_id, :user_name, :user_email,
			:start_date, :end_date, :guests, :total_price, :status
		)
		RETURNING ` + bookingColumns

	args := map[string]any{
		"reference":   booking.Reference,
		"place_id":    booking.PlaceID,
		"user_id":     booking.UserID,
		"user_name":   booking.UserName,
		"user_email":  booking.UserEmail,
		"start_date":  booking.StartDate,
		"end_date":    booking.EndDate,
		"guests":      booking.Guests,
		"total_price": booking.TotalPrice,
		"status":      string(booking.Status),
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		var stored domain.Booking
		if err := rows.StructScan(&stored); err != nil {
			return nil, err
		}
		return &stored, nil
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return nil, sql.ErrNoRows
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	var booking domain.Booking
	if err := r.db.GetContext(ctx, &booking, query, id); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	bookings := make([]domain.Booking, 0)
	if err := r.db.SelectContext(ctx, &bookings, query, userID); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	query := `UPDATE bookings SET status = $2 WHERE id = $1 RETURNING ` + bookingColumns
	var booking domain.Booking
	if err := r.db.GetContext(ctx, &booking, query, id, string(status)); err != nil {
		return nil, err
	}
	return &booking, nil
}

var _ ports.BookingRepository = (*BookingRepository)(nil)
