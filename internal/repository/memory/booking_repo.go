package memory

import (
	"context"
	"database/sql"
	"sort"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

type BookingRepository struct {
	store *Store
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.bookings {
		if existing.Reference == booking.Reference {
			return nil, ports.ErrDuplicate
		}
	}

	stored := *booking
	s.nextBookingID++
	stored.ID = s.nextBookingID
	stored.CreatedAt = s.now()
	s.bookings[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*domain.Booking, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := *booking
	return &out, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID != nil && *b.UserID == userID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	booking.Status = status
	out := *booking
	return &out, nil
}

var _ ports.BookingRepository = (*BookingRepository)(nil)
