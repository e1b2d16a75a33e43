package service

import (
	"context"
	"errors"

	"github.com/azerguest/azerguest-api/internal/domain"
)

// BookingNotice is what notifiers receive once a booking is stored.
type BookingNotice struct {
	Booking domain.Booking
	Place   domain.Place
}

type BookingNotifier interface {
	NotifyBooking(ctx context.Context, notice BookingNotice) error
}

// Notifiers fans a notice out to every configured channel.
type Notifiers []BookingNotifier

func (n Notifiers) NotifyBooking(ctx context.Context, notice BookingNotice) error {
	var errs []error
	for _, notifier := range n {
		if notifier == nil {
			continue
		}
		if err := notifier.NotifyBooking(ctx, notice); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
