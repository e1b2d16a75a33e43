package mail

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/service"
)

func sampleNotice() service.BookingNotice {
	return service.BookingNotice{
		Booking: domain.Booking{
			ID:         9,
			Reference:  uuid.MustParse("6f1c1c2e-7a1b-4f51-9d43-1b2f1d0c9a11"),
			UserName:   "Leyla",
			UserEmail:  "leyla@example.com",
			StartDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
			Guests:     2,
			TotalPrice: 300,
			Status:     domain.BookingStatusPending,
		},
		Place: domain.Place{ID: 1, Name: "Göygöl"},
	}
}

func TestBookingMailerSends(t *testing.T) {
	m := NewBookingMailer("smtp.example.com", "587", "user", "pass", "noreply@example.com")
	var gotAddr string
	var gotTo []string
	var gotMsg string
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		if a == nil {
			t.Fatalf("expected auth when credentials are set")
		}
		return nil
	}

	if err := m.NotifyBooking(context.Background(), sampleNotice()); err != nil {
		t.Fatalf("NotifyBooking returned error: %v", err)
	}
	if gotAddr != "smtp.example.com:587" {
		t.Fatalf("unexpected addr %s", gotAddr)
	}
	if len(gotTo) != 1 || gotTo[0] != "leyla@example.com" {
		t.Fatalf("unexpected recipients %v", gotTo)
	}
	for _, want := range []string{"Subject: Your booking request for Göygöl", "Dates: 2024-06-01 to 2024-06-04", "Total: 300 AZN", "6f1c1c2e-7a1b-4f51-9d43-1b2f1d0c9a11"} {
		if !strings.Contains(gotMsg, want) {
			t.Fatalf("expected message to contain %q:\n%s", want, gotMsg)
		}
	}
}

func TestBookingMailerMissingConfig(t *testing.T) {
	m := NewBookingMailer("", "587", "", "", "noreply@example.com")
	if err := m.NotifyBooking(context.Background(), sampleNotice()); err == nil {
		t.Fatalf("expected configuration error")
	}
}

func TestBookingMailerWrapsSendError(t *testing.T) {
	m := NewBookingMailer("smtp.example.com", "25", "", "", "noreply@example.com")
	boom := errors.New("connection refused")
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error { return boom }

	if err := m.NotifyBooking(context.Background(), sampleNotice()); !errors.Is(err, boom) {
		t.Fatalf("expected send error to be wrapped, got %v", err)
	}
}
