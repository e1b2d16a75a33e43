package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/service"
)

type fakeBot struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func notice() service.BookingNotice {
	return service.BookingNotice{
		Booking: domain.Booking{
			ID:         4,
			UserName:   "Leyla",
			UserEmail:  "leyla@example.com",
			StartDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
			Guests:     2,
			TotalPrice: 300,
		},
		Place: domain.Place{Name: "Şahdağ"},
	}
}

func TestBookingNotifierSendsToChat(t *testing.T) {
	bot := &fakeBot{}
	n := NewBookingNotifier(bot, -1001)

	if err := n.NotifyBooking(context.Background(), notice()); err != nil {
		t.Fatalf("NotifyBooking returned error: %v", err)
	}
	if len(bot.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(bot.sent))
	}
	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("expected MessageConfig, got %T", bot.sent[0])
	}
	if msg.ChatID != -1001 {
		t.Fatalf("unexpected chat id %d", msg.ChatID)
	}
	if !strings.Contains(msg.Text, "New booking #4") || !strings.Contains(msg.Text, "Total: 300 AZN") {
		t.Fatalf("unexpected text %q", msg.Text)
	}
}

func TestBookingNotifierWrapsError(t *testing.T) {
	boom := errors.New("forbidden")
	n := NewBookingNotifier(&fakeBot{err: boom}, 1)
	if err := n.NotifyBooking(context.Background(), notice()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
