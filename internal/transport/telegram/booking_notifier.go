package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/service"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// BookingNotifier posts every new booking to an operator chat.
type BookingNotifier struct {
	bot    sender
	chatID int64
}

func NewBot(token string) (*tgbotapi.BotAPI, error) {
	return tgbotapi.NewBotAPI(token)
}

func NewBookingNotifier(bot sender, chatID int64) *BookingNotifier {
	return &BookingNotifier{bot: bot, chatID: chatID}
}

func (n *BookingNotifier) NotifyBooking(ctx context.Context, notice service.BookingNotice) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(n.chatID, bookingText(notice))
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram booking %d: %w", notice.Booking.ID, err)
	}
	return nil
}

func bookingText(notice service.BookingNotice) string {
	b := notice.Booking
	return fmt.Sprintf("New booking #%d\n%s\n%s to %s, %d guest(s)\nTotal: %d AZN\nGuest: %s <%s>",
		b.ID,
		notice.Place.Name,
		b.StartDate.Format(domain.BookingDateLayout),
		b.EndDate.Format(domain.BookingDateLayout),
		b.Guests,
		b.TotalPrice,
		b.UserName,
		b.UserEmail,
	)
}

var _ service.BookingNotifier = (*BookingNotifier)(nil)
