package mail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/service"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// BookingMailer e-mails the guest a confirmation of their booking request.
type BookingMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	send     sendFunc
}

func NewBookingMailer(host, port, username, password, from string) *BookingMailer {
	return &BookingMailer{
		host:     strings.TrimSpace(host),
		port:     strings.TrimSpace(port),
		username: username,
		password: password,
		from:     strings.TrimSpace(from),
		send:     smtp.SendMail,
	}
}

func (m *BookingMailer) NotifyBooking(ctx context.Context, notice service.BookingNotice) error {
	if m == nil {
		return errors.New("mailer not configured")
	}
	if m.host == "" || m.port == "" || m.from == "" {
		return errors.New("mailer missing configuration")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	to := notice.Booking.UserEmail
	message := composeBookingMessage(m.from, to, notice)

	addr := net.JoinHostPort(m.host, m.port)
	var auth smtp.Auth
	if m.username != "" || m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := m.send(addr, auth, m.from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("mail booking %d: %w", notice.Booking.ID, err)
	}
	return nil
}

func composeBookingMessage(from, to string, notice service.BookingNotice) string {
	b := notice.Booking
	subject := fmt.Sprintf("Your booking request for %s", notice.Place.Name)
	body := fmt.Sprintf(
		"Hello %s,\n\nWe received your booking request.\n\nPlace: %s\nDates: %s to %s\nGuests: %d\nTotal: %d AZN\nStatus: %s\nReference: %s\n",
		b.UserName,
		notice.Place.Name,
		b.StartDate.Format(domain.BookingDateLayout),
		b.EndDate.Format(domain.BookingDateLayout),
		b.Guests,
		b.TotalPrice,
		b.Status,
		b.Reference,
	)

	message := strings.Builder{}
	message.WriteString(fmt.Sprintf("From: %s\r\n", from))
	message.WriteString(fmt.Sprintf("To: %s\r\n", to))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	message.WriteString("Content-Transfer-Encoding: 8bit\r\n\r\n")
	message.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return message.String()
}

var _ service.BookingNotifier = (*BookingMailer)(nil)
