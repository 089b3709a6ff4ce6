package mail

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/afeayo2/Econmmerce/internal/application/notification"
	"github.com/afeayo2/Econmmerce/internal/config"
)

// SMTPSink delivers notifications over SMTP. Port 465 gets implicit TLS
// from the dialer.
type SMTPSink struct {
	dialer *gomail.Dialer
	from   string
	user   string
}

func NewSMTPSink(cfg config.SMTPConfig) *SMTPSink {
	return &SMTPSink{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		user:   cfg.User,
	}
}

func (s *SMTPSink) Send(ctx context.Context, msg notification.Message) (string, error) {
	if msg.To == "" {
		return "", fmt.Errorf("recipient is empty")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.user, s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	// gomail has no context support; the dialer's own timeouts bound the
	// call, but honor an already-cancelled context up front.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}

	return uuid.NewString(), nil
}
