package mailer

import (
	"fmt"

	"github.com/RudraNarayan94/MOK/internal/config"
	gomail "gopkg.in/gomail.v2"
)

type Message struct {
	To      string
	Subject string
	HTML    string
}

// SMTP sends mail through a single configured SMTP account. Each send
// dials a fresh connection; volume here is a handful of account mails,
// not a campaign.
type SMTP struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTP(cfg config.SMTPConfig) *SMTP {
	return &SMTP{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *SMTP) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}
	return nil
}
