package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/midnamic912/Midna-Blog/config"
)

// Mailer delivers contact-form messages. Delivery is best effort with no
// retry; callers log failures and move on.
type Mailer interface {
	SendContactMessage(name, email, phone, message string) error
}

// SMTPMailer speaks to an outbound relay (STARTTLS on the submission port).
type SMTPMailer struct {
	host      string
	port      int
	username  string
	password  string
	recipient string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUser,
		password:  cfg.SMTPPassword,
		recipient: cfg.ContactRecipient,
	}
}

func (m *SMTPMailer) SendContactMessage(name, email, phone, message string) error {
	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	body := contactMessage(name, email, phone, message)
	if err := smtp.SendMail(addr, auth, m.username, []string{m.recipient}, body); err != nil {
		return fmt.Errorf("failed to send contact message via %s: %w", addr, err)
	}
	return nil
}

func contactMessage(name, email, phone, message string) []byte {
	return []byte(fmt.Sprintf(
		"Subject: New Message\r\n\r\nName: %s\r\nEmail: %s\r\nPhone: %s\r\nMessage: %s\r\n",
		name, email, phone, message,
	))
}
