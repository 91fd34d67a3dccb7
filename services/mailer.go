package services

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/dbarros/portfolio-backend/config"
	"github.com/dbarros/portfolio-backend/models"
)

// Notifier delivers best-effort notifications about site events. Failures
// are tolerated by callers; message persistence is the source of truth.
type Notifier interface {
	NotifyNewMessage(message *models.ContactMessage, recipient string) error
}

// SMTPMailer sends notification emails over SMTP.
//
// Configuration (environment):
//   - SMTP_HOST, SMTP_PORT: the SMTP server (defaults localhost:587)
//   - SMTP_USERNAME, SMTP_PASSWORD: credentials, optional
//   - SMTP_FROM: the sender address
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(c map[string]string) *SMTPMailer {
	host := config.GetString(c, "SMTP_HOST", "localhost")
	port := config.GetInt(c, "SMTP_PORT", 587)
	username := config.GetString(c, "SMTP_USERNAME", "")
	password := config.GetString(c, "SMTP_PASSWORD", "")
	from := config.GetString(c, "SMTP_FROM", "noreply@localhost")

	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// NotifyNewMessage emails a summary of an inbound contact message to the
// configured recipient.
func (m *SMTPMailer) NotifyNewMessage(message *models.ContactMessage, recipient string) error {
	subject := message.Subject
	if subject == "" {
		subject = "No Subject"
	}

	body := fmt.Sprintf(
		"New message from portfolio contact form:\n\n"+
			"Name: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n\n"+
			"Sent at: %s\nIP: %s\n",
		message.Name, message.Email, message.Subject, message.Message,
		message.CreatedAt.Format("2006-01-02 15:04:05"), message.IPAddress,
	)

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", recipient)
	mail.SetHeader("Subject", "New Contact Form Submission: "+subject)
	mail.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	log.Info().Str("recipient", recipient).Msg("sent contact notification email")
	return nil
}
