package notification

import (
	"fmt"
	"net/smtp"
	"strings"

	"mentorhub/config"
	"mentorhub/models"
)

// Mailer delivers a single email message.
type Mailer interface {
	Send(payload models.EmailPayload) error
}

// SMTPMailer implements Mailer over plain SMTP with auth.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPMailer builds a Mailer from the loaded configuration.
func NewSMTPMailer() *SMTPMailer {
	cfg := config.AppConfig
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
	}
}

// Send delivers the message as a single HTML part.
func (m *SMTPMailer) Send(payload models.EmailPayload) error {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", m.from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", payload.To))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", payload.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(payload.HTML)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := smtp.SendMail(addr, auth, m.from, []string{payload.To}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", payload.To, err)
	}
	return nil
}
