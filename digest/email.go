package digest

import (
	"errors"
	"log"

	"github.com/arthuhr-heslault/ai-newsletter/config"

	gomail "gopkg.in/gomail.v2"
)

// ErrEmailNotConfigured is returned when a send was requested but the
// sender credentials are missing.
var ErrEmailNotConfigured = errors.New("EMAIL_SENDER and EMAIL_PASSWORD must be set to send email")

// SendEmail delivers the digest: HTML body plus the rendered files as
// attachments. An empty recipient is not an error; the send is skipped
// with a log line. Missing credentials with a recipient configured is
// an operator error, fatal for the send step only.
func SendEmail(cfg config.Config, subject, htmlBody string, attachments []string) error {
	if cfg.Recipient == "" {
		log.Println("No recipient configured; skipping email send")
		return nil
	}
	if cfg.EmailSender == "" || cfg.EmailPassword == "" {
		return ErrEmailNotConfigured
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.EmailSender)
	m.SetHeader("To", cfg.Recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	for _, path := range attachments {
		m.Attach(path)
	}

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailSender, cfg.EmailPassword)
	if err := d.DialAndSend(m); err != nil {
		return err
	}
	log.Printf("Digest sent to %s", cfg.Recipient)
	return nil
}
