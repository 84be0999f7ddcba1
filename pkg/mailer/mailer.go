// Package mailer is the narrow outbound email contract the notification
// engine calls. Template rendering here is deliberately minimal; the
// engine only decides whether to send and with which fields.
package mailer

import (
	"fmt"

	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/config"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/domain"

	"gopkg.in/gomail.v2"
)

// Mailer sends one templated message. Implementations must be safe for
// concurrent use; callers treat every send as best effort.
type Mailer interface {
	Send(to, templateKind string, fields map[string]string) error
}

// SMTPMailer sends through a plain SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer returns nil when no SMTP host is configured; callers are
// expected to nil-check and skip dispatch, mirroring how push services are
// optional elsewhere.
func NewSMTPMailer(cfg *config.SMTPConfig) *SMTPMailer {
	if cfg.Host == "" {
		return nil
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *SMTPMailer) Send(to, templateKind string, fields map[string]string) error {
	if m == nil || to == "" {
		return nil
	}
	subject, body := render(templateKind, fields)
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

func render(templateKind string, f map[string]string) (subject, body string) {
	switch templateKind {
	case domain.MailClassReminder:
		subject = fmt.Sprintf("Class reminder: %s", f["course"])
		body = fmt.Sprintf("Your class %q with %s is scheduled for %s %s.",
			f["course"], f["partner"], f["date"], f["time"])
	case domain.MailReviewReminder:
		subject = fmt.Sprintf("How was your class %s?", f["course"])
		body = fmt.Sprintf("Your class %q with %s has finished. Please take a minute to review it (post #%s).",
			f["course"], f["partner"], f["post_id"])
	case domain.MailBookingConfirmation:
		subject = fmt.Sprintf("Booking confirmed: %s", f["course"])
		body = fmt.Sprintf("Your booking for %q with %s (%s) is confirmed.",
			f["course"], f["partner"], f["role"])
	default:
		subject = "Finding Tutor"
		body = f["message"]
	}
	return subject, body
}
