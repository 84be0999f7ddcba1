package mailer

import (
	"testing"

	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/config"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNewSMTPMailerUnconfigured(t *testing.T) {
	m := NewSMTPMailer(&config.SMTPConfig{})
	assert.Nil(t, m, "no SMTP host must yield no mailer")

	// Wiring code stores the result in a Mailer interface only when it is
	// non-nil, so an unconfigured deployment carries a true nil interface.
	var mail Mailer
	if m != nil {
		mail = m
	}
	assert.Nil(t, mail)

	// A stray typed-nil receiver must still be safe to call.
	assert.NoError(t, m.Send("someone@example.com", domain.MailClassReminder, nil))
}

func TestRenderTemplates(t *testing.T) {
	fields := map[string]string{
		"course":  "Math",
		"partner": "Ann Archer",
		"date":    "2025-08-20",
		"time":    "14:00",
		"post_id": "42",
		"role":    "student",
	}
	tests := []struct {
		kind        string
		wantSubject string
		wantInBody  string
	}{
		{domain.MailClassReminder, "Class reminder: Math", "2025-08-20 14:00"},
		{domain.MailReviewReminder, "How was your class Math?", "post #42"},
		{domain.MailBookingConfirmation, "Booking confirmed: Math", "Ann Archer (student)"},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			subject, body := render(tt.kind, fields)
			assert.Equal(t, tt.wantSubject, subject)
			assert.Contains(t, body, tt.wantInBody)
		})
	}
}
