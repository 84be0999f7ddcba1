package service

import (
	"fmt"
	"time"

	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/domain"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/logger"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/models"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/repository"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/pkg/mailer"
)

// NotificationService persists notification rows and triggers best-effort
// email on the ones that were actually new. Email never blocks or fails
// an issuance; a lost mail is accepted, a duplicate row is not.
type NotificationService struct {
	repo     *repository.NotificationRepository
	userRepo *repository.UserRepository
	mail     mailer.Mailer
	now      func() time.Time
}

func NewNotificationService(repo *repository.NotificationRepository, userRepo *repository.UserRepository, mail mailer.Mailer) *NotificationService {
	return &NotificationService{repo: repo, userRepo: userRepo, mail: mail, now: time.Now}
}

// IssueIfAbsent writes at most one notification per
// (user, type, related id) per calendar day. Returns whether this call
// created the row. A zero user id is a no-op.
func (s *NotificationService) IssueIfAbsent(userID uint, ntype string, relatedID uint, message string, actorID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	now := s.now()
	return s.repo.CreateIfAbsent(&models.Notification{
		UserID:      userID,
		Type:        ntype,
		RelatedID:   relatedID,
		Message:     message,
		ActorID:     actorID,
		CreatedDate: now.Format("2006-01-02"),
		CreatedAt:   now,
	})
}

// IssueClassReminder issues a today/tomorrow class reminder for one
// candidate and, when newly created, emails the recipient.
func (s *NotificationService) IssueClassReminder(c Candidate, ntype string, date time.Time) (bool, error) {
	when := "today"
	if ntype == domain.NotifClassTomorrow {
		when = "tomorrow"
	}
	msg := fmt.Sprintf("Your class %q is %s", c.Subject, when)
	if c.TimeOfDay != "" {
		msg += " at " + c.TimeOfDay
	}
	created, err := s.IssueIfAbsent(c.RecipientID, ntype, c.RelatedID, msg, c.ActorID)
	if err != nil || !created {
		return created, err
	}
	s.dispatch(c.RecipientID, domain.MailClassReminder, map[string]string{
		"course":  c.Subject,
		"date":    date.Format("2006-01-02"),
		"time":    c.TimeOfDay,
		"partner": c.ActorFirst + " " + c.ActorLast,
	})
	return true, nil
}

// IssueReviewRequest asks the student side of a finished class for a
// review.
func (s *NotificationService) IssueReviewRequest(c Candidate) (bool, error) {
	msg := fmt.Sprintf("Please review your class %q", c.Subject)
	created, err := s.IssueIfAbsent(c.RecipientID, domain.NotifReviewRequest, c.RelatedID, msg, c.ActorID)
	if err != nil || !created {
		return created, err
	}
	s.dispatch(c.RecipientID, domain.MailReviewReminder, map[string]string{
		"course":  c.Subject,
		"partner": c.ActorFirst + " " + c.ActorLast,
		"post_id": fmt.Sprintf("%d", c.RelatedID),
	})
	return true, nil
}

// NotifyBookingConfirmed mails both sides of a freshly approved pairing.
// Called from the approval flow, not the scheduler.
func (s *NotificationService) NotifyBookingConfirmed(userID uint, course, partner, role string) {
	s.dispatch(userID, domain.MailBookingConfirmation, map[string]string{
		"course":  course,
		"partner": partner,
		"role":    role,
	})
}

// dispatch looks up the recipient's address and sends in the background.
// Failures are logged and never retried; the notification row stays.
func (s *NotificationService) dispatch(userID uint, kind string, fields map[string]string) {
	if s.mail == nil || s.userRepo == nil {
		return
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil || u.Email == "" {
		return
	}
	go func(to string) {
		if err := s.mail.Send(to, kind, fields); err != nil {
			logger.Log.WithError(err).WithField("kind", kind).Warn("mail: send failed")
		}
	}(u.Email)
}
