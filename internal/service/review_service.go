package service

import (
	"time"

	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/logger"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/repository"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/pkg/schedule"
)

// ReviewService runs the review-request pass: after a class has taken
// place, ask the student for a review. Requests wait until the class had
// a chance to finish and stop for good once a review exists.
type ReviewService struct {
	schedule   *ScheduleService
	notif      *NotificationService
	reviewRepo *repository.ReviewRepository
	delay      time.Duration
	now        func() time.Time
}

func NewReviewService(scheduleSvc *ScheduleService, notif *NotificationService, reviewRepo *repository.ReviewRepository, delay time.Duration) *ReviewService {
	return &ReviewService{
		schedule:   scheduleSvc,
		notif:      notif,
		reviewRepo: reviewRepo,
		delay:      delay,
		now:        time.Now,
	}
}

// Eligible decides whether a review request may fire. Same-day requests
// wait until the class's start time plus the configured delay has passed;
// a missing or unparsable time fails open. Past days are always eligible.
func (s *ReviewService) Eligible(timeOfDay string, sessionDate time.Time, sameDay bool) bool {
	if !sameDay {
		return true
	}
	hour, minute, ok := schedule.StartTime(timeOfDay)
	if !ok {
		return true
	}
	start := time.Date(sessionDate.Year(), sessionDate.Month(), sessionDate.Day(), hour, minute, 0, 0, sessionDate.Location())
	return !s.now().Before(start.Add(s.delay))
}

// RunReviewPass issues review requests for classes that fell on date.
// Only the student side of a pair is asked; calendar entries never
// produce review requests.
func (s *ReviewService) RunReviewPass(date time.Time, sameDay bool) {
	cands := s.schedule.Collect(date, 0)
	created := 0
	for _, c := range cands {
		if c.Type == TypeCalendarEvent || !c.IsStudent {
			continue
		}
		reviewed, err := s.reviewRepo.Exists(c.RecipientID, c.RelatedID, c.Type)
		if err != nil {
			logger.Log.WithError(err).WithField("post_id", c.RelatedID).Error("review: lookup failed")
			continue
		}
		if reviewed {
			continue
		}
		if !s.Eligible(c.TimeOfDay, date, sameDay) {
			continue
		}
		ok, err := s.notif.IssueReviewRequest(c)
		if err != nil {
			logger.Log.WithError(err).WithField("user_id", c.RecipientID).Error("review: issue request failed")
			continue
		}
		if ok {
			created++
		}
	}
	logger.Log.WithFields(map[string]interface{}{
		"date":     date.Format("2006-01-02"),
		"same_day": sameDay,
		"created":  created,
	}).Info("review: pass done")
}
