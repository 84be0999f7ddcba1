package service

import (
	"fmt"
	"time"

	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/domain"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/logger"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/repository"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/pkg/schedule"
)

// Candidate is one prospective reminder: a user who has a class (or a
// calendar entry) falling on the target date.
type Candidate struct {
	Type        string // student_post | tutor_post | calendar_event
	RelatedID   uint
	Subject     string
	TimeOfDay   string
	RecipientID uint
	ActorID     uint // the other side of the pair, 0 for calendar entries
	ActorFirst  string
	ActorLast   string
	IsStudent   bool // recipient sits on the student side of the pair
}

// TypeCalendarEvent tags candidates emitted from the calendar scan.
const TypeCalendarEvent = "calendar_event"

// ScheduleService is the candidate aggregator: it fans in the approved
// class pairs and calendar entries, applies the pattern matcher, and
// hands unordered candidates to the issuing side. Both the background
// scheduler and the live alerts endpoint run through Collect.
type ScheduleService struct {
	repo  *repository.ScheduleRepository
	notif *NotificationService
}

func NewScheduleService(repo *repository.ScheduleRepository, notif *NotificationService) *ScheduleService {
	return &ScheduleService{repo: repo, notif: notif}
}

// Collect gathers candidates for the target date. userID 0 resolves all
// recipients (scheduler mode); non-zero restricts to one user (alerts
// mode). A failing sub-scan is logged and skipped so the other sources
// still produce their candidates.
func (s *ScheduleService) Collect(date time.Time, userID uint) []Candidate {
	var out []Candidate
	patterns := make(map[string]schedule.Pattern) // descriptor cache for this call

	pairs, err := s.repo.ApprovedJoinPairs(userID)
	if err != nil {
		logger.Log.WithError(err).Error("schedule: join-pair scan failed, skipping source")
	} else {
		out = append(out, pairCandidates(pairs, domain.PostTypeTutor, date, userID, patterns)...)
	}

	pairs, err = s.repo.ApprovedOfferPairs(userID)
	if err != nil {
		logger.Log.WithError(err).Error("schedule: offer-pair scan failed, skipping source")
	} else {
		out = append(out, pairCandidates(pairs, domain.PostTypeStudent, date, userID, patterns)...)
	}

	events, err := s.repo.EventsOn(date, userID)
	if err != nil {
		logger.Log.WithError(err).Error("schedule: calendar scan failed, skipping source")
		return out
	}
	for _, e := range events {
		// A linked event whose post already produced a candidate for this
		// recipient would only repeat the reminder.
		if e.RelatedID != 0 && hasCandidate(out, e.UserID, e.RelatedID) {
			continue
		}
		subject := e.Subject
		if subject == "" {
			subject = e.Title
		}
		out = append(out, Candidate{
			Type:        TypeCalendarEvent,
			RelatedID:   e.RelatedID,
			Subject:     subject,
			RecipientID: e.UserID,
		})
	}
	return out
}

// pairCandidates matches each pair's schedule against the date and emits
// a candidate per side. Dedup is per scan on (recipient, related id); the
// same related id may reappear in a later scan under a different type tag.
func pairCandidates(pairs []repository.ClassPair, postType string, date time.Time, userID uint, patterns map[string]schedule.Pattern) []Candidate {
	var out []Candidate
	seen := make(map[string]bool)
	for _, p := range pairs {
		pat, ok := patterns[p.ScheduleDays]
		if !ok {
			pat = schedule.Parse(p.ScheduleDays)
			patterns[p.ScheduleDays] = pat
		}
		if !pat.Matches(date) {
			continue
		}
		owner := Candidate{
			Type:        postType,
			RelatedID:   p.PostID,
			Subject:     p.Subject,
			TimeOfDay:   p.TimeOfDay,
			RecipientID: p.OwnerID,
			ActorID:     p.PartnerID,
			ActorFirst:  p.PartnerFirst,
			ActorLast:   p.PartnerLast,
			IsStudent:   postType == domain.PostTypeStudent,
		}
		partner := Candidate{
			Type:        postType,
			RelatedID:   p.PostID,
			Subject:     p.Subject,
			TimeOfDay:   p.TimeOfDay,
			RecipientID: p.PartnerID,
			ActorID:     p.OwnerID,
			ActorFirst:  p.OwnerFirst,
			ActorLast:   p.OwnerLast,
			IsStudent:   postType == domain.PostTypeTutor,
		}
		for _, c := range []Candidate{owner, partner} {
			if userID != 0 && c.RecipientID != userID {
				continue
			}
			key := fmt.Sprintf("%d:%d", c.RecipientID, c.RelatedID)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, c)
		}
	}
	return out
}

func hasCandidate(list []Candidate, recipientID, relatedID uint) bool {
	for _, c := range list {
		if c.RecipientID == recipientID && c.RelatedID == relatedID {
			return true
		}
	}
	return false
}

// RunClassPass issues one reminder per collected candidate under the
// given notification type. Called by the scheduler for the today and
// tomorrow horizons.
func (s *ScheduleService) RunClassPass(date time.Time, ntype string) {
	cands := s.Collect(date, 0)
	created := 0
	for _, c := range cands {
		ok, err := s.notif.IssueClassReminder(c, ntype, date)
		if err != nil {
			logger.Log.WithError(err).WithField("user_id", c.RecipientID).Error("schedule: issue reminder failed")
			continue
		}
		if ok {
			created++
		}
	}
	logger.Log.WithFields(map[string]interface{}{
		"date":       date.Format("2006-01-02"),
		"type":       ntype,
		"candidates": len(cands),
		"created":    created,
	}).Info("schedule: class pass done")
}
