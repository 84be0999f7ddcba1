package repository

import (
	"time"

	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/domain"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/models"

	"gorm.io/gorm"
)

// ClassPair is one approved (owner, partner) relationship on a post. The
// reminder pipeline matches ScheduleDays against a target date and, on a
// hit, notifies both sides of the pair.
type ClassPair struct {
	PostID       uint
	Subject      string
	ScheduleDays string
	TimeOfDay    string
	OwnerID      uint
	OwnerFirst   string
	OwnerLast    string
	PartnerID    uint
	PartnerFirst string
	PartnerLast  string
}

// ScheduleRepository holds the cross-table reads the reminder engine
// needs. It only ever reads; posts, approvals and calendar rows are owned
// by the CRUD side.
type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// ApprovedJoinPairs returns tutor posts with at least one approved join,
// one row per (tutor, student) pair. userID 0 means all users; otherwise
// only pairs the user participates in, on either side.
func (r *ScheduleRepository) ApprovedJoinPairs(userID uint) ([]ClassPair, error) {
	q := r.db.Table("tutor_posts AS p").
		Select(`p.id AS post_id, p.subject, p.schedule_days, p.time_of_day,
			p.user_id AS owner_id, ou.first_name AS owner_first, ou.last_name AS owner_last,
			a.student_id AS partner_id, pu.first_name AS partner_first, pu.last_name AS partner_last`).
		Joins("JOIN join_approvals a ON a.tutor_post_id = p.id AND a.status = ?", domain.ApprovalApproved).
		Joins("JOIN users ou ON ou.id = p.user_id").
		Joins("JOIN users pu ON pu.id = a.student_id")
	if userID != 0 {
		q = q.Where("p.user_id = ? OR a.student_id = ?", userID, userID)
	}
	var rows []ClassPair
	err := q.Scan(&rows).Error
	return rows, err
}

// ApprovedOfferPairs is the mirror scan: student posts with an approved
// tutor offer. The tutor sits in the partner role.
func (r *ScheduleRepository) ApprovedOfferPairs(userID uint) ([]ClassPair, error) {
	q := r.db.Table("student_posts AS p").
		Select(`p.id AS post_id, p.subject, p.schedule_days, p.time_of_day,
			p.user_id AS owner_id, ou.first_name AS owner_first, ou.last_name AS owner_last,
			a.tutor_id AS partner_id, pu.first_name AS partner_first, pu.last_name AS partner_last`).
		Joins("JOIN offer_approvals a ON a.student_post_id = p.id AND a.status = ?", domain.ApprovalApproved).
		Joins("JOIN users ou ON ou.id = p.user_id").
		Joins("JOIN users pu ON pu.id = a.tutor_id")
	if userID != 0 {
		q = q.Where("p.user_id = ? OR a.tutor_id = ?", userID, userID)
	}
	var rows []ClassPair
	err := q.Scan(&rows).Error
	return rows, err
}

// EventsOn returns calendar events whose event_date falls on the given
// day. userID 0 means all users.
func (r *ScheduleRepository) EventsOn(date time.Time, userID uint) ([]models.CalendarEvent, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	q := r.db.Where("event_date >= ? AND event_date < ?", dayStart, dayEnd)
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	var list []models.CalendarEvent
	err := q.Find(&list).Error
	return list, err
}
