package models

import "time"

// CalendarEvent is an explicit dated entry on a user's calendar,
// optionally linked to a post. Unlike posts, its date is already resolved,
// so the reminder pipeline never pattern-matches it.
type CalendarEvent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	RelatedID   uint      `gorm:"index" json:"related_id"`   // 0 when standalone
	RelatedType string    `gorm:"size:20" json:"related_type"` // student_post | tutor_post | ""
	Title       string    `gorm:"size:255" json:"title"`
	Subject     string    `gorm:"size:255" json:"subject"`
	EventDate   time.Time `gorm:"index;not null" json:"event_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}
