package models

import "time"

// Notification is the persisted alert row. CreatedDate holds the calendar
// day ("2006-01-02") the row was written; together with the composite
// unique index it makes issuance a conditional insert. A second write for
// the same (user, type, related id) on the same day is a no-op, even
// across concurrent ticks or process replicas.
type Notification struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;uniqueIndex:idx_notif_daily,priority:1" json:"user_id"`
	Type        string     `gorm:"size:50;not null;uniqueIndex:idx_notif_daily,priority:2" json:"type"`
	RelatedID   uint       `gorm:"not null;uniqueIndex:idx_notif_daily,priority:3" json:"related_id"`
	CreatedDate string     `gorm:"size:10;not null;uniqueIndex:idx_notif_daily,priority:4" json:"-"`
	Message     string     `gorm:"size:500" json:"message"`
	ActorID     uint       `json:"actor_id"`
	ReadAt      *time.Time `json:"read_at"`
	CreatedAt   time.Time  `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}
