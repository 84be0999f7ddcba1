package repository

import (
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// CreateIfAbsent inserts the notification unless a row with the same
// (user_id, type, related_id, created_date) already exists. The unique
// index makes this a single atomic statement (INSERT IGNORE on MySQL), so
// concurrent ticks cannot double-insert. Returns whether a row was
// actually written.
func (r *NotificationRepository) CreateIfAbsent(n *models.Notification) (bool, error) {
	tx := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(n)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *NotificationRepository) ListByUserID(userID uint, limit, offset int) ([]models.Notification, error) {
	var list []models.Notification
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *NotificationRepository) MarkRead(id, userID uint) error {
	return r.db.Model(&models.Notification{}).Where("id = ? AND user_id = ?", id, userID).Update("read_at", gorm.Expr("NOW()")).Error
}
