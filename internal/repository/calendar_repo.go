package repository

import (
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/models"

	"gorm.io/gorm"
)

type CalendarRepository struct {
	db *gorm.DB
}

func NewCalendarRepository(db *gorm.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

func (r *CalendarRepository) Create(e *models.CalendarEvent) error {
	return r.db.Create(e).Error
}

func (r *CalendarRepository) ListByUserID(userID uint, limit, offset int) ([]models.CalendarEvent, error) {
	var list []models.CalendarEvent
	err := r.db.Where("user_id = ?", userID).Order("event_date ASC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *CalendarRepository) Delete(id, userID uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CalendarEvent{}).Error
}
