package database

import (
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/config"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error), // Only log errors, not every SQL query
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models. The composite
// unique index on notifications is what makes reminder issuance safe to
// retry; migration must succeed before the scheduler starts.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.StudentPost{},
		&models.TutorPost{},
		&models.JoinApproval{},
		&models.OfferApproval{},
		&models.CalendarEvent{},
		&models.Notification{},
		&models.Review{},
	)
}
