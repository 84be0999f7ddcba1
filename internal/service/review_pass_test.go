package service

import (
	"testing"
	"time"

	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRunReviewPass(t *testing.T) {
	gdb, mock := setupMockDB(t)
	notifSvc := NewNotificationService(repository.NewNotificationRepository(gdb), nil, nil)
	notifSvc.now = func() time.Time {
		return time.Date(2025, 8, 21, 9, 0, 0, 0, time.Local)
	}
	scheduleSvc := NewScheduleService(repository.NewScheduleRepository(gdb), notifSvc)
	svc := NewReviewService(scheduleSvc, notifSvc, repository.NewReviewRepository(gdb), 2*time.Hour)

	wednesday := time.Date(2025, 8, 20, 0, 0, 0, 0, time.Local)

	// Two matched pairs; student 7 already reviewed post 42, student 8 has
	// not reviewed post 43. Only the tutors' student partners are asked.
	mock.ExpectQuery("SELECT (.+) FROM tutor_posts").WillReturnRows(
		sqlmock.NewRows(pairColumns).
			AddRow(42, "Math", "Wed", "14:00", 1, "Ann", "Archer", 7, "Bob", "Baker").
			AddRow(43, "English", "Wed", "10:00", 2, "Cara", "Cole", 8, "Dan", "Dale"))
	mock.ExpectQuery("SELECT (.+) FROM student_posts").WillReturnRows(
		sqlmock.NewRows(pairColumns))
	mock.ExpectQuery("SELECT (.+) FROM `calendar_events`").WillReturnRows(
		sqlmock.NewRows([]string{"id", "user_id", "related_id", "related_type", "title", "subject", "event_date"}))

	mock.ExpectQuery("SELECT count(.+) FROM `reviews`").
		WithArgs(uint(7), uint(42), "tutor_post").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT count(.+) FROM `reviews`").
		WithArgs(uint(8), uint(43), "tutor_post").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `notifications`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	svc.RunReviewPass(wednesday, false)

	assert.NoError(t, mock.ExpectationsWereMet())
}
