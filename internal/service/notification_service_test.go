package service

import (
	"testing"
	"time"

	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/domain"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotificationService(t *testing.T) (*NotificationService, sqlmock.Sqlmock) {
	gdb, mock := setupMockDB(t)
	svc := NewNotificationService(repository.NewNotificationRepository(gdb), nil, nil)
	svc.now = func() time.Time {
		return time.Date(2025, 8, 20, 9, 30, 0, 0, time.Local)
	}
	return svc, mock
}

func TestIssueIfAbsent(t *testing.T) {
	t.Run("zero user id is a no-op", func(t *testing.T) {
		svc, mock := newTestNotificationService(t)
		created, err := svc.IssueIfAbsent(0, domain.NotifClassToday, 42, "msg", 7)
		require.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first write of the day creates", func(t *testing.T) {
		svc, mock := newTestNotificationService(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `notifications`").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		created, err := svc.IssueIfAbsent(7, domain.NotifClassToday, 42, "msg", 1)
		require.NoError(t, err)
		assert.True(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("same day duplicate is swallowed by the unique index", func(t *testing.T) {
		svc, mock := newTestNotificationService(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `notifications`").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		created, err := svc.IssueIfAbsent(7, domain.NotifClassToday, 42, "msg", 1)
		require.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIssueClassReminder(t *testing.T) {
	cand := Candidate{
		Type:        domain.PostTypeTutor,
		RelatedID:   42,
		Subject:     "Math",
		TimeOfDay:   "14:00 - 16:00",
		RecipientID: 7,
		ActorID:     1,
		ActorFirst:  "Ann",
		ActorLast:   "Archer",
	}

	t.Run("issues under the horizon type", func(t *testing.T) {
		svc, mock := newTestNotificationService(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `notifications`").
			WithArgs(uint(7), domain.NotifClassTomorrow, uint(42), "2025-08-20",
				`Your class "Math" is tomorrow at 14:00 - 16:00`, uint(1),
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		created, err := svc.IssueClassReminder(cand, domain.NotifClassTomorrow, time.Date(2025, 8, 21, 0, 0, 0, 0, time.Local))
		require.NoError(t, err)
		assert.True(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("re-running the pipeline creates nothing new", func(t *testing.T) {
		svc, mock := newTestNotificationService(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `notifications`").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		created, err := svc.IssueClassReminder(cand, domain.NotifClassTomorrow, time.Date(2025, 8, 21, 0, 0, 0, 0, time.Local))
		require.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
