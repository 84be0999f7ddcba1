package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/repository"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var pairColumns = []string{
	"post_id", "subject", "schedule_days", "time_of_day",
	"owner_id", "owner_first", "owner_last",
	"partner_id", "partner_first", "partner_last",
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("opening stub database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening gorm database: %v", err)
	}
	return gormDB, mock
}

func TestScheduleAlerts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb, mock := setupMockDB(t)
	scheduleSvc := service.NewScheduleService(repository.NewScheduleRepository(gdb), nil)
	h := NewScheduleHandler(scheduleSvc, nil, 7)

	// "every day" descriptor matches both horizons; the mock answers the
	// three scans for today, then the three for tomorrow.
	eventCols := []string{"id", "user_id", "related_id", "related_type", "title", "subject", "event_date"}
	for i := 0; i < 2; i++ {
		mock.ExpectQuery("SELECT (.+) FROM tutor_posts").WillReturnRows(
			sqlmock.NewRows(pairColumns).
				AddRow(42, "Math", "Sun,Mon,Tue,Wed,Thu,Fri,Sat", "14:00", 1, "Ann", "Archer", 7, "Bob", "Baker"))
		mock.ExpectQuery("SELECT (.+) FROM student_posts").WillReturnRows(sqlmock.NewRows(pairColumns))
		mock.ExpectQuery("SELECT (.+) FROM `calendar_events`").WillReturnRows(sqlmock.NewRows(eventCols))
	}

	r := gin.New()
	r.GET("/api/v1/schedule/alerts/:userId", h.Alerts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/alerts/7", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var alerts []struct {
		Type           string    `json:"type"`
		RelatedID      uint      `json:"related_id"`
		PostSubject    string    `json:"post_subject"`
		ActorFirstname string    `json:"actor_firstname"`
		ActorLastname  string    `json:"actor_lastname"`
		CreatedAt      time.Time `json:"created_at"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alerts))
	require.Len(t, alerts, 2)
	assert.Equal(t, "class_today", alerts[0].Type)
	assert.Equal(t, "class_tomorrow", alerts[1].Type)
	assert.Equal(t, uint(42), alerts[0].RelatedID)
	assert.Equal(t, "Math", alerts[0].PostSubject)
	assert.Equal(t, "Ann", alerts[0].ActorFirstname)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleAlertsBadUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewScheduleHandler(nil, nil, 7)

	r := gin.New()
	r.GET("/api/v1/schedule/alerts/:userId", h.Alerts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/alerts/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
