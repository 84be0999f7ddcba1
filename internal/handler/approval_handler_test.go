package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/domain"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/repository"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedMail struct {
	to     string
	kind   string
	fields map[string]string
}

// captureMailer records sends on a channel so tests can wait out the
// background send goroutine.
type captureMailer struct {
	sends chan recordedMail
}

func (m *captureMailer) Send(to, kind string, fields map[string]string) error {
	m.sends <- recordedMail{to: to, kind: kind, fields: fields}
	return nil
}

func waitForMail(t *testing.T, m *captureMailer) recordedMail {
	t.Helper()
	select {
	case s := <-m.sends:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("expected a mail send")
		return recordedMail{}
	}
}

var userColumns = []string{"id", "email", "first_name", "last_name", "role"}

func newApprovalRig(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, *captureMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb, mock := setupMockDB(t)
	mail := &captureMailer{sends: make(chan recordedMail, 4)}
	userRepo := repository.NewUserRepository(gdb)
	notifSvc := service.NewNotificationService(repository.NewNotificationRepository(gdb), userRepo, mail)
	h := NewApprovalHandler(repository.NewApprovalRepository(gdb), repository.NewPostRepository(gdb), userRepo, notifSvc)

	asUser := func(id uint) gin.HandlerFunc {
		return func(c *gin.Context) { c.Set("user_id", id) }
	}
	r := gin.New()
	r.PUT("/joins/:id/status", asUser(1), h.DecideJoin)
	r.PUT("/offers/:id/status", asUser(7), h.DecideOffer)
	return r, mock, mail
}

func putStatus(t *testing.T, r *gin.Engine, path, status string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(`{"status":"`+status+`"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDecideJoinApprovedSendsBookingConfirmation(t *testing.T) {
	r, mock, mail := newApprovalRig(t)

	mock.ExpectQuery("SELECT (.+) FROM `join_approvals`").WillReturnRows(
		sqlmock.NewRows([]string{"id", "tutor_post_id", "student_id", "status"}).
			AddRow(5, 42, 7, "pending"))
	mock.ExpectQuery("SELECT (.+) FROM `tutor_posts`").WillReturnRows(
		sqlmock.NewRows([]string{"id", "user_id", "subject"}).
			AddRow(42, 1, "Math"))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `join_approvals`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	// Two lookups resolve the pair, then dispatch resolves each
	// recipient address.
	mock.ExpectQuery("SELECT (.+) FROM `users`").WillReturnRows(
		sqlmock.NewRows(userColumns).AddRow(1, "ann@example.com", "Ann", "Archer", "tutor"))
	mock.ExpectQuery("SELECT (.+) FROM `users`").WillReturnRows(
		sqlmock.NewRows(userColumns).AddRow(7, "bob@example.com", "Bob", "Baker", "student"))
	mock.ExpectQuery("SELECT (.+) FROM `users`").WillReturnRows(
		sqlmock.NewRows(userColumns).AddRow(1, "ann@example.com", "Ann", "Archer", "tutor"))
	mock.ExpectQuery("SELECT (.+) FROM `users`").WillReturnRows(
		sqlmock.NewRows(userColumns).AddRow(7, "bob@example.com", "Bob", "Baker", "student"))

	w := putStatus(t, r, "/joins/5/status", "approved")
	require.Equal(t, http.StatusOK, w.Code)

	got := map[string]recordedMail{}
	for i := 0; i < 2; i++ {
		s := waitForMail(t, mail)
		got[s.to] = s
	}
	require.Contains(t, got, "ann@example.com")
	require.Contains(t, got, "bob@example.com")
	assert.Equal(t, domain.MailBookingConfirmation, got["ann@example.com"].kind)
	assert.Equal(t, domain.MailBookingConfirmation, got["bob@example.com"].kind)
	assert.Equal(t, "Math", got["ann@example.com"].fields["course"])
	assert.Equal(t, "Bob Baker", got["ann@example.com"].fields["partner"])
	assert.Equal(t, "tutor", got["ann@example.com"].fields["role"])
	assert.Equal(t, "Ann Archer", got["bob@example.com"].fields["partner"])
	assert.Equal(t, "student", got["bob@example.com"].fields["role"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecideJoinRejectedSendsNothing(t *testing.T) {
	r, mock, mail := newApprovalRig(t)

	mock.ExpectQuery("SELECT (.+) FROM `join_approvals`").WillReturnRows(
		sqlmock.NewRows([]string{"id", "tutor_post_id", "student_id", "status"}).
			AddRow(5, 42, 7, "pending"))
	mock.ExpectQuery("SELECT (.+) FROM `tutor_posts`").WillReturnRows(
		sqlmock.NewRows([]string{"id", "user_id", "subject"}).
			AddRow(42, 1, "Math"))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `join_approvals`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := putStatus(t, r, "/joins/5/status", "rejected")
	require.Equal(t, http.StatusOK, w.Code)

	select {
	case s := <-mail.sends:
		t.Fatalf("unexpected mail to %s", s.to)
	case <-time.After(100 * time.Millisecond):
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecideOfferApprovedSendsBookingConfirmation(t *testing.T) {
	r, mock, mail := newApprovalRig(t)

	mock.ExpectQuery("SELECT (.+) FROM `offer_approvals`").WillReturnRows(
		sqlmock.NewRows([]string{"id", "student_post_id", "tutor_id", "status"}).
			AddRow(9, 99, 1, "pending"))
	mock.ExpectQuery("SELECT (.+) FROM `student_posts`").WillReturnRows(
		sqlmock.NewRows([]string{"id", "user_id", "subject"}).
			AddRow(99, 7, "Physics"))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `offer_approvals`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT (.+) FROM `users`").WillReturnRows(
		sqlmock.NewRows(userColumns).AddRow(7, "bob@example.com", "Bob", "Baker", "student"))
	mock.ExpectQuery("SELECT (.+) FROM `users`").WillReturnRows(
		sqlmock.NewRows(userColumns).AddRow(1, "ann@example.com", "Ann", "Archer", "tutor"))
	mock.ExpectQuery("SELECT (.+) FROM `users`").WillReturnRows(
		sqlmock.NewRows(userColumns).AddRow(7, "bob@example.com", "Bob", "Baker", "student"))
	mock.ExpectQuery("SELECT (.+) FROM `users`").WillReturnRows(
		sqlmock.NewRows(userColumns).AddRow(1, "ann@example.com", "Ann", "Archer", "tutor"))

	w := putStatus(t, r, "/offers/9/status", "approved")
	require.Equal(t, http.StatusOK, w.Code)

	got := map[string]recordedMail{}
	for i := 0; i < 2; i++ {
		s := waitForMail(t, mail)
		got[s.to] = s
	}
	require.Contains(t, got, "ann@example.com")
	require.Contains(t, got, "bob@example.com")
	assert.Equal(t, domain.MailBookingConfirmation, got["bob@example.com"].kind)
	assert.Equal(t, "Physics", got["bob@example.com"].fields["course"])
	assert.Equal(t, "Ann Archer", got["bob@example.com"].fields["partner"])
	assert.Equal(t, "student", got["bob@example.com"].fields["role"])

	assert.NoError(t, mock.ExpectationsWereMet())
}
