package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/domain"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/scheduler"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleSvc  *service.ScheduleService
	driver       *scheduler.Driver
	backfillDays int
}

func NewScheduleHandler(scheduleSvc *service.ScheduleService, driver *scheduler.Driver, backfillDays int) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc, driver: driver, backfillDays: backfillDays}
}

type scheduleAlert struct {
	Type           string    `json:"type"`
	RelatedID      uint      `json:"related_id"`
	PostSubject    string    `json:"post_subject"`
	ActorFirstname string    `json:"actor_firstname"`
	ActorLastname  string    `json:"actor_lastname"`
	CreatedAt      time.Time `json:"created_at"`
}

// Alerts recomputes the today/tomorrow aggregation for one user at
// request time. It deliberately does not read the notifications table, so
// it can disagree with what the background engine persisted.
func (h *ScheduleHandler) Alerts(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	now := time.Now()
	alerts := []scheduleAlert{}
	for _, h2 := range []struct {
		date  time.Time
		ntype string
	}{
		{now, domain.NotifClassToday},
		{now.AddDate(0, 0, 1), domain.NotifClassTomorrow},
	} {
		for _, cand := range h.scheduleSvc.Collect(h2.date, uint(userID)) {
			alerts = append(alerts, scheduleAlert{
				Type:           h2.ntype,
				RelatedID:      cand.RelatedID,
				PostSubject:    cand.Subject,
				ActorFirstname: cand.ActorFirst,
				ActorLastname:  cand.ActorLast,
				CreatedAt:      now,
			})
		}
	}
	c.JSON(http.StatusOK, alerts)
}

// ReviewBackfill manually replays the review-request pass for the last N
// days (default from config, capped by it too).
func (h *ScheduleHandler) ReviewBackfill(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(h.backfillDays)))
	if days <= 0 || days > h.backfillDays {
		days = h.backfillDays
	}
	h.driver.RunReviewBackfill(days)
	c.JSON(http.StatusOK, gin.H{"status": "ok", "days": days})
}
