package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/middleware"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/models"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/repository"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	repo *repository.CalendarRepository
}

func NewCalendarHandler(repo *repository.CalendarRepository) *CalendarHandler {
	return &CalendarHandler{repo: repo}
}

type calendarRequest struct {
	Title       string `json:"title" binding:"required"`
	Subject     string `json:"subject"`
	RelatedID   uint   `json:"related_id"`
	RelatedType string `json:"related_type"`
	EventDate   string `json:"event_date" binding:"required"` // "2006-01-02"
}

func (h *CalendarHandler) Create(c *gin.Context) {
	var req calendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.ParseInLocation("2006-01-02", req.EventDate, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_date must be YYYY-MM-DD"})
		return
	}
	e := &models.CalendarEvent{
		UserID:      middleware.GetUserID(c),
		RelatedID:   req.RelatedID,
		RelatedType: req.RelatedType,
		Title:       req.Title,
		Subject:     req.Subject,
		EventDate:   date,
	}
	if err := h.repo.Create(e); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"event": e})
}

func (h *CalendarHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.repo.ListByUserID(middleware.GetUserID(c), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": list})
}

func (h *CalendarHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.repo.Delete(uint(id), middleware.GetUserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
