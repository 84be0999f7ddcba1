package handler

import (
	"net/http"
	"strconv"

	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/middleware"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/models"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/repository"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	repo *repository.PostRepository
}

func NewPostHandler(repo *repository.PostRepository) *PostHandler {
	return &PostHandler{repo: repo}
}

type postRequest struct {
	Subject      string `json:"subject" binding:"required"`
	Description  string `json:"description"`
	ScheduleDays string `json:"schedule_days"`
	TimeOfDay    string `json:"time_of_day"`
	Budget       int    `json:"budget"`
	Price        int    `json:"price"`
}

func (h *PostHandler) CreateStudentPost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := &models.StudentPost{
		UserID:       middleware.GetUserID(c),
		Subject:      req.Subject,
		Description:  req.Description,
		ScheduleDays: req.ScheduleDays,
		TimeOfDay:    req.TimeOfDay,
		Budget:       req.Budget,
	}
	if err := h.repo.CreateStudentPost(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": p})
}

func (h *PostHandler) CreateTutorPost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := &models.TutorPost{
		UserID:       middleware.GetUserID(c),
		Subject:      req.Subject,
		Description:  req.Description,
		ScheduleDays: req.ScheduleDays,
		TimeOfDay:    req.TimeOfDay,
		Price:        req.Price,
	}
	if err := h.repo.CreateTutorPost(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": p})
}

func (h *PostHandler) ListStudentPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.repo.ListStudentPosts(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": list})
}

func (h *PostHandler) ListTutorPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.repo.ListTutorPosts(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": list})
}
