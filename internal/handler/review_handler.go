package handler

import (
	"net/http"
	"strconv"

	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/domain"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/middleware"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/models"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/repository"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	repo *repository.ReviewRepository
}

func NewReviewHandler(repo *repository.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{repo: repo}
}

type reviewRequest struct {
	PostID   uint   `json:"post_id" binding:"required"`
	PostType string `json:"post_type" binding:"required,oneof=student_post tutor_post"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rev := &models.Review{
		StudentID: middleware.GetUserID(c),
		PostID:    req.PostID,
		PostType:  req.PostType,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := h.repo.Create(rev); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": rev})
}

func (h *ReviewHandler) ListForPost(c *gin.Context) {
	postID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	postType := c.DefaultQuery("post_type", domain.PostTypeTutor)
	list, err := h.repo.ListForPost(uint(postID), postType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": list})
}
