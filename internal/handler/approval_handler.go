package handler

import (
	"net/http"
	"strconv"

	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/domain"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/middleware"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/models"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/repository"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

type ApprovalHandler struct {
	repo     *repository.ApprovalRepository
	postRepo *repository.PostRepository
	userRepo *repository.UserRepository
	notifSvc *service.NotificationService
}

func NewApprovalHandler(repo *repository.ApprovalRepository, postRepo *repository.PostRepository, userRepo *repository.UserRepository, notifSvc *service.NotificationService) *ApprovalHandler {
	return &ApprovalHandler{repo: repo, postRepo: postRepo, userRepo: userRepo, notifSvc: notifSvc}
}

// Join lets a student ask to join a tutor's class.
func (h *ApprovalHandler) Join(c *gin.Context) {
	postID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if _, err := h.postRepo.GetTutorPost(uint(postID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	a := &models.JoinApproval{
		TutorPostID: uint(postID),
		StudentID:   middleware.GetUserID(c),
		Status:      domain.ApprovalPending,
	}
	if err := h.repo.CreateJoin(a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"approval": a})
}

// Offer lets a tutor offer to teach a student's request.
func (h *ApprovalHandler) Offer(c *gin.Context) {
	postID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if _, err := h.postRepo.GetStudentPost(uint(postID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	a := &models.OfferApproval{
		StudentPostID: uint(postID),
		TutorID:       middleware.GetUserID(c),
		Status:        domain.ApprovalPending,
	}
	if err := h.repo.CreateOffer(a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"approval": a})
}

type statusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// DecideJoin lets the tutor who owns the post approve or reject a join.
// Approval emails a booking confirmation to both sides.
func (h *ApprovalHandler) DecideJoin(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.repo.GetJoin(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "approval not found"})
		return
	}
	post, err := h.postRepo.GetTutorPost(a.TutorPostID)
	if err != nil || post.UserID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the post owner"})
		return
	}
	if err := h.repo.UpdateJoinStatus(a.ID, req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	if req.Status == domain.ApprovalApproved {
		h.confirmBooking(post.UserID, a.StudentID, post.Subject)
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// DecideOffer is the mirror flow for a student deciding a tutor's offer.
func (h *ApprovalHandler) DecideOffer(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.repo.GetOffer(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "approval not found"})
		return
	}
	post, err := h.postRepo.GetStudentPost(a.StudentPostID)
	if err != nil || post.UserID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the post owner"})
		return
	}
	if err := h.repo.UpdateOfferStatus(a.ID, req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	if req.Status == domain.ApprovalApproved {
		h.confirmBooking(post.UserID, a.TutorID, post.Subject)
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

func (h *ApprovalHandler) confirmBooking(ownerID, partnerID uint, subject string) {
	owner, errO := h.userRepo.GetByID(ownerID)
	partner, errP := h.userRepo.GetByID(partnerID)
	if errO != nil || errP != nil {
		return
	}
	h.notifSvc.NotifyBookingConfirmed(owner.ID, subject, partner.FirstName+" "+partner.LastName, owner.Role)
	h.notifSvc.NotifyBookingConfirmed(partner.ID, subject, owner.FirstName+" "+owner.LastName, partner.Role)
}
