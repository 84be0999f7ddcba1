package repository

import (
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(rev *models.Review) error {
	return r.db.Create(rev).Error
}

// Exists reports whether the student has already reviewed the post. Used
// by the review pass to suppress repeat requests for good.
func (r *ReviewRepository) Exists(studentID, postID uint, postType string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("student_id = ? AND post_id = ? AND post_type = ?", studentID, postID, postType).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepository) ListForPost(postID uint, postType string) ([]models.Review, error) {
	var list []models.Review
	err := r.db.Where("post_id = ? AND post_type = ?", postID, postType).Order("created_at DESC").Find(&list).Error
	return list, err
}
