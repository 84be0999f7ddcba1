package repository

import (
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/models"

	"gorm.io/gorm"
)

type ApprovalRepository struct {
	db *gorm.DB
}

func NewApprovalRepository(db *gorm.DB) *ApprovalRepository {
	return &ApprovalRepository{db: db}
}

func (r *ApprovalRepository) CreateJoin(a *models.JoinApproval) error {
	return r.db.Create(a).Error
}

func (r *ApprovalRepository) CreateOffer(a *models.OfferApproval) error {
	return r.db.Create(a).Error
}

func (r *ApprovalRepository) GetJoin(id uint) (*models.JoinApproval, error) {
	var a models.JoinApproval
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApprovalRepository) GetOffer(id uint) (*models.OfferApproval, error) {
	var a models.OfferApproval
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApprovalRepository) UpdateJoinStatus(id uint, status string) error {
	return r.db.Model(&models.JoinApproval{}).Where("id = ?", id).Update("status", status).Error
}

func (r *ApprovalRepository) UpdateOfferStatus(id uint, status string) error {
	return r.db.Model(&models.OfferApproval{}).Where("id = ?", id).Update("status", status).Error
}

func (r *ApprovalRepository) ListJoinsForPost(tutorPostID uint) ([]models.JoinApproval, error) {
	var list []models.JoinApproval
	err := r.db.Where("tutor_post_id = ?", tutorPostID).Find(&list).Error
	return list, err
}

func (r *ApprovalRepository) ListOffersForPost(studentPostID uint) ([]models.OfferApproval, error) {
	var list []models.OfferApproval
	err := r.db.Where("student_post_id = ?", studentPostID).Find(&list).Error
	return list, err
}
