package repository

import (
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/models"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) CreateStudentPost(p *models.StudentPost) error {
	return r.db.Create(p).Error
}

func (r *PostRepository) CreateTutorPost(p *models.TutorPost) error {
	return r.db.Create(p).Error
}

func (r *PostRepository) GetStudentPost(id uint) (*models.StudentPost, error) {
	var p models.StudentPost
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) GetTutorPost(id uint) (*models.TutorPost, error) {
	var p models.TutorPost
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) ListStudentPosts(limit, offset int) ([]models.StudentPost, error) {
	var list []models.StudentPost
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *PostRepository) ListTutorPosts(limit, offset int) ([]models.TutorPost, error) {
	var list []models.TutorPost
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}
