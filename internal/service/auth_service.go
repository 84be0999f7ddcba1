package service

import (
	"errors"

	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/config"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/auth"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/domain"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/models"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists  = errors.New("email already registered")
	ErrInvalidCreds = errors.New("invalid email or password")
	ErrInvalidRole  = errors.New("role must be student or tutor")
)

type AuthService struct {
	cfg      *config.Config
	userRepo *repository.UserRepository
}

func NewAuthService(cfg *config.Config, userRepo *repository.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

func (s *AuthService) Register(email, password, firstName, lastName, role string) (*models.User, string, error) {
	if role != domain.RoleStudent && role != domain.RoleTutor {
		return nil, "", ErrInvalidRole
	}
	_, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return nil, "", ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	u := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
	}
	if err := s.userRepo.Create(u); err != nil {
		return nil, "", err
	}
	token, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCreds
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCreds
	}
	token, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
