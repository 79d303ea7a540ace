package repositories

import (
	"errors"

	"recruit_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicantNotFound = errors.New("applicant not found")

type ApplicantRepository interface {
	Create(db *gorm.DB, applicant *models.Applicant) error
	FindAll(db *gorm.DB) ([]models.Applicant, error)
	FindByID(db *gorm.DB, id uint) (*models.Applicant, error)
}

type ApplicantRepositoryImpl struct{}

func NewApplicantRepository() ApplicantRepository {
	return &ApplicantRepositoryImpl{}
}

func (r *ApplicantRepositoryImpl) Create(db *gorm.DB, applicant *models.Applicant) error {
	return db.Create(applicant).Error
}

func (r *ApplicantRepositoryImpl) FindAll(db *gorm.DB) ([]models.Applicant, error) {
	applicants := make([]models.Applicant, 0)
	if err := db.Order("id DESC").Find(&applicants).Error; err != nil {
		return nil, err
	}
	return applicants, nil
}

func (r *ApplicantRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Applicant, error) {
	var applicant models.Applicant
	if err := db.First(&applicant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicantNotFound
		}
		return nil, err
	}
	return &applicant, nil
}
