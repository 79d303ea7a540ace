package repositories

import (
	"errors"

	"recruit_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInquiryNotFound = errors.New("inquiry not found")

type InquiryRepository interface {
	Create(db *gorm.DB, inquiry *models.Inquiry) error
	FindAll(db *gorm.DB) ([]models.Inquiry, error)
	FindByID(db *gorm.DB, id uint) (*models.Inquiry, error)
}

type InquiryRepositoryImpl struct{}

func NewInquiryRepository() InquiryRepository {
	return &InquiryRepositoryImpl{}
}

func (r *InquiryRepositoryImpl) Create(db *gorm.DB, inquiry *models.Inquiry) error {
	return db.Create(inquiry).Error
}

func (r *InquiryRepositoryImpl) FindAll(db *gorm.DB) ([]models.Inquiry, error) {
	inquiries := make([]models.Inquiry, 0)
	if err := db.Order("id DESC").Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *InquiryRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := db.First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}
