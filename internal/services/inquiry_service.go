package services

import (
	"context"

	"recruit_backend/internal/logger"
	"recruit_backend/internal/models"
	"recruit_backend/internal/repositories"
	"recruit_backend/internal/services/dto"

	"gorm.io/gorm"
)

type InquiryService interface {
	CreateInquiry(ctx context.Context, db *gorm.DB, req *dto.ContactRequest) (*models.Inquiry, error)
	ListInquiries(ctx context.Context, db *gorm.DB) ([]models.Inquiry, error)
	GetInquiry(ctx context.Context, db *gorm.DB, id uint) (*models.Inquiry, error)
}

type inquiryService struct {
	inquiryRepo repositories.InquiryRepository
	notifier    Notifier
}

// NewInquiryService: notifier может быть nil.
func NewInquiryService(inquiryRepo repositories.InquiryRepository, notifier Notifier) InquiryService {
	return &inquiryService{inquiryRepo: inquiryRepo, notifier: notifier}
}

func (s *inquiryService) CreateInquiry(ctx context.Context, db *gorm.DB, req *dto.ContactRequest) (*models.Inquiry, error) {
	inquiry := &models.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.inquiryRepo.Create(db.WithContext(ctx), inquiry); err != nil {
		return nil, handleRepoError(err, "inquiry")
	}

	logger.CtxInfo(ctx, "Inquiry received", "inquiry_id", inquiry.ID)
	if s.notifier != nil {
		s.notifier.NotifyNewInquiry(ctx, inquiry)
	}
	return inquiry, nil
}

func (s *inquiryService) ListInquiries(ctx context.Context, db *gorm.DB) ([]models.Inquiry, error) {
	inquiries, err := s.inquiryRepo.FindAll(db.WithContext(ctx))
	if err != nil {
		return nil, handleRepoError(err, "inquiry")
	}
	return inquiries, nil
}

func (s *inquiryService) GetInquiry(ctx context.Context, db *gorm.DB, id uint) (*models.Inquiry, error) {
	inquiry, err := s.inquiryRepo.FindByID(db.WithContext(ctx), id)
	if err != nil {
		return nil, handleRepoError(err, "inquiry")
	}
	return inquiry, nil
}
