package services

import (
	"context"

	"recruit_backend/internal/models"
	"recruit_backend/internal/repositories"

	"gorm.io/gorm"
)

type ApplicantService interface {
	ListApplicants(ctx context.Context, db *gorm.DB) ([]models.Applicant, error)
	GetApplicant(ctx context.Context, db *gorm.DB, id uint) (*models.Applicant, error)
}

type applicantService struct {
	applicantRepo repositories.ApplicantRepository
}

func NewApplicantService(applicantRepo repositories.ApplicantRepository) ApplicantService {
	return &applicantService{applicantRepo: applicantRepo}
}

func (s *applicantService) ListApplicants(ctx context.Context, db *gorm.DB) ([]models.Applicant, error) {
	applicants, err := s.applicantRepo.FindAll(db.WithContext(ctx))
	if err != nil {
		return nil, handleRepoError(err, "applicant")
	}
	return applicants, nil
}

func (s *applicantService) GetApplicant(ctx context.Context, db *gorm.DB, id uint) (*models.Applicant, error) {
	applicant, err := s.applicantRepo.FindByID(db.WithContext(ctx), id)
	if err != nil {
		return nil, handleRepoError(err, "applicant")
	}
	return applicant, nil
}
