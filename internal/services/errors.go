package services

import (
	"errors"

	"recruit_backend/internal/repositories"
	"recruit_backend/internal/storage"
	"recruit_backend/pkg/apperrors"
)

// handleRepoError переводит ошибки репозиториев в AppError.
func handleRepoError(err error, domain string) error {
	switch {
	case errors.Is(err, repositories.ErrNoticeNotFound):
		return apperrors.ErrNoticeNotFound
	case errors.Is(err, repositories.ErrApplicantNotFound):
		return apperrors.ErrApplicantNotFound
	case errors.Is(err, repositories.ErrInquiryNotFound):
		return apperrors.ErrInquiryNotFound
	case errors.Is(err, storage.ErrImageNotFound):
		return apperrors.ErrImageNotFound
	}
	return apperrors.ErrDatabase(err, domain)
}
