package services

import (
	"recruit_backend/internal/repositories"
	"recruit_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	NoticeService     NoticeService
	ApplicantService  ApplicantService
	InquiryService    InquiryService
	SubmissionService SubmissionService
	ImageService      ImageService
	SystemService     SystemService
}

// NewServiceContainer собирает сервисы. notifier может быть nil (почта не настроена).
func NewServiceContainer(images storage.ImageStore, notifier Notifier, cleanupOrphans bool) *ServiceContainer {
	noticeRepo := repositories.NewNoticeRepository()
	applicantRepo := repositories.NewApplicantRepository()
	inquiryRepo := repositories.NewInquiryRepository()
	systemRepo := repositories.NewSystemRepository()

	return &ServiceContainer{
		NoticeService:     NewNoticeService(noticeRepo),
		ApplicantService:  NewApplicantService(applicantRepo),
		InquiryService:    NewInquiryService(inquiryRepo, notifier),
		SubmissionService: NewSubmissionService(applicantRepo, images, notifier, cleanupOrphans),
		ImageService:      NewImageService(images),
		SystemService:     NewSystemService(systemRepo, images),
	}
}
