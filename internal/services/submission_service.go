package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"recruit_backend/internal/imageprocessor"
	"recruit_backend/internal/logger"
	"recruit_backend/internal/models"
	"recruit_backend/internal/repositories"
	"recruit_backend/internal/services/dto"
	"recruit_backend/internal/storage"
	"recruit_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SubmissionService interface {
	// Submit сохраняет анкету. Файл необязателен (nil).
	Submit(ctx context.Context, db *gorm.DB, req *dto.SubmissionRequest, file *multipart.FileHeader) (*models.Applicant, error)
}

type submissionService struct {
	applicantRepo  repositories.ApplicantRepository
	images         storage.ImageStore
	notifier       Notifier
	cleanupOrphans bool
}

func NewSubmissionService(
	applicantRepo repositories.ApplicantRepository,
	images storage.ImageStore,
	notifier Notifier,
	cleanupOrphans bool,
) SubmissionService {
	return &submissionService{
		applicantRepo:  applicantRepo,
		images:         images,
		notifier:       notifier,
		cleanupOrphans: cleanupOrphans,
	}
}

// Submit: сначала изображение в документное хранилище, потом строка в БД.
// Ошибка записи изображения не прерывает подачу, вместо id пишется NoImage.
// Если упала запись в БД, только что сохранённое изображение удаляется
// (при включённом cleanupOrphans).
func (s *submissionService) Submit(ctx context.Context, db *gorm.DB, req *dto.SubmissionRequest, file *multipart.FileHeader) (*models.Applicant, error) {
	resumeFile := models.NoImage

	if file != nil {
		id, err := s.storeResume(ctx, file)
		if err != nil {
			logger.CtxWithError(ctx, "Failed to store resume image, continuing without it", err,
				"filename", file.Filename,
				"size", file.Size,
			)
		} else {
			resumeFile = id
		}
	}

	applicant := &models.Applicant{
		Name:        req.Name,
		Age:         req.Age,
		Gender:      req.Gender,
		PhoneNumber: req.Phone,
		Address:     req.Address,
		ResumeFile:  resumeFile,
	}

	if err := s.applicantRepo.Create(db.WithContext(ctx), applicant); err != nil {
		if applicant.HasResumeImage() && s.cleanupOrphans {
			s.deleteOrphan(ctx, resumeFile)
		}
		return nil, apperrors.ErrDatabase(err, "applicant")
	}

	logger.CtxInfo(ctx, "Applicant submitted", "applicant_id", applicant.ID, "resume_file", applicant.ResumeFile)
	if s.notifier != nil {
		s.notifier.NotifyNewApplicant(ctx, applicant)
	}
	return applicant, nil
}

func (s *submissionService) storeResume(ctx context.Context, file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	img := models.NewResumeImage(file.Filename, file.Header.Get("Content-Type"), data)
	id, err := s.images.Insert(ctx, img)
	if err != nil {
		return "", err
	}

	fields := []any{"image_id", id, "filename", file.Filename, "content_type", img.ContentType, "size", len(data)}
	// сохраняем любые байты, размеры - только для лога
	if width, height, err := imageprocessor.Dimensions(data); err == nil {
		fields = append(fields, "width", width, "height", height)
	}
	logger.CtxInfo(ctx, "Resume image stored", fields...)
	return id, nil
}

// deleteOrphan: ошибка удаления только логируется.
func (s *submissionService) deleteOrphan(ctx context.Context, id string) {
	// исходный ctx мог быть уже отменён клиентом
	cleanupCtx := context.WithoutCancel(ctx)
	if err := s.images.Delete(cleanupCtx, id); err != nil {
		logger.CtxWithError(ctx, "Failed to delete orphaned resume image", err, "image_id", id)
		return
	}
	logger.CtxWarn(ctx, "Deleted orphaned resume image after applicant insert failed", "image_id", id)
}
