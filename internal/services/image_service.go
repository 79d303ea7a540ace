package services

import (
	"context"
	"errors"

	"recruit_backend/internal/imageprocessor"
	"recruit_backend/internal/logger"
	"recruit_backend/internal/services/dto"
	"recruit_backend/internal/storage"
	"recruit_backend/pkg/apperrors"
)

type ImageService interface {
	GetImage(ctx context.Context, id string) (*dto.ImagePayload, error)
	// GetImagePreview отдаёт уменьшенную копию; неизвестный размер или
	// нераспознанный формат - оригинал.
	GetImagePreview(ctx context.Context, id, size string) (*dto.ImagePayload, error)
}

type imageService struct {
	images    storage.ImageStore
	processor *imageprocessor.Processor
}

func NewImageService(images storage.ImageStore) ImageService {
	return &imageService{
		images:    images,
		processor: imageprocessor.NewProcessor(85),
	}
}

func (s *imageService) GetImage(ctx context.Context, id string) (*dto.ImagePayload, error) {
	img, err := s.images.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrImageNotFound) {
			return nil, apperrors.ErrImageNotFound
		}
		return nil, apperrors.ErrDocumentStore(err, "image")
	}

	data, err := img.Bytes()
	if err != nil {
		logger.CtxWithError(ctx, "Stored resume image is not valid base64", err, "image_id", id)
		return nil, apperrors.InternalError(err)
	}

	return &dto.ImagePayload{
		ContentType: img.ContentType,
		Data:        data,
	}, nil
}

func (s *imageService) GetImagePreview(ctx context.Context, id, size string) (*dto.ImagePayload, error) {
	payload, err := s.GetImage(ctx, id)
	if err != nil {
		return nil, err
	}

	target, ok := imageprocessor.ParseSize(size)
	if !ok {
		return payload, nil
	}

	data, contentType, err := s.processor.Preview(payload.Data, target)
	if err != nil {
		logger.CtxDebug(ctx, "Preview not available, serving original", "image_id", id, "error", err)
		return payload, nil
	}

	return &dto.ImagePayload{
		ContentType: contentType,
		Data:        data,
	}, nil
}
