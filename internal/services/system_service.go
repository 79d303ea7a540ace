package services

import (
	"context"
	"time"

	"recruit_backend/internal/logger"
	"recruit_backend/internal/repositories"
	"recruit_backend/internal/services/dto"
	"recruit_backend/internal/storage"

	"gorm.io/gorm"
)

type SystemService interface {
	// ServerTime - проверка связи с реляционной БД (SELECT NOW()).
	ServerTime(ctx context.Context, db *gorm.DB) (time.Time, error)
	Health(ctx context.Context, db *gorm.DB) *dto.HealthResponse
}

type systemService struct {
	systemRepo repositories.SystemRepository
	images     storage.ImageStore
}

func NewSystemService(systemRepo repositories.SystemRepository, images storage.ImageStore) SystemService {
	return &systemService{systemRepo: systemRepo, images: images}
}

func (s *systemService) ServerTime(ctx context.Context, db *gorm.DB) (time.Time, error) {
	now, err := s.systemRepo.ServerTime(db.WithContext(ctx))
	if err != nil {
		return time.Time{}, handleRepoError(err, "system")
	}
	return now, nil
}

// Health всегда отвечает; статус хранилищ - "ok" или текст ошибки.
func (s *systemService) Health(ctx context.Context, db *gorm.DB) *dto.HealthResponse {
	resp := &dto.HealthResponse{
		Status:     "ok",
		Components: map[string]string{},
	}

	if err := s.systemRepo.Ping(ctx, db); err != nil {
		logger.CtxWarn(ctx, "Relational store ping failed", "error", err)
		resp.Components["database"] = err.Error()
		resp.Status = "degraded"
	} else {
		resp.Components["database"] = "ok"
	}

	if err := s.images.Ping(ctx); err != nil {
		logger.CtxWarn(ctx, "Document store ping failed", "error", err)
		resp.Components["docstore"] = err.Error()
		resp.Status = "degraded"
	} else {
		resp.Components["docstore"] = "ok"
	}

	return resp
}
