package services

import (
	"context"
	"errors"
	"strings"

	"recruit_backend/internal/logger"
	"recruit_backend/internal/models"
	"recruit_backend/internal/repositories"
	"recruit_backend/internal/services/dto"

	"gorm.io/gorm"
)

// RecentNoticesLimit - сколько объявлений отдаёт /api/notices/recent.
const RecentNoticesLimit = 5

type NoticeService interface {
	ListNotices(ctx context.Context, db *gorm.DB) ([]models.Notice, error)
	RecentNotices(ctx context.Context, db *gorm.DB) ([]dto.RecentNoticeResponse, error)
	SearchNotices(ctx context.Context, db *gorm.DB, query string) ([]models.Notice, error)
	GetNotice(ctx context.Context, db *gorm.DB, id uint) (*models.Notice, error)
	CreateNotice(ctx context.Context, db *gorm.DB, req *dto.CreateNoticeRequest) (*models.Notice, error)
	DeleteNotice(ctx context.Context, db *gorm.DB, id uint) error
}

type noticeService struct {
	noticeRepo repositories.NoticeRepository
}

func NewNoticeService(noticeRepo repositories.NoticeRepository) NoticeService {
	return &noticeService{noticeRepo: noticeRepo}
}

func (s *noticeService) ListNotices(ctx context.Context, db *gorm.DB) ([]models.Notice, error) {
	notices, err := s.noticeRepo.FindAll(db.WithContext(ctx))
	if err != nil {
		return nil, handleRepoError(err, "notice")
	}
	return notices, nil
}

func (s *noticeService) RecentNotices(ctx context.Context, db *gorm.DB) ([]dto.RecentNoticeResponse, error) {
	notices, err := s.noticeRepo.FindRecent(db.WithContext(ctx), RecentNoticesLimit)
	if err != nil {
		return nil, handleRepoError(err, "notice")
	}

	out := make([]dto.RecentNoticeResponse, 0, len(notices))
	for _, n := range notices {
		out = append(out, dto.RecentNoticeResponse{
			ID:        n.ID,
			Title:     n.Title,
			CreatedAt: n.CreatedAt.Format(models.NoticeDateLayout),
		})
	}
	return out, nil
}

// SearchNotices: пустой запрос даёт пустой список, в БД не ходим.
func (s *noticeService) SearchNotices(ctx context.Context, db *gorm.DB, query string) ([]models.Notice, error) {
	if strings.TrimSpace(query) == "" {
		return []models.Notice{}, nil
	}

	notices, err := s.noticeRepo.Search(db.WithContext(ctx), query)
	if err != nil {
		return nil, handleRepoError(err, "notice")
	}
	return notices, nil
}

func (s *noticeService) GetNotice(ctx context.Context, db *gorm.DB, id uint) (*models.Notice, error) {
	notice, err := s.noticeRepo.FindByID(db.WithContext(ctx), id)
	if err != nil {
		return nil, handleRepoError(err, "notice")
	}
	return notice, nil
}

func (s *noticeService) CreateNotice(ctx context.Context, db *gorm.DB, req *dto.CreateNoticeRequest) (*models.Notice, error) {
	notice := &models.Notice{
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.noticeRepo.Create(db.WithContext(ctx), notice); err != nil {
		return nil, handleRepoError(err, "notice")
	}

	logger.CtxInfo(ctx, "Notice created", "notice_id", notice.ID)
	return notice, nil
}

// DeleteNotice идемпотентен: удаление отсутствующего объявления не ошибка.
func (s *noticeService) DeleteNotice(ctx context.Context, db *gorm.DB, id uint) error {
	err := s.noticeRepo.Delete(db.WithContext(ctx), id)
	if errors.Is(err, repositories.ErrNoticeNotFound) {
		logger.CtxDebug(ctx, "Notice already absent", "notice_id", id)
		return nil
	}
	if err != nil {
		return handleRepoError(err, "notice")
	}

	logger.CtxInfo(ctx, "Notice deleted", "notice_id", id)
	return nil
}
