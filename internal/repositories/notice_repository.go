package repositories

import (
	"errors"
	"strings"

	"recruit_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNoticeNotFound = errors.New("notice not found")

type NoticeRepository interface {
	Create(db *gorm.DB, notice *models.Notice) error
	FindAll(db *gorm.DB) ([]models.Notice, error)
	FindRecent(db *gorm.DB, limit int) ([]models.Notice, error)
	Search(db *gorm.DB, query string) ([]models.Notice, error)
	FindByID(db *gorm.DB, id uint) (*models.Notice, error)
	Delete(db *gorm.DB, id uint) error
}

type NoticeRepositoryImpl struct{}

func NewNoticeRepository() NoticeRepository {
	return &NoticeRepositoryImpl{}
}

func (r *NoticeRepositoryImpl) Create(db *gorm.DB, notice *models.Notice) error {
	return db.Create(notice).Error
}

// FindAll returns every notice, newest id first.
func (r *NoticeRepositoryImpl) FindAll(db *gorm.DB) ([]models.Notice, error) {
	notices := make([]models.Notice, 0)
	if err := db.Order("id DESC").Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}

func (r *NoticeRepositoryImpl) FindRecent(db *gorm.DB, limit int) ([]models.Notice, error) {
	notices := make([]models.Notice, 0)
	if err := db.Order("id DESC").Limit(limit).Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}

// Search - регистронезависимый поиск подстроки в заголовке.
// Символы % и _ в запросе не экранируются.
func (r *NoticeRepositoryImpl) Search(db *gorm.DB, query string) ([]models.Notice, error) {
	notices := make([]models.Notice, 0)
	pattern := "%" + strings.ToLower(query) + "%"
	if err := db.Where("LOWER(title) LIKE ?", pattern).Order("id DESC").Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}

func (r *NoticeRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Notice, error) {
	var notice models.Notice
	err := db.First(&notice, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoticeNotFound
		}
		return nil, err
	}
	return &notice, nil
}

func (r *NoticeRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Notice{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoticeNotFound
	}
	return nil
}
