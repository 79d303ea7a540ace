package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type SystemRepository interface {
	// ServerTime возвращает NOW() сервера БД.
	ServerTime(db *gorm.DB) (time.Time, error)
	Ping(ctx context.Context, db *gorm.DB) error
}

type SystemRepositoryImpl struct{}

func NewSystemRepository() SystemRepository {
	return &SystemRepositoryImpl{}
}

func (r *SystemRepositoryImpl) ServerTime(db *gorm.DB) (time.Time, error) {
	var now time.Time
	if err := db.Raw("SELECT NOW()").Row().Scan(&now); err != nil {
		return time.Time{}, err
	}
	return now, nil
}

func (r *SystemRepositoryImpl) Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
