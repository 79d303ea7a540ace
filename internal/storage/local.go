package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"recruit_backend/internal/models"

	"github.com/google/uuid"
)

// LocalImageStore keeps one JSON document per image on the local filesystem.
type LocalImageStore struct {
	basePath string
}

// NewLocalImageStore creates a new local image store
func NewLocalImageStore(cfg Config) (*LocalImageStore, error) {
	if cfg.BasePath == "" {
		cfg.BasePath = "./data/resume-images"
	}

	if err := os.MkdirAll(cfg.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalImageStore{basePath: cfg.BasePath}, nil
}

// path отдаёт путь к документу; id должен быть UUID, иначе ErrImageNotFound.
func (s *LocalImageStore) path(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", ErrImageNotFound
	}
	return filepath.Join(s.basePath, parsed.String()+".json"), nil
}

func (s *LocalImageStore) Insert(ctx context.Context, img *models.ResumeImage) (string, error) {
	id := uuid.NewString()
	fullPath, _ := s.path(id)

	data, err := json.Marshal(img)
	if err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	// Пишем во временный файл и переименовываем, чтобы не оставлять полузаписанных документов
	tmp := fullPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp, fullPath); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	img.ID = id
	return id, nil
}

func (s *LocalImageStore) FindByID(ctx context.Context, id string) (*models.ResumeImage, error) {
	fullPath, err := s.path(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	var img models.ResumeImage
	if err := json.Unmarshal(data, &img); err != nil {
		return nil, fmt.Errorf("failed to decode image document: %w", err)
	}
	img.ID = id
	return &img, nil
}

func (s *LocalImageStore) Delete(ctx context.Context, id string) error {
	fullPath, err := s.path(id)
	if err != nil {
		return nil
	}

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalImageStore) Ping(ctx context.Context) error {
	info, err := os.Stat(s.basePath)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.basePath)
	}
	return nil
}

func (s *LocalImageStore) Close(ctx context.Context) error {
	return nil
}
