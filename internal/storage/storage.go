package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recruit_backend/internal/models"
)

// ErrImageNotFound is returned for ids that do not resolve to a stored image,
// including ids the backend cannot even parse.
var ErrImageNotFound = errors.New("resume image not found")

// ImageStore defines the document-store operations on resume images.
type ImageStore interface {
	// Insert stores the image, assigns img.ID and returns it.
	Insert(ctx context.Context, img *models.ResumeImage) (string, error)

	// FindByID returns the image or ErrImageNotFound.
	FindByID(ctx context.Context, id string) (*models.ResumeImage, error)

	// Delete removes the image. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	Close(ctx context.Context) error
}

// Config holds image store configuration
type Config struct {
	Type       string // mongo, s3, local
	URI        string // mongo
	Database   string // mongo
	Collection string // mongo
	Bucket     string // s3
	Region     string // s3
	Endpoint   string // s3-compatible endpoint (MinIO, R2)
	AccessKey  string // s3
	SecretKey  string // s3
	Prefix     string // s3 key prefix
	BasePath   string // local
}

// NewImageStore creates an image store based on configuration
func NewImageStore(ctx context.Context, cfg Config) (ImageStore, error) {
	switch strings.ToLower(cfg.Type) {
	case "mongo":
		return NewMongoImageStore(ctx, cfg)
	case "s3":
		return NewS3ImageStore(ctx, cfg)
	case "local":
		return NewLocalImageStore(cfg)
	default:
		return nil, fmt.Errorf("unsupported image store type: %s", cfg.Type)
	}
}
