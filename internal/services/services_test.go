package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"
	"time"

	"recruit_backend/internal/models"
	"recruit_backend/internal/services/dto"
	"recruit_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInquiryService_CreateNotifies(t *testing.T) {
	repo := &fakeInquiryRepo{}
	notifier := &fakeNotifier{}
	svc := NewInquiryService(repo, notifier)

	inquiry, err := svc.CreateInquiry(context.Background(), testDB(t), &dto.ContactRequest{
		Name: "Park", Email: "park@example.com", Message: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), inquiry.ID)
	require.Len(t, notifier.inquiries, 1)
	assert.Equal(t, "Park", notifier.inquiries[0].Name)

	got, err := svc.GetInquiry(context.Background(), testDB(t), 1)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Message)

	_, err = svc.GetInquiry(context.Background(), testDB(t), 2)
	assert.ErrorIs(t, err, apperrors.ErrInquiryNotFound)
}

func TestInquiryService_CreateFailureDoesNotNotify(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewInquiryService(&fakeInquiryRepo{err: errors.New("db down")}, notifier)

	_, err := svc.CreateInquiry(context.Background(), testDB(t), &dto.ContactRequest{Name: "x"})
	assert.Error(t, err)
	assert.Empty(t, notifier.inquiries)
}

func TestApplicantService(t *testing.T) {
	repo := &fakeApplicantRepo{applicants: []models.Applicant{{ID: 1, Name: "Kim", ResumeFile: models.NoImage}}}
	svc := NewApplicantService(repo)

	list, err := svc.ListApplicants(context.Background(), testDB(t))
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.GetApplicant(context.Background(), testDB(t), 3)
	assert.ErrorIs(t, err, apperrors.ErrApplicantNotFound)
}

func TestImageService_GetImage(t *testing.T) {
	ctx := context.Background()
	images := newFakeImageStore()
	svc := NewImageService(images)

	id, err := images.Insert(ctx, models.NewResumeImage("resume.png", "image/png", []byte("0123456789")))
	require.NoError(t, err)

	payload, err := svc.GetImage(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "image/png", payload.ContentType)
	assert.Equal(t, []byte("0123456789"), payload.Data)

	_, err = svc.GetImage(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrImageNotFound)
}

func TestImageService_GetImagePreview(t *testing.T) {
	ctx := context.Background()
	images := newFakeImageStore()
	svc := NewImageService(images)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 600, 300))))
	id, err := images.Insert(ctx, models.NewResumeImage("resume.png", "image/png", buf.Bytes()))
	require.NoError(t, err)

	payload, err := svc.GetImagePreview(ctx, id, "thumbnail")
	require.NoError(t, err)
	assert.Equal(t, "image/png", payload.ContentType)
	cfg, err := png.DecodeConfig(bytes.NewReader(payload.Data))
	require.NoError(t, err)
	assert.Equal(t, 150, cfg.Width)

	// неизвестный размер - оригинал
	payload, err = svc.GetImagePreview(ctx, id, "poster")
	require.NoError(t, err)
	assert.Equal(t, buf.Bytes(), payload.Data)

	// не изображение - оригинал
	id, err = images.Insert(ctx, models.NewResumeImage("cv.txt", "text/plain", []byte("hello")))
	require.NoError(t, err)
	payload, err = svc.GetImagePreview(ctx, id, "small")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), payload.Data)
	assert.Equal(t, "text/plain", payload.ContentType)

	_, err = svc.GetImagePreview(ctx, "missing", "small")
	assert.ErrorIs(t, err, apperrors.ErrImageNotFound)
}

func TestImageService_Errors(t *testing.T) {
	ctx := context.Background()
	images := newFakeImageStore()
	images.images["bad"] = models.ResumeImage{ContentType: "image/png", ImageBase64: "!!not base64!!"}
	svc := NewImageService(images)

	_, err := svc.GetImage(ctx, "bad")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.HTTPCode)

	images.findErr = errors.New("timeout")
	_, err = svc.GetImage(ctx, "bad")
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeDocumentStoreError, appErr.Code)
}

func TestSystemService(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	repo := &fakeSystemRepo{now: now}
	images := newFakeImageStore()
	svc := NewSystemService(repo, images)

	got, err := svc.ServerTime(context.Background(), testDB(t))
	require.NoError(t, err)
	assert.Equal(t, now, got)

	health := svc.Health(context.Background(), testDB(t))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "ok", health.Components["database"])
	assert.Equal(t, "ok", health.Components["docstore"])

	images.pingErr = errors.New("no reachable servers")
	health = svc.Health(context.Background(), testDB(t))
	assert.Equal(t, "degraded", health.Status)
	assert.Equal(t, "no reachable servers", health.Components["docstore"])

	repo.err = errors.New("gone away")
	_, err = svc.ServerTime(context.Background(), testDB(t))
	assert.Error(t, err)
}
