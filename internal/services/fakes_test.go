package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"recruit_backend/internal/models"
	"recruit_backend/internal/repositories"
	"recruit_backend/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB - gorm поверх sqlmock; фейковые репозитории в него не ходят.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func newFileHeader(t *testing.T, field, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File[field][0]
}

// ============================================================================
// Repositories
// ============================================================================

type fakeNoticeRepo struct {
	notices   []models.Notice
	err       error
	searchHit int
}

func (f *fakeNoticeRepo) Create(db *gorm.DB, n *models.Notice) error {
	if f.err != nil {
		return f.err
	}
	n.ID = uint(len(f.notices) + 1)
	n.CreatedAt = time.Now()
	f.notices = append(f.notices, *n)
	return nil
}

func (f *fakeNoticeRepo) FindAll(db *gorm.DB) ([]models.Notice, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Notice, 0, len(f.notices))
	for i := len(f.notices) - 1; i >= 0; i-- {
		out = append(out, f.notices[i])
	}
	return out, nil
}

func (f *fakeNoticeRepo) FindRecent(db *gorm.DB, limit int) ([]models.Notice, error) {
	all, err := f.FindAll(db)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeNoticeRepo) Search(db *gorm.DB, query string) ([]models.Notice, error) {
	f.searchHit++
	return f.FindAll(db)
}

func (f *fakeNoticeRepo) FindByID(db *gorm.DB, id uint) (*models.Notice, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.notices {
		if f.notices[i].ID == id {
			n := f.notices[i]
			return &n, nil
		}
	}
	return nil, repositories.ErrNoticeNotFound
}

func (f *fakeNoticeRepo) Delete(db *gorm.DB, id uint) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.notices {
		if f.notices[i].ID == id {
			f.notices = append(f.notices[:i], f.notices[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNoticeNotFound
}

type fakeApplicantRepo struct {
	applicants []models.Applicant
	createErr  error
}

func (f *fakeApplicantRepo) Create(db *gorm.DB, a *models.Applicant) error {
	if f.createErr != nil {
		return f.createErr
	}
	a.ID = uint(len(f.applicants) + 1)
	f.applicants = append(f.applicants, *a)
	return nil
}

func (f *fakeApplicantRepo) FindAll(db *gorm.DB) ([]models.Applicant, error) {
	return f.applicants, nil
}

func (f *fakeApplicantRepo) FindByID(db *gorm.DB, id uint) (*models.Applicant, error) {
	for i := range f.applicants {
		if f.applicants[i].ID == id {
			return &f.applicants[i], nil
		}
	}
	return nil, repositories.ErrApplicantNotFound
}

type fakeInquiryRepo struct {
	inquiries []models.Inquiry
	err       error
}

func (f *fakeInquiryRepo) Create(db *gorm.DB, i *models.Inquiry) error {
	if f.err != nil {
		return f.err
	}
	i.ID = uint(len(f.inquiries) + 1)
	f.inquiries = append(f.inquiries, *i)
	return nil
}

func (f *fakeInquiryRepo) FindAll(db *gorm.DB) ([]models.Inquiry, error) {
	return f.inquiries, f.err
}

func (f *fakeInquiryRepo) FindByID(db *gorm.DB, id uint) (*models.Inquiry, error) {
	for i := range f.inquiries {
		if f.inquiries[i].ID == id {
			return &f.inquiries[i], nil
		}
	}
	return nil, repositories.ErrInquiryNotFound
}

type fakeSystemRepo struct {
	now     time.Time
	err     error
	pingErr error
}

func (f *fakeSystemRepo) ServerTime(db *gorm.DB) (time.Time, error) { return f.now, f.err }
func (f *fakeSystemRepo) Ping(ctx context.Context, db *gorm.DB) error {
	return f.pingErr
}

// ============================================================================
// Image store / notifier
// ============================================================================

type fakeImageStore struct {
	mu        sync.Mutex
	images    map[string]models.ResumeImage
	insertErr error
	findErr   error
	deleteErr error
	pingErr   error
	deleted   []string
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{images: map[string]models.ResumeImage{}}
}

func (f *fakeImageStore) Insert(ctx context.Context, img *models.ResumeImage) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.NewString()
	img.ID = id
	f.images[id] = *img
	return id, nil
}

func (f *fakeImageStore) FindByID(ctx context.Context, id string) (*models.ResumeImage, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	img, ok := f.images[id]
	if !ok {
		return nil, storage.ErrImageNotFound
	}
	return &img, nil
}

func (f *fakeImageStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.images, id)
	return nil
}

func (f *fakeImageStore) Ping(ctx context.Context) error  { return f.pingErr }
func (f *fakeImageStore) Close(ctx context.Context) error { return nil }

type fakeNotifier struct {
	applicants []*models.Applicant
	inquiries  []*models.Inquiry
}

func (f *fakeNotifier) NotifyNewApplicant(ctx context.Context, a *models.Applicant) bool {
	f.applicants = append(f.applicants, a)
	return true
}

func (f *fakeNotifier) NotifyNewInquiry(ctx context.Context, i *models.Inquiry) bool {
	f.inquiries = append(f.inquiries, i)
	return true
}
