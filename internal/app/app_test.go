package app

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"recruit_backend/internal/config"
	"recruit_backend/internal/models"
	"recruit_backend/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testServer struct {
	router *gin.Engine
	mock   sqlmock.Sqlmock
	images *storage.LocalImageStore
	static string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	images, err := storage.NewLocalImageStore(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<h1>landing</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(static, "style.css"), []byte("body{}"), 0o644))

	cfg := config.Defaults()
	cfg.Server.StaticDir = static

	return &testServer{
		router: SetupRouter(cfg, gormDB, images, nil),
		mock:   mock,
		images: images,
		static: static,
	}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// captureArg запоминает значение аргумента запроса.
type captureArg struct {
	value *string
}

func (a captureArg) Match(v driver.Value) bool {
	s, ok := v.(string)
	if ok {
		*a.value = s
	}
	return ok
}

func submissionForm(t *testing.T, fields map[string]string, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename="%s"`, filename))
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

var kim = map[string]string{
	"name":    "Kim",
	"age":     "30",
	"gender":  "M",
	"phone":   "010",
	"address": "Seoul",
}

// ============================================================================
// Submission / images
// ============================================================================

func TestSubmit_WithoutFileStoresSentinel(t *testing.T) {
	s := newTestServer(t)

	s.mock.ExpectExec("INSERT INTO `applicants`").
		WithArgs("Kim", "30", "M", "010", "Seoul", models.NoImage).
		WillReturnResult(sqlmock.NewResult(1, 1))

	body, ct := submissionForm(t, kim, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/submit", body)
	req.Header.Set("Content-Type", ct)
	w := s.do(req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `location.href="/"`)
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestSubmit_WithFileThenFetchImage(t *testing.T) {
	s := newTestServer(t)
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x01}

	var imageID string
	s.mock.ExpectExec("INSERT INTO `applicants`").
		WithArgs("Kim", "30", "M", "010", "Seoul", captureArg{value: &imageID}).
		WillReturnResult(sqlmock.NewResult(1, 1))

	body, ct := submissionForm(t, kim, "resume.png", "image/png", png)
	req := httptest.NewRequest(http.MethodPost, "/submit", body)
	req.Header.Set("Content-Type", ct)
	w := s.do(req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `location.href="/"`)
	require.NoError(t, s.mock.ExpectationsWereMet())
	require.NotEmpty(t, imageID)
	require.NotEqual(t, models.NoImage, imageID)

	w = s.do(httptest.NewRequest(http.MethodGet, "/image/"+imageID, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, png, w.Body.Bytes())
}

func TestSubmit_DatabaseFailureRemovesOrphan(t *testing.T) {
	s := newTestServer(t)

	var imageID string
	s.mock.ExpectExec("INSERT INTO `applicants`").
		WithArgs("Kim", "30", "M", "010", "Seoul", captureArg{value: &imageID}).
		WillReturnError(fmt.Errorf("connection refused"))

	body, ct := submissionForm(t, kim, "resume.png", "image/png", []byte("png"))
	req := httptest.NewRequest(http.MethodPost, "/submit", body)
	req.Header.Set("Content-Type", ct)
	w := s.do(req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "history.back()")
	require.NotEmpty(t, imageID)

	w = s.do(httptest.NewRequest(http.MethodGet, "/image/"+imageID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetImage_NotFound(t *testing.T) {
	s := newTestServer(t)

	for _, id := range []string{"not-an-id", "6f1c2a7e-3b4d-4c5e-8f90-123456789abc"} {
		w := s.do(httptest.NewRequest(http.MethodGet, "/image/"+id, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, id)
		assert.Equal(t, "이미지 없음", w.Body.String())
	}
}

func TestContact(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		s := newTestServer(t)
		s.mock.ExpectExec("INSERT INTO `inquiries`").
			WithArgs("Lee", "lee@example.com", "hello").
			WillReturnResult(sqlmock.NewResult(1, 1))

		form := url.Values{"name": {"Lee"}, "email": {"lee@example.com"}, "message": {"hello"}}
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := s.do(req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `location.href="/"`)
		assert.NoError(t, s.mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		s := newTestServer(t)
		s.mock.ExpectExec("INSERT INTO `inquiries`").WillReturnError(fmt.Errorf("boom"))

		form := url.Values{"name": {"Lee"}}
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := s.do(req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "history.back()")
	})
}

// ============================================================================
// Notices
// ============================================================================

func noticeRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "content", "created_at"}).
		AddRow(2, "Second", "b", now).
		AddRow(1, "First", "a", now.Add(-24*time.Hour))
}

func TestListNotices(t *testing.T) {
	s := newTestServer(t)
	s.mock.ExpectQuery("SELECT \\* FROM `notices` ORDER BY id DESC").
		WillReturnRows(noticeRows(time.Now()))

	w := s.do(httptest.NewRequest(http.MethodGet, "/api/notices", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var notices []models.Notice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notices))
	require.Len(t, notices, 2)
	assert.Equal(t, uint(2), notices[0].ID)
	assert.Equal(t, "First", notices[1].Title)
}

func TestListNotices_EmptyIsArray(t *testing.T) {
	s := newTestServer(t)
	s.mock.ExpectQuery("SELECT \\* FROM `notices`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "created_at"}))

	w := s.do(httptest.NewRequest(http.MethodGet, "/api/notices", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRecentNotices(t *testing.T) {
	s := newTestServer(t)
	now := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)
	s.mock.ExpectQuery("SELECT \\* FROM `notices` ORDER BY id DESC LIMIT").
		WillReturnRows(noticeRows(now))

	w := s.do(httptest.NewRequest(http.MethodGet, "/api/notices/recent", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id": 2, "title": "Second", "created_at": "2024-03-09"},
		{"id": 1, "title": "First", "created_at": "2024-03-08"}
	]`, w.Body.String())
}

func TestGetNotice(t *testing.T) {
	s := newTestServer(t)

	s.mock.ExpectQuery("SELECT \\* FROM `notices` WHERE `notices`.`id` = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "created_at"}).
			AddRow(7, "Hiring", "now", time.Now()))
	w := s.do(httptest.NewRequest(http.MethodGet, "/api/notices/7", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Hiring"`)

	s.mock.ExpectQuery("SELECT \\* FROM `notices` WHERE `notices`.`id` = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "created_at"}))
	w = s.do(httptest.NewRequest(http.MethodGet, "/api/notices/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// нечисловой id в БД не ходит
	w = s.do(httptest.NewRequest(http.MethodGet, "/api/admin/notices/abc", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestSearchNotices(t *testing.T) {
	s := newTestServer(t)

	w := s.do(httptest.NewRequest(http.MethodGet, "/api/search", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = s.do(httptest.NewRequest(http.MethodGet, "/api/search?q=%20%20", nil))
	assert.JSONEq(t, `[]`, w.Body.String())

	s.mock.ExpectQuery("SELECT \\* FROM `notices` WHERE LOWER\\(title\\) LIKE \\? ORDER BY id DESC").
		WithArgs("%hiring%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "created_at"}).
			AddRow(3, "HIRING now", "", time.Now()))
	w = s.do(httptest.NewRequest(http.MethodGet, "/api/search?q=Hiring", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "HIRING now")
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestAdminCreateNotice(t *testing.T) {
	s := newTestServer(t)
	s.mock.ExpectExec("INSERT INTO `notices`").
		WithArgs("Open role", "Apply now", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(11, 1))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/notices",
		strings.NewReader(`{"title":"Open role","content":"Apply now"}`))
	req.Header.Set("Content-Type", "application/json")
	w := s.do(req)

	require.Equal(t, http.StatusCreated, w.Code)
	var notice models.Notice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notice))
	assert.Equal(t, uint(11), notice.ID)
	assert.Equal(t, "Open role", notice.Title)
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestAdminDeleteNotice_Idempotent(t *testing.T) {
	s := newTestServer(t)

	s.mock.ExpectExec("DELETE FROM `notices`").WillReturnResult(sqlmock.NewResult(0, 1))
	w := s.do(httptest.NewRequest(http.MethodDelete, "/api/admin/notices/4", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	s.mock.ExpectExec("DELETE FROM `notices`").WillReturnResult(sqlmock.NewResult(0, 0))
	w = s.do(httptest.NewRequest(http.MethodDelete, "/api/admin/notices/4", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(httptest.NewRequest(http.MethodDelete, "/api/admin/notices/abc", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

// ============================================================================
// Applicants / inquiries
// ============================================================================

func TestListApplicants(t *testing.T) {
	s := newTestServer(t)
	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "name", "age", "gender", "phone_number", "address", "resume_file"}).
			AddRow(1, "Kim", "30", "M", "010", "Seoul", models.NoImage)
	}

	for _, path := range []string{"/api/applicants", "/api/admin/applicants"} {
		s.mock.ExpectQuery("SELECT \\* FROM `applicants` ORDER BY id DESC").WillReturnRows(rows())
		w := s.do(httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `[{"id":1,"name":"Kim","age":"30","gender":"M","phone_number":"010","address":"Seoul","resume_file":"No Image"}]`, w.Body.String())
	}
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestGetInquiry_NotFound(t *testing.T) {
	s := newTestServer(t)
	s.mock.ExpectQuery("SELECT \\* FROM `inquiries` WHERE `inquiries`.`id` = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "message"}))

	w := s.do(httptest.NewRequest(http.MethodGet, "/api/admin/inquiries/5", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

// ============================================================================
// System / static
// ============================================================================

func TestServerTime(t *testing.T) {
	s := newTestServer(t)
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	for _, path := range []string{"/api/time", "/api/test-db"} {
		s.mock.ExpectQuery("SELECT NOW\\(\\)").
			WillReturnRows(sqlmock.NewRows([]string{"NOW()"}).AddRow(now))
		w := s.do(httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `{"time":"2024-01-02T03:04:05Z"}`, w.Body.String())
	}

	s.mock.ExpectQuery("SELECT NOW\\(\\)").WillReturnError(fmt.Errorf("db down"))
	w := s.do(httptest.NewRequest(http.MethodGet, "/api/time", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","components":{"database":"ok","docstore":"ok"}}`, w.Body.String())
}

func TestStaticFiles(t *testing.T) {
	s := newTestServer(t)

	w := s.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "landing")

	w = s.do(httptest.NewRequest(http.MethodGet, "/style.css", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())

	w = s.do(httptest.NewRequest(http.MethodGet, "/missing.js", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(httptest.NewRequest(http.MethodGet, "/../../etc/passwd", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := s.do(req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestStorageConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.DocStore.Type = "s3"
	cfg.DocStore.Bucket = "resumes"
	cfg.DocStore.Endpoint = "http://minio:9000"
	cfg.DocStore.Prefix = "cv/"

	sc := StorageConfig(cfg)
	assert.Equal(t, "cv/", sc.Prefix)
	assert.Equal(t, "s3", sc.Type)
	assert.Equal(t, "resumes", sc.Bucket)
	assert.Equal(t, "http://minio:9000", sc.Endpoint)
	assert.Equal(t, "resumeimages", sc.Collection)

	assert.Equal(t, "resume-images/", StorageConfig(config.Defaults()).Prefix)
}
