package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"recruit_backend/internal/logger"
	"recruit_backend/internal/services"
	"recruit_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// Тексты alert() на сайте.
const (
	msgSubmitOK     = "계약이 체결되었습니다. 환영합니다."
	msgSubmitFailed = "DB 에러: 관리자에게 문의하세요."
	msgContactOK    = "문의가 접수되었습니다. (답변은 보장하지 않습니다)"
	msgContactError = "오류 발생"
)

// SubmissionHandler обслуживает HTML-формы сайта: анкету и обращение.
// Ответ всегда inline-скрипт со статусом 200.
type SubmissionHandler struct {
	*BaseHandler
	submissionService services.SubmissionService
	inquiryService    services.InquiryService
}

func NewSubmissionHandler(base *BaseHandler, submissionService services.SubmissionService, inquiryService services.InquiryService) *SubmissionHandler {
	return &SubmissionHandler{
		BaseHandler:       base,
		submissionService: submissionService,
		inquiryService:    inquiryService,
	}
}

func (h *SubmissionHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/submit", h.Submit)
	r.POST("/contact", h.Contact)
}

// Submit godoc
// @Summary Подать анкету
// @Description multipart-форма; файл resume необязателен
// @Tags forms
// @Accept multipart/form-data
// @Produce html
// @Param name formData string false "Имя"
// @Param age formData string false "Возраст"
// @Param gender formData string false "Пол"
// @Param phone formData string false "Телефон"
// @Param address formData string false "Адрес"
// @Param resume formData file false "Изображение резюме"
// @Success 200 {string} string "inline script"
// @Router /submit [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SubmissionRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.CtxWithError(ctx, "Failed to parse submission form", err)
		respondScript(c, msgSubmitFailed, false)
		return
	}

	file := resumeFile(c)

	if _, err := h.submissionService.Submit(ctx, h.GetDB(c), &req, file); err != nil {
		logger.CtxWithError(ctx, "Submission failed", err)
		respondScript(c, msgSubmitFailed, false)
		return
	}
	respondScript(c, msgSubmitOK, true)
}

// Contact godoc
// @Summary Отправить обращение
// @Tags forms
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string false "Имя"
// @Param email formData string false "Email"
// @Param message formData string false "Сообщение"
// @Success 200 {string} string "inline script"
// @Router /contact [post]
func (h *SubmissionHandler) Contact(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.CtxWithError(ctx, "Failed to parse contact form", err)
		respondScript(c, msgContactError, false)
		return
	}

	if _, err := h.inquiryService.CreateInquiry(ctx, h.GetDB(c), &req); err != nil {
		logger.CtxWithError(ctx, "Contact form failed", err)
		respondScript(c, msgContactError, false)
		return
	}
	respondScript(c, msgContactOK, true)
}

// resumeFile возвращает загруженный файл или nil.
func resumeFile(c *gin.Context) *multipart.FileHeader {
	file, err := c.FormFile("resume")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
			logger.CtxWarn(c.Request.Context(), "Failed to read resume file, submitting without it", "error", err)
		}
		return nil
	}
	return file
}
