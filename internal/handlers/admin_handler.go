package handlers

import (
	"net/http"
	"strconv"

	"recruit_backend/internal/logger"
	"recruit_backend/internal/services"
	"recruit_backend/internal/services/dto"
	"recruit_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AdminHandler - административные эндпоинты. Аутентификации нет.
type AdminHandler struct {
	*BaseHandler
	noticeService    services.NoticeService
	applicantService services.ApplicantService
	inquiryService   services.InquiryService
}

func NewAdminHandler(
	base *BaseHandler,
	noticeService services.NoticeService,
	applicantService services.ApplicantService,
	inquiryService services.InquiryService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:      base,
		noticeService:    noticeService,
		applicantService: applicantService,
		inquiryService:   inquiryService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/applicants", h.ListApplicants)

	admin := r.Group("/admin")
	{
		admin.GET("/notices", h.ListNotices)
		admin.POST("/notices", h.CreateNotice)
		admin.GET("/notices/:id", h.GetNotice)
		admin.DELETE("/notices/:id", h.DeleteNotice)

		admin.GET("/applicants", h.ListApplicants)
		admin.GET("/applicants/:id", h.GetApplicant)

		admin.GET("/inquiries", h.ListInquiries)
		admin.GET("/inquiries/:id", h.GetInquiry)
	}
}

// --- Notices ---

// ListNotices godoc
// @Summary Список объявлений (админ)
// @Tags admin
// @Produce json
// @Success 200 {array} models.Notice
// @Router /api/admin/notices [get]
func (h *AdminHandler) ListNotices(c *gin.Context) {
	notices, err := h.noticeService.ListNotices(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notices)
}

// CreateNotice godoc
// @Summary Создать объявление
// @Tags admin
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param notice body dto.CreateNoticeRequest true "Объявление"
// @Success 201 {object} models.Notice
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /api/admin/notices [post]
func (h *AdminHandler) CreateNotice(c *gin.Context) {
	var req dto.CreateNoticeRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	notice, err := h.noticeService.CreateNotice(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, notice)
}

// GetNotice godoc
// @Summary Объявление по id (админ)
// @Tags admin
// @Produce json
// @Param id path int true "ID объявления"
// @Success 200 {object} models.Notice
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/admin/notices/{id} [get]
func (h *AdminHandler) GetNotice(c *gin.Context) {
	id, ok := h.ParseParamID(c, "id", apperrors.ErrNoticeNotFound)
	if !ok {
		return
	}

	notice, err := h.noticeService.GetNotice(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notice)
}

// DeleteNotice godoc
// @Summary Удалить объявление
// @Description Идемпотентно: отсутствующий id тоже даёт 200
// @Tags admin
// @Produce json
// @Param id path int true "ID объявления"
// @Success 200 {object} map[string]string
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /api/admin/notices/{id} [delete]
func (h *AdminHandler) DeleteNotice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		// нечего удалять
		logger.CtxDebug(c.Request.Context(), "Delete with non-numeric id", "id", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"message": "deleted"})
		return
	}

	if err := h.noticeService.DeleteNotice(c.Request.Context(), h.GetDB(c), uint(id)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// --- Applicants ---

// ListApplicants godoc
// @Summary Список анкет
// @Tags admin
// @Produce json
// @Success 200 {array} models.Applicant
// @Router /api/admin/applicants [get]
func (h *AdminHandler) ListApplicants(c *gin.Context) {
	applicants, err := h.applicantService.ListApplicants(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, applicants)
}

// GetApplicant godoc
// @Summary Анкета по id
// @Tags admin
// @Produce json
// @Param id path int true "ID анкеты"
// @Success 200 {object} models.Applicant
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/admin/applicants/{id} [get]
func (h *AdminHandler) GetApplicant(c *gin.Context) {
	id, ok := h.ParseParamID(c, "id", apperrors.ErrApplicantNotFound)
	if !ok {
		return
	}

	applicant, err := h.applicantService.GetApplicant(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, applicant)
}

// --- Inquiries ---

// ListInquiries godoc
// @Summary Список обращений
// @Tags admin
// @Produce json
// @Success 200 {array} models.Inquiry
// @Router /api/admin/inquiries [get]
func (h *AdminHandler) ListInquiries(c *gin.Context) {
	inquiries, err := h.inquiryService.ListInquiries(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

// GetInquiry godoc
// @Summary Обращение по id
// @Tags admin
// @Produce json
// @Param id path int true "ID обращения"
// @Success 200 {object} models.Inquiry
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/admin/inquiries/{id} [get]
func (h *AdminHandler) GetInquiry(c *gin.Context) {
	id, ok := h.ParseParamID(c, "id", apperrors.ErrInquiryNotFound)
	if !ok {
		return
	}

	inquiry, err := h.inquiryService.GetInquiry(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, inquiry)
}
