package handlers

import (
	"net/http"

	"recruit_backend/internal/services"
	"recruit_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type NoticeHandler struct {
	*BaseHandler
	noticeService services.NoticeService
}

func NewNoticeHandler(base *BaseHandler, noticeService services.NoticeService) *NoticeHandler {
	return &NoticeHandler{
		BaseHandler:   base,
		noticeService: noticeService,
	}
}

func (h *NoticeHandler) RegisterRoutes(r *gin.RouterGroup) {
	notices := r.Group("/notices")
	{
		notices.GET("", h.ListNotices)
		notices.GET("/recent", h.RecentNotices)
		notices.GET("/:id", h.GetNotice)
	}
	r.GET("/search", h.SearchNotices)
}

// ListNotices godoc
// @Summary Список объявлений
// @Description Все объявления, новые первыми
// @Tags notices
// @Produce json
// @Success 200 {array} models.Notice
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /api/notices [get]
func (h *NoticeHandler) ListNotices(c *gin.Context) {
	notices, err := h.noticeService.ListNotices(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notices)
}

// RecentNotices godoc
// @Summary Последние объявления
// @Description Пять последних объявлений, дата в формате YYYY-MM-DD
// @Tags notices
// @Produce json
// @Success 200 {array} dto.RecentNoticeResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /api/notices/recent [get]
func (h *NoticeHandler) RecentNotices(c *gin.Context) {
	notices, err := h.noticeService.RecentNotices(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notices)
}

// GetNotice godoc
// @Summary Объявление по id
// @Tags notices
// @Produce json
// @Param id path int true "ID объявления"
// @Success 200 {object} models.Notice
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/notices/{id} [get]
func (h *NoticeHandler) GetNotice(c *gin.Context) {
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

// SearchNotices godoc
// @Summary Поиск объявлений по заголовку
// @Description Регистронезависимый поиск подстроки; пустой q возвращает []
// @Tags notices
// @Produce json
// @Param q query string false "Строка поиска"
// @Success 200 {array} models.Notice
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /api/search [get]
func (h *NoticeHandler) SearchNotices(c *gin.Context) {
	notices, err := h.noticeService.SearchNotices(c.Request.Context(), h.GetDB(c), c.Query("q"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notices)
}
