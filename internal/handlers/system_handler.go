package handlers

import (
	"net/http"

	"recruit_backend/internal/services"
	"recruit_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	*BaseHandler
	systemService services.SystemService
}

func NewSystemHandler(base *BaseHandler, systemService services.SystemService) *SystemHandler {
	return &SystemHandler{
		BaseHandler:   base,
		systemService: systemService,
	}
}

// RegisterRoutes: r - корневая группа.
func (h *SystemHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/time", h.ServerTime)
	r.GET("/api/test-db", h.ServerTime)
	r.GET("/health", h.Health)
}

// ServerTime godoc
// @Summary Время сервера БД
// @Description Проверка связи с реляционной БД (SELECT NOW())
// @Tags system
// @Produce json
// @Success 200 {object} dto.TimeResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /api/time [get]
func (h *SystemHandler) ServerTime(c *gin.Context) {
	now, err := h.systemService.ServerTime(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TimeResponse{Time: now})
}

// Health godoc
// @Summary Состояние сервиса
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.systemService.Health(c.Request.Context(), h.GetDB(c)))
}
