package handlers

import (
	"errors"
	"net/http"

	"recruit_backend/internal/logger"
	"recruit_backend/internal/services"
	"recruit_backend/internal/services/dto"
	"recruit_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	*BaseHandler
	imageService services.ImageService
}

func NewImageHandler(base *BaseHandler, imageService services.ImageService) *ImageHandler {
	return &ImageHandler{
		BaseHandler:  base,
		imageService: imageService,
	}
}

func (h *ImageHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/image/:id", h.GetImage)
}

// GetImage godoc
// @Summary Изображение резюме
// @Description Отдаёт байты с сохранённым Content-Type. Ошибки - простым текстом.
// @Tags images
// @Produce octet-stream
// @Param id path string true "ID изображения"
// @Param size query string false "Превью: thumbnail, small, medium"
// @Success 200 {file} binary
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /image/{id} [get]
func (h *ImageHandler) GetImage(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var (
		payload *dto.ImagePayload
		err     error
	)
	if size := c.Query("size"); size != "" {
		payload, err = h.imageService.GetImagePreview(ctx, id, size)
	} else {
		payload, err = h.imageService.GetImage(ctx, id)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrImageNotFound) {
			c.String(http.StatusNotFound, "이미지 없음")
			return
		}
		logger.CtxWithError(ctx, "Failed to load resume image", err, "image_id", id)
		c.String(http.StatusInternalServerError, "에러")
		return
	}

	c.Data(http.StatusOK, payload.ContentType, payload.Data)
}
