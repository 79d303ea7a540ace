package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"recruit_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// StaticHandler отдаёт лендинг и файлы из static_dir.
type StaticHandler struct {
	dir string
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

// RegisterRoutes вешает "/" и NoRoute, поэтому принимает сам движок.
func (h *StaticHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Index)
	r.NoRoute(h.ServeFile)
}

func (h *StaticHandler) Index(c *gin.Context) {
	c.File(filepath.Join(h.dir, "index.html"))
}

func (h *StaticHandler) ServeFile(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		notFound(c)
		return
	}

	// path.Clean от "/..." не даёт выйти за пределы dir
	rel := path.Clean("/" + c.Request.URL.Path)
	full := filepath.Join(h.dir, filepath.FromSlash(rel))

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		notFound(c)
		return
	}
	c.File(full)
}

func notFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		apperrors.HandleError(c, apperrors.NewNotFoundError("Route not found"))
		return
	}
	c.String(http.StatusNotFound, "Not Found")
}
