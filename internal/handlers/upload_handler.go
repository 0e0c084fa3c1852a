package handlers

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/megane-nerdo/skillhubnext/internal/config"
	"github.com/megane-nerdo/skillhubnext/internal/middleware"
	"github.com/megane-nerdo/skillhubnext/internal/storage"
	"github.com/megane-nerdo/skillhubnext/pkg/apperrors"
)

type UploadHandler struct {
	BaseHandler
	store storage.Storage
}

func NewUploadHandler(base BaseHandler, store storage.Storage) *UploadHandler {
	return &UploadHandler{BaseHandler: base, store: store}
}

func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", middleware.AuthMiddleware(), h.Upload)
	rg.GET("/files/*path", h.Serve)
}

// Upload godoc
// @Summary Upload a file (resume, logo)
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	cfg := config.GetConfig()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file"))
		return
	}
	if fileHeader.Size > cfg.Upload.MaxSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("File too large"))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	allowed := false
	for _, t := range cfg.Upload.AllowedTypes {
		if t == contentType {
			allowed = true
			break
		}
	}
	if !allowed {
		apperrors.HandleError(c, apperrors.NewBadRequestError("File type not allowed"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	path := fmt.Sprintf("%s/%d-%s%s", caller.ID, time.Now().Unix(), uuid.NewString()[:8], ext)

	if err := h.store.Save(c.Request.Context(), path, file, contentType); err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}

	url, err := h.store.GetURL(c.Request.Context(), path)
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}

	h.Created(c, gin.H{"url": url, "path": path})
}

// Serve streams an uploaded file back to the client.
func (h *UploadHandler) Serve(c *gin.Context) {
	path := c.Param("path")

	exists, err := h.store.Exists(c.Request.Context(), path)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidPath) {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file path"))
			return
		}
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	if !exists {
		apperrors.HandleError(c, apperrors.ErrNotFound(nil, "File not found"))
		return
	}

	reader, err := h.store.Get(c.Request.Context(), path)
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer reader.Close()

	c.DataFromReader(200, -1, "application/octet-stream", reader, nil)
}
