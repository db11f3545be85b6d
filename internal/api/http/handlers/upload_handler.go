package handlers

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/xalt/xolt-api/pkg/util"
)

// UploadHandler stores uploaded images on local disk.
type UploadHandler struct {
	uploadDir string
}

// NewUploadHandler constructs the handler.
func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

// Image handles POST /api/upload/image: takes the first file found in
// the multipart form and returns its public URL.
func (h *UploadHandler) Image(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return util.NewValidationError("Content-Type must be multipart/form-data", nil)
	}

	for _, headers := range form.File {
		for _, file := range headers {
			ext := filepath.Ext(file.Filename)
			if ext == "" {
				ext = ".jpg"
			}
			name := uuid.NewString() + ext
			if err := c.SaveFile(file, filepath.Join(h.uploadDir, name)); err != nil {
				return util.NewInternalError(err)
			}
			return c.JSON(fiber.Map{
				"success": true,
				"message": "Image uploaded successfully",
				"url":     "/uploads/" + name,
			})
		}
	}

	return util.NewValidationError("No file found in form-data", nil)
}
