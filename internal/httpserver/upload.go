package httpserver

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// uploadHandler stores a back-office image under the upload directory and
// returns the public /uploads path. Files are renamed to a random ID so an
// upload can never clobber another.
func uploadHandler(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if dir == "" {
			respondError(c, http.StatusServiceUnavailable, "uploads not configured")
			return
		}

		file, err := c.FormFile("file")
		if err != nil {
			respondError(c, http.StatusBadRequest, "file field is required")
			return
		}
		if file.Size > maxUploadBytes {
			respondError(c, http.StatusRequestEntityTooLarge, "file too large")
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedImageExts[ext] {
			respondError(c, http.StatusBadRequest, "unsupported file type")
			return
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			respondError(c, http.StatusInternalServerError, "internal error")
			return
		}

		name := uuid.NewString() + ext
		if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
			respondError(c, http.StatusInternalServerError, "internal error")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"url": "/uploads/" + name})
	}
}
