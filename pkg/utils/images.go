package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxImageSize mirrors the declared upload limit; files above it are
// rejected before anything is written.
const MaxImageSize = 10 << 20 // 10MB

// SaveUploadedImage writes one multipart image under baseDir/subDir with a
// random name and returns the stored relative path plus the absolute path.
// Uploads happen before the billing transaction begins, so a later rollback
// can leave the file orphaned.
func SaveUploadedImage(c *gin.Context, file *multipart.FileHeader, baseDir, subDir string) (string, string, error) {
	if file.Size > MaxImageSize {
		return "", "", fmt.Errorf("%w: image exceeds 10MB limit", ErrInvalidInput)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		return "", "", fmt.Errorf("%w: unsupported image type %s", ErrInvalidInput, ext)
	}

	dir := filepath.Join(baseDir, subDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}

	relPath := filepath.Join(subDir, uuid.New().String()+ext)
	fullPath := filepath.Join(baseDir, relPath)
	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		return "", "", err
	}

	return relPath, fullPath, nil
}
