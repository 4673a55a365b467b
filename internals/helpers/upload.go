package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Keep letters, digits, dot, dash, underscore only.
var filenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	clean := filenameRe.ReplaceAllString(filename, "-")
	return strings.Trim(clean, "-")
}

// GenerateUniqueFilename keeps the original extension and prefixes a
// timestamp + short uuid so concurrent uploads never collide.
func GenerateUniqueFilename(original string) string {
	base := sanitizeFilename(original)
	if base == "" {
		base = "file"
	}
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString()[:8], base)
}

// SaveAvatar stores an uploaded avatar under dir and returns the stored
// path for photo_url.
func SaveAvatar(c *fiber.Ctx, fh *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("avatar dir: %w", err)
	}
	dst := filepath.Join(dir, GenerateUniqueFilename(fh.Filename))
	if err := c.SaveFile(fh, dst); err != nil {
		return "", fmt.Errorf("save avatar: %w", err)
	}
	return dst, nil
}
