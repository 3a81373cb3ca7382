package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cuentista-backend/internal/shared/messages"
	"cuentista-backend/internal/shared/response"
)

// ObjectStorage is the slice of the storage client this handler needs.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type Handler struct {
	storage ObjectStorage
}

func NewHandler(storage ObjectStorage) *Handler {
	return &Handler{storage: storage}
}

// FileUpload handles POST /common/fileUpload. The form field is
// product_image and may carry multiple files; the stored object names come
// back so the client can reference them in aggregate payloads.
func (h *Handler) FileUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Write(c, response.BadRequest(messages.ImageRequire))
		return
	}

	files := form.File["product_image"]
	if len(files) == 0 {
		response.Write(c, response.BadRequest(messages.ImageRequire))
		return
	}

	ctx := c.Request.Context()
	stored := make([]map[string]string, 0, len(files))

	for _, file := range files {
		data, err := readFile(file)
		if err != nil {
			response.Write(c, response.ServerError(err))
			return
		}

		name := objectName(file.Filename)
		contentType := file.Header.Get("Content-Type")

		if _, err := h.storage.Upload(ctx, name, data, contentType); err != nil {
			response.Write(c, response.ServerError(err))
			return
		}

		stored = append(stored, map[string]string{"file": name})
	}

	response.Write(c, response.Created(messages.AddedSuccess, stored))
}

func readFile(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	return data, nil
}

// objectName prefixes the original name with a nanosecond timestamp so
// repeated uploads of the same file never collide.
func objectName(original string) string {
	base := filepath.Base(original)
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), base)
}
