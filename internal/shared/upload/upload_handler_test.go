package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuentista-backend/internal/shared/messages"
	"cuentista-backend/internal/shared/response"
)

type fakeStorage struct {
	keys []string
}

func (f *fakeStorage) Upload(_ context.Context, key string, _ []byte, _ string) (string, error) {
	f.keys = append(f.keys, key)
	return "http://minio/" + key, nil
}

func performUpload(t *testing.T, h *Handler, field string, filenames []string) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, name := range filenames {
		part, err := writer.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/common/fileUpload", body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	h.FileUpload(c)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestFileUpload(t *testing.T) {
	t.Run("missing files answer a bad-request envelope", func(t *testing.T) {
		storage := &fakeStorage{}
		_, env := performUpload(t, NewHandler(storage), "product_image", nil)

		assert.Equal(t, http.StatusBadRequest, env.StatusCode)
		assert.Equal(t, messages.ImageRequire, env.Message)
		assert.Empty(t, storage.keys)
	})

	t.Run("wrong field name is treated as missing", func(t *testing.T) {
		storage := &fakeStorage{}
		_, env := performUpload(t, NewHandler(storage), "avatar", []string{"pic.png"})

		assert.Equal(t, http.StatusBadRequest, env.StatusCode)
		assert.Empty(t, storage.keys)
	})

	t.Run("stores each file under a unique name", func(t *testing.T) {
		storage := &fakeStorage{}
		w, env := performUpload(t, NewHandler(storage), "product_image", []string{"hero image.png", "side.png"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, http.StatusCreated, env.StatusCode)
		require.Len(t, storage.keys, 2)
		assert.True(t, strings.HasSuffix(storage.keys[0], "-hero_image.png"))
		assert.True(t, strings.HasSuffix(storage.keys[1], "-side.png"))
		assert.NotEqual(t, storage.keys[0], storage.keys[1])

		files, ok := env.Data.([]interface{})
		require.True(t, ok)
		assert.Len(t, files, 2)
	})
}
