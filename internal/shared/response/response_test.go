package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleDefaults(t *testing.T) {
	t.Run("zero code defaults to 200 for success", func(t *testing.T) {
		env := Handle(0, StatusSuccess, "ok", nil, "")
		assert.Equal(t, http.StatusOK, env.StatusCode)
		assert.Equal(t, StatusSuccess, env.Status)
	})

	t.Run("zero code defaults to 500 for error", func(t *testing.T) {
		env := Handle(0, StatusError, "boom", nil, "")
		assert.Equal(t, http.StatusInternalServerError, env.StatusCode)
		assert.Equal(t, StatusError, env.Status)
	})

	t.Run("explicit code is kept", func(t *testing.T) {
		env := Handle(http.StatusAccepted, StatusSuccess, "ok", nil, "")
		assert.Equal(t, http.StatusAccepted, env.StatusCode)
	})
}

func TestBuilders(t *testing.T) {
	assert.Equal(t, http.StatusOK, OK("m", nil).StatusCode)
	assert.Equal(t, http.StatusCreated, Created("m", nil).StatusCode)
	assert.Equal(t, http.StatusAccepted, Accepted("m").StatusCode)
	assert.Equal(t, http.StatusBadRequest, BadRequest("m").StatusCode)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("m").StatusCode)
	assert.Equal(t, http.StatusNotFound, NotFound("m").StatusCode)
	assert.Equal(t, http.StatusConflict, Conflict("m").StatusCode)
}

func TestServerError(t *testing.T) {
	env := ServerError(errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, env.StatusCode)
	assert.Equal(t, StatusError, env.Status)
	assert.Equal(t, "Internal server error", env.Message)
	assert.Equal(t, "connection refused", env.Error)

	env = ServerError(nil)
	assert.Empty(t, env.Error)
}
