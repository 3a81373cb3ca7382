package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Status tags used in the envelope body.
const (
	StatusSuccess = "Success"
	StatusError   = "Error"
)

// Envelope is the single return shape for every service operation. The
// business outcome lives in StatusCode; most endpoints ship the envelope
// with a transport-level 200 regardless (see Write).
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Status     string      `json:"status"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Handle builds an envelope. A zero statusCode defaults to 200 for Success
// and 500 for Error.
func Handle(statusCode int, status, message string, data interface{}, errDetail string) *Envelope {
	if statusCode == 0 {
		if status == StatusSuccess {
			statusCode = http.StatusOK
		} else {
			statusCode = http.StatusInternalServerError
		}
	}

	return &Envelope{
		StatusCode: statusCode,
		Status:     status,
		Message:    message,
		Data:       data,
		Error:      errDetail,
	}
}

func OK(message string, data interface{}) *Envelope {
	return Handle(http.StatusOK, StatusSuccess, message, data, "")
}

func Created(message string, data interface{}) *Envelope {
	return Handle(http.StatusCreated, StatusSuccess, message, data, "")
}

func Accepted(message string) *Envelope {
	return Handle(http.StatusAccepted, StatusSuccess, message, nil, "")
}

func BadRequest(message string) *Envelope {
	return Handle(http.StatusBadRequest, StatusError, message, nil, "")
}

func Unauthorized(message string) *Envelope {
	return Handle(http.StatusUnauthorized, StatusError, message, nil, "")
}

func NotFound(message string) *Envelope {
	return Handle(http.StatusNotFound, StatusError, message, nil, "")
}

func Conflict(message string) *Envelope {
	return Handle(http.StatusConflict, StatusError, message, nil, "")
}

func ServerError(err error) *Envelope {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	return Handle(http.StatusInternalServerError, StatusError, "Internal server error", nil, detail)
}

// Write sends the envelope with transport HTTP 200. Business outcomes
// (not-found, conflict, credential mismatch) are encoded in the body only;
// real HTTP status codes are reserved for guard and validation failures.
func Write(c *gin.Context, env *Envelope) {
	c.JSON(http.StatusOK, env)
}

// ValidationError is the one place a handler answers with a true HTTP 400:
// malformed JSON or a failed DTO validation.
func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Handle(http.StatusBadRequest, StatusError, err.Error(), nil, ""))
}
