package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cuentista-backend/internal/shared/response"
)

// Recovery is the catch-all for panics that escape a handler. These are the
// only internal errors surfaced with a genuine HTTP 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("error", err).
					Msg("Panic recovered")

				c.JSON(http.StatusInternalServerError, response.Handle(
					http.StatusInternalServerError,
					response.StatusError,
					"Internal server error",
					nil,
					"",
				))
				c.Abort()
			}
		}()

		c.Next()
	}
}
