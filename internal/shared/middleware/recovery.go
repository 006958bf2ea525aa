package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery turns panics into the shared error page instead of a dropped
// connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("error", err).
					Msg("Panic recovered")

				c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{
					"Title":   "Error",
					"Status":  http.StatusInternalServerError,
					"Message": "Internal server error",
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
