package middleware

import (
	"errors"
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors appended to the gin context into the standard
// JSON envelope. Internal details never reach the client; they are logged
// server-side with the request id.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError && logger.Log != nil {
				logger.Log.Error("request failed",
					"error", appErr.Err,
					"path", c.FullPath(),
					"request_id", c.GetString("RequestID"),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		if logger.Log != nil {
			logger.Log.Error("unhandled error",
				"error", err,
				"path", c.FullPath(),
				"request_id", c.GetString("RequestID"),
			)
		}
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
