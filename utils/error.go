package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// RespondError converts a service-layer error to the JSON error envelope.
// Upstream causes are logged here and replaced with a generic message so
// stack traces and driver errors never reach the client.
func RespondError(c *gin.Context, err error) {
	status := HTTPStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger := GetLogger()
		logger.Error("Upstream failure", zap.String("path", c.FullPath()), zap.Error(err))
		msg = "Server error"
	}
	c.JSON(status, ErrorResponse{Message: msg})
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string) {
	logger := GetLogger()
	logger.Warn(message, zap.Int("status", status))
	c.JSON(status, ErrorResponse{Message: message})
}
