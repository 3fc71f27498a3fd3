package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
	coreport "github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler middleware recovers from panics and turns errors attached with
// c.Error into error responses
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetHeader(RequestIDHeader),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
					domainerr.ErrInternalServer, "Internal server error", c.GetHeader(RequestIDHeader)))
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := StatusFor(err)

		fields := errorFields(err)
		fields["path"] = c.Request.URL.Path
		fields["method"] = c.Request.Method
		fields["status"] = status
		fields["request_id"] = c.GetHeader(RequestIDHeader)
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", fields)
		} else {
			logger.Debug("Request rejected", fields)
		}

		var message string
		if status >= http.StatusInternalServerError {
			message = http.StatusText(status)
		}
		c.JSON(status, dto.NewErrorResponse(err, message, c.GetHeader(RequestIDHeader)))
	}
}

// StatusFor maps domain errors onto HTTP status codes
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrInvalidRecord):
		return http.StatusBadRequest
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrDuplicateRecord), errors.Is(err, domainerr.ErrConcurrentUpdate):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrConstraintViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func errorFields(err error) map[string]any {
	var (
		recordErr *domainerr.RecordError
		hookErr   *domainerr.HookError
	)
	switch {
	case errors.As(err, &hookErr):
		return hookErr.LogFields()
	case errors.As(err, &recordErr):
		return recordErr.LogFields()
	default:
		return map[string]any{
			"error":      err.Error(),
			"error_code": domainerr.ErrorCode(err),
		}
	}
}
