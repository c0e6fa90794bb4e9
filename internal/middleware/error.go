package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/calorie-craft/backend/internal/service"
	"github.com/pageza/calorie-craft/backend/internal/types"
)

const internalErrorMessage = "Internal server error"

// kindStatus maps catalog error kinds to response codes.
var kindStatus = map[service.ErrorKind]int{
	service.ErrKindMissingIdentifier:  http.StatusBadRequest,
	service.ErrKindAuthentication:     http.StatusUnauthorized,
	service.ErrKindQuotaExceeded:      http.StatusPaymentRequired,
	service.ErrKindCatalogUnavailable: http.StatusBadGateway,
}

// StatusFor returns the HTTP status code for a domain error.
func StatusFor(err error) int {
	if kind, ok := service.KindOf(err); ok {
		if status, ok := kindStatus[kind]; ok {
			return status
		}
	}
	return http.StatusInternalServerError
}

// ErrorHandler turns errors attached with c.Error into JSON responses and
// recovers panics as 500s. Handlers that already wrote a response are left
// alone.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(c.Request.Context(), "panic recovered",
					"error", rec,
					"requestID", GetRequestID(c),
					"path", c.Request.URL.Path,
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{Error: internalErrorMessage})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := StatusFor(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request.Context(), "request failed", "error", err, "requestID", GetRequestID(c))
		}

		c.JSON(status, errorBody(err, status))
	}
}

func errorBody(err error, status int) any {
	if errors.Is(err, service.ErrMissingIdentifier) {
		return gin.H{"message": err.Error()}
	}

	var ce *service.CatalogError
	if errors.As(err, &ce) {
		return types.ErrorResponse{Error: string(ce.Kind), Message: ce.Message}
	}

	if status == http.StatusInternalServerError {
		return types.ErrorResponse{Error: internalErrorMessage}
	}
	return types.ErrorResponse{Error: http.StatusText(status), Message: err.Error()}
}
