// file: internal/server/error_handler.go
// version: 2.0.0
// guid: 5d6e7f8a-9b0c-1d2e-3f4a-5b6c7d8e9f0a

package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jdfalk/wordbook/internal/apperr"
	"github.com/jdfalk/wordbook/internal/logger"
	servermiddleware "github.com/jdfalk/wordbook/internal/server/middleware"
)

var errLog = logger.New("http")

// ErrorResponse provides a consistent error response format
type ErrorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code,omitempty"`
	Status int    `json:"status"`
}

// RespondWithError sends a standardized error response and logs the error
func RespondWithError(c *gin.Context, statusCode int, message string, code string) {
	logErrorWithContext(c, statusCode, message, nil)

	c.JSON(statusCode, ErrorResponse{
		Error:  message,
		Code:   code,
		Status: statusCode,
	})
}

// StatusForKind maps an error kind to its HTTP status.
func StatusForKind(k apperr.Kind) int {
	switch k {
	case apperr.KindBadRequest:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindService:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithAppError maps a service error to a response. Only the
// client-safe message is sent; the cause is logged.
func RespondWithAppError(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		logErrorWithContext(c, http.StatusInternalServerError, "unclassified error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:  "internal server error",
			Code:   apperr.KindInternal.String(),
			Status: http.StatusInternalServerError,
		})
		return
	}

	status := StatusForKind(ae.Kind)
	logErrorWithContext(c, status, ae.Message(), err)
	c.JSON(status, ErrorResponse{
		Error:  ae.Message(),
		Code:   ae.Kind.String(),
		Status: status,
	})
}

// RespondWithBadRequest sends a 400 Bad Request error response
func RespondWithBadRequest(c *gin.Context, message string) {
	RespondWithError(c, http.StatusBadRequest, message, apperr.KindBadRequest.String())
}

// RespondWithValidationError sends a 400 error for validation failures
func RespondWithValidationError(c *gin.Context, field string, reason string) {
	message := "validation error: " + field
	if reason != "" {
		message = message + " (" + reason + ")"
	}
	RespondWithError(c, http.StatusBadRequest, message, "VALIDATION_ERROR")
}

// RespondWithInternalError sends a 500 Internal Server Error response
func RespondWithInternalError(c *gin.Context, message string) {
	RespondWithError(c, http.StatusInternalServerError, message, apperr.KindInternal.String())
}

// RespondWithUnauthorized sends a 401 Unauthorized error response
func RespondWithUnauthorized(c *gin.Context, message string) {
	RespondWithError(c, http.StatusUnauthorized, message, apperr.KindUnauthorized.String())
}

// logErrorWithContext logs an error with request context for debugging
func logErrorWithContext(c *gin.Context, statusCode int, message string, cause error) {
	fields := []any{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", statusCode,
		"reason", message,
		"client_ip", c.ClientIP(),
		"request_id", servermiddleware.GetRequestID(c),
	}
	if cause != nil {
		fields = append(fields, "err", cause)
	}
	if statusCode >= 500 {
		errLog.Error("request failed", fields...)
		return
	}
	errLog.Debug("request rejected", fields...)
}

// HandleBindError handles JSON binding errors with a consistent response
func HandleBindError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		RespondWithError(c, http.StatusRequestEntityTooLarge, "request body too large", "BODY_TOO_LARGE")
		return true
	}

	errMsg := err.Error()
	if strings.Contains(errMsg, "required") || strings.Contains(errMsg, "binding") {
		RespondWithValidationError(c, "request body", errMsg)
	} else {
		RespondWithBadRequest(c, "invalid request: "+errMsg)
	}
	return true
}
