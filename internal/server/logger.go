// file: internal/server/logger.go
// version: 2.0.0
// guid: 1d2e3f4a-5b6c-7d8e-9f0a-1b2c3d4e5f6a

package server

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	servermiddleware "github.com/jdfalk/wordbook/internal/server/middleware"
)

// accessLog writes one structured line per request after it completes.
// Server errors log at error level and client errors at warn.
func accessLog(l *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"duration", time.Since(start),
			"bytes", c.Writer.Size(),
			"client_ip", c.ClientIP(),
			"request_id", servermiddleware.GetRequestID(c),
		}
		if userID, ok := servermiddleware.CurrentUserID(c); ok {
			fields = append(fields, "user_id", userID)
		}
		if c.FullPath() == "" {
			fields[3] = c.Request.URL.Path
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "err", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			l.Error("request", fields...)
		case status >= http.StatusBadRequest:
			l.Warn("request", fields...)
		default:
			l.Info("request", fields...)
		}
	}
}

// recovery turns a handler panic into a 500 response and logs the stack.
// Broken invariants in the word service panic, so this is the last stop.
func recovery(l *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				l.Error("panic recovered",
					"panic", fmt.Sprint(r),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", servermiddleware.GetRequestID(c),
					"stack", string(debug.Stack()))
				if !c.Writer.Written() {
					RespondWithInternalError(c, "internal server error")
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
