// file: internal/server/middleware/requestid.go
// version: 1.0.0
// guid: 6f8a0c2e-4b5d-4e7f-9a1b-3c5e7f9b1d2a

package middleware

import (
	"crypto/rand"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

const (
	RequestIDHeader     = "X-Request-ID"
	contextRequestIDKey = "request_id"
)

var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// RequestID propagates a well-formed incoming X-Request-ID or assigns a new
// ULID, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !validRequestID.MatchString(id) {
			id = ulid.MustNew(ulid.Now(), rand.Reader).String()
		}
		c.Set(contextRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request ID assigned by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(contextRequestIDKey)
}
