// file: internal/server/logger_test.go
// version: 2.0.0
// guid: 2e3f4a5b-6c7d-8e9f-0a1b-2c3d4e5f6a7b

package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	servermiddleware "github.com/jdfalk/wordbook/internal/server/middleware"
	"github.com/stretchr/testify/assert"
)

func newLoggedRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewWithOptions(buf, log.Options{Level: log.DebugLevel, Formatter: log.LogfmtFormatter})
	r := gin.New()
	r.Use(servermiddleware.RequestID(), accessLog(l), recovery(l))
	return r
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(&buf)
	r.GET("/words/:id", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/words/abc", nil)
	req.Header.Set(servermiddleware.RequestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	out := buf.String()
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "path=/words/:id")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "request_id=req-123")

	buf.Reset()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Contains(t, buf.String(), "level=warn")
	assert.Contains(t, buf.String(), "status=404")
}

func TestAccessLog_UnmatchedRouteUsesURLPath(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(&buf)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Contains(t, buf.String(), "path=/nowhere")
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(&buf)
	r.GET("/panic", func(c *gin.Context) { panic("counter went negative") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, w.Body.String(), "counter went negative")

	out := buf.String()
	assert.Contains(t, out, "panic recovered")
	assert.Contains(t, out, "counter went negative")
	assert.Contains(t, out, "level=error")
}
