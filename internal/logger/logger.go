// file: internal/logger/logger.go
// version: 1.0.0
// guid: 5e7a1c3b-9d2f-4b6e-8c0a-2f4d6b8e1a3c

// Package logger builds prefix-scoped charm loggers that share one level and
// formatter across the process.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu        sync.RWMutex
	output    io.Writer = os.Stderr
	formatter           = log.TextFormatter
	created   []*log.Logger
)

// Configure sets the global level and formatter. Unknown levels fall back to
// info; format is "text" (default) or "json".
func Configure(level, format string) {
	mu.Lock()
	defer mu.Unlock()

	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	for _, l := range created {
		l.SetLevel(lvl)
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	default:
		formatter = log.TextFormatter
	}
	log.SetFormatter(formatter)
}

// SetOutput redirects loggers created afterwards. Tests use it to capture output.
func SetOutput(w io.Writer) {
	mu.Lock()
	output = w
	mu.Unlock()
	log.SetOutput(w)
}

// New creates a logger with the given prefix honoring the global settings.
func New(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	l := log.NewWithOptions(output, log.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
		Formatter:       formatter,
		Level:           log.GetLevel(),
	})
	created = append(created, l)
	return l
}

// SetLevel changes the level of the default logger and of every logger
// returned by New.
func SetLevel(level string) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return
	}
	mu.RLock()
	defer mu.RUnlock()
	log.SetLevel(lvl)
	for _, l := range created {
		l.SetLevel(lvl)
	}
}
