// file: internal/config/watch.go
// version: 1.0.0
// guid: 3d5f7a9b-1c2e-4f6a-8b0d-2e4f6a8c0b1d

package config

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/jdfalk/wordbook/internal/logger"
	"github.com/spf13/viper"
)

// Reloadable is the part of Config that can change without a restart.
type Reloadable struct {
	LogLevel           string
	RateLimitPerMinute int
	RateLimitBurst     int
}

var reloadMu sync.Mutex

// Watch reloads the log level and rate limit whenever the active config file
// changes, then calls onChange with the new values. It returns false when no
// config file is in use.
func Watch(onChange func(Reloadable)) bool {
	if viper.ConfigFileUsed() == "" {
		return false
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		handleConfigEvent(e, onChange)
	})
	viper.WatchConfig()
	logger.New("config").Info("watching config file", "path", viper.ConfigFileUsed())
	return true
}

func handleConfigEvent(e fsnotify.Event, onChange func(Reloadable)) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}

	reloadMu.Lock()
	r := Reloadable{
		LogLevel:           viper.GetString("log_level"),
		RateLimitPerMinute: viper.GetInt("rate_limit_per_minute"),
		RateLimitBurst:     viper.GetInt("rate_limit_burst"),
	}
	AppConfig.LogLevel = r.LogLevel
	AppConfig.RateLimitPerMinute = r.RateLimitPerMinute
	AppConfig.RateLimitBurst = r.RateLimitBurst
	reloadMu.Unlock()

	logger.SetLevel(r.LogLevel)
	logger.New("config").Info("config reloaded",
		"file", e.Name, "log_level", r.LogLevel,
		"rate_limit_per_minute", r.RateLimitPerMinute, "rate_limit_burst", r.RateLimitBurst)

	if onChange != nil {
		onChange(r)
	}
}
