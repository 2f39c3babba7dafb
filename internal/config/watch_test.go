// file: internal/config/watch_test.go
// version: 1.0.0
// guid: 4e6a8c0b-2d3f-4a5b-9c1e-3f5a7b9d1c2e

package config

import (
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_NoConfigFile(t *testing.T) {
	resetConfigTestState(t)
	assert.False(t, Watch(nil))
}

func TestHandleConfigEvent_ReloadsLevelAndRateLimit(t *testing.T) {
	resetConfigTestState(t)
	InitConfig()

	viper.Set("log_level", "debug")
	viper.Set("rate_limit_per_minute", 10)
	viper.Set("rate_limit_burst", 2)
	viper.Set("port", 9999)

	var got *Reloadable
	handleConfigEvent(fsnotify.Event{Name: "x.yaml", Op: fsnotify.Write}, func(r Reloadable) { got = &r })

	require.NotNil(t, got)
	assert.Equal(t, Reloadable{LogLevel: "debug", RateLimitPerMinute: 10, RateLimitBurst: 2}, *got)
	assert.Equal(t, "debug", AppConfig.LogLevel)
	assert.Equal(t, 10, AppConfig.RateLimitPerMinute)
	assert.Equal(t, 8080, AppConfig.Port, "only reloadable fields change")
}

func TestHandleConfigEvent_IgnoresRemove(t *testing.T) {
	resetConfigTestState(t)
	InitConfig()

	called := false
	handleConfigEvent(fsnotify.Event{Name: "x.yaml", Op: fsnotify.Remove}, func(Reloadable) { called = true })
	assert.False(t, called)
}
