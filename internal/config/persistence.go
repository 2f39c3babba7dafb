// file: internal/config/persistence.go
// version: 2.0.0
// guid: 9c8d7e6f-5a4b-3c2d-1e0f-9a8b7c6d5e4f

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jdfalk/wordbook/internal/logger"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// fileConfig is the persisted subset of Config. Secrets (JWT key, DeepSeek
// key, Mongo URI) are never written.
type fileConfig struct {
	DatabaseType        string   `yaml:"database_type,omitempty"`
	DatabasePath        string   `yaml:"database_path,omitempty"`
	MongoDatabase       string   `yaml:"mongo_database,omitempty"`
	TokenTTL            string   `yaml:"token_ttl,omitempty"`
	DeepSeekBaseURL     string   `yaml:"deepseek_base_url,omitempty"`
	DeepSeekModel       string   `yaml:"deepseek_model,omitempty"`
	DeepSeekTimeout     string   `yaml:"deepseek_timeout,omitempty"`
	AICacheTTL          string   `yaml:"ai_cache_ttl,omitempty"`
	SuggestCapacity     int      `yaml:"suggest_capacity,omitempty"`
	SuggestDefaultLimit int      `yaml:"suggest_default_limit,omitempty"`
	SuggestMaxLimit     int      `yaml:"suggest_max_limit,omitempty"`
	Host                string   `yaml:"host,omitempty"`
	Port                int      `yaml:"port,omitempty"`
	CORSOrigins         []string `yaml:"cors_origins,omitempty"`
	RateLimitPerMinute  int      `yaml:"rate_limit_per_minute,omitempty"`
	RateLimitBurst      int      `yaml:"rate_limit_burst,omitempty"`
	MaxBodyBytes        int64    `yaml:"max_body_bytes,omitempty"`
	LogLevel            string   `yaml:"log_level,omitempty"`
	LogFormat           string   `yaml:"log_format,omitempty"`
}

// ConfigFilePath returns the path to the YAML config file next to the database.
func ConfigFilePath() string {
	if AppConfig.DatabaseType == "mongo" || AppConfig.DatabasePath == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(AppConfig.DatabasePath), "config.yaml")
}

// LoadConfigFromFile merges the persisted settings into viper below flags and
// environment, then rebuilds AppConfig. A missing file is not an error.
func LoadConfigFromFile() error {
	path := ConfigFilePath()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var settings map[string]any
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	for _, secret := range []string{"jwt_signing_key", "deepseek_api_key", "mongo_uri"} {
		if _, ok := settings[secret]; ok {
			logger.New("config").Warn("ignoring secret in persisted config file", "key", secret, "path", path)
			delete(settings, secret)
		}
	}

	if err := viper.MergeConfigMap(settings); err != nil {
		return fmt.Errorf("failed to merge config file: %w", err)
	}
	InitConfig()

	logger.New("config").Info("loaded settings from config file", "path", path, "keys", len(settings))
	return nil
}

// SaveConfigToFile writes the non-secret settings next to the database.
func SaveConfigToFile() error {
	path := ConfigFilePath()
	if path == "" {
		return fmt.Errorf("cannot determine config file path")
	}

	c := AppConfig
	out := fileConfig{
		DatabaseType:        c.DatabaseType,
		DatabasePath:        c.DatabasePath,
		MongoDatabase:       c.MongoDatabase,
		TokenTTL:            durationString(c.TokenTTL),
		DeepSeekBaseURL:     c.DeepSeekBaseURL,
		DeepSeekModel:       c.DeepSeekModel,
		DeepSeekTimeout:     durationString(c.DeepSeekTimeout),
		AICacheTTL:          durationString(c.AICacheTTL),
		SuggestCapacity:     c.SuggestCapacity,
		SuggestDefaultLimit: c.SuggestDefaultLimit,
		SuggestMaxLimit:     c.SuggestMaxLimit,
		Host:                c.Host,
		Port:                c.Port,
		CORSOrigins:         c.CORSOrigins,
		RateLimitPerMinute:  c.RateLimitPerMinute,
		RateLimitBurst:      c.RateLimitBurst,
		MaxBodyBytes:        c.MaxBodyBytes,
		LogLevel:            c.LogLevel,
		LogFormat:           c.LogFormat,
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	logger.New("config").Info("configuration saved", "path", path)
	return nil
}

func durationString(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.String()
}
