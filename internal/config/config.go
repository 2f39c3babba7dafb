// file: internal/config/config.go
// version: 2.0.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	DatabaseType string // "pebble" (default), "sqlite" or "mongo"
	DatabasePath string

	MongoURI                 string
	MongoDatabase            string
	MongoUsersCollection     string
	MongoWordsCollection     string
	MongoUserWordsCollection string

	JWTSigningKey string
	TokenTTL      time.Duration
	CookieSecure  bool

	DeepSeekAPIKey  string
	DeepSeekBaseURL string
	DeepSeekModel   string
	DeepSeekTimeout time.Duration
	AICacheTTL      time.Duration

	SuggestCapacity     int
	SuggestDefaultLimit int
	SuggestMaxLimit     int

	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	RateLimitPerMinute int
	RateLimitBurst     int
	MaxBodyBytes       int64

	LogLevel  string
	LogFormat string
}

var AppConfig Config

// SetDefaults registers default values for every key.
func SetDefaults() {
	home, _ := os.UserHomeDir()

	viper.SetDefault("database_type", "pebble")
	viper.SetDefault("database_path", filepath.Join(home, ".wordbook", "wordbook.pebble"))

	viper.SetDefault("mongo_uri", "")
	viper.SetDefault("mongo_database", "wordbook")
	viper.SetDefault("mongo_users_collection", "users")
	viper.SetDefault("mongo_words_collection", "words")
	viper.SetDefault("mongo_user_words_collection", "user_words")

	viper.SetDefault("jwt_signing_key", "")
	viper.SetDefault("token_ttl", "30m")
	viper.SetDefault("cookie_secure", false)

	viper.SetDefault("deepseek_api_key", "")
	viper.SetDefault("deepseek_base_url", "https://api.deepseek.com/v1")
	viper.SetDefault("deepseek_model", "deepseek-chat")
	viper.SetDefault("deepseek_timeout", "30s")
	viper.SetDefault("ai_cache_ttl", "10m")

	viper.SetDefault("suggest_capacity", 200)
	viper.SetDefault("suggest_default_limit", 10)
	viper.SetDefault("suggest_max_limit", 50)

	viper.SetDefault("host", "0.0.0.0")
	viper.SetDefault("port", 8080)
	viper.SetDefault("read_timeout", "15s")
	viper.SetDefault("write_timeout", "60s")
	viper.SetDefault("idle_timeout", "120s")
	viper.SetDefault("shutdown_timeout", "10s")
	viper.SetDefault("cors_origins", []string{})

	viper.SetDefault("rate_limit_per_minute", 120)
	viper.SetDefault("rate_limit_burst", 30)
	viper.SetDefault("max_body_bytes", 64<<10)

	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "text")
}

// InitConfig initializes the application configuration
func InitConfig() {
	SetDefaults()
	viper.SetEnvPrefix("WORDBOOK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	AppConfig = Config{
		DatabaseType: viper.GetString("database_type"),
		DatabasePath: viper.GetString("database_path"),

		MongoURI:                 viper.GetString("mongo_uri"),
		MongoDatabase:            viper.GetString("mongo_database"),
		MongoUsersCollection:     viper.GetString("mongo_users_collection"),
		MongoWordsCollection:     viper.GetString("mongo_words_collection"),
		MongoUserWordsCollection: viper.GetString("mongo_user_words_collection"),

		JWTSigningKey: viper.GetString("jwt_signing_key"),
		TokenTTL:      viper.GetDuration("token_ttl"),
		CookieSecure:  viper.GetBool("cookie_secure"),

		DeepSeekAPIKey:  viper.GetString("deepseek_api_key"),
		DeepSeekBaseURL: viper.GetString("deepseek_base_url"),
		DeepSeekModel:   viper.GetString("deepseek_model"),
		DeepSeekTimeout: viper.GetDuration("deepseek_timeout"),
		AICacheTTL:      viper.GetDuration("ai_cache_ttl"),

		SuggestCapacity:     viper.GetInt("suggest_capacity"),
		SuggestDefaultLimit: viper.GetInt("suggest_default_limit"),
		SuggestMaxLimit:     viper.GetInt("suggest_max_limit"),

		Host:            viper.GetString("host"),
		Port:            viper.GetInt("port"),
		ReadTimeout:     viper.GetDuration("read_timeout"),
		WriteTimeout:    viper.GetDuration("write_timeout"),
		IdleTimeout:     viper.GetDuration("idle_timeout"),
		ShutdownTimeout: viper.GetDuration("shutdown_timeout"),
		CORSOrigins:     viper.GetStringSlice("cors_origins"),

		RateLimitPerMinute: viper.GetInt("rate_limit_per_minute"),
		RateLimitBurst:     viper.GetInt("rate_limit_burst"),
		MaxBodyBytes:       viper.GetInt64("max_body_bytes"),

		LogLevel:  viper.GetString("log_level"),
		LogFormat: viper.GetString("log_format"),
	}

	// Normalize database type
	switch strings.ToLower(strings.TrimSpace(AppConfig.DatabaseType)) {
	case "", "pebble":
		AppConfig.DatabaseType = "pebble"
	case "sqlite", "sqlite3":
		AppConfig.DatabaseType = "sqlite"
	case "mongo", "mongodb":
		AppConfig.DatabaseType = "mongo"
	}
}

// Validate reports configuration that would stop the server from starting.
func (c Config) Validate() error {
	switch c.DatabaseType {
	case "pebble", "sqlite":
		if c.DatabasePath == "" {
			return fmt.Errorf("database_path is required for %s", c.DatabaseType)
		}
	case "mongo":
		if c.MongoURI == "" {
			return fmt.Errorf("mongo_uri is required for mongo")
		}
	default:
		return fmt.Errorf("unsupported database_type %q", c.DatabaseType)
	}
	if c.JWTSigningKey == "" {
		return fmt.Errorf("jwt_signing_key is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.SuggestMaxLimit > 0 && c.SuggestDefaultLimit > c.SuggestMaxLimit {
		return fmt.Errorf("suggest_default_limit %d exceeds suggest_max_limit %d", c.SuggestDefaultLimit, c.SuggestMaxLimit)
	}
	switch c.LogFormat {
	case "", "text", "json", "logfmt":
	default:
		return fmt.Errorf("unsupported log_format %q", c.LogFormat)
	}
	return nil
}

// Addr returns host:port for the HTTP listener.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
