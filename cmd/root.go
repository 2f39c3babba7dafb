// file: cmd/root.go
// version: 2.0.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jdfalk/wordbook/internal/ai"
	"github.com/jdfalk/wordbook/internal/auth"
	"github.com/jdfalk/wordbook/internal/config"
	"github.com/jdfalk/wordbook/internal/database"
	"github.com/jdfalk/wordbook/internal/logger"
	"github.com/jdfalk/wordbook/internal/server"
	"github.com/jdfalk/wordbook/internal/words"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var databasePath string
var databaseType string

// Swappable for tests.
var (
	initializeStore = database.InitializeStore
	runMigrations   = database.RunMigrations
	startServer     = func(ctx context.Context, srv *server.Server) error { return srv.Start(ctx) }
	watchConfig     = config.Watch
	checkGenerator  = func(ctx context.Context, g *ai.DeepSeekGenerator) error { return g.TestConnection(ctx) }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wordbook",
	Short: "Shared vocabulary notebook backend",
	Long: `Wordbook serves a vocabulary notebook API. Users register words with a
meaning and example sentence; identical entries are shared between users and
ranked by popularity when suggesting words for a typed prefix.`,
	SilenceUsage: true,
}

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long:  `Start the HTTP API server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.AppConfig
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer database.CloseStore(store)

		fmt.Fprintf(cmd.OutOrStdout(), "Using database: %s (%s)\n", storeLocation(cfg), cfg.DatabaseType)

		tokens, err := auth.NewTokenIssuer(cfg.JWTSigningKey, cfg.TokenTTL)
		if err != nil {
			return fmt.Errorf("failed to initialize tokens: %w", err)
		}

		var generator words.Generator
		deepseek := ai.NewDeepSeekGenerator(ai.Config{
			APIKey:  cfg.DeepSeekAPIKey,
			BaseURL: cfg.DeepSeekBaseURL,
			Model:   cfg.DeepSeekModel,
			Timeout: cfg.DeepSeekTimeout,
		})
		if deepseek.IsEnabled() {
			generator = deepseek
			if check, _ := cmd.Flags().GetBool("check-ai"); check {
				if err := checkGenerator(ctx, deepseek); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Warning: DeepSeek connection check failed: %v\n", err)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "DeepSeek connection OK")
				}
			}
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "DeepSeek API key not set; entry generation disabled")
		}

		srv := server.NewServer(server.Deps{
			Store: store,
			Words: words.NewService(store, generator, wordOptions(cfg)),
			Auth:  auth.NewService(store, tokens),
		}, serverConfig(cfg))

		watchConfig(func(r config.Reloadable) {
			srv.SetRateLimit(r.RateLimitPerMinute, r.RateLimitBurst)
		})

		return startServer(ctx, srv)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wordbook.yaml)")
	rootCmd.PersistentFlags().StringVar(&databasePath, "db", "", "path to database (default: ~/.wordbook/wordbook.pebble)")
	rootCmd.PersistentFlags().StringVar(&databaseType, "db-type", "pebble", "database type: pebble (default), sqlite or mongo")
	rootCmd.PersistentFlags().String("mongo-uri", "", "MongoDB connection URI (db-type mongo)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text, json or logfmt")

	viper.BindPFlag("database_path", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("database_type", rootCmd.PersistentFlags().Lookup("db-type"))
	viper.BindPFlag("mongo_uri", rootCmd.PersistentFlags().Lookup("mongo-uri"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(fingerprintCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(diagnosticsCmd)

	// Add serve command specific flags
	serveCmd.Flags().Int("port", 8080, "port to run the web server on")
	serveCmd.Flags().String("host", "0.0.0.0", "host to bind the web server to")
	serveCmd.Flags().Duration("read-timeout", 0, "read timeout (e.g. 15s, 1m)")
	serveCmd.Flags().Duration("write-timeout", 0, "write timeout (e.g. 15s, 1m)")
	serveCmd.Flags().Duration("idle-timeout", 0, "idle timeout (e.g. 60s, 2m)")
	serveCmd.Flags().StringSlice("cors-origin", nil, "allowed CORS origin (repeatable)")
	serveCmd.Flags().Bool("check-ai", false, "send one test generation to DeepSeek at startup")

	viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("host", serveCmd.Flags().Lookup("host"))
	viper.BindPFlag("read_timeout", serveCmd.Flags().Lookup("read-timeout"))
	viper.BindPFlag("write_timeout", serveCmd.Flags().Lookup("write-timeout"))
	viper.BindPFlag("idle_timeout", serveCmd.Flags().Lookup("idle-timeout"))
	viper.BindPFlag("cors_origins", serveCmd.Flags().Lookup("cors-origin"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wordbook")
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	config.InitConfig()
	if err := config.LoadConfigFromFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load persisted config: %v\n", err)
	}
	logger.Configure(config.AppConfig.LogLevel, config.AppConfig.LogFormat)

	// Ensure database directory exists
	if config.AppConfig.DatabaseType != "mongo" && config.AppConfig.DatabasePath != "" {
		dbDir := filepath.Dir(config.AppConfig.DatabasePath)
		if dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o755); err != nil {
				fmt.Fprintf(os.Stderr, "Error creating database directory: %v\n", err)
			}
		}
	}
}

// openStore opens the configured store and brings its schema up to date.
func openStore(ctx context.Context) (database.Store, error) {
	cfg := config.AppConfig
	store, err := initializeStore(ctx, cfg.DatabaseType, cfg.DatabasePath, mongoOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := runMigrations(ctx, store); err != nil {
		database.CloseStore(store)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func storeLocation(cfg config.Config) string {
	if cfg.DatabaseType == "mongo" {
		return cfg.MongoDatabase
	}
	return cfg.DatabasePath
}

func mongoOptions(cfg config.Config) database.MongoOptions {
	return database.MongoOptions{
		URI:                 cfg.MongoURI,
		Database:            cfg.MongoDatabase,
		UsersCollection:     cfg.MongoUsersCollection,
		WordsCollection:     cfg.MongoWordsCollection,
		UserWordsCollection: cfg.MongoUserWordsCollection,
	}
}

func wordOptions(cfg config.Config) words.Options {
	return words.Options{
		CandidateCapacity:   cfg.SuggestCapacity,
		DefaultSuggestLimit: cfg.SuggestDefaultLimit,
		MaxSuggestLimit:     cfg.SuggestMaxLimit,
		GenerateTTL:         cfg.AICacheTTL,
	}
}

func serverConfig(cfg config.Config) server.ServerConfig {
	return server.ServerConfig{
		Port:               cfg.Port,
		Host:               cfg.Host,
		ReadTimeout:        cfg.ReadTimeout,
		WriteTimeout:       cfg.WriteTimeout,
		IdleTimeout:        cfg.IdleTimeout,
		ShutdownTimeout:    cfg.ShutdownTimeout,
		CORSOrigins:        cfg.CORSOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		RateLimitBurst:     cfg.RateLimitBurst,
		MaxBodyBytes:       cfg.MaxBodyBytes,
		CookieSecure:       cfg.CookieSecure,
	}
}
