// file: cmd/config.go
// version: 1.0.0
// guid: 8e0a2c4d-6f1b-4d3e-a5c7-9b1d3f5a7c2e

package cmd

import (
	"fmt"

	"github.com/jdfalk/wordbook/internal/config"
	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Show or persist settings",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings (secrets redacted)",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := config.AppConfig
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "database_type: %s\n", c.DatabaseType)
			fmt.Fprintf(out, "database_path: %s\n", c.DatabasePath)
			fmt.Fprintf(out, "mongo_uri: %s\n", redact(c.MongoURI))
			fmt.Fprintf(out, "mongo_database: %s\n", c.MongoDatabase)
			fmt.Fprintf(out, "jwt_signing_key: %s\n", redact(c.JWTSigningKey))
			fmt.Fprintf(out, "token_ttl: %s\n", c.TokenTTL)
			fmt.Fprintf(out, "deepseek_api_key: %s\n", redact(c.DeepSeekAPIKey))
			fmt.Fprintf(out, "deepseek_base_url: %s\n", c.DeepSeekBaseURL)
			fmt.Fprintf(out, "deepseek_model: %s\n", c.DeepSeekModel)
			fmt.Fprintf(out, "ai_cache_ttl: %s\n", c.AICacheTTL)
			fmt.Fprintf(out, "suggest_capacity: %d\n", c.SuggestCapacity)
			fmt.Fprintf(out, "suggest_default_limit: %d\n", c.SuggestDefaultLimit)
			fmt.Fprintf(out, "suggest_max_limit: %d\n", c.SuggestMaxLimit)
			fmt.Fprintf(out, "listen: %s\n", c.Addr())
			fmt.Fprintf(out, "rate_limit_per_minute: %d\n", c.RateLimitPerMinute)
			fmt.Fprintf(out, "rate_limit_burst: %d\n", c.RateLimitBurst)
			fmt.Fprintf(out, "max_body_bytes: %d\n", c.MaxBodyBytes)
			fmt.Fprintf(out, "log_level: %s\n", c.LogLevel)
			fmt.Fprintf(out, "log_format: %s\n", c.LogFormat)
			return nil
		},
	}

	configSaveCmd = &cobra.Command{
		Use:   "save",
		Short: "Write the non-secret settings next to the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SaveConfigToFile(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved settings to", config.ConfigFilePath())
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSaveCmd)
}

func redact(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	return "(set)"
}
