// file: cmd/diagnostics.go
// version: 2.0.0
// guid: c8f6a0d4-2a8b-48cf-9d08-02cc9915d9fc

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/pebble/v2"
	"github.com/jdfalk/wordbook/internal/config"
	"github.com/jdfalk/wordbook/internal/database"
	"github.com/spf13/cobra"
)

var (
	diagnosticsCmd = &cobra.Command{
		Use:   "diagnostics",
		Short: "Debugging and repair helpers",
		Long:  "Diagnostic utilities for inspecting and repairing the word database.",
	}

	verifyPopularityCmd = &cobra.Command{
		Use:   "verify-popularity",
		Short: "Compare word popularity with registered links",
		RunE: func(cmd *cobra.Command, args []string) error {
			fix, _ := cmd.Flags().GetBool("fix")
			force, _ := cmd.Flags().GetBool("yes")
			return runVerifyPopularity(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), fix, force)
		},
	}

	queryCmd = &cobra.Command{
		Use:   "query",
		Short: "Inspect stored word records",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			prefix, _ := cmd.Flags().GetString("prefix")
			raw, _ := cmd.Flags().GetBool("raw")
			return runDiagnosticsQuery(cmd.Context(), cmd.OutOrStdout(), limit, prefix, raw)
		},
	}
)

func init() {
	verifyPopularityCmd.Flags().Bool("fix", false, "Overwrite drifted counters with the link count")
	verifyPopularityCmd.Flags().Bool("yes", false, "Skip confirmation prompt")

	queryCmd.Flags().Int("limit", 5, "Number of records to display")
	queryCmd.Flags().String("prefix", "w:", "Key prefix to inspect when --raw is set")
	queryCmd.Flags().Bool("raw", false, "Show raw Pebble key/value data (Pebble only)")

	diagnosticsCmd.AddCommand(verifyPopularityCmd)
	diagnosticsCmd.AddCommand(queryCmd)
}

func runVerifyPopularity(ctx context.Context, out io.Writer, in io.Reader, fix, force bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer database.CloseStore(store)

	fmt.Fprintf(out, "Checking word popularity in %s (%s)\n", storeLocation(config.AppConfig), config.AppConfig.DatabaseType)

	drifts, err := database.ReconcilePopularity(ctx, store, false)
	if err != nil {
		return err
	}
	if len(drifts) == 0 {
		fmt.Fprintln(out, "All popularity counters match their links.")
		return nil
	}

	fmt.Fprintf(out, "Found %d drifted counters:\n", len(drifts))
	for i, d := range drifts {
		fmt.Fprintf(out, "%2d. %s (%s): stored %d, links %d\n", i+1, d.Spelling, d.WordID, d.Stored, d.Actual)
	}

	if !fix {
		fmt.Fprintln(out, "Run with --fix to repair.")
		return nil
	}

	if !force {
		confirmed, err := promptYesNo(out, in, fmt.Sprintf("Repair %d counters", len(drifts)))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(out, "Aborted. No counters changed.")
			return nil
		}
	}

	repaired := 0
	for _, d := range drifts {
		if err := store.SetWordPopularity(ctx, d.WordID, d.Actual); err != nil {
			fmt.Fprintf(out, "Failed to repair %s: %v\n", d.WordID, err)
			continue
		}
		repaired++
	}
	fmt.Fprintf(out, "Repaired %d counters.\n", repaired)
	return nil
}

func runDiagnosticsQuery(ctx context.Context, out io.Writer, limit int, prefix string, raw bool) error {
	if limit <= 0 {
		return errors.New("limit must be positive")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if raw {
		if config.AppConfig.DatabaseType != "pebble" {
			return fmt.Errorf("raw inspection is only available for Pebble databases")
		}
		return runRawPebbleQuery(out, limit, prefix)
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer database.CloseStore(store)

	list, err := store.ListWords(ctx, limit, 0)
	if err != nil {
		return fmt.Errorf("failed to fetch words: %w", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(out, "No words found.")
		return nil
	}

	for i, w := range list {
		fmt.Fprintf(out, "%2d. ID: %s\n", i+1, w.ID)
		fmt.Fprintf(out, "    Spelling: %s\n", w.Spelling)
		fmt.Fprintf(out, "    Meaning: %s\n", truncateString(w.Meaning, 80))
		fmt.Fprintf(out, "    Popularity: %d\n", w.Popularity)
		fmt.Fprintf(out, "    Fingerprint: %s\n", w.Fingerprint)
		fmt.Fprintln(out, "---")
	}

	return nil
}

func runRawPebbleQuery(out io.Writer, limit int, prefix string) error {
	store, err := database.NewPebbleStore(config.AppConfig.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open Pebble database: %w", err)
	}
	defer store.Close()

	iterOpts := &pebble.IterOptions{}
	if prefix != "" {
		iterOpts.LowerBound = []byte(prefix)
		iterOpts.UpperBound = append([]byte(prefix), 0xFF)
	}

	iter, err := store.DB().NewIter(iterOpts)
	if err != nil {
		return fmt.Errorf("failed to create iterator: %w", err)
	}
	defer iter.Close()

	count := 0
	for ok := iter.First(); ok && iter.Valid(); ok = iter.Next() {
		fmt.Fprintf(out, "Key: %s\n", string(iter.Key()))
		val := iter.Value()
		fmt.Fprintf(out, "Value length: %d bytes\n", len(val))
		fmt.Fprintf(out, "Value preview: %s\n", truncateString(string(val), 500))
		fmt.Fprintln(out, "---")

		count++
		if count >= limit {
			break
		}
	}

	if err := iter.Error(); err != nil {
		return fmt.Errorf("iterator error: %w", err)
	}

	if count == 0 {
		fmt.Fprintln(out, "No keys matched the requested prefix.")
	}

	return nil
}

func promptYesNo(out io.Writer, in io.Reader, action string) (bool, error) {
	if in == nil {
		in = os.Stdin
	}
	fmt.Fprintf(out, "%s? Type 'yes' to confirm: ", action)
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes", nil
}

func truncateString(in string, max int) string {
	if len([]rune(in)) <= max {
		return in
	}
	return string([]rune(in)[:max]) + "..."
}
