// file: cmd/words.go
// version: 1.0.0
// guid: 2c4e6a8b-0d1f-4a3c-9e5b-7d9f1b3c5e8a

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"text/tabwriter"

	"github.com/jdfalk/wordbook/internal/apperr"
	"github.com/jdfalk/wordbook/internal/config"
	"github.com/jdfalk/wordbook/internal/database"
	"github.com/jdfalk/wordbook/internal/words"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	fingerprintCmd = &cobra.Command{
		Use:   "fingerprint <spelling>",
		Short: "Print the fingerprint of an entry",
		Long: `Print the content fingerprint used to deduplicate shared words. Entries
that differ only in case, width or whitespace share a fingerprint.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meaning, _ := cmd.Flags().GetString("meaning")
			example, _ := cmd.Flags().GetString("example")
			translation, _ := cmd.Flags().GetString("translation")
			fmt.Fprintln(cmd.OutOrStdout(), words.Fingerprint(words.Entry{
				Spelling:                   args[0],
				Meaning:                    meaning,
				ExampleSentence:            example,
				ExampleSentenceTranslation: translation,
			}))
			return nil
		},
	}

	suggestCmd = &cobra.Command{
		Use:   "suggest <query>",
		Short: "Rank stored words against a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			return runSuggest(cmd.Context(), cmd.OutOrStdout(), args[0], limit)
		},
	}

	importCmd = &cobra.Command{
		Use:   "import <file.tsv>",
		Short: "Register a TSV word list for a user",
		Long: `Register every line of a tab-separated file for an existing user.
Columns: spelling, meaning, example sentence, example translation, and
optionally a usage sentence and its translation. Blank lines and lines
starting with # are skipped, as are words the user already registered.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("user")
			workers, _ := cmd.Flags().GetInt("workers")
			if username == "" {
				return errors.New("--user is required")
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open word list: %w", err)
			}
			defer f.Close()
			_, err = runImport(cmd.Context(), cmd.OutOrStdout(), f, username, workers)
			return err
		},
	}
)

func init() {
	fingerprintCmd.Flags().String("meaning", "", "meaning")
	fingerprintCmd.Flags().String("example", "", "example sentence")
	fingerprintCmd.Flags().String("translation", "", "example sentence translation")

	suggestCmd.Flags().Int("limit", 0, "maximum number of suggestions (default from config)")

	importCmd.Flags().String("user", "", "username to register the words for")
	importCmd.Flags().Int("workers", 4, "number of concurrent registrations")
}

func runSuggest(ctx context.Context, out io.Writer, query string, limit int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer database.CloseStore(store)

	svc := words.NewService(store, nil, wordOptions(config.AppConfig))
	ranked, err := svc.Suggest(ctx, query, limit)
	if err != nil {
		return err
	}
	if len(ranked) == 0 {
		fmt.Fprintln(out, "No matching words.")
		return nil
	}

	q := words.Canonicalize(query)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSPELLING\tSCORE\tPOPULARITY\tMEANING")
	for i, w := range ranked {
		fmt.Fprintf(tw, "%d\t%s\t%.3f\t%d\t%s\n", i+1, w.Spelling, words.LCSScore(q, w.SpellingKey), w.Popularity, truncateString(w.Meaning, 40))
	}
	return tw.Flush()
}

type importLine struct {
	number int
	entry  words.Entry
	usage  words.Usage
}

// ImportResult counts the outcome of an import.
type ImportResult struct {
	Registered int64
	Skipped    int64
	Failed     int64
}

func parseImportLines(r io.Reader) ([]importLine, error) {
	var lines []importLine
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(strings.TrimSpace(text), "#") {
			continue
		}
		cols := strings.Split(text, "\t")
		if len(cols) < 4 {
			return nil, fmt.Errorf("line %d: expected at least 4 tab-separated columns, got %d", n, len(cols))
		}
		for len(cols) < 6 {
			cols = append(cols, "")
		}
		lines = append(lines, importLine{
			number: n,
			entry: words.Entry{
				Spelling:                   cols[0],
				Meaning:                    cols[1],
				ExampleSentence:            cols[2],
				ExampleSentenceTranslation: cols[3],
			},
			usage: words.Usage{Sentence: cols[4], Translation: cols[5]},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return lines, nil
}

func runImport(ctx context.Context, out io.Writer, r io.Reader, username string, workers int) (ImportResult, error) {
	var result ImportResult
	if ctx == nil {
		ctx = context.Background()
	}
	if workers < 1 {
		workers = 1
	}

	lines, err := parseImportLines(r)
	if err != nil {
		return result, err
	}

	store, err := openStore(ctx)
	if err != nil {
		return result, err
	}
	defer database.CloseStore(store)

	user, err := store.GetUserByUsername(ctx, username)
	if err != nil {
		return result, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return result, fmt.Errorf("user %q not found", username)
	}

	svc := words.NewService(store, nil, wordOptions(config.AppConfig))
	bar := progressbar.NewOptions64(int64(len(lines)),
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("importing"),
		progressbar.OptionShowCount(),
	)

	var (
		wg        sync.WaitGroup
		semaphore = make(chan struct{}, workers)
		mu        sync.Mutex
		failures  []string
	)
	for _, line := range lines {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		go func(line importLine) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() {
				<-semaphore
				bar.Add(1)
			}()

			_, err := svc.RegisterWord(ctx, line.entry, user.ID, line.usage)
			switch {
			case err == nil:
				atomic.AddInt64(&result.Registered, 1)
			case apperr.KindOf(err) == apperr.KindConflict:
				atomic.AddInt64(&result.Skipped, 1)
			default:
				atomic.AddInt64(&result.Failed, 1)
				mu.Lock()
				failures = append(failures, fmt.Sprintf("line %d (%s): %v", line.number, line.entry.Spelling, err))
				mu.Unlock()
			}
		}(line)
	}
	wg.Wait()
	_ = bar.Finish()

	fmt.Fprintf(out, "\nRegistered %d, skipped %d already registered, failed %d\n", result.Registered, result.Skipped, result.Failed)
	for _, f := range failures {
		fmt.Fprintln(out, "  "+f)
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	if result.Failed > 0 {
		return result, fmt.Errorf("%d lines failed to import", result.Failed)
	}
	return result, nil
}
