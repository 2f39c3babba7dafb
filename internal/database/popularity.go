// file: internal/database/popularity.go
// version: 1.0.0
// guid: 6b1d3f5a-7c9e-4b2d-8f0a-3c5e7a9b1d4f

package database

import (
	"context"
	"fmt"
)

const reconcileBatchSize = 1000

// PopularityDrift is a word whose stored counter disagrees with the number of
// links pointing at it.
type PopularityDrift struct {
	WordID   string
	Spelling string
	Stored   int64
	Actual   int64
}

// ReconcilePopularity compares every word's popularity with its link count.
// With fix set, drifted counters are overwritten with the link count. Words
// are never deleted, so a word with no links is reset to zero rather than
// removed.
func ReconcilePopularity(ctx context.Context, store Store, fix bool) ([]PopularityDrift, error) {
	counts, err := store.CountUserWordsByWord(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count user words: %w", err)
	}

	var drifts []PopularityDrift
	for offset := 0; ; offset += reconcileBatchSize {
		batch, err := store.ListWords(ctx, reconcileBatchSize, offset)
		if err != nil {
			return drifts, fmt.Errorf("failed to list words: %w", err)
		}
		for _, w := range batch {
			actual := counts[w.ID]
			if w.Popularity == actual {
				continue
			}
			drifts = append(drifts, PopularityDrift{
				WordID:   w.ID,
				Spelling: w.Spelling,
				Stored:   w.Popularity,
				Actual:   actual,
			})
		}
		if len(batch) < reconcileBatchSize {
			break
		}
	}

	if !fix {
		return drifts, nil
	}
	for _, d := range drifts {
		if err := store.SetWordPopularity(ctx, d.WordID, d.Actual); err != nil {
			return drifts, fmt.Errorf("failed to repair word %s: %w", d.WordID, err)
		}
	}
	return drifts, nil
}
