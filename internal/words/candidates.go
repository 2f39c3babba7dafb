// file: internal/words/candidates.go
// version: 1.0.0
// guid: 5c9e1b3d-7f2a-4d6c-8b0e-1a3c5e7f9b26

package words

import (
	"context"
	"regexp"
	"strings"

	"github.com/jdfalk/wordbook/internal/database"
)

const (
	DefaultCandidateCapacity = 200
	MaxCandidateCapacity     = 1000
)

// SubsequencePattern builds a regular expression matching any string that
// contains the runes of query in order: "app" becomes "a.*p.*p".
func SubsequencePattern(query string) string {
	parts := make([]string, 0, len(query))
	for _, r := range query {
		parts = append(parts, regexp.QuoteMeta(string(r)))
	}
	return strings.Join(parts, ".*")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern is the SQL LIKE form of SubsequencePattern, using '\' as the
// escape character: "app" becomes "%a%p%p%".
func LikePattern(query string) string {
	var b strings.Builder
	b.WriteByte('%')
	for _, r := range query {
		b.WriteString(likeEscaper.Replace(string(r)))
		b.WriteByte('%')
	}
	return b.String()
}

// NewSubsequenceQuery canonicalizes query and renders it for every backend.
func NewSubsequenceQuery(query string) database.SubsequenceQuery {
	q := Canonicalize(query)
	return database.SubsequenceQuery{
		Text:  q,
		Regex: SubsequencePattern(q),
		Like:  LikePattern(q),
	}
}

// ClampCapacity bounds a configured candidate capacity to
// [1, MaxCandidateCapacity]; non-positive values select the default.
func ClampCapacity(capacity int) int {
	switch {
	case capacity <= 0:
		return DefaultCandidateCapacity
	case capacity > MaxCandidateCapacity:
		return MaxCandidateCapacity
	}
	return capacity
}

// CollectCandidates returns up to capacity stored words whose spelling
// contains query as a case-insensitive subsequence. Order is unspecified.
func CollectCandidates(ctx context.Context, store database.Store, query string, capacity int) ([]database.Word, error) {
	q := NewSubsequenceQuery(query)
	if q.Text == "" {
		return []database.Word{}, nil
	}
	return store.FindWordsBySubsequence(ctx, q, ClampCapacity(capacity))
}
