// file: internal/words/lcs.go
// version: 1.0.0
// guid: fc7e03fc-efc1-4462-9e43-601af4527616

package words

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/jdfalk/wordbook/internal/database"
)

// LCSLength computes the longest common subsequence length of a and b,
// comparing runes.
func LCSLength(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return 0
	}

	// Single-row DP over the shorter string
	row := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		diag := 0
		for j := 1; j <= len(rb); j++ {
			up := row[j]
			if ra[i-1] == rb[j-1] {
				row[j] = diag + 1
			} else {
				row[j] = max(row[j], row[j-1])
			}
			diag = up
		}
	}
	return row[len(rb)]
}

// LCSScore normalizes LCSLength by the longer input. Returns a value in
// [0, 1]; 0 when either side is empty.
func LCSScore(query, candidate string) float64 {
	lq, lc := utf8.RuneCountInString(query), utf8.RuneCountInString(candidate)
	if lq == 0 || lc == 0 {
		return 0
	}
	return float64(LCSLength(query, candidate)) / float64(max(lq, lc))
}

type scored struct {
	word   database.Word
	score  float64
	length int
}

// Rank orders candidates by LCS score against query (descending), then
// popularity (descending), spelling length (ascending) and spelling
// (ascending), and returns at most limit words.
func Rank(candidates []database.Word, query string, limit int) []database.Word {
	if limit <= 0 || len(candidates) == 0 {
		return []database.Word{}
	}
	q := strings.ToLower(query)

	results := make([]scored, len(candidates))
	for i, w := range candidates {
		results[i] = scored{
			word:   w,
			score:  LCSScore(q, strings.ToLower(w.Spelling)),
			length: utf8.RuneCountInString(w.Spelling),
		}
	}
	slices.SortStableFunc(results, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		if c := cmp.Compare(b.word.Popularity, a.word.Popularity); c != 0 {
			return c
		}
		if c := cmp.Compare(a.length, b.length); c != 0 {
			return c
		}
		return strings.Compare(a.word.Spelling, b.word.Spelling)
	})

	n := min(limit, len(results))
	ranked := make([]database.Word, n)
	for i := range ranked {
		ranked[i] = results[i].word
	}
	return ranked
}
