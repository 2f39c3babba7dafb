// file: internal/words/lcs_test.go
// version: 1.0.0
// guid: 370b6101-d73d-4960-a84d-cdd476f0e0ee

package words

import (
	"testing"

	"github.com/jdfalk/wordbook/internal/database"
	"github.com/stretchr/testify/assert"
)

func TestLCSLength(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 0},
		{"abc", "abc", 3},
		{"wrd", "word", 3},
		{"wrd", "weird", 3},
		{"aple", "apply", 3},
		{"aple", "maple", 4},
		{"abcbdab", "bdcaba", 4},
		{"走る", "走った", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LCSLength(tt.a, tt.b), "LCSLength(%q, %q)", tt.a, tt.b)
		assert.Equal(t, tt.want, LCSLength(tt.b, tt.a), "symmetric for %q, %q", tt.a, tt.b)
	}
}

func TestLCSLength_BoundedByShorter(t *testing.T) {
	pairs := [][2]string{{"kitten", "sitting"}, {"a", "banana"}, {"xyz", "abc"}}
	for _, p := range pairs {
		n := LCSLength(p[0], p[1])
		assert.LessOrEqual(t, n, min(len([]rune(p[0])), len([]rune(p[1]))))
		assert.GreaterOrEqual(t, n, 0)
	}
}

func TestLCSScore(t *testing.T) {
	assert.Equal(t, 0.0, LCSScore("", "word"))
	assert.Equal(t, 0.0, LCSScore("word", ""))
	assert.Equal(t, 1.0, LCSScore("x", "x"))
	assert.InDelta(t, 0.75, LCSScore("wrd", "word"), 1e-9)
	assert.InDelta(t, 0.6, LCSScore("wrd", "weird"), 1e-9)
	assert.InDelta(t, 0.6, LCSScore("wrd", "sword"), 1e-9)

	for _, p := range [][2]string{{"apple", "maple"}, {"q", "zzz"}, {"longer", "long"}} {
		s := LCSScore(p[0], p[1])
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
		assert.Equal(t, s, LCSScore(p[1], p[0]))
	}
}

func wordsNamed(pop map[string]int64, spellings ...string) []database.Word {
	out := make([]database.Word, len(spellings))
	for i, s := range spellings {
		out[i] = database.Word{ID: "id-" + s, Spelling: s, Popularity: pop[s]}
	}
	return out
}

func spellings(ws []database.Word) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Spelling
	}
	return out
}

func TestRank_ScoreThenLengthThenLexical(t *testing.T) {
	candidates := wordsNamed(nil, "weird", "word", "sword")
	assert.Equal(t, []string{"word", "sword", "weird"}, spellings(Rank(candidates, "wrd", 10)))
}

func TestRank_PopularityBreaksScoreTies(t *testing.T) {
	// apple and maple both score 0.8 against "aple"; apply scores 0.6.
	even := wordsNamed(map[string]int64{"apple": 3, "maple": 3, "apply": 9}, "maple", "apply", "apple")
	assert.Equal(t, []string{"apple"}, spellings(Rank(even, "aple", 1)))

	favoured := wordsNamed(map[string]int64{"apple": 1, "maple": 5, "apply": 9}, "apple", "apply", "maple")
	assert.Equal(t, []string{"maple", "apple", "apply"}, spellings(Rank(favoured, "aple", 3)))

	// Same result regardless of input order.
	for i := 0; i < 5; i++ {
		shuffled := wordsNamed(map[string]int64{"apple": 1, "maple": 5, "apply": 9}, "apply", "maple", "apple")
		assert.Equal(t, "maple", Rank(shuffled, "aple", 1)[0].Spelling)
	}
}

func TestRank_Limit(t *testing.T) {
	candidates := wordsNamed(nil, "word", "sword", "weird")
	assert.Empty(t, Rank(candidates, "wrd", 0))
	assert.Empty(t, Rank(candidates, "wrd", -1))
	assert.Len(t, Rank(candidates, "wrd", 2), 2)
	assert.Len(t, Rank(candidates, "wrd", 10), 3)
	assert.Empty(t, Rank(nil, "wrd", 3))
}

func TestRank_CaseInsensitive(t *testing.T) {
	candidates := wordsNamed(nil, "Word", "sword")
	assert.Equal(t, []string{"Word", "sword"}, spellings(Rank(candidates, "WRD", 2)))
}
