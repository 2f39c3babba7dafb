// file: internal/words/canonical.go
// version: 1.0.0
// guid: 2b7d9f1a-3c5e-4a8b-9d6f-0e2a4c6b8d13

// Package words holds the vocabulary domain: canonical text, entry
// fingerprints, subsequence candidate lookup, LCS ranking and the
// registration and removal coordinators.
package words

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/text/unicode/norm"
)

// fingerprintVersion prefixes the hashed payload so the scheme can change
// without colliding with old fingerprints.
const fingerprintVersion = "entry:v1"

// Entry is the content of a word as submitted by a user or produced by the
// generator. Empty fields mean absent.
type Entry struct {
	Spelling                   string `json:"spelling"`
	Meaning                    string `json:"meaning"`
	ExampleSentence            string `json:"example_sentence"`
	ExampleSentenceTranslation string `json:"example_sentence_translation"`
}

// Canonicalize applies NFKC, trims, collapses whitespace runs to one space
// and lowercases.
func Canonicalize(text string) string {
	text = norm.NFKC.String(text)
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// Fingerprint returns the lowercase hex BLAKE2b-128 digest of the
// canonicalized entry. Entries that differ only in case, width or spacing
// share a fingerprint.
func Fingerprint(e Entry) string {
	payload := fingerprintVersion + "\n" + strings.Join([]string{
		Canonicalize(e.Spelling),
		Canonicalize(e.Meaning),
		Canonicalize(e.ExampleSentence),
		Canonicalize(e.ExampleSentenceTranslation),
	}, "\n")

	h, err := blake2b.New(16, nil)
	if err != nil {
		// Only reachable with an invalid size or key.
		panic(err)
	}
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}
