// file: internal/words/service.go
// version: 1.0.0
// guid: 7e1a3c5b-9d2f-4e8a-b6c0-4d8f2a6e0b35

package words

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/jdfalk/wordbook/internal/apperr"
	"github.com/jdfalk/wordbook/internal/cache"
	"github.com/jdfalk/wordbook/internal/database"
	"github.com/jdfalk/wordbook/internal/logger"
	"github.com/jdfalk/wordbook/internal/metrics"
	"golang.org/x/text/unicode/norm"
)

// Field limits, counted in runes after normalization.
const (
	MaxSpellingLen    = 64
	MaxMeaningLen     = 512
	MaxExampleLen     = 1024
	MaxTranslationLen = 1024
	MaxUsageLen       = 1024

	DefaultSuggestLimit = 10
	MaxSuggestLimit     = 50
	DefaultGenerateTTL  = 10 * time.Minute
)

// ErrGeneratorDisabled is returned by GenerateEntry when no generator is
// configured.
var ErrGeneratorDisabled = errors.New("entry generator is not configured")

// Generator produces a draft entry for a spelling.
type Generator interface {
	Generate(ctx context.Context, spelling string) (Entry, error)
}

// Usage is a user's own example sentence for a registered word.
type Usage struct {
	Sentence    string `json:"sentence"`
	Translation string `json:"translation"`
}

// UserEntry is a registered word as seen by its owner.
type UserEntry struct {
	UserWordID string `json:"user_word_id"`
	WordID     string `json:"word_id"`
	Entry
	Popularity int64     `json:"popularity"`
	Usage      *Usage    `json:"usage_example,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Options tunes the service. Zero values select the defaults.
type Options struct {
	CandidateCapacity   int
	DefaultSuggestLimit int
	MaxSuggestLimit     int
	GenerateTTL         time.Duration
}

func (o Options) withDefaults() Options {
	o.CandidateCapacity = ClampCapacity(o.CandidateCapacity)
	if o.MaxSuggestLimit <= 0 {
		o.MaxSuggestLimit = MaxSuggestLimit
	}
	if o.DefaultSuggestLimit <= 0 {
		o.DefaultSuggestLimit = DefaultSuggestLimit
	}
	o.DefaultSuggestLimit = min(o.DefaultSuggestLimit, o.MaxSuggestLimit)
	if o.GenerateTTL == 0 {
		o.GenerateTTL = DefaultGenerateTTL
	}
	return o
}

// Service coordinates word registration, removal, lookup, suggestion and
// generation on top of a Store.
type Service struct {
	store     database.Store
	generator Generator
	generated *cache.Cache[Entry]
	opts      Options
	log       *log.Logger
}

// NewService creates a word service. generator may be nil, in which case
// GenerateEntry fails with a service error.
func NewService(store database.Store, generator Generator, opts Options) *Service {
	opts = opts.withDefaults()
	return &Service{
		store:     store,
		generator: generator,
		generated: cache.New[Entry](opts.GenerateTTL),
		opts:      opts,
		log:       logger.New("words"),
	}
}

// tidy applies NFKC and collapses whitespace but keeps case, for display.
func tidy(s string) string {
	return strings.Join(strings.Fields(norm.NFKC.String(s)), " ")
}

func tooLong(s string, limit int) bool {
	return utf8.RuneCountInString(s) > limit
}

func validateEntry(op string, e Entry, u Usage) error {
	switch {
	case Canonicalize(e.Spelling) == "":
		return apperr.BadRequest(op, "spelling is required")
	case tooLong(e.Spelling, MaxSpellingLen):
		return apperr.BadRequest(op, fmt.Sprintf("spelling must be at most %d characters", MaxSpellingLen))
	case tooLong(e.Meaning, MaxMeaningLen):
		return apperr.BadRequest(op, fmt.Sprintf("meaning must be at most %d characters", MaxMeaningLen))
	case tooLong(e.ExampleSentence, MaxExampleLen):
		return apperr.BadRequest(op, fmt.Sprintf("example sentence must be at most %d characters", MaxExampleLen))
	case tooLong(e.ExampleSentenceTranslation, MaxTranslationLen):
		return apperr.BadRequest(op, fmt.Sprintf("example sentence translation must be at most %d characters", MaxTranslationLen))
	case tooLong(u.Sentence, MaxUsageLen), tooLong(u.Translation, MaxUsageLen):
		return apperr.BadRequest(op, fmt.Sprintf("usage example must be at most %d characters", MaxUsageLen))
	}
	return nil
}

// RegisterWord links entry to userID, creating the shared word on first
// registration. The user link is checked before the popularity counter is
// touched, so a repeated registration by the same user never changes it.
func (s *Service) RegisterWord(ctx context.Context, entry Entry, userID string, usage Usage) (*database.UserWord, error) {
	const op = "words.RegisterWord"

	entry = Entry{
		Spelling:                   tidy(entry.Spelling),
		Meaning:                    tidy(entry.Meaning),
		ExampleSentence:            tidy(entry.ExampleSentence),
		ExampleSentenceTranslation: tidy(entry.ExampleSentenceTranslation),
	}
	usage = Usage{Sentence: tidy(usage.Sentence), Translation: tidy(usage.Translation)}
	if err := validateEntry(op, entry, usage); err != nil {
		metrics.IncRegistration("bad_request")
		return nil, err
	}
	fp := Fingerprint(entry)

	existing, err := s.store.GetWordByFingerprint(ctx, fp)
	if err != nil {
		metrics.IncRegistration("error")
		return nil, apperr.Service(op, err)
	}
	if existing != nil {
		link, err := s.store.GetUserWord(ctx, userID, existing.ID)
		if err != nil {
			metrics.IncRegistration("error")
			return nil, apperr.Service(op, err)
		}
		if link != nil {
			metrics.IncRegistration("conflict")
			return nil, apperr.Conflict(op, "word is already registered")
		}
	}

	word, created, err := s.store.UpsertWord(ctx, &database.Word{
		Spelling:                   entry.Spelling,
		SpellingKey:                Canonicalize(entry.Spelling),
		Meaning:                    entry.Meaning,
		ExampleSentence:            entry.ExampleSentence,
		ExampleSentenceTranslation: entry.ExampleSentenceTranslation,
		Fingerprint:                fp,
	})
	if err != nil {
		metrics.IncRegistration("error")
		return nil, apperr.Service(op, err)
	}

	link, err := s.store.CreateUserWord(ctx, &database.UserWord{
		UserID:           userID,
		WordID:           word.ID,
		UsageSentence:    usage.Sentence,
		UsageTranslation: usage.Translation,
	})
	if err != nil {
		s.compensate(ctx, word.ID)
		if errors.Is(err, database.ErrDuplicate) {
			metrics.IncRegistration("conflict")
			return nil, apperr.Conflict(op, "word is already registered")
		}
		metrics.IncRegistration("error")
		return nil, apperr.Service(op, err)
	}

	outcome := "linked"
	if created {
		outcome = "created"
	}
	metrics.IncRegistration(outcome)
	s.log.Debug("word registered", "user_id", userID, "word_id", word.ID, "created", created, "popularity", word.Popularity)
	return link, nil
}

// compensate undoes an upsert increment whose link was never written.
func (s *Service) compensate(ctx context.Context, wordID string) {
	if err := s.store.DecrementWordPopularity(context.WithoutCancel(ctx), wordID); err != nil {
		s.log.Error("popularity compensation failed", "word_id", wordID, "err", err)
	}
}

// DeleteUserWord removes the user's link to wordID and decrements the word's
// popularity. A word whose counter is already zero while a link exists is a
// broken invariant and panics.
func (s *Service) DeleteUserWord(ctx context.Context, wordID, userID string) error {
	const op = "words.DeleteUserWord"

	link, err := s.store.GetUserWord(ctx, userID, wordID)
	if err != nil {
		metrics.IncRemoval("error")
		return apperr.Service(op, err)
	}
	if link == nil {
		metrics.IncRemoval("bad_request")
		return apperr.BadRequest(op, "word is not registered")
	}

	word, err := s.store.GetWordByID(ctx, wordID)
	if err != nil {
		metrics.IncRemoval("error")
		return apperr.Service(op, err)
	}
	if word == nil {
		metrics.IncRemoval("error")
		return apperr.Service(op, fmt.Errorf("word %s referenced by link %s: %w", wordID, link.ID, database.ErrNotFound))
	}
	if word.Popularity <= 0 {
		panic(fmt.Sprintf("words: word %s has popularity %d while link %s exists", word.ID, word.Popularity, link.ID))
	}

	err = s.store.RemoveUserWord(ctx, link)
	switch {
	case errors.Is(err, database.ErrNotFound):
		metrics.IncRemoval("bad_request")
		return apperr.BadRequest(op, "word is not registered")
	case errors.Is(err, database.ErrPopularityUnderflow):
		panic(fmt.Sprintf("words: popularity underflow removing link %s of word %s", link.ID, word.ID))
	case err != nil:
		metrics.IncRemoval("error")
		return apperr.Service(op, err)
	}

	metrics.IncRemoval("ok")
	s.log.Debug("word removed", "user_id", userID, "word_id", wordID)
	return nil
}

func toUserEntry(link database.UserWord, w database.Word) UserEntry {
	ue := UserEntry{
		UserWordID: link.ID,
		WordID:     w.ID,
		Entry: Entry{
			Spelling:                   w.Spelling,
			Meaning:                    w.Meaning,
			ExampleSentence:            w.ExampleSentence,
			ExampleSentenceTranslation: w.ExampleSentenceTranslation,
		},
		Popularity: w.Popularity,
		CreatedAt:  link.CreatedAt,
	}
	if link.UsageSentence != "" || link.UsageTranslation != "" {
		ue.Usage = &Usage{Sentence: link.UsageSentence, Translation: link.UsageTranslation}
	}
	return ue
}

// ListUserWords returns the user's registered words, newest first.
func (s *Service) ListUserWords(ctx context.Context, userID string) ([]UserEntry, error) {
	const op = "words.ListUserWords"

	links, err := s.store.ListUserWords(ctx, userID)
	if err != nil {
		return nil, apperr.Service(op, err)
	}
	if len(links) == 0 {
		return []UserEntry{}, nil
	}

	ids := make([]string, len(links))
	for i, l := range links {
		ids[i] = l.WordID
	}
	found, err := s.store.GetWordsByIDs(ctx, ids)
	if err != nil {
		return nil, apperr.Service(op, err)
	}
	byID := make(map[string]database.Word, len(found))
	for _, w := range found {
		byID[w.ID] = w
	}

	entries := make([]UserEntry, 0, len(links))
	for _, l := range links {
		w, ok := byID[l.WordID]
		if !ok {
			s.log.Warn("dangling user word", "user_word_id", l.ID, "word_id", l.WordID)
			continue
		}
		entries = append(entries, toUserEntry(l, w))
	}
	return entries, nil
}

// GetUserWord returns one registered word by link ID. Links owned by another
// user are reported as not found.
func (s *Service) GetUserWord(ctx context.Context, userWordID, userID string) (*UserEntry, error) {
	const op = "words.GetUserWord"

	link, err := s.store.GetUserWordByID(ctx, userWordID)
	if err != nil {
		return nil, apperr.Service(op, err)
	}
	if link == nil || link.UserID != userID {
		return nil, apperr.NotFound(op, "word not found")
	}
	w, err := s.store.GetWordByID(ctx, link.WordID)
	if err != nil {
		return nil, apperr.Service(op, err)
	}
	if w == nil {
		return nil, apperr.NotFound(op, "word not found")
	}
	ue := toUserEntry(*link, *w)
	return &ue, nil
}

// Suggest collects subsequence candidates for query and returns the best
// limit of them. limit <= 0 selects the default; it is capped at the maximum.
func (s *Service) Suggest(ctx context.Context, query string, limit int) ([]database.Word, error) {
	const op = "words.Suggest"

	q := Canonicalize(query)
	if q == "" {
		return nil, apperr.BadRequest(op, "query is required")
	}
	if tooLong(q, MaxSpellingLen) {
		return nil, apperr.BadRequest(op, fmt.Sprintf("query must be at most %d characters", MaxSpellingLen))
	}
	if limit <= 0 {
		limit = s.opts.DefaultSuggestLimit
	}
	limit = min(limit, s.opts.MaxSuggestLimit)

	start := time.Now()
	candidates, err := CollectCandidates(ctx, s.store, q, s.opts.CandidateCapacity)
	if err != nil {
		return nil, apperr.Service(op, err)
	}
	ranked := Rank(candidates, q, limit)
	metrics.ObserveSuggestion(time.Since(start))
	return ranked, nil
}

// GenerateEntry asks the generator for a draft entry. Results are cached per
// canonical spelling; nothing is persisted.
func (s *Service) GenerateEntry(ctx context.Context, spelling string) (Entry, error) {
	const op = "words.GenerateEntry"

	key := Canonicalize(spelling)
	if key == "" {
		return Entry{}, apperr.BadRequest(op, "spelling is required")
	}
	if tooLong(key, MaxSpellingLen) {
		return Entry{}, apperr.BadRequest(op, fmt.Sprintf("spelling must be at most %d characters", MaxSpellingLen))
	}
	if s.generator == nil {
		metrics.IncGeneration("disabled")
		return Entry{}, apperr.Service(op, ErrGeneratorDisabled)
	}

	if e, ok := s.generated.Get(key); ok {
		metrics.IncCacheHit()
		return e, nil
	}
	metrics.IncCacheMiss()

	start := time.Now()
	e, err := s.generator.Generate(ctx, tidy(spelling))
	metrics.ObserveGenerationDuration(time.Since(start))
	if err != nil {
		metrics.IncGeneration("error")
		s.log.Warn("entry generation failed", "spelling", key, "err", err)
		return Entry{}, apperr.Service(op, err)
	}
	metrics.IncGeneration("ok")
	s.generated.Set(key, e)
	return e, nil
}

// PurgeExpired drops expired generated entries and reports how many went.
func (s *Service) PurgeExpired() int {
	n := s.generated.Purge()
	if n > 0 {
		s.log.Debug("purged generated entries", "count", n)
	}
	return n
}
