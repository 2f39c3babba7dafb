// file: internal/database/pebble_store.go
// version: 2.0.0
// guid: 0c1d2e3f-4a5b-6c7d-8e9f-0a1b2c3d4e5f

package database

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/pebble/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
	ulid "github.com/oklog/ulid/v2"
)

// PebbleStore implements the Store interface using PebbleDB (LSM key-value store)
//
// Key Schema:
// - w:<id>                                  -> Word JSON
// - idx:word:fp:<fingerprint>               -> word_id
// - idx:word:spelling:<spelling_key>\x00<id> -> word_id (ordered candidate scan)
// - u:<id>                                  -> User JSON
// - idx:user:username:<lower>               -> user_id
// - uw:<id>                                 -> UserWord JSON
// - idx:uw:pair:<user_id>:<word_id>         -> user_word_id
// - idx:uw:user:<user_id>:<id>              -> user_word_id (ULID order = creation order)
// - meta:schema_version                     -> DatabaseVersion JSON
//
// Pebble has no multi-key transactions, so every read-modify-write runs under
// mu and commits as a single batch. The store is single-process.
type PebbleStore struct {
	db *pebble.DB
	mu sync.Mutex
}

const (
	pfxWord         = "w:"
	pfxWordFP       = "idx:word:fp:"
	pfxWordSpelling = "idx:word:spelling:"
	pfxUser         = "u:"
	pfxUserName     = "idx:user:username:"
	pfxUserWord     = "uw:"
	pfxUserWordPair = "idx:uw:pair:"
	pfxUserWordUser = "idx:uw:user:"

	keySchemaVersion = "meta:schema_version"
)

// NewPebbleStore creates a new PebbleDB store
func NewPebbleStore(path string) (*PebbleStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open PebbleDB: %w", err)
	}
	return &PebbleStore{db: db}, nil
}

// Close closes the database
func (p *PebbleStore) Close() error {
	return p.db.Close()
}

// DB exposes the underlying handle for diagnostics.
func (p *PebbleStore) DB() *pebble.DB {
	return p.db
}

// Helper functions

var (
	ulidMu      sync.Mutex
	ulidEntropy = ulid.Monotonic(rand.Reader, 0)
)

// newULID returns IDs that sort in creation order, also within one
// millisecond.
func newULID() (string, error) {
	ulidMu.Lock()
	defer ulidMu.Unlock()
	id, err := ulid.New(ulid.Timestamp(time.Now()), ulidEntropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// prefixUpperBound returns the smallest key greater than every key with prefix.
func prefixUpperBound(prefix string) []byte {
	end := []byte(prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

func (p *PebbleStore) getRaw(key string) ([]byte, error) {
	v, closer, err := p.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return slices.Clone(v), nil
}

func (p *PebbleStore) getJSON(key string, out any) (bool, error) {
	v, err := p.getRaw(key)
	if err != nil || v == nil {
		return false, err
	}
	if err := json.Unmarshal(v, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func spellingIndexKey(w *Word) string {
	return pfxWordSpelling + w.SpellingKey + "\x00" + w.ID
}

func userWordPairKey(userID, wordID string) string {
	return pfxUserWordPair + userID + ":" + wordID
}

func userWordUserKey(userID, id string) string {
	return pfxUserWordUser + userID + ":" + id
}

// Users

func (p *PebbleStore) CreateUser(ctx context.Context, user *User) (*User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	lower := strings.ToLower(user.Username)
	existing, err := p.getRaw(pfxUserName + lower)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicate
	}

	created := *user
	if created.ID == "" {
		if created.ID, err = newULID(); err != nil {
			return nil, err
		}
	}
	created.UsernameKey = lower
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}
	data, err := json.Marshal(&created)
	if err != nil {
		return nil, err
	}

	b := p.db.NewBatch()
	defer b.Close()
	if err := b.Set([]byte(pfxUser+created.ID), data, nil); err != nil {
		return nil, err
	}
	if err := b.Set([]byte(pfxUserName+lower), []byte(created.ID), nil); err != nil {
		return nil, err
	}
	if err := b.Commit(pebble.Sync); err != nil {
		return nil, err
	}
	return &created, nil
}

func (p *PebbleStore) GetUserByID(ctx context.Context, id string) (*User, error) {
	var u User
	ok, err := p.getJSON(pfxUser+id, &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

func (p *PebbleStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	id, err := p.getRaw(pfxUserName + strings.ToLower(username))
	if err != nil || id == nil {
		return nil, err
	}
	return p.GetUserByID(ctx, string(id))
}

func (p *PebbleStore) CountUsers(ctx context.Context) (int, error) {
	return p.countPrefix(pfxUser)
}

// Words

func (p *PebbleStore) UpsertWord(ctx context.Context, word *Word) (*Word, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now().UTC()
	existing, err := p.getWordByFingerprint(word.Fingerprint)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		existing.Popularity++
		existing.UpdatedAt = now
		if err := p.putWord(existing, nil); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	created := *word
	if created.ID, err = newULID(); err != nil {
		return nil, false, err
	}
	created.Popularity = 1
	created.CreatedAt = now
	created.UpdatedAt = now

	b := p.db.NewBatch()
	defer b.Close()
	if err := b.Set([]byte(pfxWordFP+created.Fingerprint), []byte(created.ID), nil); err != nil {
		return nil, false, err
	}
	if err := b.Set([]byte(spellingIndexKey(&created)), []byte(created.ID), nil); err != nil {
		return nil, false, err
	}
	if err := p.putWord(&created, b); err != nil {
		return nil, false, err
	}
	return &created, true, nil
}

// putWord writes w. With a nil batch it commits on its own; otherwise it adds
// the write to b and commits b.
func (p *PebbleStore) putWord(w *Word, b *pebble.Batch) error {
	data, err := json.Marshal(w)
	if err != nil {
		return err
	}
	if b == nil {
		return p.db.Set([]byte(pfxWord+w.ID), data, pebble.Sync)
	}
	if err := b.Set([]byte(pfxWord+w.ID), data, nil); err != nil {
		return err
	}
	return b.Commit(pebble.Sync)
}

func (p *PebbleStore) GetWordByID(ctx context.Context, id string) (*Word, error) {
	var w Word
	ok, err := p.getJSON(pfxWord+id, &w)
	if err != nil || !ok {
		return nil, err
	}
	return &w, nil
}

func (p *PebbleStore) getWordByFingerprint(fp string) (*Word, error) {
	id, err := p.getRaw(pfxWordFP + fp)
	if err != nil || id == nil {
		return nil, err
	}
	return p.GetWordByID(context.Background(), string(id))
}

func (p *PebbleStore) GetWordByFingerprint(ctx context.Context, fingerprint string) (*Word, error) {
	return p.getWordByFingerprint(fingerprint)
}

func (p *PebbleStore) GetWordsByIDs(ctx context.Context, ids []string) ([]Word, error) {
	words := make([]Word, 0, len(ids))
	for _, id := range ids {
		w, err := p.GetWordByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if w != nil {
			words = append(words, *w)
		}
	}
	return words, nil
}

// FindWordsBySubsequence scans the spelling index in key order and keeps the
// spellings that contain q.Text as a case-insensitive subsequence.
func (p *PebbleStore) FindWordsBySubsequence(ctx context.Context, q SubsequenceQuery, limit int) ([]Word, error) {
	if limit <= 0 {
		return []Word{}, nil
	}
	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(pfxWordSpelling),
		UpperBound: prefixUpperBound(pfxWordSpelling),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var ids []string
	for iter.First(); iter.Valid() && len(ids) < limit; iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rest := strings.TrimPrefix(string(iter.Key()), pfxWordSpelling)
		spelling, _, ok := strings.Cut(rest, "\x00")
		if !ok {
			continue
		}
		if fuzzy.MatchFold(q.Text, spelling) {
			ids = append(ids, string(iter.Value()))
		}
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return p.GetWordsByIDs(ctx, ids)
}

func (p *PebbleStore) DecrementWordPopularity(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	w, err := p.GetWordByID(ctx, id)
	if err != nil {
		return err
	}
	if w == nil {
		return ErrNotFound
	}
	if w.Popularity <= 0 {
		return ErrPopularityUnderflow
	}
	w.Popularity--
	w.UpdatedAt = time.Now().UTC()
	return p.putWord(w, nil)
}

func (p *PebbleStore) SetWordPopularity(ctx context.Context, id string, popularity int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	w, err := p.GetWordByID(ctx, id)
	if err != nil {
		return err
	}
	if w == nil {
		return ErrNotFound
	}
	w.Popularity = popularity
	w.UpdatedAt = time.Now().UTC()
	return p.putWord(w, nil)
}

func (p *PebbleStore) ListWords(ctx context.Context, limit, offset int) ([]Word, error) {
	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(pfxWord),
		UpperBound: prefixUpperBound(pfxWord),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var words []Word
	skipped := 0
	for iter.First(); iter.Valid(); iter.Next() {
		if skipped < offset {
			skipped++
			continue
		}
		if limit > 0 && len(words) >= limit {
			break
		}
		var w Word
		if err := json.Unmarshal(iter.Value(), &w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, iter.Error()
}

func (p *PebbleStore) CountWords(ctx context.Context) (int, error) {
	return p.countPrefix(pfxWord)
}

func (p *PebbleStore) countPrefix(prefix string) (int, error) {
	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(prefix),
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return 0, err
	}
	defer iter.Close()
	n := 0
	for iter.First(); iter.Valid(); iter.Next() {
		n++
	}
	return n, iter.Error()
}

// User words

func (p *PebbleStore) CreateUserWord(ctx context.Context, uw *UserWord) (*UserWord, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pairKey := userWordPairKey(uw.UserID, uw.WordID)
	existing, err := p.getRaw(pairKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicate
	}

	created := *uw
	if created.ID, err = newULID(); err != nil {
		return nil, err
	}
	created.CreatedAt = time.Now().UTC()
	data, err := json.Marshal(&created)
	if err != nil {
		return nil, err
	}

	b := p.db.NewBatch()
	defer b.Close()
	if err := b.Set([]byte(pfxUserWord+created.ID), data, nil); err != nil {
		return nil, err
	}
	if err := b.Set([]byte(pairKey), []byte(created.ID), nil); err != nil {
		return nil, err
	}
	if err := b.Set([]byte(userWordUserKey(created.UserID, created.ID)), []byte(created.ID), nil); err != nil {
		return nil, err
	}
	if err := b.Commit(pebble.Sync); err != nil {
		return nil, err
	}
	return &created, nil
}

func (p *PebbleStore) GetUserWord(ctx context.Context, userID, wordID string) (*UserWord, error) {
	id, err := p.getRaw(userWordPairKey(userID, wordID))
	if err != nil || id == nil {
		return nil, err
	}
	return p.GetUserWordByID(ctx, string(id))
}

func (p *PebbleStore) GetUserWordByID(ctx context.Context, id string) (*UserWord, error) {
	var uw UserWord
	ok, err := p.getJSON(pfxUserWord+id, &uw)
	if err != nil || !ok {
		return nil, err
	}
	return &uw, nil
}

func (p *PebbleStore) ListUserWords(ctx context.Context, userID string) ([]UserWord, error) {
	prefix := pfxUserWordUser + userID + ":"
	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(prefix),
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var ids []string
	for iter.Last(); iter.Valid(); iter.Prev() {
		ids = append(ids, string(iter.Value()))
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}

	links := make([]UserWord, 0, len(ids))
	for _, id := range ids {
		uw, err := p.GetUserWordByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if uw != nil {
			links = append(links, *uw)
		}
	}
	return links, nil
}

func (p *PebbleStore) CountUserWordsByWord(ctx context.Context) (map[string]int64, error) {
	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(pfxUserWord),
		UpperBound: prefixUpperBound(pfxUserWord),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	counts := make(map[string]int64)
	for iter.First(); iter.Valid(); iter.Next() {
		var uw UserWord
		if err := json.Unmarshal(iter.Value(), &uw); err != nil {
			return nil, err
		}
		counts[uw.WordID]++
	}
	return counts, iter.Error()
}

// RemoveUserWord decrements the word and deletes the link with its indexes in
// one batch.
func (p *PebbleStore) RemoveUserWord(ctx context.Context, uw *UserWord) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	current, err := p.GetUserWordByID(ctx, uw.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrNotFound
	}
	w, err := p.GetWordByID(ctx, current.WordID)
	if err != nil {
		return err
	}
	if w == nil {
		return ErrNotFound
	}
	if w.Popularity <= 0 {
		return ErrPopularityUnderflow
	}
	w.Popularity--
	w.UpdatedAt = time.Now().UTC()

	b := p.db.NewBatch()
	defer b.Close()
	if err := b.Delete([]byte(pfxUserWord+current.ID), nil); err != nil {
		return err
	}
	if err := b.Delete([]byte(userWordPairKey(current.UserID, current.WordID)), nil); err != nil {
		return err
	}
	if err := b.Delete([]byte(userWordUserKey(current.UserID, current.ID)), nil); err != nil {
		return err
	}
	return p.putWord(w, b)
}

// SchemaVersion returns the recorded schema version, 0 for a fresh database.
func (p *PebbleStore) SchemaVersion(ctx context.Context) (int, error) {
	var v DatabaseVersion
	if _, err := p.getJSON(keySchemaVersion, &v); err != nil {
		return 0, err
	}
	return v.Version, nil
}

func (p *PebbleStore) SetSchemaVersion(ctx context.Context, version int) error {
	data, err := json.Marshal(DatabaseVersion{Version: version, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	return p.db.Set([]byte(keySchemaVersion), data, pebble.Sync)
}
