// file: internal/database/store.go
// version: 3.0.0
// guid: 8a9b0c1d-2e3f-4a5b-6c7d-8e9f0a1b2c3d

package database

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Storage sentinels. Callers in the service layer translate these into
// apperr kinds; they never reach the HTTP boundary.
var (
	// ErrDuplicate reports a uniqueness violation (username, fingerprint or
	// user/word pair).
	ErrDuplicate = errors.New("database: duplicate key")
	// ErrPopularityUnderflow reports a decrement that would take a word's
	// popularity below zero.
	ErrPopularityUnderflow = errors.New("database: popularity underflow")
	// ErrNotFound reports a write against a record that no longer exists.
	ErrNotFound = errors.New("database: not found")
)

// Store defines the interface for our database operations.
// PebbleDB is the default backend; SQLite3 and MongoDB are opt-in.
//
// Lookups return (nil, nil) when the record does not exist.
type Store interface {
	// Lifecycle
	Close() error

	// Users
	CreateUser(ctx context.Context, user *User) (*User, error) // ErrDuplicate on username
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error) // case-insensitive
	CountUsers(ctx context.Context) (int, error)

	// Words (shared entries, deduplicated by fingerprint)
	//
	// UpsertWord finds the word by fingerprint and increments its popularity,
	// or inserts it with popularity 1. The flag reports whether it was created.
	// Concurrent callers with the same fingerprint end up on one record.
	UpsertWord(ctx context.Context, word *Word) (*Word, bool, error)
	GetWordByID(ctx context.Context, id string) (*Word, error)
	GetWordByFingerprint(ctx context.Context, fingerprint string) (*Word, error)
	GetWordsByIDs(ctx context.Context, ids []string) ([]Word, error)
	FindWordsBySubsequence(ctx context.Context, q SubsequenceQuery, limit int) ([]Word, error)
	DecrementWordPopularity(ctx context.Context, id string) error // ErrPopularityUnderflow at zero
	SetWordPopularity(ctx context.Context, id string, popularity int64) error
	ListWords(ctx context.Context, limit, offset int) ([]Word, error)
	CountWords(ctx context.Context) (int, error)

	// User words (per-user links)
	CreateUserWord(ctx context.Context, uw *UserWord) (*UserWord, error) // ErrDuplicate on (user, word)
	GetUserWord(ctx context.Context, userID, wordID string) (*UserWord, error)
	GetUserWordByID(ctx context.Context, id string) (*UserWord, error)
	ListUserWords(ctx context.Context, userID string) ([]UserWord, error) // newest first
	CountUserWordsByWord(ctx context.Context) (map[string]int64, error)
	// RemoveUserWord deletes the link and decrements its word's popularity as
	// one unit. Returns ErrNotFound when the link is gone and
	// ErrPopularityUnderflow when the counter is already zero.
	RemoveUserWord(ctx context.Context, uw *UserWord) error
}

// Word is a shared vocabulary entry. Words are never deleted; only the
// popularity counter changes.
type Word struct {
	ID                         string    `json:"id" bson:"_id"`
	Spelling                   string    `json:"spelling" bson:"spelling"`
	SpellingKey                string    `json:"spelling_key" bson:"spelling_key"`
	Meaning                    string    `json:"meaning" bson:"meaning"`
	ExampleSentence            string    `json:"example_sentence" bson:"example_sentence"`
	ExampleSentenceTranslation string    `json:"example_sentence_translation" bson:"example_sentence_translation"`
	Fingerprint                string    `json:"fingerprint" bson:"fingerprint"`
	Popularity                 int64     `json:"popularity" bson:"popularity"`
	CreatedAt                  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt                  time.Time `json:"updated_at" bson:"updated_at"`
}

// UserWord links a user to a shared word, with an optional personal usage
// example.
type UserWord struct {
	ID               string    `json:"id" bson:"_id"`
	UserID           string    `json:"user_id" bson:"user_id"`
	WordID           string    `json:"word_id" bson:"word_id"`
	UsageSentence    string    `json:"usage_sentence,omitempty" bson:"usage_sentence,omitempty"`
	UsageTranslation string    `json:"usage_translation,omitempty" bson:"usage_translation,omitempty"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

// User represents an application user (ULID IDs)
type User struct {
	ID               string    `json:"id" bson:"_id"`
	Username         string    `json:"username" bson:"username"`
	UsernameKey      string    `json:"username_key" bson:"username_key"`
	PasswordHashAlgo string    `json:"password_hash_algo" bson:"password_hash_algo"`
	PasswordHash     string    `json:"password_hash" bson:"password_hash"`
	Disabled         bool      `json:"disabled" bson:"disabled"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

// SubsequenceQuery carries one candidate query in the forms each backend
// understands. Text is the canonical lowercased query, Regex the
// wildcard-joined regular expression and Like the SQL LIKE pattern (escape
// character '\').
type SubsequenceQuery struct {
	Text  string
	Regex string
	Like  string
}

// InitializeStore opens the store selected by dbType. path is the on-disk
// location for pebble and sqlite; mongo reads its connection settings from
// opts.
func InitializeStore(ctx context.Context, dbType, path string, opts MongoOptions) (Store, error) {
	switch dbType {
	case "sqlite", "sqlite3":
		store, err := NewSQLiteStore(path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite store: %w", err)
		}
		return store, nil
	case "mongo", "mongodb":
		store, err := NewMongoStore(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize MongoDB store: %w", err)
		}
		return store, nil
	case "pebble", "":
		// PebbleDB is the default
		store, err := NewPebbleStore(path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize PebbleDB store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s (supported: pebble, sqlite, mongo)", dbType)
	}
}

// CloseStore closes store if it is non-nil.
func CloseStore(store Store) error {
	if store == nil {
		return nil
	}
	return store.Close()
}
