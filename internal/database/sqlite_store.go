// file: internal/database/sqlite_store.go
// version: 2.0.0
// guid: 8b9c0d1e-2f3a-4b5c-6d7e-8f9a0b1c2d3e

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

const wordSelectColumns = `
	id, spelling, spelling_key, meaning, example_sentence,
	example_sentence_translation, fingerprint, popularity, created_at, updated_at
`

const userWordSelectColumns = `
	id, user_id, word_id, usage_sentence, usage_translation, created_at
`

func scanWord(scanner rowScanner, w *Word) error {
	return scanner.Scan(
		&w.ID, &w.Spelling, &w.SpellingKey, &w.Meaning, &w.ExampleSentence,
		&w.ExampleSentenceTranslation, &w.Fingerprint, &w.Popularity,
		&w.CreatedAt, &w.UpdatedAt,
	)
}

func scanUserWord(scanner rowScanner, uw *UserWord) error {
	return scanner.Scan(
		&uw.ID, &uw.UserID, &uw.WordID, &uw.UsageSentence,
		&uw.UsageTranslation, &uw.CreatedAt,
	)
}

// SQLiteStore implements the Store interface using SQLite3
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	store := &SQLiteStore{db: db}

	// Create tables
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return store, nil
}

// createTables creates all required tables
func (s *SQLiteStore) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		username_key TEXT NOT NULL UNIQUE,
		password_hash_algo TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		disabled BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS words (
		id TEXT PRIMARY KEY,
		spelling TEXT NOT NULL,
		spelling_key TEXT NOT NULL,
		meaning TEXT NOT NULL DEFAULT '',
		example_sentence TEXT NOT NULL DEFAULT '',
		example_sentence_translation TEXT NOT NULL DEFAULT '',
		fingerprint TEXT NOT NULL,
		popularity INTEGER NOT NULL DEFAULT 0 CHECK (popularity >= 0),
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_words_fingerprint ON words(fingerprint);
	CREATE INDEX IF NOT EXISTS idx_words_spelling_key ON words(spelling_key);

	CREATE TABLE IF NOT EXISTS user_words (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		word_id TEXT NOT NULL,
		usage_sentence TEXT NOT NULL DEFAULT '',
		usage_translation TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		FOREIGN KEY (word_id) REFERENCES words(id)
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_user_words_pair ON user_words(user_id, word_id);
	CREATE INDEX IF NOT EXISTS idx_user_words_user ON user_words(user_id, created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func isUniqueConstraintErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Users

func (s *SQLiteStore) CreateUser(ctx context.Context, user *User) (*User, error) {
	created := *user
	var err error
	if created.ID == "" {
		if created.ID, err = newULID(); err != nil {
			return nil, err
		}
	}
	created.UsernameKey = strings.ToLower(created.Username)
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, username_key, password_hash_algo, password_hash, disabled, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		created.ID, created.Username, created.UsernameKey, created.PasswordHashAlgo,
		created.PasswordHash, created.Disabled, created.CreatedAt)
	if isUniqueConstraintErr(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &created, nil
}

func (s *SQLiteStore) getUser(ctx context.Context, where string, arg any) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, username_key, password_hash_algo, password_hash, disabled, created_at
		FROM users WHERE `+where, arg).Scan(
		&u.ID, &u.Username, &u.UsernameKey, &u.PasswordHashAlgo, &u.PasswordHash, &u.Disabled, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*User, error) {
	return s.getUser(ctx, "id = ?", id)
}

func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	return s.getUser(ctx, "username_key = ?", strings.ToLower(username))
}

func (s *SQLiteStore) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n)
	return n, err
}

// Words

// UpsertWord relies on the unique fingerprint index: the insert either
// creates the row with popularity 1 or bumps the existing row, atomically.
func (s *SQLiteStore) UpsertWord(ctx context.Context, word *Word) (*Word, bool, error) {
	id, err := newULID()
	if err != nil {
		return nil, false, err
	}
	now := time.Now().UTC()

	var gotID string
	var popularity int64
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO words (id, spelling, spelling_key, meaning, example_sentence,
			example_sentence_translation, fingerprint, popularity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1, ?, ?)
		ON CONFLICT(fingerprint) DO UPDATE SET
			popularity = popularity + 1,
			updated_at = excluded.updated_at
		RETURNING id, popularity`,
		id, word.Spelling, word.SpellingKey, word.Meaning, word.ExampleSentence,
		word.ExampleSentenceTranslation, word.Fingerprint, now, now).Scan(&gotID, &popularity)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert word: %w", err)
	}

	w, err := s.GetWordByID(ctx, gotID)
	if err != nil {
		return nil, false, err
	}
	if w == nil {
		return nil, false, ErrNotFound
	}
	// A concurrent upsert may have landed between the two statements; report
	// the value this call produced.
	w.Popularity = popularity
	return w, gotID == id, nil
}

func (s *SQLiteStore) getWord(ctx context.Context, where string, arg any) (*Word, error) {
	var w Word
	err := scanWord(s.db.QueryRowContext(ctx, "SELECT "+wordSelectColumns+" FROM words WHERE "+where, arg), &w)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *SQLiteStore) GetWordByID(ctx context.Context, id string) (*Word, error) {
	return s.getWord(ctx, "id = ?", id)
}

func (s *SQLiteStore) GetWordByFingerprint(ctx context.Context, fingerprint string) (*Word, error) {
	return s.getWord(ctx, "fingerprint = ?", fingerprint)
}

func (s *SQLiteStore) GetWordsByIDs(ctx context.Context, ids []string) ([]Word, error) {
	if len(ids) == 0 {
		return []Word{}, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return s.queryWords(ctx, "SELECT "+wordSelectColumns+" FROM words WHERE id IN ("+placeholders+")", args...)
}

func (s *SQLiteStore) queryWords(ctx context.Context, query string, args ...any) ([]Word, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	words := []Word{}
	for rows.Next() {
		var w Word
		if err := scanWord(rows, &w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

func (s *SQLiteStore) FindWordsBySubsequence(ctx context.Context, q SubsequenceQuery, limit int) ([]Word, error) {
	if limit <= 0 {
		return []Word{}, nil
	}
	return s.queryWords(ctx,
		"SELECT "+wordSelectColumns+` FROM words WHERE spelling_key LIKE ? ESCAPE '\' LIMIT ?`,
		q.Like, limit)
}

func (s *SQLiteStore) DecrementWordPopularity(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE words SET popularity = popularity - 1, updated_at = ? WHERE id = ? AND popularity > 0",
		time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return s.checkDecrement(ctx, s.db, res, id)
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// checkDecrement tells a missing word apart from one already at zero when a
// guarded decrement touched no rows.
func (s *SQLiteStore) checkDecrement(ctx context.Context, q queryer, res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}
	var exists int
	err = q.QueryRowContext(ctx, "SELECT 1 FROM words WHERE id = ?", id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return ErrPopularityUnderflow
}

func (s *SQLiteStore) SetWordPopularity(ctx context.Context, id string, popularity int64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE words SET popularity = ?, updated_at = ? WHERE id = ?",
		popularity, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) ListWords(ctx context.Context, limit, offset int) ([]Word, error) {
	if limit <= 0 {
		limit = -1
	}
	return s.queryWords(ctx, "SELECT "+wordSelectColumns+" FROM words ORDER BY id LIMIT ? OFFSET ?", limit, offset)
}

func (s *SQLiteStore) CountWords(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM words").Scan(&n)
	return n, err
}

// User words

func (s *SQLiteStore) CreateUserWord(ctx context.Context, uw *UserWord) (*UserWord, error) {
	created := *uw
	var err error
	if created.ID, err = newULID(); err != nil {
		return nil, err
	}
	created.CreatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO user_words (id, user_id, word_id, usage_sentence, usage_translation, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		created.ID, created.UserID, created.WordID, created.UsageSentence,
		created.UsageTranslation, created.CreatedAt)
	if isUniqueConstraintErr(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user word: %w", err)
	}
	return &created, nil
}

func (s *SQLiteStore) getUserWord(ctx context.Context, where string, args ...any) (*UserWord, error) {
	var uw UserWord
	err := scanUserWord(s.db.QueryRowContext(ctx, "SELECT "+userWordSelectColumns+" FROM user_words WHERE "+where, args...), &uw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &uw, nil
}

func (s *SQLiteStore) GetUserWord(ctx context.Context, userID, wordID string) (*UserWord, error) {
	return s.getUserWord(ctx, "user_id = ? AND word_id = ?", userID, wordID)
}

func (s *SQLiteStore) GetUserWordByID(ctx context.Context, id string) (*UserWord, error) {
	return s.getUserWord(ctx, "id = ?", id)
}

func (s *SQLiteStore) ListUserWords(ctx context.Context, userID string) ([]UserWord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+userWordSelectColumns+" FROM user_words WHERE user_id = ? ORDER BY created_at DESC, id DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []UserWord{}
	for rows.Next() {
		var uw UserWord
		if err := scanUserWord(rows, &uw); err != nil {
			return nil, err
		}
		links = append(links, uw)
	}
	return links, rows.Err()
}

func (s *SQLiteStore) CountUserWordsByWord(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT word_id, COUNT(*) FROM user_words GROUP BY word_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var id string
		var n int64
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		counts[id] = n
	}
	return counts, rows.Err()
}

// RemoveUserWord runs the guarded decrement and the link delete in one
// transaction.
func (s *SQLiteStore) RemoveUserWord(ctx context.Context, uw *UserWord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "DELETE FROM user_words WHERE id = ?", uw.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}

	res, err = tx.ExecContext(ctx,
		"UPDATE words SET popularity = popularity - 1, updated_at = ? WHERE id = ? AND popularity > 0",
		time.Now().UTC(), uw.WordID)
	if err != nil {
		return err
	}
	if err := s.checkDecrement(ctx, tx, res, uw.WordID); err != nil {
		return err
	}
	return tx.Commit()
}

// SchemaVersion reads PRAGMA user_version.
func (s *SQLiteStore) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v)
	return v, err
}

func (s *SQLiteStore) SetSchemaVersion(ctx context.Context, version int) error {
	// PRAGMA does not accept bound parameters.
	_, err := s.db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", version))
	return err
}
