// file: internal/database/store_test.go
// version: 1.0.0
// guid: 9e3b5d7f-1a2c-4b6e-8d0f-3c5e7a9b1d24

package database

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeFactories returns every backend available to this test run. MongoDB
// joins only when WORDBOOK_TEST_MONGO_URI points at a server.
func storeFactories(t *testing.T) map[string]func(t *testing.T) Store {
	t.Helper()
	factories := map[string]func(t *testing.T) Store{
		"pebble": func(t *testing.T) Store {
			store, err := NewPebbleStore(filepath.Join(t.TempDir(), "pebble"))
			require.NoError(t, err)
			t.Cleanup(func() { store.Close() })
			return store
		},
		"sqlite": func(t *testing.T) Store {
			store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "wordbook.db"))
			require.NoError(t, err)
			t.Cleanup(func() { store.Close() })
			return store
		},
	}
	if uri := os.Getenv("WORDBOOK_TEST_MONGO_URI"); uri != "" {
		factories["mongo"] = func(t *testing.T) Store {
			ctx := context.Background()
			dbName := "wordbook_test_" + mustULID(t)
			store, err := NewMongoStore(ctx, MongoOptions{URI: uri, Database: dbName})
			require.NoError(t, err)
			t.Cleanup(func() {
				_ = store.client.Database(dbName).Drop(context.Background())
				store.Close()
			})
			return store
		}
	}
	return factories
}

func mustULID(t *testing.T) string {
	t.Helper()
	id, err := newULID()
	require.NoError(t, err)
	return id
}

func forEachStore(t *testing.T, fn func(t *testing.T, store Store)) {
	for name, open := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			fn(t, open(t))
		})
	}
}

func testWord(spelling, fp string) *Word {
	return &Word{
		Spelling:    spelling,
		SpellingKey: spelling,
		Meaning:     "meaning of " + spelling,
		Fingerprint: fp,
	}
}

func subsequence(text, regex, like string) SubsequenceQuery {
	return SubsequenceQuery{Text: text, Regex: regex, Like: like}
}

func TestStore_UpsertWordCreatesThenIncrements(t *testing.T) {
	forEachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		first, created, err := store.UpsertWord(ctx, testWord("apple", "fp-apple"))
		require.NoError(t, err)
		assert.True(t, created)
		assert.EqualValues(t, 1, first.Popularity)
		assert.NotEmpty(t, first.ID)

		second, created, err := store.UpsertWord(ctx, testWord("apple", "fp-apple"))
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.EqualValues(t, 2, second.Popularity)

		byFP, err := store.GetWordByFingerprint(ctx, "fp-apple")
		require.NoError(t, err)
		require.NotNil(t, byFP)
		assert.EqualValues(t, 2, byFP.Popularity)
		assert.Equal(t, "meaning of apple", byFP.Meaning)

		n, err := store.CountWords(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestStore_ConcurrentUpsertSameFingerprint(t *testing.T) {
	forEachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()
		const workers = 8

		var wg sync.WaitGroup
		ids := make([]string, workers)
		errs := make([]error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w, _, err := store.UpsertWord(ctx, testWord("race", "fp-race"))
				errs[i] = err
				if w != nil {
					ids[i] = w.ID
				}
			}(i)
		}
		wg.Wait()

		for _, err := range errs {
			require.NoError(t, err)
		}
		for _, id := range ids {
			assert.Equal(t, ids[0], id)
		}
		w, err := store.GetWordByFingerprint(ctx, "fp-race")
		require.NoError(t, err)
		assert.EqualValues(t, workers, w.Popularity)
	})
}

func TestStore_MissingRecordsReturnNil(t *testing.T) {
	forEachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		w, err := store.GetWordByID(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, w)

		w, err = store.GetWordByFingerprint(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, w)

		uw, err := store.GetUserWord(ctx, "u", "w")
		require.NoError(t, err)
		assert.Nil(t, uw)

		u, err := store.GetUserByUsername(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, u)
	})
}

func TestStore_DecrementGuardsZero(t *testing.T) {
	forEachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()
		w, _, err := store.UpsertWord(ctx, testWord("zero", "fp-zero"))
		require.NoError(t, err)

		require.NoError(t, store.DecrementWordPopularity(ctx, w.ID))
		assert.ErrorIs(t, store.DecrementWordPopularity(ctx, w.ID), ErrPopularityUnderflow)
		assert.ErrorIs(t, store.DecrementWordPopularity(ctx, "missing"), ErrNotFound)

		got, err := store.GetWordByID(ctx, w.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 0, got.Popularity)
	})
}

func TestStore_UserWordLifecycle(t *testing.T) {
	forEachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()
		w, _, err := store.UpsertWord(ctx, testWord("run", "fp-run"))
		require.NoError(t, err)

		link, err := store.CreateUserWord(ctx, &UserWord{UserID: "alice", WordID: w.ID, UsageSentence: "I run."})
		require.NoError(t, err)
		assert.NotEmpty(t, link.ID)

		_, err = store.CreateUserWord(ctx, &UserWord{UserID: "alice", WordID: w.ID})
		assert.ErrorIs(t, err, ErrDuplicate)

		got, err := store.GetUserWord(ctx, "alice", w.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, link.ID, got.ID)
		assert.Equal(t, "I run.", got.UsageSentence)

		byID, err := store.GetUserWordByID(ctx, link.ID)
		require.NoError(t, err)
		assert.Equal(t, w.ID, byID.WordID)

		require.NoError(t, store.RemoveUserWord(ctx, link))

		gone, err := store.GetUserWord(ctx, "alice", w.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		after, err := store.GetWordByID(ctx, w.ID)
		require.NoError(t, err)
		require.NotNil(t, after, "words are never deleted")
		assert.EqualValues(t, 0, after.Popularity)

		assert.ErrorIs(t, store.RemoveUserWord(ctx, link), ErrNotFound)

		// The pair can be linked again after removal.
		_, err = store.CreateUserWord(ctx, &UserWord{UserID: "alice", WordID: w.ID})
		require.NoError(t, err)
	})
}

func TestStore_RemoveUserWordUnderflowLeavesLink(t *testing.T) {
	forEachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()
		w, _, err := store.UpsertWord(ctx, testWord("drift", "fp-drift"))
		require.NoError(t, err)
		link, err := store.CreateUserWord(ctx, &UserWord{UserID: "bob", WordID: w.ID})
		require.NoError(t, err)
		require.NoError(t, store.SetWordPopularity(ctx, w.ID, 0))

		assert.ErrorIs(t, store.RemoveUserWord(ctx, link), ErrPopularityUnderflow)

		still, err := store.GetUserWordByID(ctx, link.ID)
		require.NoError(t, err)
		assert.NotNil(t, still)
		got, err := store.GetWordByID(ctx, w.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 0, got.Popularity)
	})
}

func TestStore_ListUserWordsNewestFirst(t *testing.T) {
	forEachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()
		var want []string
		for _, s := range []string{"one", "two", "three"} {
			w, _, err := store.UpsertWord(ctx, testWord(s, "fp-"+s))
			require.NoError(t, err)
			link, err := store.CreateUserWord(ctx, &UserWord{UserID: "carol", WordID: w.ID})
			require.NoError(t, err)
			want = append([]string{link.ID}, want...)
		}
		other, _, err := store.UpsertWord(ctx, testWord("other", "fp-other"))
		require.NoError(t, err)
		_, err = store.CreateUserWord(ctx, &UserWord{UserID: "dave", WordID: other.ID})
		require.NoError(t, err)

		links, err := store.ListUserWords(ctx, "carol")
		require.NoError(t, err)
		got := make([]string, len(links))
		for i, l := range links {
			got[i] = l.ID
		}
		assert.Equal(t, want, got)

		counts, err := store.CountUserWordsByWord(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, counts[other.ID])
		assert.Len(t, counts, 4)
	})
}

func TestStore_FindWordsBySubsequence(t *testing.T) {
	forEachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()
		for _, s := range []string{"word", "weird", "sword", "apple", "drew"} {
			_, _, err := store.UpsertWord(ctx, testWord(s, "fp-"+s))
			require.NoError(t, err)
		}

		found, err := store.FindWordsBySubsequence(ctx, subsequence("wrd", "w.*r.*d", "%w%r%d%"), 50)
		require.NoError(t, err)
		var spellings []string
		for _, w := range found {
			spellings = append(spellings, w.Spelling)
		}
		sort.Strings(spellings)
		assert.Equal(t, []string{"sword", "weird", "word"}, spellings)

		capped, err := store.FindWordsBySubsequence(ctx, subsequence("wrd", "w.*r.*d", "%w%r%d%"), 2)
		require.NoError(t, err)
		assert.Len(t, capped, 2)

		none, err := store.FindWordsBySubsequence(ctx, subsequence("wrd", "w.*r.*d", "%w%r%d%"), 0)
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestStore_Users(t *testing.T) {
	forEachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()
		u, err := store.CreateUser(ctx, &User{Username: "Alice", PasswordHashAlgo: "bcrypt", PasswordHash: "x"})
		require.NoError(t, err)
		assert.NotEmpty(t, u.ID)

		_, err = store.CreateUser(ctx, &User{Username: "alice", PasswordHashAlgo: "bcrypt", PasswordHash: "y"})
		assert.ErrorIs(t, err, ErrDuplicate)

		got, err := store.GetUserByUsername(ctx, "ALICE")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, u.ID, got.ID)
		assert.Equal(t, "Alice", got.Username)
		assert.Equal(t, "x", got.PasswordHash)

		byID, err := store.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", byID.Username)
		assert.Equal(t, "alice", byID.UsernameKey)
		assert.Equal(t, "x", byID.PasswordHash)
		assert.Equal(t, "bcrypt", byID.PasswordHashAlgo)

		n, err := store.CountUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestStore_ListWordsAndSetPopularity(t *testing.T) {
	forEachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()
		var ids []string
		for _, s := range []string{"a", "b", "c"} {
			w, _, err := store.UpsertWord(ctx, testWord(s, "fp-"+s))
			require.NoError(t, err)
			ids = append(ids, w.ID)
		}

		page, err := store.ListWords(ctx, 2, 1)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, ids[1], page[0].ID)

		require.NoError(t, store.SetWordPopularity(ctx, ids[0], 7))
		got, err := store.GetWordsByIDs(ctx, []string{ids[0]})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.EqualValues(t, 7, got[0].Popularity)

		assert.ErrorIs(t, store.SetWordPopularity(ctx, "missing", 1), ErrNotFound)
	})
}

func TestInitializeStore(t *testing.T) {
	ctx := context.Background()

	store, err := InitializeStore(ctx, "sqlite", filepath.Join(t.TempDir(), "w.db"), MongoOptions{})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, store)
	require.NoError(t, CloseStore(store))

	store, err = InitializeStore(ctx, "", filepath.Join(t.TempDir(), "p"), MongoOptions{})
	require.NoError(t, err)
	assert.IsType(t, &PebbleStore{}, store)
	require.NoError(t, CloseStore(store))

	_, err = InitializeStore(ctx, "postgres", "", MongoOptions{})
	assert.ErrorContains(t, err, "unsupported database type")

	_, err = InitializeStore(ctx, "mongo", "", MongoOptions{})
	assert.ErrorContains(t, err, "mongo uri is required")

	assert.NoError(t, CloseStore(nil))
}

func TestPrefixUpperBound(t *testing.T) {
	assert.Equal(t, []byte("w;"), prefixUpperBound("w:"))
	assert.Equal(t, []byte{0x01}, prefixUpperBound("\x00\xff"))
	assert.Nil(t, prefixUpperBound("\xff"))
}
