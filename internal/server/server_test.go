// file: internal/server/server_test.go
// version: 2.0.0
// guid: 3a5c7e9b-1d2f-4b4c-8e6a-0c2e4a6c8e0f

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jdfalk/wordbook/internal/auth"
	"github.com/jdfalk/wordbook/internal/database"
	"github.com/jdfalk/wordbook/internal/database/mocks"
	servermiddleware "github.com/jdfalk/wordbook/internal/server/middleware"
	"github.com/jdfalk/wordbook/internal/words"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	entry words.Entry
	err   error
	calls int
}

func (g *stubGenerator) Generate(_ context.Context, spelling string) (words.Entry, error) {
	g.calls++
	if g.err != nil {
		return words.Entry{}, g.err
	}
	e := g.entry
	e.Spelling = spelling
	return e, nil
}

type testServer struct {
	*Server
	tokens *auth.TokenIssuer
}

func newTestServer(t *testing.T, store database.Store, gen words.Generator) *testServer {
	t.Helper()
	t.Setenv("GIN_MODE", "test")

	tokens, err := auth.NewTokenIssuer("test-signing-key", time.Hour)
	require.NoError(t, err)
	srv := NewServer(Deps{
		Store: store,
		Words: words.NewService(store, gen, words.Options{}),
		Auth:  auth.NewService(store, tokens),
	}, ServerConfig{
		RateLimitPerMinute: 100000,
		RateLimitBurst:     100000,
		MaxBodyBytes:       4 << 10,
	})
	return &testServer{Server: srv, tokens: tokens}
}

func newSQLiteTestServer(t *testing.T, gen words.Generator) *testServer {
	t.Helper()
	store, err := database.NewSQLiteStore(filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return newTestServer(t, store, gen)
}

func newPebbleTestServer(t *testing.T, gen words.Generator) *testServer {
	t.Helper()
	store, err := database.NewPebbleStore(filepath.Join(t.TempDir(), "server.pebble"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return newTestServer(t, store, gen)
}

type call struct {
	method, path string
	body         any
	token        string
	cookie       *http.Cookie
	header       map[string]string
}

func (ts *testServer) do(t *testing.T, c call) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	switch b := c.body.(type) {
	case nil:
		body = bytes.NewReader(nil)
	case string:
		body = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}
	req := httptest.NewRequest(c.method, c.path, body)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	for k, v := range c.header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	ts.Router().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (ts *testServer) signUpAndIn(t *testing.T, username string) (string, *http.Cookie) {
	t.Helper()
	w := ts.do(t, call{method: http.MethodPost, path: "/api/v1/auth/signup", body: map[string]string{"username": username, "password": "password123"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = ts.do(t, call{method: http.MethodPost, path: "/api/v1/auth/signin", body: map[string]string{"username": username, "password": "password123"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	tok := decode[TokenResponse](t, w)

	var cookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == servermiddleware.AccessTokenCookieName {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)
	return tok.AccessToken, cookie
}

func TestAuthFlow(t *testing.T) {
	backends := map[string]func(*testing.T, words.Generator) *testServer{
		"pebble": newPebbleTestServer,
		"sqlite": newSQLiteTestServer,
	}
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			ts := open(t, nil)

			w := ts.do(t, call{method: http.MethodPost, path: "/api/v1/auth/signup", body: map[string]string{"username": "alice", "password": "password123"}})
			require.Equal(t, http.StatusCreated, w.Code)
			created := decode[CreateResponse](t, w)
			assert.NotEmpty(t, created.ID)

			w = ts.do(t, call{method: http.MethodPost, path: "/api/v1/auth/signup", body: map[string]string{"username": "ALICE", "password": "password123"}})
			assert.Equal(t, http.StatusConflict, w.Code)
			assert.Equal(t, "CONFLICT", decode[ErrorResponse](t, w).Code)

			w = ts.do(t, call{method: http.MethodPost, path: "/api/v1/auth/signin", body: map[string]string{"username": "alice", "password": "password123"}})
			require.Equal(t, http.StatusOK, w.Code)
			tok := decode[TokenResponse](t, w)
			assert.Equal(t, "bearer", tok.TokenType)

			cookies := w.Result().Cookies()
			require.Len(t, cookies, 1)
			ck := cookies[0]
			assert.Equal(t, "access_token", ck.Name)
			assert.Equal(t, "Bearer "+tok.AccessToken, ck.Value)
			assert.True(t, ck.HttpOnly)
			assert.Equal(t, http.SameSiteNoneMode, ck.SameSite)
			assert.False(t, ck.Secure, "plain HTTP request")

			// Cookie transport.
			w = ts.do(t, call{method: http.MethodGet, path: "/api/v1/auth/me", cookie: &http.Cookie{Name: ck.Name, Value: ck.Value}})
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, created.ID, decode[MeResponse](t, w).UserID)

			// Header transport.
			w = ts.do(t, call{method: http.MethodGet, path: "/api/v1/auth/me", token: tok.AccessToken})
			assert.Equal(t, http.StatusOK, w.Code)

			w = ts.do(t, call{method: http.MethodPost, path: "/api/v1/auth/signout"})
			require.Equal(t, http.StatusOK, w.Code)
			cleared := w.Result().Cookies()
			require.Len(t, cleared, 1)
			assert.True(t, cleared[0].MaxAge < 0)
		})
	}
}

func TestSignIn_SecureCookieBehindTLSProxy(t *testing.T) {
	ts := newSQLiteTestServer(t, nil)
	w := ts.do(t, call{method: http.MethodPost, path: "/api/v1/auth/signup", body: map[string]string{"username": "alice", "password": "password123"}})
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(t, call{
		method: http.MethodPost, path: "/api/v1/auth/signin",
		body:   map[string]string{"username": "alice", "password": "password123"},
		header: map[string]string{"X-Forwarded-Proto": "https"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, w.Result().Cookies()[0].Secure)
}

func TestSignIn_Failures(t *testing.T) {
	ts := newSQLiteTestServer(t, nil)
	ts.signUpAndIn(t, "alice")

	unknown := ts.do(t, call{method: http.MethodPost, path: "/api/v1/auth/signin", body: map[string]string{"username": "bob", "password": "password123"}})
	wrong := ts.do(t, call{method: http.MethodPost, path: "/api/v1/auth/signin", body: map[string]string{"username": "alice", "password": "password999"}})
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, decode[ErrorResponse](t, unknown).Error, decode[ErrorResponse](t, wrong).Error)
	assert.Empty(t, unknown.Result().Cookies())

	missing := ts.do(t, call{method: http.MethodPost, path: "/api/v1/auth/signin", body: map[string]string{"username": "alice"}})
	assert.Equal(t, http.StatusBadRequest, missing.Code)

	malformed := ts.do(t, call{method: http.MethodPost, path: "/api/v1/auth/signin", body: "{not json"})
	assert.Equal(t, http.StatusBadRequest, malformed.Code)
}

func TestWordLifecycle(t *testing.T) {
	ts := newSQLiteTestServer(t, nil)
	aliceTok, _ := ts.signUpAndIn(t, "alice")
	bobTok, _ := ts.signUpAndIn(t, "bob")

	entry := map[string]any{
		"spelling":                     "Run",
		"meaning":                      "走る",
		"example_sentence":             "I run every day.",
		"example_sentence_translation": "私は毎日走る。",
		"usage_example":                map[string]string{"sentence": "Run, Forest!", "translation": "走れ"},
	}

	w := ts.do(t, call{method: http.MethodPost, path: "/api/v1/words", body: entry, token: aliceTok})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	reg := decode[RegisterResponse](t, w)
	require.NotEmpty(t, reg.UserWordID)
	require.NotEmpty(t, reg.WordID)

	// Same user again: conflict, popularity untouched.
	w = ts.do(t, call{method: http.MethodPost, path: "/api/v1/words", body: entry, token: aliceTok})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Another user shares the word.
	w = ts.do(t, call{method: http.MethodPost, path: "/api/v1/words", body: entry, token: bobTok})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, reg.WordID, decode[RegisterResponse](t, w).WordID)

	w = ts.do(t, call{method: http.MethodGet, path: "/api/v1/words", token: aliceTok})
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Items []words.UserEntry `json:"items"`
		Count int               `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "Run", list.Items[0].Spelling)
	assert.Equal(t, int64(2), list.Items[0].Popularity)
	require.NotNil(t, list.Items[0].Usage)
	assert.Equal(t, "Run, Forest!", list.Items[0].Usage.Sentence)

	w = ts.do(t, call{method: http.MethodGet, path: "/api/v1/words/" + reg.UserWordID, token: aliceTok})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, reg.WordID, decode[words.UserEntry](t, w).WordID)

	// Bob cannot read Alice's link.
	w = ts.do(t, call{method: http.MethodGet, path: "/api/v1/words/" + reg.UserWordID, token: bobTok})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, call{method: http.MethodPost, path: "/api/v1/words/suggest", body: map[string]any{"input_str": "rn"}, token: bobTok})
	require.Equal(t, http.StatusOK, w.Code)
	var sugg struct {
		Items []SuggestedWord `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sugg))
	require.Len(t, sugg.Items, 1)
	assert.Equal(t, "Run", sugg.Items[0].Spelling)
	assert.InDelta(t, 2.0/3.0, sugg.Items[0].Score, 1e-9)

	w = ts.do(t, call{method: http.MethodDelete, path: "/api/v1/words/" + reg.WordID, token: aliceTok})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	// Removing again is a client error.
	w = ts.do(t, call{method: http.MethodDelete, path: "/api/v1/words/" + reg.WordID, token: aliceTok})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, call{method: http.MethodGet, path: "/api/v1/words", token: bobTok})
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, int64(1), list.Items[0].Popularity)
}

func TestWordRoutes_RequireAuth(t *testing.T) {
	ts := newSQLiteTestServer(t, nil)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/words"},
		{http.MethodPost, "/api/v1/words"},
		{http.MethodPost, "/api/v1/words/suggest"},
		{http.MethodPost, "/api/v1/words/generate"},
		{http.MethodGet, "/api/v1/words/" + ulid.Make().String()},
		{http.MethodDelete, "/api/v1/words/" + ulid.Make().String()},
		{http.MethodGet, "/api/v1/auth/me"},
	}
	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			w := ts.do(t, call{method: r.method, path: r.path, body: map[string]string{}})
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "UNAUTHORIZED", decode[ErrorResponse](t, w).Code)
		})
	}

	w := ts.do(t, call{method: http.MethodGet, path: "/api/v1/words", token: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid token", decode[ErrorResponse](t, w).Error)
}

func TestExpiredToken(t *testing.T) {
	store := mocks.NewMockStore(t)
	ts := newTestServer(t, store, nil)

	expired, err := auth.NewTokenIssuer("test-signing-key", time.Nanosecond)
	require.NoError(t, err)
	token, _, err := expired.Issue("user-1")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	w := ts.do(t, call{method: http.MethodGet, path: "/api/v1/words", token: token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "token expired", decode[ErrorResponse](t, w).Error)
}

func (ts *testServer) mockUser(t *testing.T, store *mocks.MockStore, id string) string {
	t.Helper()
	store.EXPECT().GetUserByID(mock.Anything, id).Return(&database.User{ID: id, Username: id}, nil).Maybe()
	token, _, err := ts.tokens.Issue(id)
	require.NoError(t, err)
	return token
}

func TestStoreFailureMapsTo503(t *testing.T) {
	store := mocks.NewMockStore(t)
	ts := newTestServer(t, store, nil)
	token := ts.mockUser(t, store, "user-1")

	store.EXPECT().ListUserWords(mock.Anything, "user-1").Return(nil, errors.New("disk on fire")).Once()

	w := ts.do(t, call{method: http.MethodGet, path: "/api/v1/words", token: token})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, "SERVICE_ERROR", resp.Code)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Status)
	assert.NotContains(t, w.Body.String(), "disk on fire")
}

func TestDeleteUserWord_NotRegistered(t *testing.T) {
	store := mocks.NewMockStore(t)
	ts := newTestServer(t, store, nil)
	token := ts.mockUser(t, store, "user-1")
	wordID := ulid.Make().String()

	store.EXPECT().GetUserWord(mock.Anything, "user-1", wordID).Return(nil, nil).Once()

	w := ts.do(t, call{method: http.MethodDelete, path: "/api/v1/words/" + wordID, token: token})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BAD_REQUEST", decode[ErrorResponse](t, w).Code)
}

func TestDeleteUserWord_BrokenCounterIsRecovered(t *testing.T) {
	store := mocks.NewMockStore(t)
	ts := newTestServer(t, store, nil)
	token := ts.mockUser(t, store, "user-1")
	wordID := ulid.Make().String()

	store.EXPECT().GetUserWord(mock.Anything, "user-1", wordID).
		Return(&database.UserWord{ID: "link-1", UserID: "user-1", WordID: wordID}, nil).Once()
	store.EXPECT().GetWordByID(mock.Anything, wordID).
		Return(&database.Word{ID: wordID, Popularity: 0}, nil).Once()

	w := ts.do(t, call{method: http.MethodDelete, path: "/api/v1/words/" + wordID, token: token})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode[ErrorResponse](t, w).Code)
}

func TestDeleteUserWord_MalformedID(t *testing.T) {
	store := mocks.NewMockStore(t)
	ts := newTestServer(t, store, nil)
	token := ts.mockUser(t, store, "user-1")

	w := ts.do(t, call{method: http.MethodDelete, path: "/api/v1/words/not-an-id", token: token})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, call{method: http.MethodGet, path: "/api/v1/words/not-an-id", token: token})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSuggest_Validation(t *testing.T) {
	store := mocks.NewMockStore(t)
	ts := newTestServer(t, store, nil)
	token := ts.mockUser(t, store, "user-1")

	w := ts.do(t, call{method: http.MethodPost, path: "/api/v1/words/suggest", body: map[string]any{"input_str": "   "}, token: token})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, call{method: http.MethodPost, path: "/api/v1/words/suggest", body: map[string]any{"input_str": "abc", "max_num": -1}, token: token})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, call{method: http.MethodPost, path: "/api/v1/words/suggest", body: map[string]any{}, token: token})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggest_CapsLimit(t *testing.T) {
	store := mocks.NewMockStore(t)
	ts := newTestServer(t, store, nil)
	token := ts.mockUser(t, store, "user-1")

	var candidates []database.Word
	for i := range 80 {
		candidates = append(candidates, database.Word{
			ID: ulid.Make().String(), Spelling: "ab" + strings.Repeat("c", i%5), SpellingKey: "ab" + strings.Repeat("c", i%5), Popularity: int64(i),
		})
	}
	store.EXPECT().FindWordsBySubsequence(mock.Anything, mock.Anything, words.DefaultCandidateCapacity).Return(candidates, nil).Once()

	w := ts.do(t, call{method: http.MethodPost, path: "/api/v1/words/suggest", body: map[string]any{"input_str": "ab", "max_num": 500}, token: token})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, words.MaxSuggestLimit, resp.Count)
}

func TestGenerateWord(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		ts := newTestServer(t, store, nil)
		token := ts.mockUser(t, store, "user-1")

		w := ts.do(t, call{method: http.MethodPost, path: "/api/v1/words/generate", body: map[string]string{"spelling": "run"}, token: token})
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("generated and cached", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		gen := &stubGenerator{entry: words.Entry{Meaning: "走る", ExampleSentence: "I run.", ExampleSentenceTranslation: "私は走る。"}}
		ts := newTestServer(t, store, gen)
		token := ts.mockUser(t, store, "user-1")

		for range 2 {
			w := ts.do(t, call{method: http.MethodPost, path: "/api/v1/words/generate", body: map[string]string{"spelling": "run"}, token: token})
			require.Equal(t, http.StatusOK, w.Code)
			got := decode[words.Entry](t, w)
			assert.Equal(t, "走る", got.Meaning)
		}
		assert.Equal(t, 1, gen.calls)
	})

	t.Run("upstream failure", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		ts := newTestServer(t, store, &stubGenerator{err: errors.New("timeout talking to model")})
		token := ts.mockUser(t, store, "user-1")

		w := ts.do(t, call{method: http.MethodPost, path: "/api/v1/words/generate", body: map[string]string{"spelling": "run"}, token: token})
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.NotContains(t, w.Body.String(), "timeout talking to model")
	})

	t.Run("spelling too long", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		gen := &stubGenerator{}
		ts := newTestServer(t, store, gen)
		token := ts.mockUser(t, store, "user-1")

		body := map[string]string{"spelling": strings.Repeat("a", words.MaxSpellingLen+1)}
		w := ts.do(t, call{method: http.MethodPost, path: "/api/v1/words/generate", body: body, token: token})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, gen.calls)
	})
}

func TestBodyLimit(t *testing.T) {
	ts := newSQLiteTestServer(t, nil)
	big := map[string]string{"username": strings.Repeat("a", 8<<10), "password": "password123"}
	w := ts.do(t, call{method: http.MethodPost, path: "/api/v1/auth/signup", body: big})
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHealthCheck(t *testing.T) {
	store := mocks.NewMockStore(t)
	ts := newTestServer(t, store, nil)

	store.EXPECT().CountWords(mock.Anything).Return(7, nil).Once()
	w := ts.do(t, call{method: http.MethodGet, path: "/api/health"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(7), body["metrics"].(map[string]any)["words"])

	store.EXPECT().CountWords(mock.Anything).Return(0, errors.New("closed")).Once()
	w = ts.do(t, call{method: http.MethodGet, path: "/api/v1/health"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "degraded", decode[map[string]any](t, w)["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, mocks.NewMockStore(t), nil)
	w := ts.do(t, call{method: http.MethodGet, path: "/metrics"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestUpdateGauges(t *testing.T) {
	store := mocks.NewMockStore(t)
	ts := newTestServer(t, store, nil)
	store.EXPECT().CountWords(mock.Anything).Return(3, nil).Once()
	store.EXPECT().CountUsers(mock.Anything).Return(2, nil).Once()

	ts.updateGauges(context.Background())

	w := ts.do(t, call{method: http.MethodGet, path: "/metrics"})
	assert.Contains(t, w.Body.String(), "wordbook_words_total 3")
	assert.Contains(t, w.Body.String(), "wordbook_users_total 2")
}

func TestPurgeCaches(t *testing.T) {
	t.Setenv("GIN_MODE", "test")
	store := mocks.NewMockStore(t)
	gen := &stubGenerator{entry: words.Entry{Meaning: "m", ExampleSentence: "s", ExampleSentenceTranslation: "t"}}
	svc := words.NewService(store, gen, words.Options{GenerateTTL: time.Millisecond})
	tokens, err := auth.NewTokenIssuer("test-signing-key", time.Hour)
	require.NoError(t, err)
	srv := NewServer(Deps{Store: store, Words: svc, Auth: auth.NewService(store, tokens)}, ServerConfig{})

	_, err = svc.GenerateEntry(context.Background(), "run")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	srv.purgeCaches()
	assert.Equal(t, 0, svc.PurgeExpired())
	assert.NotPanics(t, (&Server{}).purgeCaches)
}

func TestNoRouteAndCORS(t *testing.T) {
	ts := newTestServer(t, mocks.NewMockStore(t), nil)

	w := ts.do(t, call{method: http.MethodGet, path: "/api/v1/nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode[ErrorResponse](t, w).Code)

	w = ts.do(t, call{method: http.MethodOptions, path: "/api/v1/words", header: map[string]string{"Origin": "https://app.example"}})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get(servermiddleware.RequestIDHeader))
}

func TestCORS_AllowList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(corsMiddleware([]string{"https://app.example"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	preflight := func(origin string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", origin)
		r.ServeHTTP(w, req)
		return w
	}

	allowed := preflight("https://app.example")
	assert.Equal(t, http.StatusNoContent, allowed.Code)
	assert.Equal(t, "https://app.example", allowed.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", allowed.Header().Get("Access-Control-Allow-Credentials"))

	denied := preflight("https://evil.example")
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Credentials"))
}
