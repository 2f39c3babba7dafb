// file: internal/auth/auth_test.go
// version: 1.0.0
// guid: 2e4a6c8b-0d1f-4c3a-9b5e-7d9f1b3d5a80

package auth

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jdfalk/wordbook/internal/apperr"
	"github.com/jdfalk/wordbook/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	ok, err := VerifyPassword(hash, "correct horse")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "wrong horse")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = VerifyPassword("not-a-hash", "x")
	assert.Error(t, err)
}

func newIssuer(t *testing.T, at time.Time) *TokenIssuer {
	t.Helper()
	iss, err := NewTokenIssuer("test-secret", 30*time.Minute)
	require.NoError(t, err)
	iss.now = func() time.Time { return at }
	return iss
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	now := time.Now()
	iss := newIssuer(t, now)

	token, exp, err := iss.Issue("user-1")
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(30*time.Minute), exp, time.Second)

	sub, err := iss.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestTokenIssuer_Expired(t *testing.T) {
	now := time.Now()
	iss := newIssuer(t, now)
	token, _, err := iss.Issue("user-1")
	require.NoError(t, err)

	iss.now = func() time.Time { return now.Add(31 * time.Minute) }
	_, err = iss.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenIssuer_Invalid(t *testing.T) {
	iss := newIssuer(t, time.Now())

	_, err := iss.Verify("garbage")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	other, err := NewTokenIssuer("other-secret", time.Minute)
	require.NoError(t, err)
	foreign, _, err := other.Issue("user-1")
	require.NoError(t, err)
	_, err = iss.Verify(foreign)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// alg=none is rejected.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = iss.Verify(unsigned)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// A token without exp is rejected.
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "user-1"}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = iss.Verify(noExp)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewTokenIssuer(t *testing.T) {
	_, err := NewTokenIssuer("", time.Minute)
	assert.Error(t, err)

	iss, err := NewTokenIssuer("k", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenTTL, iss.TTL())
}

func newAuthService(t *testing.T) (*Service, database.Store) {
	t.Helper()
	store, err := database.NewSQLiteStore(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	iss, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	return NewService(store, iss), store
}

func openBackend(t *testing.T, kind, path string) database.Store {
	t.Helper()
	store, err := database.InitializeStore(context.Background(), kind, path, database.MongoOptions{})
	require.NoError(t, err)
	return store
}

func TestSignUpAndSignIn(t *testing.T) {
	backends := map[string]string{
		"pebble": "auth.pebble",
		"sqlite": "auth.db",
	}
	for kind, file := range backends {
		t.Run(kind, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), file)
			iss, err := NewTokenIssuer("test-secret", time.Hour)
			require.NoError(t, err)

			store := openBackend(t, kind, path)
			svc := NewService(store, iss)

			id, err := svc.SignUp(ctx, "alice", "password123")
			require.NoError(t, err)
			assert.NotEmpty(t, id)

			token, exp, err := svc.SignIn(ctx, "Alice", "password123")
			require.NoError(t, err)
			assert.True(t, exp.After(time.Now()))

			got, err := svc.Authenticate(ctx, token)
			require.NoError(t, err)
			assert.Equal(t, id, got)

			_, _, err = svc.SignIn(ctx, "alice", "password124")
			assert.ErrorIs(t, err, apperr.ErrUnauthorized)

			// Credentials survive a restart.
			require.NoError(t, database.CloseStore(store))
			store = openBackend(t, kind, path)
			t.Cleanup(func() { database.CloseStore(store) })
			svc = NewService(store, iss)

			token, _, err = svc.SignIn(ctx, "alice", "password123")
			require.NoError(t, err)
			got, err = svc.Authenticate(ctx, token)
			require.NoError(t, err)
			assert.Equal(t, id, got)
		})
	}
}

func TestSignUp_Validation(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name, username, password string
	}{
		{"short username", "al", "password123"},
		{"long username", strings.Repeat("a", 33), "password123"},
		{"bad chars", "al ice", "password123"},
		{"short password", "alice", "short"},
		{"huge password", "alice", strings.Repeat("p", 73)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(ctx, tt.username, tt.password)
			assert.ErrorIs(t, err, apperr.ErrBadRequest)
		})
	}
}

func TestSignUp_DuplicateIsConflict(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "alice", "password123")
	require.NoError(t, err)
	_, err = svc.SignUp(ctx, "ALICE", "password456")
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestSignIn_SameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()
	_, err := svc.SignUp(ctx, "alice", "password123")
	require.NoError(t, err)

	_, _, unknown := svc.SignIn(ctx, "bob", "password123")
	_, _, wrong := svc.SignIn(ctx, "alice", "password124")

	require.ErrorIs(t, unknown, apperr.ErrUnauthorized)
	require.ErrorIs(t, wrong, apperr.ErrUnauthorized)
	var a, b *apperr.Error
	require.True(t, errors.As(unknown, &a))
	require.True(t, errors.As(wrong, &b))
	assert.Equal(t, a.Message(), b.Message())
}

func TestSignIn_StoreFailureIsServiceError(t *testing.T) {
	store := &database.MockStore{
		GetUserByUsernameFunc: func(context.Context, string) (*database.User, error) {
			return nil, errors.New("connection reset")
		},
	}
	iss, err := NewTokenIssuer("k", time.Minute)
	require.NoError(t, err)
	_, _, err = NewService(store, iss).SignIn(context.Background(), "alice", "password123")
	assert.ErrorIs(t, err, apperr.ErrService)
}

func TestAuthenticate_DistinguishesExpired(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()
	_, err := svc.SignUp(ctx, "alice", "password123")
	require.NoError(t, err)
	token, _, err := svc.SignIn(ctx, "alice", "password123")
	require.NoError(t, err)

	svc.tokens.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.Authenticate(ctx, token)
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
	assert.Contains(t, err.Error(), "token expired")

	_, err = svc.Authenticate(ctx, "nope")
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)
	token, _, err := svc.tokens.Issue("ghost")
	require.NoError(t, err)
	_, err = svc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}
