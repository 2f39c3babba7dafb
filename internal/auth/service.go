// file: internal/auth/service.go
// version: 1.0.0
// guid: 9a1c3e5b-7d8f-4a0b-8c2e-4f6a8c0e2b7d

package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jdfalk/wordbook/internal/apperr"
	"github.com/jdfalk/wordbook/internal/database"
	"github.com/jdfalk/wordbook/internal/logger"
)

const (
	MinPasswordLen = 8
	MaxPasswordLen = 72 // bcrypt ignores anything longer
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{3,32}$`)

// invalidCredentials is shared by every sign-in failure so callers cannot
// tell unknown users from wrong passwords.
const invalidCredentials = "invalid username or password"

// Service signs users up and in.
type Service struct {
	store  database.Store
	tokens *TokenIssuer
	log    *log.Logger
}

func NewService(store database.Store, tokens *TokenIssuer) *Service {
	return &Service{store: store, tokens: tokens, log: logger.New("auth")}
}

// Tokens exposes the issuer used for sign-in, for middleware verification.
func (s *Service) Tokens() *TokenIssuer { return s.tokens }

// SignUp creates a user and returns its ID.
func (s *Service) SignUp(ctx context.Context, username, password string) (string, error) {
	const op = "auth.SignUp"

	username = strings.TrimSpace(username)
	if !usernamePattern.MatchString(username) {
		return "", apperr.BadRequest(op, "username must be 3-32 characters of letters, digits, '_', '.' or '-'")
	}
	if len(password) < MinPasswordLen {
		return "", apperr.BadRequest(op, "password must be at least 8 characters")
	}
	if len(password) > MaxPasswordLen {
		return "", apperr.BadRequest(op, "password must be at most 72 bytes")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", apperr.Service(op, err)
	}
	user, err := s.store.CreateUser(ctx, &database.User{
		Username:         username,
		PasswordHashAlgo: PasswordHashAlgo,
		PasswordHash:     hash,
	})
	if errors.Is(err, database.ErrDuplicate) {
		return "", apperr.Conflict(op, "username is already taken")
	}
	if err != nil {
		return "", apperr.Service(op, err)
	}
	s.log.Info("user signed up", "user_id", user.ID)
	return user.ID, nil
}

// SignIn verifies credentials and returns an access token and its expiry.
func (s *Service) SignIn(ctx context.Context, username, password string) (string, time.Time, error) {
	const op = "auth.SignIn"

	user, err := s.store.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return "", time.Time{}, apperr.Service(op, err)
	}
	if user == nil || user.Disabled {
		return "", time.Time{}, apperr.Unauthorized(op, invalidCredentials)
	}
	ok, err := VerifyPassword(user.PasswordHash, password)
	if err != nil {
		s.log.Error("stored password hash is unreadable", "user_id", user.ID, "err", err)
		return "", time.Time{}, apperr.Unauthorized(op, invalidCredentials)
	}
	if !ok {
		return "", time.Time{}, apperr.Unauthorized(op, invalidCredentials)
	}

	token, exp, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", time.Time{}, apperr.Service(op, err)
	}
	return token, exp, nil
}

// Authenticate resolves a token to an active user ID.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	const op = "auth.Authenticate"

	userID, err := s.tokens.Verify(token)
	switch {
	case errors.Is(err, ErrTokenExpired):
		return "", apperr.Unauthorized(op, "token expired")
	case err != nil:
		return "", apperr.Unauthorized(op, "invalid token")
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return "", apperr.Service(op, err)
	}
	if user == nil || user.Disabled {
		return "", apperr.Unauthorized(op, "invalid token")
	}
	return user.ID, nil
}
