// file: internal/server/middleware/auth.go
// version: 2.0.0
// guid: 83c42ecb-1df2-4baf-9890-3f91ab4db6fe

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jdfalk/wordbook/internal/apperr"
)

const (
	// AccessTokenCookieName carries "Bearer <jwt>" for browser clients.
	AccessTokenCookieName = "access_token"
	contextUserIDKey      = "auth_user_id"
)

// Authenticator resolves an access token to a user ID.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

func bearerToken(v string) string {
	v = strings.TrimSpace(v)
	if len(v) > len("bearer ") && strings.EqualFold(v[:len("bearer ")], "bearer ") {
		return strings.TrimSpace(v[len("bearer "):])
	}
	return ""
}

// TokenFromRequest extracts the access token from the Authorization header or
// the access_token cookie. The header wins when both are present.
func TokenFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	if token := bearerToken(r.Header.Get("Authorization")); token != "" {
		return token
	}
	if cookie, err := r.Cookie(AccessTokenCookieName); err == nil {
		return bearerToken(cookie.Value)
	}
	return ""
}

// CurrentUserID fetches the authenticated user ID from the Gin context.
func CurrentUserID(c *gin.Context) (string, bool) {
	if c == nil {
		return "", false
	}
	value, ok := c.Get(contextUserIDKey)
	if !ok {
		return "", false
	}
	id, ok := value.(string)
	return id, ok && id != ""
}

func abortWithKind(c *gin.Context, status int, kind apperr.Kind, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":  msg,
		"code":   kind.String(),
		"status": status,
	})
}

// RequireAuth rejects requests without a valid access token.
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c.Request)
		if token == "" {
			abortWithKind(c, http.StatusUnauthorized, apperr.KindUnauthorized, "authentication required")
			return
		}

		userID, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			var ae *apperr.Error
			switch {
			case errors.As(err, &ae) && ae.Kind == apperr.KindUnauthorized:
				abortWithKind(c, http.StatusUnauthorized, ae.Kind, ae.Message())
			case errors.As(err, &ae) && ae.Kind == apperr.KindService:
				abortWithKind(c, http.StatusServiceUnavailable, ae.Kind, ae.Message())
			default:
				abortWithKind(c, http.StatusInternalServerError, apperr.KindInternal, "failed to check credentials")
			}
			return
		}

		c.Set(contextUserIDKey, userID)
		c.Next()
	}
}
