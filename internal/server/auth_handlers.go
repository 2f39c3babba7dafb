// file: internal/server/auth_handlers.go
// version: 2.0.0
// guid: 1457df2f-af76-46cb-a2f4-c9f6f275f93a

package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	servermiddleware "github.com/jdfalk/wordbook/internal/server/middleware"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func isHTTPSRequest(c *gin.Context) bool {
	if c.Request.TLS != nil {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(c.GetHeader("X-Forwarded-Proto")), "https")
}

// setAccessTokenCookie stores "Bearer <jwt>". SameSite=None lets a frontend on
// another origin send it; browsers then require Secure, so the cookie only
// sticks over HTTPS.
func (s *Server) setAccessTokenCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     servermiddleware.AccessTokenCookieName,
		Value:    "Bearer " + token,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure || isHTTPSRequest(c),
		SameSite: http.SameSiteNoneMode,
	})
}

func (s *Server) clearAccessTokenCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     servermiddleware.AccessTokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure || isHTTPSRequest(c),
		SameSite: http.SameSiteNoneMode,
	})
}

func (s *Server) signUp(c *gin.Context) {
	var req credentialsRequest
	if HandleBindError(c, c.ShouldBindJSON(&req)) {
		return
	}

	id, err := s.auth.SignUp(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreateResponse{ID: id})
}

func (s *Server) signIn(c *gin.Context) {
	var req credentialsRequest
	if HandleBindError(c, c.ShouldBindJSON(&req)) {
		return
	}

	token, expiresAt, err := s.auth.SignIn(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		RespondWithAppError(c, err)
		return
	}

	s.setAccessTokenCookie(c, token, expiresAt)
	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

func (s *Server) signOut(c *gin.Context) {
	s.clearAccessTokenCookie(c)
	c.JSON(http.StatusOK, NewMessageResponse("signed out", ""))
}

func (s *Server) me(c *gin.Context) {
	userID, ok := servermiddleware.CurrentUserID(c)
	if !ok {
		RespondWithUnauthorized(c, "authentication required")
		return
	}
	c.JSON(http.StatusOK, MeResponse{UserID: userID})
}
