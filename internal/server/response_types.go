// file: internal/server/response_types.go
// version: 2.0.0
// guid: 7f8a9b0c-1d2e-3f4a-5b6c-7d8e9f0a1b2c

package server

import (
	"time"

	"github.com/jdfalk/wordbook/internal/database"
	"github.com/jdfalk/wordbook/internal/words"
)

// ListResponse provides a consistent format for list responses
type ListResponse struct {
	Items any `json:"items"`
	Count int `json:"count"`
}

// CreateResponse is returned by sign-up.
type CreateResponse struct {
	ID string `json:"id"`
}

// MessageResponse provides a consistent format for status messages
type MessageResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// TokenResponse is returned by sign-in. The same token is also set as the
// access_token cookie.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// MeResponse identifies the authenticated caller.
type MeResponse struct {
	UserID string `json:"user_id"`
}

// RegisterResponse is returned when a word is registered.
type RegisterResponse struct {
	UserWordID string `json:"user_word_id"`
	WordID     string `json:"word_id"`
}

// SuggestedWord is one ranked suggestion.
type SuggestedWord struct {
	ID                         string  `json:"id"`
	Spelling                   string  `json:"spelling"`
	Meaning                    string  `json:"meaning"`
	ExampleSentence            string  `json:"example_sentence"`
	ExampleSentenceTranslation string  `json:"example_sentence_translation"`
	Popularity                 int64   `json:"popularity"`
	Score                      float64 `json:"score"`
}

// NewListResponse creates a new ListResponse
func NewListResponse[T any](items []T) *ListResponse {
	if items == nil {
		items = []T{}
	}
	return &ListResponse{Items: items, Count: len(items)}
}

// NewMessageResponse creates a new MessageResponse
func NewMessageResponse(message string, code string) *MessageResponse {
	return &MessageResponse{
		Message: message,
		Code:    code,
	}
}

// NewSuggestedWords converts ranked words, scoring each against query.
func NewSuggestedWords(ranked []database.Word, query string) []SuggestedWord {
	q := words.Canonicalize(query)
	out := make([]SuggestedWord, len(ranked))
	for i, w := range ranked {
		out[i] = SuggestedWord{
			ID:                         w.ID,
			Spelling:                   w.Spelling,
			Meaning:                    w.Meaning,
			ExampleSentence:            w.ExampleSentence,
			ExampleSentenceTranslation: w.ExampleSentenceTranslation,
			Popularity:                 w.Popularity,
			Score:                      words.LCSScore(q, w.SpellingKey),
		}
	}
	return out
}
