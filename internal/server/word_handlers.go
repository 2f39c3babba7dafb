// file: internal/server/word_handlers.go
// version: 1.0.0
// guid: 2c4e6a8b-0d1f-4a3c-8e5b-7d9f1b3c5e6a

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	servermiddleware "github.com/jdfalk/wordbook/internal/server/middleware"
	"github.com/jdfalk/wordbook/internal/words"
)

type generateRequest struct {
	Spelling string `json:"spelling" binding:"required"`
}

type registerRequest struct {
	Spelling                   string `json:"spelling" binding:"required"`
	Meaning                    string `json:"meaning"`
	ExampleSentence            string `json:"example_sentence"`
	ExampleSentenceTranslation string `json:"example_sentence_translation"`
	UsageExample               *struct {
		Sentence    string `json:"sentence"`
		Translation string `json:"translation"`
	} `json:"usage_example"`
}

type suggestRequest struct {
	InputStr string `json:"input_str" binding:"required"`
	MaxNum   int    `json:"max_num"`
}

// userID returns the authenticated caller; RequireAuth guarantees it on the
// word routes.
func userID(c *gin.Context) (string, bool) {
	id, ok := servermiddleware.CurrentUserID(c)
	if !ok {
		RespondWithUnauthorized(c, "authentication required")
	}
	return id, ok
}

func (s *Server) generateWord(c *gin.Context) {
	if _, ok := userID(c); !ok {
		return
	}
	var req generateRequest
	if HandleBindError(c, c.ShouldBindJSON(&req)) {
		return
	}
	if err := ValidateRequiredString(req.Spelling, "spelling", words.MaxSpellingLen); err != nil {
		RespondWithValidationError(c, "spelling", err.Error())
		return
	}

	entry, err := s.words.GenerateEntry(c.Request.Context(), req.Spelling)
	if err != nil {
		RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) registerWord(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req registerRequest
	if HandleBindError(c, c.ShouldBindJSON(&req)) {
		return
	}

	entry := words.Entry{
		Spelling:                   req.Spelling,
		Meaning:                    req.Meaning,
		ExampleSentence:            req.ExampleSentence,
		ExampleSentenceTranslation: req.ExampleSentenceTranslation,
	}
	var usage words.Usage
	if req.UsageExample != nil {
		usage = words.Usage{Sentence: req.UsageExample.Sentence, Translation: req.UsageExample.Translation}
	}

	link, err := s.words.RegisterWord(c.Request.Context(), entry, uid, usage)
	if err != nil {
		RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, RegisterResponse{UserWordID: link.ID, WordID: link.WordID})
}

func (s *Server) suggestWords(c *gin.Context) {
	if _, ok := userID(c); !ok {
		return
	}
	var req suggestRequest
	if HandleBindError(c, c.ShouldBindJSON(&req)) {
		return
	}
	if err := ValidateInteger(req.MaxNum, "max_num", 0, 0); err != nil {
		RespondWithValidationError(c, "max_num", err.Error())
		return
	}

	ranked, err := s.words.Suggest(c.Request.Context(), req.InputStr, req.MaxNum)
	if err != nil {
		RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewListResponse(NewSuggestedWords(ranked, req.InputStr)))
}

func (s *Server) listUserWords(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	entries, err := s.words.ListUserWords(c.Request.Context(), uid)
	if err != nil {
		RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewListResponse(entries))
}

// getUserWord looks up by user-word (link) ID.
func (s *Server) getUserWord(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := ValidateID(id); err != nil {
		RespondWithError(c, http.StatusNotFound, "word not found", "NOT_FOUND")
		return
	}

	entry, err := s.words.GetUserWord(c.Request.Context(), id, uid)
	if err != nil {
		RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// deleteUserWord removes by word ID.
func (s *Server) deleteUserWord(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := ValidateID(id); err != nil {
		RespondWithValidationError(c, "id", err.Error())
		return
	}

	if err := s.words.DeleteUserWord(c.Request.Context(), id, uid); err != nil {
		RespondWithAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
