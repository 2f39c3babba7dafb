// file: internal/ai/deepseek.go
// version: 2.0.0
// guid: 9a0b1c2d-3e4f-5a6b-7c8d-9e0f1a2b3c4d

package ai

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jdfalk/wordbook/internal/words"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"
)

const (
	DefaultBaseURL     = "https://api.deepseek.com/v1"
	DefaultModel       = "deepseek-chat"
	DefaultTemperature = 0.7
	DefaultTimeout     = 30 * time.Second
)

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("entry generator is not enabled")

// Config configures the DeepSeek generator. DeepSeek speaks the OpenAI chat
// completions protocol, so any compatible endpoint works.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
	MaxRetries  int
}

// DeepSeekGenerator drafts word entries (meaning, example sentence and its
// translation) through an OpenAI-compatible chat endpoint.
type DeepSeekGenerator struct {
	client      *openai.Client
	model       string
	temperature float64
	timeout     time.Duration
	enabled     bool
}

var _ words.Generator = (*DeepSeekGenerator)(nil)

// NewDeepSeekGenerator creates a generator. It is disabled when cfg.APIKey
// is empty.
func NewDeepSeekGenerator(cfg Config) *DeepSeekGenerator {
	if cfg.APIKey == "" {
		return &DeepSeekGenerator{enabled: false}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithMaxRetries(max(cfg.MaxRetries, 0)),
	)
	return &DeepSeekGenerator{
		client:      &client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		enabled:     true,
	}
}

// IsEnabled returns whether the generator has credentials.
func (g *DeepSeekGenerator) IsEnabled() bool {
	return g.enabled
}

const systemPrompt = "You are an English vocabulary tutor for Japanese speakers. Answer only in the requested format."

// BuildPrompt renders the user prompt for spelling.
func BuildPrompt(spelling string) string {
	return fmt.Sprintf("単語: %s\n\n"+
		"1. この英単語の意味を日本語で簡潔に説明してください。\n"+
		"2. この単語を使った自然な英文を1文作ってください。\n"+
		"3. その英文の日本語訳を教えてください。\n\n"+
		"出力形式:\n意味: ...\n英文: ...\n和訳: ...\n", spelling)
}

// Generate asks the model for an entry. The call is bounded by the configured
// timeout; a response missing any of the three fields is an error.
func (g *DeepSeekGenerator) Generate(ctx context.Context, spelling string) (words.Entry, error) {
	if !g.enabled {
		return words.Entry{}, ErrDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(BuildPrompt(spelling)),
		},
		Model:       shared.ChatModel(g.model),
		Temperature: param.NewOpt(g.temperature),
		MaxTokens:   param.NewOpt[int64](400),
	})
	if err != nil {
		return words.Entry{}, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return words.Entry{}, fmt.Errorf("no choices in completion")
	}

	return ParseEntry(spelling, completion.Choices[0].Message.Content)
}

// TestConnection performs one small generation to validate credentials.
func (g *DeepSeekGenerator) TestConnection(ctx context.Context) error {
	if !g.enabled {
		return ErrDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, err := g.Generate(ctx, "test")
	return err
}

// Labels accept an optional list marker or bold markup, then a colon
// (ASCII or full-width), a dash, or nothing.
var (
	meaningLine     = labelPattern("意味")
	exampleLine     = labelPattern("英文")
	translationLine = labelPattern("和訳")
)

func labelPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`^\s*(?:[-*・]\s*)?(?:\*\*)?\s*` + label + `\s*(?:\*\*)?\s*[:：\-]?\s*(?:\*\*)?\s*(.*?)\s*$`)
}

// ParseEntry extracts the three labelled fields from a model response.
func ParseEntry(spelling, content string) (words.Entry, error) {
	entry := words.Entry{Spelling: spelling}
	for _, line := range strings.Split(content, "\n") {
		switch {
		case entry.Meaning == "" && meaningLine.MatchString(line):
			entry.Meaning = meaningLine.FindStringSubmatch(line)[1]
		case entry.ExampleSentence == "" && exampleLine.MatchString(line):
			entry.ExampleSentence = exampleLine.FindStringSubmatch(line)[1]
		case entry.ExampleSentenceTranslation == "" && translationLine.MatchString(line):
			entry.ExampleSentenceTranslation = translationLine.FindStringSubmatch(line)[1]
		}
	}

	var missing []string
	if entry.Meaning == "" {
		missing = append(missing, "意味")
	}
	if entry.ExampleSentence == "" {
		missing = append(missing, "英文")
	}
	if entry.ExampleSentenceTranslation == "" {
		missing = append(missing, "和訳")
	}
	if len(missing) > 0 {
		return words.Entry{}, fmt.Errorf("incomplete response, missing %s", strings.Join(missing, ", "))
	}
	return entry, nil
}
