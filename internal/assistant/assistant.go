// ABOUTME: Client for the remote text-generation API used by suggestions and chat
// ABOUTME: Wraps go-openai with moodjourney prompt construction

package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/moodjourney/moodjourney/internal/store"
)

// ErrEmptyCompletion is returned when the API produces no usable text.
var ErrEmptyCompletion = errors.New("model returned an empty completion")

// Config holds connection settings for an OpenAI-compatible API.
type Config struct {
	APIKey  string
	BaseURL string // optional; defaults to the public endpoint
	Model   string
}

// Client generates journal suggestions and chat replies through a
// remote text-generation API. The store never depends on it; callers
// persist whatever text it returns.
type Client struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// New creates a client for the configured endpoint.
func New(cfg Config) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	return &Client{
		client: openai.NewClientWithConfig(apiCfg),
		model:  cfg.Model,
		logger: slog.Default().With("component", "assistant"),
	}
}

// GenerateSuggestion produces a suggestion for a journal entry. kind is
// one of the Suggestion* constants; anything else yields a general
// suggestion. Returns ErrInsufficientContext when the entry carries too
// little text to work with.
func (c *Client) GenerateSuggestion(ctx context.Context, title, content, kind string) (string, error) {
	prompt, err := buildSuggestionPrompt(title, content, kind)
	if err != nil {
		return "", err
	}

	c.logger.Debug("generating suggestion", "kind", kind)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("generating suggestion: %w", err)
	}

	text := completionText(resp)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

// Chat produces the assistant's next reply for a chat session. history
// is the session transcript in chronological order; journal optionally
// supplies recent entries as conversational context, with annotation
// markers stripped before inclusion.
func (c *Client) Chat(ctx context.Context, history []*store.ChatMessage, journal []*store.Entry) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: chatSystemPrompt(journal),
	})

	for _, msg := range history {
		role := openai.ChatMessageRoleUser
		if msg.Sender == store.SenderAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}

	c.logger.Debug("requesting chat completion", "history", len(history))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("requesting chat completion: %w", err)
	}

	text := completionText(resp)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

// completionText pulls the first choice's trimmed content out of a response.
func completionText(resp openai.ChatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
