package chat

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"

	"github.com/Tarun-surendra/portfolio/internal/config"
)

// OpenAIResponder answers through the OpenAI Chat Completions API, or any
// compatible endpoint given by cfg.BaseURL.
type OpenAIResponder struct {
	client    *openai.Client
	model     string
	system    string
	maxTokens int
	timeout   time.Duration
}

// NewOpenAIResponder creates a responder for cfg.
func NewOpenAIResponder(cfg config.ChatConfig, systemPrompt string) *OpenAIResponder {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	return &OpenAIResponder{
		client:    openai.NewClientWithConfig(oc),
		model:     cfg.Model,
		system:    systemPrompt,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
	}
}

// Mode returns ModeHosted.
func (p *OpenAIResponder) Mode() string {
	return ModeHosted
}

// Reply asks the Chat Completions API for the next assistant turn.
func (p *OpenAIResponder) Reply(ctx context.Context, turns []Turn) (string, error) {
	msgs := conversation(turns)
	if len(msgs) == 0 {
		return "", ErrEmptyMessage
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(msgs)+1)
	if p.system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: p.system,
		})
	}
	for _, m := range msgs {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     p.model,
		Messages:  messages,
		MaxTokens: p.maxTokens,
	})
	if err != nil {
		return "", errors.Wrap(err, "openai request failed")
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openai response had no choices")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("openai response had no text content")
	}
	return text, nil
}
