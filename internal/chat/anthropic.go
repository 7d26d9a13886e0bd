package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/Tarun-surendra/portfolio/internal/config"
)

const (
	anthropicAPIURL     = "https://api.anthropic.com/v1/messages"
	anthropicAPIVersion = "2023-06-01"
)

// AnthropicResponder answers through the Anthropic Messages API.
type AnthropicResponder struct {
	apiKey    string
	model     string
	system    string
	maxTokens int
	timeout   time.Duration
	endpoint  string
	client    *http.Client
}

// NewAnthropicResponder creates a responder for cfg. cfg.BaseURL, when set,
// replaces the API endpoint.
func NewAnthropicResponder(cfg config.ChatConfig, systemPrompt string) *AnthropicResponder {
	endpoint := anthropicAPIURL
	if cfg.BaseURL != "" {
		endpoint = strings.TrimRight(cfg.BaseURL, "/") + "/v1/messages"
	}
	return &AnthropicResponder{
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		system:    systemPrompt,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
		endpoint:  endpoint,
		client:    &http.Client{},
	}
}

// Mode returns ModeHosted.
func (p *AnthropicResponder) Mode() string {
	return ModeHosted
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Reply asks the Messages API for the next assistant turn.
func (p *AnthropicResponder) Reply(ctx context.Context, turns []Turn) (string, error) {
	msgs := conversation(turns)
	if len(msgs) == 0 {
		return "", ErrEmptyMessage
	}

	apiReq := anthropicRequest{
		Model:     p.model,
		MaxTokens: p.maxTokens,
		System:    p.system,
		Messages:  make([]anthropicMessage, 0, len(msgs)),
	}
	for _, m := range msgs {
		apiReq.Messages = append(apiReq.Messages, anthropicMessage{Role: string(m.Role), Content: m.Content})
	}

	body, err := json.Marshal(apiReq)
	if err != nil {
		return "", errors.Wrap(err, "marshalling anthropic request")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "creating request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicAPIVersion)

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "anthropic request failed")
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return "", errors.Wrap(err, "reading anthropic response")
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", errors.Wrapf(err, "decoding anthropic response (status %d)", httpResp.StatusCode)
	}
	if httpResp.StatusCode != http.StatusOK {
		if apiResp.Error != nil {
			return "", errors.Errorf("anthropic API error (status %d): %s: %s", httpResp.StatusCode, apiResp.Error.Type, apiResp.Error.Message)
		}
		return "", errors.Errorf("anthropic API returned status %d", httpResp.StatusCode)
	}

	var sb strings.Builder
	for _, c := range apiResp.Content {
		if c.Type == "text" {
			sb.WriteString(c.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New("anthropic response had no text content")
	}
	return text, nil
}
