package chat

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/Tarun-surendra/portfolio/internal/config"
	"github.com/Tarun-surendra/portfolio/internal/content"
)

const (
	ModeLocal  = "local"
	ModeHosted = "hosted"
)

// Responder produces the assistant's next turn for a transcript.
type Responder interface {
	// Reply returns the assistant text for the conversation so far. The last
	// turn is the user's question.
	Reply(ctx context.Context, turns []Turn) (string, error)
	// Mode returns ModeLocal or ModeHosted.
	Mode() string
}

// NewResponder selects the reply strategy once, from configuration. Without
// an API key the local rule table is used.
func NewResponder(cfg config.ChatConfig, script content.ChatScript) (Responder, error) {
	if cfg.APIKey == "" {
		return NewRuleResponder(script), nil
	}

	switch cfg.Provider {
	case config.ChatProviderAnthropic:
		return NewAnthropicResponder(cfg, script.SystemPrompt), nil
	case config.ChatProviderOpenAI:
		return NewOpenAIResponder(cfg, script.SystemPrompt), nil
	default:
		return nil, errors.Errorf("unsupported chat provider %q", cfg.Provider)
	}
}

// Service answers validated transcripts, converting any responder failure
// into the static apology so callers never see raw error text.
type Service struct {
	responder Responder
	apology   string
}

// NewService wraps responder with the given apology text.
func NewService(responder Responder, apology string) *Service {
	return &Service{responder: responder, apology: apology}
}

// Mode reports the underlying responder's mode.
func (s *Service) Mode() string {
	return s.responder.Mode()
}

// Answer returns the assistant turn for turns. It does not validate.
func (s *Service) Answer(ctx context.Context, turns []Turn) Turn {
	reply, err := s.responder.Reply(ctx, turns)
	if err != nil {
		slog.Warn("chat reply failed, sending apology", "mode", s.responder.Mode(), "error", err)
		return Turn{Role: RoleAssistant, Content: s.apology}
	}
	return Turn{Role: RoleAssistant, Content: reply}
}
