package contact

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Tarun-surendra/portfolio/internal/config"
)

var ErrRelayNotConfigured = errors.New("contact: mail relay credentials not configured")

// Relay delivers a contact message. Success carries no payload.
type Relay interface {
	Send(ctx context.Context, msg Message) error
}

// NewRelay builds the relay named by cfg.Relay.
func NewRelay(cfg config.ContactConfig) (Relay, error) {
	switch cfg.Relay {
	case config.RelayEmailJS:
		return NewEmailJSRelay(cfg.EmailJS, cfg.Timeout), nil
	case config.RelaySMTP:
		return NewSMTPRelay(cfg.SMTP), nil
	default:
		return nil, errors.Errorf("unsupported contact relay %q", cfg.Relay)
	}
}

// RelayFunc adapts a function to the Relay interface.
type RelayFunc func(ctx context.Context, msg Message) error

func (f RelayFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}
