package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// EnvPrefix is stripped from environment variables before they are mapped
// onto config keys. A double underscore separates nesting levels, so
// PORTFOLIO_CHAT__API_KEY sets chat.api_key.
const EnvPrefix = "PORTFOLIO_"

// SecretKeys are credentials accepted only from the environment. Values for
// them in the config file are discarded.
var SecretKeys = []string{
	"chat.api_key",
	"contact.emailjs.public_key",
	"contact.emailjs.access_token",
	"contact.smtp.user",
	"contact.smtp.password",
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PORTFOLIO_*). A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "reading config %s", path)
			}
			for _, key := range SecretKeys {
				k.Delete(key)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "accessing config %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, "loading env overrides")
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}

	if cfg.Chat.APIKey == "" {
		if name := APIKeyEnvVar(cfg.Chat.Provider); name != "" {
			cfg.Chat.APIKey = os.Getenv(name)
		}
	}

	return cfg, nil
}

// APIKeyEnvVar returns the conventional environment variable name for
// the API key of the given provider.
func APIKeyEnvVar(provider ChatProvider) string {
	switch provider {
	case ChatProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ChatProviderOpenAI:
		return "OPENAI_API_KEY"
	default:
		return ""
	}
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

var validProviders = map[ChatProvider]bool{
	ChatProviderAnthropic: true,
	ChatProviderOpenAI:    true,
}

var validRelays = map[RelayKind]bool{
	RelayEmailJS: true,
	RelaySMTP:    true,
}

// Validate checks that the configuration contains valid values. Missing
// credentials are not errors: they select the local chat mode or leave the
// relay unconfigured.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.Errorf("invalid server.port %d", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return errors.Errorf("invalid server.mode %q: must be one of debug, release, test", c.Server.Mode)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("server.shutdown_timeout must be positive")
	}

	if !validProviders[c.Chat.Provider] {
		return errors.Errorf("invalid chat.provider %q: must be one of anthropic, openai", c.Chat.Provider)
	}
	if c.Chat.Model == "" {
		return errors.New("chat.model is required")
	}
	if c.Chat.MaxTokens <= 0 {
		return errors.New("chat.max_tokens must be positive")
	}
	if c.Chat.Timeout <= 0 {
		return errors.New("chat.timeout must be positive")
	}

	if !validRelays[c.Contact.Relay] {
		return errors.Errorf("invalid contact.relay %q: must be one of emailjs, smtp", c.Contact.Relay)
	}
	if c.Contact.Timeout <= 0 {
		return errors.New("contact.timeout must be positive")
	}

	return nil
}

// HostedChat reports whether a completion credential is present.
func (c *Config) HostedChat() bool {
	return c.Chat.APIKey != ""
}

// SlogLevel maps LogLevel onto a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
