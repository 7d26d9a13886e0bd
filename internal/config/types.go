package config

import "time"

// ChatProvider identifies the hosted completion service behind the chat widget.
type ChatProvider string

const (
	ChatProviderAnthropic ChatProvider = "anthropic"
	ChatProviderOpenAI    ChatProvider = "openai"
)

// RelayKind identifies the mail relay behind the contact form.
type RelayKind string

const (
	RelayEmailJS RelayKind = "emailjs"
	RelaySMTP    RelayKind = "smtp"
)

// Config is the top-level server configuration, corresponding to portfolio.yml.
type Config struct {
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Chat    ChatConfig    `yaml:"chat" koanf:"chat"`
	Contact ContactConfig `yaml:"contact" koanf:"contact"`
	// ContentFile replaces the embedded portfolio content when set.
	ContentFile string `yaml:"content_file" koanf:"content_file"`
	LogLevel    string `yaml:"log_level" koanf:"log_level"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int           `yaml:"port" koanf:"port"`
	Mode            string        `yaml:"mode" koanf:"mode"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
}

// ChatConfig selects the reply strategy. An empty APIKey means local canned replies.
type ChatConfig struct {
	Provider  ChatProvider  `yaml:"provider" koanf:"provider"`
	Model     string        `yaml:"model" koanf:"model"`
	APIKey    string        `yaml:"-" koanf:"api_key"`
	BaseURL   string        `yaml:"base_url" koanf:"base_url"`
	MaxTokens int           `yaml:"max_tokens" koanf:"max_tokens"`
	Timeout   time.Duration `yaml:"timeout" koanf:"timeout"`
}

// ContactConfig holds mail relay settings. Credentials come from the environment.
type ContactConfig struct {
	Relay   RelayKind     `yaml:"relay" koanf:"relay"`
	ToName  string        `yaml:"to_name" koanf:"to_name"`
	EmailJS EmailJSConfig `yaml:"emailjs" koanf:"emailjs"`
	SMTP    SMTPConfig    `yaml:"smtp" koanf:"smtp"`
	Timeout time.Duration `yaml:"timeout" koanf:"timeout"`
}

// EmailJSConfig identifies the EmailJS service and template used for delivery.
type EmailJSConfig struct {
	Endpoint    string `yaml:"endpoint" koanf:"endpoint"`
	ServiceID   string `yaml:"service_id" koanf:"service_id"`
	TemplateID  string `yaml:"template_id" koanf:"template_id"`
	PublicKey   string `yaml:"-" koanf:"public_key"`
	AccessToken string `yaml:"-" koanf:"access_token"`
}

// SMTPConfig is used when relay is "smtp".
type SMTPConfig struct {
	Host     string `yaml:"host" koanf:"host"`
	Port     string `yaml:"port" koanf:"port"`
	User     string `yaml:"-" koanf:"user"`
	Password string `yaml:"-" koanf:"password"`
	To       string `yaml:"to" koanf:"to"`
}
