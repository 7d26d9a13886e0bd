package config

import "time"

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Mode:            "release",
			ShutdownTimeout: 10 * time.Second,
		},
		Chat: ChatConfig{
			Provider:  ChatProviderAnthropic,
			Model:     "claude-haiku-4-5-20251001",
			MaxTokens: 300,
			Timeout:   30 * time.Second,
		},
		Contact: ContactConfig{
			Relay:  RelayEmailJS,
			ToName: "Tarun",
			EmailJS: EmailJSConfig{
				Endpoint: "https://api.emailjs.com/api/v1.0/email/send",
			},
			SMTP: SMTPConfig{
				Host: "smtp.gmail.com",
				Port: "587",
			},
			Timeout: 15 * time.Second,
		},
		LogLevel: "info",
	}
}
