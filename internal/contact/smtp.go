package contact

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/pkg/errors"

	"github.com/Tarun-surendra/portfolio/internal/config"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPRelay delivers contact messages through an SMTP server with PLAIN auth.
type SMTPRelay struct {
	cfg      config.SMTPConfig
	sendMail sendMailFunc
}

func NewSMTPRelay(cfg config.SMTPConfig) *SMTPRelay {
	return &SMTPRelay{cfg: cfg, sendMail: smtp.SendMail}
}

func (r *SMTPRelay) recipient() string {
	if r.cfg.To != "" {
		return r.cfg.To
	}
	return r.cfg.User
}

// Send composes and sends the message. net/smtp has no context support, so
// ctx is only checked before dialing.
func (r *SMTPRelay) Send(ctx context.Context, msg Message) error {
	if r.cfg.Host == "" || r.cfg.Port == "" || r.cfg.User == "" || r.cfg.Password == "" {
		return ErrRelayNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	to := r.recipient()
	auth := smtp.PlainAuth("", r.cfg.User, r.cfg.Password, r.cfg.Host)
	if err := r.sendMail(r.cfg.Host+":"+r.cfg.Port, auth, r.cfg.User, []string{to}, composeMail(r.cfg.User, to, msg)); err != nil {
		return errors.Wrap(err, "sending mail")
	}

	slog.Info("contact mail sent", "relay", "smtp", "from_name", msg.FromName)
	return nil
}

// headerSafe strips line breaks so visitor input cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func composeMail(from, to string, msg Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(msg.Subject))
	body := fmt.Sprintf(`
New contact form submission for %s:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.ToName, msg.FromName, msg.FromEmail, msg.Subject, msg.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + headerSafe(msg.ReplyTo) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
