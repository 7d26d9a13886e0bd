package contact

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

// EmailJSRelay sends through the EmailJS REST API. The account must allow
// API calls from non-browser applications.
type EmailJSRelay struct {
	cfg    config.EmailJSConfig
	client *http.Client
}

// NewEmailJSRelay creates a relay posting to cfg.Endpoint.
func NewEmailJSRelay(cfg config.EmailJSConfig, timeout time.Duration) *EmailJSRelay {
	return &EmailJSRelay{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type emailJSRequest struct {
	ServiceID      string  `json:"service_id"`
	TemplateID     string  `json:"template_id"`
	UserID         string  `json:"user_id"`
	AccessToken    string  `json:"accessToken,omitempty"`
	TemplateParams Message `json:"template_params"`
}

func (r *EmailJSRelay) configured() bool {
	return r.cfg.Endpoint != "" && r.cfg.ServiceID != "" && r.cfg.TemplateID != "" && r.cfg.PublicKey != ""
}

func (r *EmailJSRelay) Send(ctx context.Context, msg Message) error {
	if !r.configured() {
		return ErrRelayNotConfigured
	}

	body, err := json.Marshal(emailJSRequest{
		ServiceID:      r.cfg.ServiceID,
		TemplateID:     r.cfg.TemplateID,
		UserID:         r.cfg.PublicKey,
		AccessToken:    r.cfg.AccessToken,
		TemplateParams: msg,
	})
	if err != nil {
		return errors.Wrap(err, "marshalling emailjs request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "creating emailjs request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "emailjs request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Errorf("emailjs returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
