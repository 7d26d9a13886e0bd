package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/Tarun-surendra/portfolio/internal/config"
)

var sampleForm = Form{
	Name:    " Jane Doe ",
	Email:   "jane@example.com",
	Subject: "Job Opportunity",
	Message: "Let's talk.",
}

func TestToMessage(t *testing.T) {
	msg := sampleForm.ToMessage("Tarun")
	want := Message{
		FromName:  "Jane Doe",
		FromEmail: "jane@example.com",
		Subject:   "Job Opportunity",
		Message:   "Let's talk.",
		ToName:    "Tarun",
		ReplyTo:   "jane@example.com",
	}
	if msg != want {
		t.Errorf("ToMessage() = %+v, want %+v", msg, want)
	}
	if !sampleForm.Complete() {
		t.Error("sample form should be complete")
	}
	if (Form{Name: "a", Email: "b", Subject: " ", Message: "d"}).Complete() {
		t.Error("blank subject should make the form incomplete")
	}
}

func TestSubmitSuccessClearsFields(t *testing.T) {
	var got Message
	relay := RelayFunc(func(ctx context.Context, msg Message) error {
		got = msg
		return nil
	})

	s := NewSubmission(sampleForm)
	if s.Status() != StatusIdle {
		t.Fatalf("new submission should be idle, got %s", s.Status())
	}
	if err := s.Submit(context.Background(), relay, "Tarun"); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if s.Status() != StatusSuccess {
		t.Errorf("expected success, got %s", s.Status())
	}
	if s.Form() != (Form{}) {
		t.Errorf("fields should be cleared, got %+v", s.Form())
	}
	if got.ToName != "Tarun" || got.ReplyTo != "jane@example.com" {
		t.Errorf("unexpected relayed message %+v", got)
	}
	if s.ResetAfter() != SuccessResetDelay {
		t.Errorf("ResetAfter() = %v", s.ResetAfter())
	}

	if err := s.Reset(); err != nil || s.Status() != StatusIdle {
		t.Errorf("Reset() = %v, status %s", err, s.Status())
	}
	if s.ResetAfter() != 0 {
		t.Errorf("idle ResetAfter() = %v", s.ResetAfter())
	}
}

func TestSubmitFailurePreservesFields(t *testing.T) {
	boom := errors.New("relay down")
	calls := 0
	relay := RelayFunc(func(ctx context.Context, msg Message) error {
		calls++
		if calls == 1 {
			return boom
		}
		return nil
	})

	s := NewSubmission(sampleForm)
	err := s.Submit(context.Background(), relay, "Tarun")
	if !errors.Is(err, boom) {
		t.Fatalf("expected relay error, got %v", err)
	}
	if s.Status() != StatusError {
		t.Errorf("expected error status, got %s", s.Status())
	}
	if s.Form() != sampleForm {
		t.Errorf("fields should be preserved, got %+v", s.Form())
	}
	if !errors.Is(s.Err(), boom) {
		t.Errorf("Err() = %v", s.Err())
	}
	if s.ResetAfter() != ErrorResetDelay {
		t.Errorf("ResetAfter() = %v", s.ResetAfter())
	}

	// Resubmission from the error state recovers.
	if err := s.Submit(context.Background(), relay, "Tarun"); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if s.Status() != StatusSuccess || s.Err() != nil {
		t.Errorf("retry status %s, err %v", s.Status(), s.Err())
	}
}

func TestSubmitFromSuccessIsRejected(t *testing.T) {
	s := NewSubmission(sampleForm)
	ok := RelayFunc(func(context.Context, Message) error { return nil })
	if err := s.Submit(context.Background(), ok, "Tarun"); err != nil {
		t.Fatal(err)
	}
	if err := s.Submit(context.Background(), ok, "Tarun"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestReject(t *testing.T) {
	s := NewSubmission(sampleForm)
	reason := errors.New("email invalid")
	if err := s.Reject(reason); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if s.Status() != StatusError || s.Form() != sampleForm || s.Err() != reason {
		t.Errorf("unexpected state after Reject: %s %+v %v", s.Status(), s.Form(), s.Err())
	}
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusIdle, StatusSubmitting, true},
		{StatusIdle, StatusSuccess, false},
		{StatusIdle, StatusError, false},
		{StatusSubmitting, StatusSuccess, true},
		{StatusSubmitting, StatusError, true},
		{StatusSubmitting, StatusIdle, false},
		{StatusSuccess, StatusIdle, true},
		{StatusSuccess, StatusSubmitting, false},
		{StatusError, StatusIdle, true},
		{StatusError, StatusSubmitting, true},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.ok {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.ok)
		}
	}

	if err := NewSubmission(sampleForm).Reset(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Reset from idle should fail, got %v", err)
	}
	if Status(42).String() != "unknown" {
		t.Errorf("unexpected String() for unknown status")
	}
}

func emailJSConfig(endpoint string) config.EmailJSConfig {
	return config.EmailJSConfig{
		Endpoint:    endpoint,
		ServiceID:   "service_x",
		TemplateID:  "template_y",
		PublicKey:   "pub",
		AccessToken: "priv",
	}
}

func TestEmailJSRelay(t *testing.T) {
	var got emailJSRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	r := NewEmailJSRelay(emailJSConfig(srv.URL), time.Second)
	msg := sampleForm.ToMessage("Tarun")
	if err := r.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if got.ServiceID != "service_x" || got.TemplateID != "template_y" || got.UserID != "pub" || got.AccessToken != "priv" {
		t.Errorf("unexpected envelope %+v", got)
	}
	if got.TemplateParams != msg {
		t.Errorf("template params = %+v, want %+v", got.TemplateParams, msg)
	}
}

func TestEmailJSRelayErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("API calls are disabled for non-browser applications"))
	}))
	defer srv.Close()

	r := NewEmailJSRelay(emailJSConfig(srv.URL), time.Second)
	err := r.Send(context.Background(), sampleForm.ToMessage("Tarun"))
	if err == nil || !strings.Contains(err.Error(), "status 403") {
		t.Errorf("expected status error, got %v", err)
	}

	unconfigured := NewEmailJSRelay(config.EmailJSConfig{Endpoint: srv.URL}, time.Second)
	if err := unconfigured.Send(context.Background(), Message{}); !errors.Is(err, ErrRelayNotConfigured) {
		t.Errorf("expected ErrRelayNotConfigured, got %v", err)
	}
}

func TestSMTPRelay(t *testing.T) {
	cfg := config.SMTPConfig{Host: "smtp.example.com", Port: "587", User: "me@example.com", Password: "pw"}
	r := NewSMTPRelay(cfg)

	var addr, from string
	var to []string
	var raw []byte
	r.sendMail = func(a string, _ smtp.Auth, f string, rcpt []string, msg []byte) error {
		addr, from, to, raw = a, f, rcpt, msg
		return nil
	}

	msg := sampleForm.ToMessage("Tarun")
	msg.ReplyTo = "jane@example.com\r\nBcc: victim@example.com"
	if err := r.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if addr != "smtp.example.com:587" || from != "me@example.com" || len(to) != 1 || to[0] != "me@example.com" {
		t.Errorf("unexpected envelope addr=%s from=%s to=%v", addr, from, to)
	}
	body := string(raw)
	if !strings.Contains(body, "Subject: Portfolio Contact: Job Opportunity\r\n") {
		t.Errorf("missing subject header:\n%s", body)
	}
	if strings.Contains(body, "\r\nBcc:") {
		t.Errorf("header injection not neutralised:\n%s", body)
	}
	if !strings.Contains(body, "Name: Jane Doe") {
		t.Errorf("missing body fields:\n%s", body)
	}
}

func TestSMTPRelayErrors(t *testing.T) {
	if err := NewSMTPRelay(config.SMTPConfig{Host: "h", Port: "25"}).Send(context.Background(), Message{}); !errors.Is(err, ErrRelayNotConfigured) {
		t.Errorf("expected ErrRelayNotConfigured, got %v", err)
	}

	r := NewSMTPRelay(config.SMTPConfig{Host: "h", Port: "25", User: "u", Password: "p", To: "owner@example.com"})
	r.sendMail = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("535 auth failed") }
	if err := r.Send(context.Background(), Message{}); err == nil || !strings.Contains(err.Error(), "535") {
		t.Errorf("expected send error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Send(ctx, Message{}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestNewRelay(t *testing.T) {
	cfg := config.DefaultConfig().Contact
	r, err := NewRelay(cfg)
	if err != nil {
		t.Fatalf("NewRelay: %v", err)
	}
	if _, ok := r.(*EmailJSRelay); !ok {
		t.Errorf("expected EmailJS relay by default, got %T", r)
	}

	cfg.Relay = config.RelaySMTP
	if r, _ := NewRelay(cfg); r == nil {
		t.Error("expected SMTP relay")
	} else if _, ok := r.(*SMTPRelay); !ok {
		t.Errorf("expected SMTP relay, got %T", r)
	}

	cfg.Relay = "pigeon"
	if _, err := NewRelay(cfg); err == nil {
		t.Error("expected error for unknown relay")
	}
}
