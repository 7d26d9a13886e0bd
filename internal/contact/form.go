// Package contact relays the portfolio's contact form to a mail service.
package contact

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrIncomplete rejects a form with a field that is blank after trimming.
var ErrIncomplete = errors.New("contact: all fields are required")

// Form is the visitor-supplied part of a contact submission.
type Form struct {
	Name    string `form:"name" json:"name" binding:"required,max=100"`
	Email   string `form:"email" json:"email" binding:"required,email,max=254"`
	Subject string `form:"subject" json:"subject" binding:"required,max=200"`
	Message string `form:"message" json:"message" binding:"required,max=5000"`
}

// Trimmed returns the form with surrounding whitespace removed from every field.
func (f Form) Trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// Complete reports whether all four fields have content.
func (f Form) Complete() bool {
	t := f.Trimmed()
	return t.Name != "" && t.Email != "" && t.Subject != "" && t.Message != ""
}

// Message is the payload handed to a Relay.
type Message struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	ToName    string `json:"to_name"`
	ReplyTo   string `json:"reply_to"`
}

// ToMessage addresses the form to toName. Replies go to the visitor.
func (f Form) ToMessage(toName string) Message {
	t := f.Trimmed()
	return Message{
		FromName:  t.Name,
		FromEmail: t.Email,
		Subject:   t.Subject,
		Message:   t.Message,
		ToName:    toName,
		ReplyTo:   t.Email,
	}
}
