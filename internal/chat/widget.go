package chat

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/Tarun-surendra/portfolio/internal/content"
)

// Widget is one visitor's conversation: a transcript seeded with the
// greeting, and at most one reply pending at a time.
type Widget struct {
	service     *Service
	transcript  *Transcript
	suggestions []string
	loading     atomic.Bool
}

// NewWidget opens a conversation backed by service.
func NewWidget(service *Service, script content.ChatScript) *Widget {
	return &Widget{
		service:     service,
		transcript:  NewTranscript(Turn{Role: RoleAssistant, Content: script.Greeting}),
		suggestions: script.Suggestions,
	}
}

// Send appends the user's turn, waits for the reply, and appends it. It
// returns ErrBusy while another Send is outstanding and ErrEmptyMessage for
// blank input; neither changes the transcript.
func (w *Widget) Send(ctx context.Context, text string) (Turn, error) {
	msg := strings.TrimSpace(text)
	if msg == "" {
		return Turn{}, ErrEmptyMessage
	}
	if !w.loading.CompareAndSwap(false, true) {
		return Turn{}, ErrBusy
	}
	defer w.loading.Store(false)

	w.transcript.Append(Turn{Role: RoleUser, Content: msg})
	reply := w.service.Answer(ctx, w.transcript.Turns())
	w.transcript.Append(reply)
	return reply, nil
}

// Loading reports whether a reply is pending.
func (w *Widget) Loading() bool {
	return w.loading.Load()
}

// Turns returns a copy of the conversation so far.
func (w *Widget) Turns() []Turn {
	return w.transcript.Turns()
}

// Suggestions returns the starter questions, which are offered only before
// the visitor has said anything.
func (w *Widget) Suggestions() []string {
	if w.transcript.Len() > 1 {
		return nil
	}
	return w.suggestions
}
