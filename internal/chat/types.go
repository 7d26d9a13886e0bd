// Package chat produces the floating widget's replies, either from a
// hosted completion service or from a local table of canned answers.
package chat

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Role tags the author of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

const (
	// MaxTurns bounds the transcript answered for a client. Longer
	// transcripts are cut to their trailing window.
	MaxTurns = 50
	// MaxTurnLength bounds a single turn, in bytes.
	MaxTurnLength = 2000
)

var (
	ErrEmptyMessage  = errors.New("chat: message is empty")
	ErrBusy          = errors.New("chat: a reply is already pending")
	ErrBadTranscript = errors.New("chat: invalid transcript")
)

// Turn is one role-tagged message of a conversation.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Transcript is an append-only, ordered list of turns. It is safe for
// concurrent use.
type Transcript struct {
	mu    sync.RWMutex
	turns []Turn
}

// NewTranscript returns a transcript seeded with the given turns.
func NewTranscript(seed ...Turn) *Transcript {
	t := &Transcript{}
	t.turns = append(t.turns, seed...)
	return t
}

// Append adds a turn to the end of the transcript.
func (t *Transcript) Append(turn Turn) {
	t.mu.Lock()
	t.turns = append(t.turns, turn)
	t.mu.Unlock()
}

// Turns returns a copy of the transcript.
func (t *Transcript) Turns() []Turn {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len returns the number of turns.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.turns)
}

// Last returns the most recent turn and false when the transcript is empty.
func (t *Transcript) Last() (Turn, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.turns) == 0 {
		return Turn{}, false
	}
	return t.turns[len(t.turns)-1], true
}

// Validate checks a client-supplied transcript: known roles, non-empty
// bounded turns, and a user turn last.
func Validate(turns []Turn) error {
	if len(turns) == 0 {
		return errors.Wrap(ErrBadTranscript, "no turns")
	}
	if len(turns) > MaxTurns {
		return errors.Wrapf(ErrBadTranscript, "%d turns exceeds limit of %d", len(turns), MaxTurns)
	}
	for i, t := range turns {
		if t.Role != RoleUser && t.Role != RoleAssistant {
			return errors.Wrapf(ErrBadTranscript, "turn %d has unknown role %q", i, t.Role)
		}
		if strings.TrimSpace(t.Content) == "" {
			return errors.Wrapf(ErrBadTranscript, "turn %d is empty", i)
		}
		if len(t.Content) > MaxTurnLength {
			return errors.Wrapf(ErrBadTranscript, "turn %d exceeds %d bytes", i, MaxTurnLength)
		}
	}
	if turns[len(turns)-1].Role != RoleUser {
		return errors.Wrap(ErrBadTranscript, "last turn must be from the user")
	}
	return nil
}

// Window returns the trailing MaxTurns turns of turns, trimmed to open on a
// user turn. Shorter transcripts are returned unchanged.
func Window(turns []Turn) []Turn {
	if len(turns) <= MaxTurns {
		return turns
	}
	tail := turns[len(turns)-MaxTurns:]
	if c := conversation(tail); c != nil {
		return c
	}
	return tail
}

// lastUser returns the content of the most recent user turn.
func lastUser(turns []Turn) string {
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == RoleUser {
			return turns[i].Content
		}
	}
	return ""
}

// conversation drops leading assistant turns such as the widget greeting;
// hosted APIs expect the conversation to open with a user turn.
func conversation(turns []Turn) []Turn {
	for i, t := range turns {
		if t.Role == RoleUser {
			return turns[i:]
		}
	}
	return nil
}
