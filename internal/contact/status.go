package contact

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Status is the contact form's display state.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

const (
	// SuccessResetDelay is how long the confirmation stays before the form returns.
	SuccessResetDelay = 6 * time.Second
	// ErrorResetDelay is how long the error banner stays.
	ErrorResetDelay = 5 * time.Second
)

var ErrInvalidTransition = errors.New("contact: invalid status transition")

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// An error display may be resubmitted directly; a success must go back to idle first.
var transitions = map[Status][]Status{
	StatusIdle:       {StatusSubmitting},
	StatusSubmitting: {StatusSuccess, StatusError},
	StatusSuccess:    {StatusIdle},
	StatusError:      {StatusIdle, StatusSubmitting},
}

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Submission tracks one form through idle -> submitting -> {success, error} -> idle.
// It is not safe for concurrent use.
type Submission struct {
	form   Form
	status Status
	err    error
}

// NewSubmission starts an idle submission holding form.
func NewSubmission(form Form) *Submission {
	return &Submission{form: form}
}

func (s *Submission) Status() Status { return s.status }

// Form returns the current field values: cleared after success, preserved otherwise.
func (s *Submission) Form() Form { return s.form }

// Err returns the failure behind StatusError.
func (s *Submission) Err() error { return s.err }

func (s *Submission) transition(to Status) error {
	if !CanTransition(s.status, to) {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", s.status, to)
	}
	s.status = to
	return nil
}

// Submit relays the form. On success the fields are cleared; on failure they
// are kept for a retry and the relay error is returned.
func (s *Submission) Submit(ctx context.Context, relay Relay, toName string) error {
	if err := s.transition(StatusSubmitting); err != nil {
		return err
	}

	if err := relay.Send(ctx, s.form.ToMessage(toName)); err != nil {
		s.err = err
		s.status = StatusError
		return errors.Wrap(err, "relaying contact message")
	}

	s.err = nil
	s.status = StatusSuccess
	s.form = Form{}
	return nil
}

// Reject fails the submission without contacting the relay, keeping the fields.
func (s *Submission) Reject(reason error) error {
	if err := s.transition(StatusSubmitting); err != nil {
		return err
	}
	s.err = reason
	s.status = StatusError
	return nil
}

// Reset returns a finished submission to idle.
func (s *Submission) Reset() error {
	if err := s.transition(StatusIdle); err != nil {
		return err
	}
	s.err = nil
	return nil
}

// ResetAfter is how long the current status is shown before returning to idle.
// It is zero for idle and submitting.
func (s *Submission) ResetAfter() time.Duration {
	switch s.status {
	case StatusSuccess:
		return SuccessResetDelay
	case StatusError:
		return ErrorResetDelay
	default:
		return 0
	}
}
