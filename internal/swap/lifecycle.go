// Package swap implements the lifecycle state machine for swap requests.
//
// States: pending -> accepted | rejected; accepted -> completed. Rejected and
// completed are terminal. Every transition is guarded by the acting user's
// role in the request; an illegal (state, actor) pair is reported as a
// structured error, never silently ignored.
package swap

import (
	"time"

	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/pkg/utils/errors"
)

// Clock supplies the current time. Injectable for tests.
type Clock func() time.Time

// Lifecycle applies guarded transitions to swap requests.
type Lifecycle struct {
	now Clock
}

// Option configures a Lifecycle.
type Option func(*Lifecycle)

// WithClock overrides the time source.
func WithClock(c Clock) Option {
	return func(l *Lifecycle) { l.now = c }
}

// New creates a Lifecycle.
func New(opts ...Option) *Lifecycle {
	l := &Lifecycle{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Accept moves a pending request to accepted. Provider only.
func (l *Lifecycle) Accept(req *model.SwapRequest, actorID string) error {
	if err := l.guard(req, actorID, model.StatusPending, model.RoleProvider); err != nil {
		return err
	}
	req.Status = model.StatusAccepted
	return nil
}

// Reject moves a pending request to rejected. Provider only. Terminal.
func (l *Lifecycle) Reject(req *model.SwapRequest, actorID string) error {
	if err := l.guard(req, actorID, model.StatusPending, model.RoleProvider); err != nil {
		return err
	}
	req.Status = model.StatusRejected
	return nil
}

// Complete moves an accepted request to completed and stamps CompletedAt.
// Either participant may complete. Terminal.
func (l *Lifecycle) Complete(req *model.SwapRequest, actorID string) error {
	role := req.RoleOf(actorID)
	if role == model.RoleNone {
		return errors.ErrNotParticipant
	}
	if req.Status != model.StatusAccepted {
		return errors.ErrInvalidTransition.WithMessagef(
			"cannot complete a %s request", req.Status)
	}

	now := l.now()
	req.Status = model.StatusCompleted
	req.CompletedAt = &now
	return nil
}

// SubmitFeedback attaches the single post-completion feedback to a completed
// request. Either participant may submit; rating is mandatory (1-5), comment
// optional. A second submission is rejected.
func (l *Lifecycle) SubmitFeedback(req *model.SwapRequest, actorID string, rating int, comment string) error {
	if req.RoleOf(actorID) == model.RoleNone {
		return errors.ErrNotParticipant
	}
	if req.Status != model.StatusCompleted {
		return errors.ErrInvalidTransition.WithMessagef(
			"cannot submit feedback for a %s request", req.Status)
	}
	if req.FeedbackGiven {
		return errors.ErrFeedbackSubmitted
	}
	if rating < 1 || rating > 5 {
		return errors.ErrInvalidRating
	}

	req.Feedback = &model.Feedback{Rating: rating, Comment: comment}
	req.FeedbackGiven = true
	return nil
}

// SkipFeedback records that the actor declined to leave feedback. The request
// stays completed with feedback permanently unset; there is no retry path.
func (l *Lifecycle) SkipFeedback(req *model.SwapRequest, actorID string) error {
	if req.RoleOf(actorID) == model.RoleNone {
		return errors.ErrNotParticipant
	}
	if req.Status != model.StatusCompleted {
		return errors.ErrInvalidTransition.WithMessagef(
			"cannot skip feedback for a %s request", req.Status)
	}
	return nil
}

// guard validates a provider-gated transition out of the given state.
func (l *Lifecycle) guard(req *model.SwapRequest, actorID string, from model.Status, want model.Role) error {
	role := req.RoleOf(actorID)
	if role == model.RoleNone {
		return errors.ErrNotParticipant
	}
	if req.Status != from {
		return errors.ErrInvalidTransition.WithMessagef(
			"request is %s, expected %s", req.Status, from)
	}
	if role != want {
		return errors.ErrInvalidTransition.WithMessage(
			"only the provider can act on a pending request")
	}
	return nil
}
