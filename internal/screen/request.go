package screen

import (
	"context"
	"sync"

	"github.com/kart-io/skillswap/internal/apiclient"
	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/internal/session"
	"github.com/kart-io/skillswap/internal/swap"
	"github.com/kart-io/skillswap/pkg/utils/errors"
)

// RequestScreen shows one swap request and drives its lifecycle. Completing
// a session opens the feedback dialog; the dialog state lives here.
type RequestScreen struct {
	mu        sync.Mutex
	api       *apiclient.Client
	lifecycle *swap.Lifecycle
	session   *session.Session
	toast     Toaster

	request *model.SwapRequest
	loading bool

	feedbackOpen    bool
	feedbackRating  int
	feedbackComment string
}

// NewRequestScreen creates an empty screen; call Load before anything else.
func NewRequestScreen(api *apiclient.Client, lc *swap.Lifecycle, sess *session.Session, toast Toaster) *RequestScreen {
	return &RequestScreen{api: api, lifecycle: lc, session: sess, toast: toast}
}

// Load fetches the request by id.
func (s *RequestScreen) Load(ctx context.Context, id string) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	req, err := s.api.FetchRequest(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.toast.Show(err.Error(), ToastError)
		return err
	}
	s.request = req
	s.feedbackOpen = false
	s.feedbackRating = 0
	s.feedbackComment = ""
	return nil
}

// Request returns the loaded request, or nil.
func (s *RequestScreen) Request() *model.SwapRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.request
}

// Loading reports whether a fetch is in flight.
func (s *RequestScreen) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Role returns the signed-in user's role in the loaded request.
func (s *RequestScreen) Role() model.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roleLocked()
}

func (s *RequestScreen) roleLocked() model.Role {
	current := s.session.Current()
	if current == nil || s.request == nil {
		return model.RoleNone
	}
	return s.request.RoleOf(current.ID)
}

// CanAccept reports whether the accept action should be offered.
func (s *RequestScreen) CanAccept() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.request != nil &&
		s.request.Status == model.StatusPending &&
		s.roleLocked() == model.RoleProvider
}

// CanReject reports whether the reject action should be offered.
func (s *RequestScreen) CanReject() bool {
	return s.CanAccept()
}

// CanComplete reports whether the complete action should be offered.
func (s *RequestScreen) CanComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.request != nil &&
		s.request.Status == model.StatusAccepted &&
		s.roleLocked() != model.RoleNone
}

// Accept accepts the loaded request.
func (s *RequestScreen) Accept() error {
	return s.transition(func(req *model.SwapRequest, actorID string) error {
		return s.lifecycle.Accept(req, actorID)
	}, "Request accepted")
}

// Reject declines the loaded request.
func (s *RequestScreen) Reject() error {
	return s.transition(func(req *model.SwapRequest, actorID string) error {
		return s.lifecycle.Reject(req, actorID)
	}, "Request rejected")
}

// Complete marks the session as done and opens the feedback dialog.
func (s *RequestScreen) Complete() error {
	err := s.transition(func(req *model.SwapRequest, actorID string) error {
		return s.lifecycle.Complete(req, actorID)
	}, "Session completed")
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.feedbackOpen = true
	s.mu.Unlock()
	return nil
}

func (s *RequestScreen) transition(apply func(*model.SwapRequest, string) error, toast string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.session.Current()
	if current == nil {
		return errors.ErrUnauthorized
	}
	if s.request == nil {
		return errors.ErrRequestNotFound
	}
	if err := apply(s.request, current.ID); err != nil {
		s.toast.Show(errors.FromError(err).MessageEN, ToastError)
		return err
	}
	s.toast.Show(toast, ToastSuccess)
	return nil
}

// FeedbackOpen reports whether the feedback dialog is showing.
func (s *RequestScreen) FeedbackOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feedbackOpen
}

// SetRating records the selected star rating.
func (s *RequestScreen) SetRating(rating int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedbackRating = rating
}

// SetComment records the feedback text.
func (s *RequestScreen) SetComment(comment string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedbackComment = comment
}

// SubmitFeedback attaches the dialog's rating and comment to the request
// and closes the dialog.
func (s *RequestScreen) SubmitFeedback() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.session.Current()
	if current == nil {
		return errors.ErrUnauthorized
	}
	if s.request == nil {
		return errors.ErrRequestNotFound
	}
	err := s.lifecycle.SubmitFeedback(s.request, current.ID, s.feedbackRating, s.feedbackComment)
	if err != nil {
		s.toast.Show(errors.FromError(err).MessageEN, ToastError)
		return err
	}
	s.feedbackOpen = false
	s.toast.Show("Thanks for your feedback!", ToastSuccess)
	return nil
}

// SkipFeedback closes the dialog without leaving feedback.
func (s *RequestScreen) SkipFeedback() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.session.Current()
	if current == nil {
		return errors.ErrUnauthorized
	}
	if s.request == nil {
		return errors.ErrRequestNotFound
	}
	if err := s.lifecycle.SkipFeedback(s.request, current.ID); err != nil {
		return err
	}
	s.feedbackOpen = false
	s.feedbackRating = 0
	s.feedbackComment = ""
	return nil
}
