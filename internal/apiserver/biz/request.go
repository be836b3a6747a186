package biz

import (
	"context"
	"time"

	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/internal/store"
	"github.com/kart-io/skillswap/internal/swap"
	"github.com/kart-io/skillswap/pkg/utils/errors"
	"github.com/kart-io/skillswap/pkg/utils/id"
)

// RequestService owns swap requests and their lifecycle.
type RequestService struct {
	store     store.Factory
	lifecycle *swap.Lifecycle
}

// NewRequestService creates a RequestService.
func NewRequestService(f store.Factory, lc *swap.Lifecycle) *RequestService {
	return &RequestService{store: f, lifecycle: lc}
}

// CreateRequestInput is the payload for opening a new swap request.
type CreateRequestInput struct {
	ProviderID     string `json:"provider_id" validate:"required"`
	RequestedSkill string `json:"requested_skill" validate:"required,max=128"`
	OfferedSkill   string `json:"offered_skill" validate:"required,max=128"`
	Message        string `json:"message" validate:"max=2048"`
}

// Create opens a pending request from requesterID to the provider, and drops
// a notification into the provider's inbox.
func (s *RequestService) Create(ctx context.Context, requesterID string, in *CreateRequestInput) (*model.SwapRequest, error) {
	if requesterID == in.ProviderID {
		return nil, errors.ErrInvalidParam.WithMessage("cannot request a swap with yourself")
	}
	if _, err := s.store.Users().Get(ctx, in.ProviderID); err != nil {
		return nil, err
	}

	req := &model.SwapRequest{
		ID:             id.NewID(),
		RequesterID:    requesterID,
		ProviderID:     in.ProviderID,
		RequestedSkill: in.RequestedSkill,
		OfferedSkill:   in.OfferedSkill,
		Status:         model.StatusPending,
		Message:        in.Message,
		CreatedAt:      time.Now(),
	}
	if err := s.store.Requests().Create(ctx, req); err != nil {
		return nil, err
	}

	n := &model.Notification{
		ID:           id.NewID(),
		Type:         model.NotificationSwapRequest,
		RecipientID:  in.ProviderID,
		FromID:       requesterID,
		RequestID:    req.ID,
		SkillOffered: in.OfferedSkill,
		SkillWanted:  in.RequestedSkill,
		Message:      in.Message,
		Status:       model.StatusPending,
		CreatedAt:    req.CreatedAt,
	}
	if err := s.store.Notifications().Create(ctx, n); err != nil {
		return nil, err
	}
	return req, nil
}

// Get returns one request. Only participants may see it.
func (s *RequestService) Get(ctx context.Context, requestID, viewerID string) (*model.SwapRequest, error) {
	req, err := s.store.Requests().Get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.RoleOf(viewerID) == model.RoleNone {
		return nil, errors.ErrNotParticipant
	}
	return s.withParticipants(ctx, req)
}

// ListMine returns every request the user participates in, newest first.
func (s *RequestService) ListMine(ctx context.Context, userID string) ([]*model.SwapRequest, error) {
	return s.store.Requests().ListByParticipant(ctx, userID)
}

// Accept transitions a pending request to accepted.
func (s *RequestService) Accept(ctx context.Context, requestID, actorID string) (*model.SwapRequest, error) {
	return s.transition(ctx, requestID, actorID, s.lifecycle.Accept)
}

// Reject transitions a pending request to rejected.
func (s *RequestService) Reject(ctx context.Context, requestID, actorID string) (*model.SwapRequest, error) {
	return s.transition(ctx, requestID, actorID, s.lifecycle.Reject)
}

// Complete marks an accepted request's session as done.
func (s *RequestService) Complete(ctx context.Context, requestID, actorID string) (*model.SwapRequest, error) {
	return s.transition(ctx, requestID, actorID, s.lifecycle.Complete)
}

// SubmitFeedback attaches the one-time feedback to a completed request.
func (s *RequestService) SubmitFeedback(ctx context.Context, requestID, actorID string, rating int, comment string) (*model.SwapRequest, error) {
	req, err := s.store.Requests().Get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := s.lifecycle.SubmitFeedback(req, actorID, rating, comment); err != nil {
		return nil, err
	}
	if err := s.store.Requests().Update(ctx, req); err != nil {
		return nil, err
	}
	return s.withParticipants(ctx, req)
}

func (s *RequestService) transition(ctx context.Context, requestID, actorID string, apply func(*model.SwapRequest, string) error) (*model.SwapRequest, error) {
	req, err := s.store.Requests().Get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := apply(req, actorID); err != nil {
		return nil, err
	}
	if err := s.store.Requests().Update(ctx, req); err != nil {
		return nil, err
	}
	return s.withParticipants(ctx, req)
}

// withParticipants fills the requester and provider for the response.
func (s *RequestService) withParticipants(ctx context.Context, req *model.SwapRequest) (*model.SwapRequest, error) {
	if req.Requester == nil {
		if u, err := s.store.Users().Get(ctx, req.RequesterID); err == nil {
			req.Requester = u
		}
	}
	if req.Provider == nil {
		if u, err := s.store.Users().Get(ctx, req.ProviderID); err == nil {
			req.Provider = u
		}
	}
	return req, nil
}
