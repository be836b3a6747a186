package biz

import (
	"context"
	"time"

	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/internal/store"
)

// UserService serves profiles and the member directory.
type UserService struct {
	store store.Factory
}

// NewUserService creates a UserService.
func NewUserService(f store.Factory) *UserService {
	return &UserService{store: f}
}

// Get returns one user by id.
func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.store.Users().Get(ctx, id)
}

// List serves the directory with the given filters.
func (s *UserService) List(ctx context.Context, opts store.ListUsersOptions) ([]*model.User, int64, error) {
	return s.store.Users().List(ctx, opts)
}

// UpdateProfile applies the caller's profile edits. Only profile fields are
// writable; identity and rating fields are preserved from the stored record.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, updated *model.User) (*model.User, error) {
	current, err := s.store.Users().Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	current.FirstName = updated.FirstName
	current.LastName = updated.LastName
	current.Location = updated.Location
	current.ProfilePhoto = updated.ProfilePhoto
	current.SkillsOffered = updated.SkillsOffered
	current.SkillsWanted = updated.SkillsWanted
	current.Availability = updated.Availability
	current.IsPublic = updated.IsPublic
	current.UpdatedAt = time.Now().UnixMilli()

	if err := s.store.Users().Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}
