package screen

import (
	"context"
	"strings"
	"sync"

	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/internal/session"
	"github.com/kart-io/skillswap/internal/store"
	"github.com/kart-io/skillswap/pkg/utils/errors"
)

// SkillKind selects which of the two skill lists an edit targets.
type SkillKind string

const (
	SkillsOffered SkillKind = "offered"
	SkillsWanted  SkillKind = "wanted"
)

// ProfileScreen edits the signed-in user's profile on a working copy.
// Nothing is persisted until Save.
type ProfileScreen struct {
	mu      sync.Mutex
	users   store.UserStore
	session *session.Session
	toast   Toaster

	profile *model.User
	dirty   bool
}

// NewProfileScreen creates an empty screen; call Load before editing.
func NewProfileScreen(users store.UserStore, sess *session.Session, toast Toaster) *ProfileScreen {
	return &ProfileScreen{users: users, session: sess, toast: toast}
}

// Load fetches a fresh copy of the signed-in user's profile, discarding any
// unsaved edits.
func (s *ProfileScreen) Load(ctx context.Context) error {
	current := s.session.Current()
	if current == nil {
		return errors.ErrUnauthorized
	}
	user, err := s.users.Get(ctx, current.ID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *user
	copied.SkillsOffered = append(model.StringList{}, user.SkillsOffered...)
	copied.SkillsWanted = append(model.StringList{}, user.SkillsWanted...)
	s.profile = &copied
	s.dirty = false
	return nil
}

// Profile returns the working copy, or nil before Load.
func (s *ProfileScreen) Profile() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Dirty reports whether there are unsaved edits.
func (s *ProfileScreen) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// SetLocation updates the location field.
func (s *ProfileScreen) SetLocation(location string) {
	s.edit(func(u *model.User) { u.Location = location })
}

// SetAvailability updates the availability field.
func (s *ProfileScreen) SetAvailability(availability string) {
	s.edit(func(u *model.User) { u.Availability = availability })
}

// ToggleVisibility flips the profile between public and private.
func (s *ProfileScreen) ToggleVisibility() {
	s.edit(func(u *model.User) { u.IsPublic = !u.IsPublic })
}

// AddSkill appends a skill to the chosen list. The value is trimmed;
// empties and duplicates are ignored.
func (s *ProfileScreen) AddSkill(kind SkillKind, skill string) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return
	}
	s.edit(func(u *model.User) {
		list := s.listOf(u, kind)
		if list.Contains(skill) {
			return
		}
		*list = append(*list, skill)
	})
}

// RemoveSkill deletes the skill at index from the chosen list. An index out
// of range is ignored.
func (s *ProfileScreen) RemoveSkill(kind SkillKind, index int) {
	s.edit(func(u *model.User) {
		list := s.listOf(u, kind)
		if index < 0 || index >= len(*list) {
			return
		}
		*list = append((*list)[:index], (*list)[index+1:]...)
	})
}

func (s *ProfileScreen) listOf(u *model.User, kind SkillKind) *model.StringList {
	if kind == SkillsWanted {
		return &u.SkillsWanted
	}
	return &u.SkillsOffered
}

func (s *ProfileScreen) edit(apply func(*model.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return
	}
	apply(s.profile)
	s.dirty = true
}

// Save persists the working copy and refreshes the session's cached user.
func (s *ProfileScreen) Save(ctx context.Context) error {
	s.mu.Lock()
	profile := s.profile
	s.mu.Unlock()

	if profile == nil {
		return errors.ErrUnauthorized
	}
	if err := s.users.Update(ctx, profile); err != nil {
		s.toast.Show(errors.FromError(err).MessageEN, ToastError)
		return err
	}
	if err := s.session.UpdateUser(profile); err != nil {
		return err
	}

	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()
	s.toast.Show("Profile updated", ToastSuccess)
	return nil
}
