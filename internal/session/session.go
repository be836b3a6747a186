// Package session holds the authenticated user's token and profile across
// restarts. It mirrors the two-slot layout used by the web client: one key
// for the bearer token, one for the serialized user.
package session

import (
	"sync"

	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/pkg/utils/json"
)

const (
	// Storage keys. Changing them invalidates every existing session.
	KeyToken = "auth_token"
	KeyUser  = "auth_user"
)

// Session caches the current identity in memory and writes every mutation
// through to the backing KV. Safe for concurrent use.
type Session struct {
	mu    sync.RWMutex
	kv    KV
	token string
	user  *model.User
}

// New creates a Session over kv and hydrates it from whatever the store
// already holds. A token without a parseable user (or vice versa) is treated
// as corrupt and both slots are cleared.
func New(kv KV) *Session {
	s := &Session{kv: kv}
	s.hydrate()
	return s
}

func (s *Session) hydrate() {
	token, okT := s.kv.Get(KeyToken)
	raw, okU := s.kv.Get(KeyUser)
	if !okT || !okU {
		if okT || okU {
			s.clear()
		}
		return
	}

	var user model.User
	if err := json.UnmarshalString(raw, &user); err != nil || user.ID == "" {
		s.clear()
		return
	}
	s.token = token
	s.user = &user
}

// Login stores the credentials from a successful authentication.
func (s *Session) Login(token string, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalString(user)
	if err != nil {
		return err
	}
	if err := s.kv.Set(KeyToken, token); err != nil {
		return err
	}
	if err := s.kv.Set(KeyUser, raw); err != nil {
		return err
	}
	s.token = token
	s.user = user
	return nil
}

// Logout drops the identity from memory and the store.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear()
}

func (s *Session) clear() {
	_ = s.kv.Delete(KeyToken)
	_ = s.kv.Delete(KeyUser)
	s.token = ""
	s.user = nil
}

// UpdateUser replaces the stored profile, keeping the token. No-op when
// logged out.
func (s *Session) UpdateUser(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return nil
	}
	raw, err := json.MarshalString(user)
	if err != nil {
		return err
	}
	if err := s.kv.Set(KeyUser, raw); err != nil {
		return err
	}
	s.user = user
	return nil
}

// Current returns the logged-in user, or nil.
func (s *Session) Current() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token returns the bearer token, or "".
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a user is logged in.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}
