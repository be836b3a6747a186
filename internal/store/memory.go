package store

import (
	"context"
	"sort"
	"strings"

	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/pkg/cache"
	"github.com/kart-io/skillswap/pkg/utils/errors"
)

const indexAvailability = "availability"

// memoryFactory keeps everything in process. It backs tests and the demo
// server when no database is configured.
type memoryFactory struct {
	users         *userMemoryStore
	requests      *requestMemoryStore
	notifications *notificationMemoryStore
}

// NewMemory creates an empty in-memory Factory.
func NewMemory() Factory {
	users := cache.NewMemoryCache[string, *model.User]()
	users.AddIndex(indexAvailability, func(u *model.User) any { return u.Availability })

	return &memoryFactory{
		users:         &userMemoryStore{cache: users},
		requests:      &requestMemoryStore{cache: cache.NewMemoryCache[string, *model.SwapRequest]()},
		notifications: &notificationMemoryStore{cache: cache.NewMemoryCache[string, *model.Notification]()},
	}
}

func (f *memoryFactory) Users() UserStore                 { return f.users }
func (f *memoryFactory) Requests() RequestStore           { return f.requests }
func (f *memoryFactory) Notifications() NotificationStore { return f.notifications }
func (f *memoryFactory) Close() error                     { return nil }

type userMemoryStore struct {
	cache *cache.MemoryCache[string, *model.User]
}

func (s *userMemoryStore) Create(_ context.Context, user *model.User) error {
	if _, err := s.byEmail(user.Email); err == nil {
		return errors.ErrEmailTaken
	}
	s.cache.Set(user.ID, user)
	return nil
}

func (s *userMemoryStore) Get(_ context.Context, id string) (*model.User, error) {
	u, ok := s.cache.Get(id)
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	return u, nil
}

func (s *userMemoryStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	return s.byEmail(email)
}

func (s *userMemoryStore) byEmail(email string) (*model.User, error) {
	matches := s.cache.Filter(func(u *model.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if len(matches) == 0 {
		return nil, errors.ErrUserNotFound
	}
	return matches[0], nil
}

func (s *userMemoryStore) Update(_ context.Context, user *model.User) error {
	if _, ok := s.cache.Get(user.ID); !ok {
		return errors.ErrUserNotFound
	}
	s.cache.Set(user.ID, user)
	return nil
}

// List serves the member directory: public profiles only, stable order.
func (s *userMemoryStore) List(_ context.Context, opts ListUsersOptions) ([]*model.User, int64, error) {
	var candidates []*model.User
	if opts.Availability != "" && opts.Availability != "all" {
		found, err := s.cache.Find(indexAvailability, opts.Availability)
		if err != nil {
			return nil, 0, err
		}
		candidates = found
	} else {
		candidates = s.cache.Values()
	}

	matched := make([]*model.User, 0, len(candidates))
	for _, u := range candidates {
		if !u.IsPublic || u.ID == opts.ExcludeID {
			continue
		}
		if opts.Search != "" && !matchesSearch(u, opts.Search) {
			continue
		}
		matched = append(matched, u)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt != matched[j].CreatedAt {
			return matched[i].CreatedAt < matched[j].CreatedAt
		}
		return matched[i].ID < matched[j].ID
	})

	total := int64(len(matched))
	return paginate(matched, opts.Offset, opts.Limit), total, nil
}

// matchesSearch checks the display name and both skill lists, case-insensitively.
func matchesSearch(u *model.User, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(u.Name()), q) {
		return true
	}
	for _, skill := range u.SkillsOffered {
		if strings.Contains(strings.ToLower(skill), q) {
			return true
		}
	}
	for _, skill := range u.SkillsWanted {
		if strings.Contains(strings.ToLower(skill), q) {
			return true
		}
	}
	return false
}

type requestMemoryStore struct {
	cache *cache.MemoryCache[string, *model.SwapRequest]
}

func (s *requestMemoryStore) Create(_ context.Context, req *model.SwapRequest) error {
	s.cache.Set(req.ID, req)
	return nil
}

func (s *requestMemoryStore) Get(_ context.Context, id string) (*model.SwapRequest, error) {
	r, ok := s.cache.Get(id)
	if !ok {
		return nil, errors.ErrRequestNotFound
	}
	return r, nil
}

func (s *requestMemoryStore) Update(_ context.Context, req *model.SwapRequest) error {
	if _, ok := s.cache.Get(req.ID); !ok {
		return errors.ErrRequestNotFound
	}
	s.cache.Set(req.ID, req)
	return nil
}

func (s *requestMemoryStore) ListByParticipant(_ context.Context, userID string) ([]*model.SwapRequest, error) {
	matched := s.cache.Filter(func(r *model.SwapRequest) bool {
		return r.RoleOf(userID) != model.RoleNone
	})
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

type notificationMemoryStore struct {
	cache *cache.MemoryCache[string, *model.Notification]
}

func (s *notificationMemoryStore) Create(_ context.Context, n *model.Notification) error {
	s.cache.Set(n.ID, n)
	return nil
}

func (s *notificationMemoryStore) Get(_ context.Context, id string) (*model.Notification, error) {
	n, ok := s.cache.Get(id)
	if !ok {
		return nil, errors.ErrNotFound
	}
	return n, nil
}

func (s *notificationMemoryStore) Update(_ context.Context, n *model.Notification) error {
	if _, ok := s.cache.Get(n.ID); !ok {
		return errors.ErrNotFound
	}
	s.cache.Set(n.ID, n)
	return nil
}

// List returns the recipient's inbox, newest first.
func (s *notificationMemoryStore) List(_ context.Context, opts ListNotificationsOptions) ([]*model.Notification, int64, error) {
	matched := s.cache.Filter(func(n *model.Notification) bool {
		if n.RecipientID != opts.RecipientID {
			return false
		}
		if opts.Status != "" && opts.Status != "all" && string(n.Status) != opts.Status {
			return false
		}
		return true
	})

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	total := int64(len(matched))
	return paginate(matched, opts.Offset, opts.Limit), total, nil
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
