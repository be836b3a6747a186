package screen

import (
	"context"
	"sync"

	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/internal/session"
	"github.com/kart-io/skillswap/internal/store"
)

// DirectoryPageSize is how many member cards one page shows.
const DirectoryPageSize = 3

// AvailabilityOptions are the filter choices offered by the directory.
var AvailabilityOptions = []string{"All", "Weekends", "Evenings", "Weekdays", "Flexible"}

// DirectoryPage is one rendered page of the member directory.
type DirectoryPage struct {
	Users      []*model.User
	Total      int64
	Page       int
	TotalPages int
}

// HomeScreen drives the searchable, filterable member directory.
type HomeScreen struct {
	mu      sync.Mutex
	users   store.UserStore
	session *session.Session

	search       string
	availability string
	page         int
}

// NewHomeScreen creates the screen showing page one, unfiltered.
func NewHomeScreen(users store.UserStore, sess *session.Session) *HomeScreen {
	return &HomeScreen{
		users:        users,
		session:      sess,
		availability: "All",
		page:         1,
	}
}

// SetSearch updates the search term and jumps back to page one.
func (s *HomeScreen) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = query
	s.page = 1
}

// SetAvailability updates the availability filter and jumps back to page one.
func (s *HomeScreen) SetAvailability(availability string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.availability = availability
	s.page = 1
}

// SetPage moves to the given 1-based page.
func (s *HomeScreen) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.page = page
}

// NextPage advances one page.
func (s *HomeScreen) NextPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page++
}

// PrevPage goes back one page, never below page one.
func (s *HomeScreen) PrevPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.page > 1 {
		s.page--
	}
}

// Load fetches the current page of the directory. The signed-in user is
// excluded from their own directory view. A page beyond the last one is
// clamped to the last page.
func (s *HomeScreen) Load(ctx context.Context) (*DirectoryPage, error) {
	s.mu.Lock()
	search := s.search
	availability := s.availability
	page := s.page
	s.mu.Unlock()

	if availability == "All" {
		availability = ""
	}
	var excludeID string
	if current := s.session.Current(); current != nil {
		excludeID = current.ID
	}

	opts := store.ListUsersOptions{
		Search:       search,
		Availability: availability,
		ExcludeID:    excludeID,
		Limit:        DirectoryPageSize,
	}

	// 先取总数以便把页码夹到有效范围内
	_, total, err := s.users.List(ctx, store.ListUsersOptions{
		Search: search, Availability: availability, ExcludeID: excludeID,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + DirectoryPageSize - 1) / DirectoryPageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
		s.mu.Lock()
		s.page = page
		s.mu.Unlock()
	}
	opts.Offset = (page - 1) * DirectoryPageSize

	users, _, err := s.users.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &DirectoryPage{
		Users:      users,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}
