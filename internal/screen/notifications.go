package screen

import (
	"context"
	"sync"

	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/internal/session"
	"github.com/kart-io/skillswap/internal/store"
	"github.com/kart-io/skillswap/internal/swap"
	"github.com/kart-io/skillswap/pkg/utils/errors"
)

// InboxPageSize is how many notifications one page shows.
const InboxPageSize = 3

// InboxFilters are the tabs of the notifications screen, in display order.
var InboxFilters = []string{"all", "pending", "accepted", "rejected"}

// InboxPage is one rendered page of the inbox.
type InboxPage struct {
	Items      []*model.Notification
	Total      int64
	Page       int
	TotalPages int

	// Counts holds the per-tab totals shown next to the filter labels.
	Counts map[string]int64
}

// NotificationsScreen drives the inbox: filter tabs, pagination and the
// accept/reject actions on incoming swap requests.
type NotificationsScreen struct {
	mu            sync.Mutex
	notifications store.NotificationStore
	requests      store.RequestStore
	lifecycle     *swap.Lifecycle
	session       *session.Session
	toast         Toaster

	filter string
	page   int
}

// NewNotificationsScreen creates the screen on the "all" tab, page one.
func NewNotificationsScreen(f store.Factory, lc *swap.Lifecycle, sess *session.Session, toast Toaster) *NotificationsScreen {
	return &NotificationsScreen{
		notifications: f.Notifications(),
		requests:      f.Requests(),
		lifecycle:     lc,
		session:       sess,
		toast:         toast,
		filter:        "all",
		page:          1,
	}
}

// SetFilter switches the active tab and jumps back to page one.
func (s *NotificationsScreen) SetFilter(filter string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
	s.page = 1
}

// SetPage moves to the given 1-based page.
func (s *NotificationsScreen) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.page = page
}

// Load fetches the current page of the signed-in user's inbox.
func (s *NotificationsScreen) Load(ctx context.Context) (*InboxPage, error) {
	current := s.session.Current()
	if current == nil {
		return nil, errors.ErrUnauthorized
	}

	s.mu.Lock()
	filter := s.filter
	page := s.page
	s.mu.Unlock()

	counts := make(map[string]int64, len(InboxFilters))
	for _, f := range InboxFilters {
		_, n, err := s.notifications.List(ctx, store.ListNotificationsOptions{
			RecipientID: current.ID,
			Status:      f,
		})
		if err != nil {
			return nil, err
		}
		counts[f] = n
	}

	total := counts[filter]
	totalPages := int((total + InboxPageSize - 1) / InboxPageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
		s.mu.Lock()
		s.page = page
		s.mu.Unlock()
	}

	items, _, err := s.notifications.List(ctx, store.ListNotificationsOptions{
		RecipientID: current.ID,
		Status:      filter,
		Offset:      (page - 1) * InboxPageSize,
		Limit:       InboxPageSize,
	})
	if err != nil {
		return nil, err
	}

	return &InboxPage{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		Counts:     counts,
	}, nil
}

// Accept accepts the incoming swap request behind a pending notification.
func (s *NotificationsScreen) Accept(ctx context.Context, notificationID string) error {
	return s.resolve(ctx, notificationID, model.StatusAccepted, "Request accepted")
}

// Reject declines the incoming swap request behind a pending notification.
func (s *NotificationsScreen) Reject(ctx context.Context, notificationID string) error {
	return s.resolve(ctx, notificationID, model.StatusRejected, "Request rejected")
}

func (s *NotificationsScreen) resolve(ctx context.Context, notificationID string, target model.Status, toast string) error {
	current := s.session.Current()
	if current == nil {
		return errors.ErrUnauthorized
	}

	n, err := s.notifications.Get(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.RecipientID != current.ID {
		return errors.ErrForbidden
	}
	if n.Status != model.StatusPending {
		return errors.ErrInvalidTransition.WithMessagef(
			"notification is already %s", n.Status)
	}

	// 通知背后有真实请求时先推进其状态机
	if n.RequestID != "" {
		req, err := s.requests.Get(ctx, n.RequestID)
		if err != nil {
			return err
		}
		if target == model.StatusAccepted {
			err = s.lifecycle.Accept(req, current.ID)
		} else {
			err = s.lifecycle.Reject(req, current.ID)
		}
		if err != nil {
			s.toast.Show(errors.FromError(err).MessageEN, ToastError)
			return err
		}
		if err := s.requests.Update(ctx, req); err != nil {
			return err
		}
	}

	n.Status = target
	if err := s.notifications.Update(ctx, n); err != nil {
		return err
	}
	s.toast.Show(toast, ToastSuccess)
	return nil
}
