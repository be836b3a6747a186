// Package store defines the persistence interfaces for skillswap and their
// in-memory and SQLite implementations.
package store

import (
	"context"

	"github.com/kart-io/skillswap/internal/model"
)

// Factory groups the per-aggregate stores behind one handle.
type Factory interface {
	Users() UserStore
	Requests() RequestStore
	Notifications() NotificationStore
	Close() error
}

// ListUsersOptions filters and pages a directory listing.
type ListUsersOptions struct {
	// Search matches case-insensitively against the display name and both
	// skill lists. Empty means no text filter.
	Search string

	// Availability keeps only users whose availability equals this value.
	// Empty or "all" means no filter.
	Availability string

	// ExcludeID drops one user from the listing (the viewer).
	ExcludeID string

	Offset int
	Limit  int
}

// ListNotificationsOptions filters and pages an inbox listing.
type ListNotificationsOptions struct {
	RecipientID string

	// Status keeps only notifications in this state. Empty or "all" means
	// no filter.
	Status string

	Offset int
	Limit  int
}

// UserStore persists users and serves the member directory.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	List(ctx context.Context, opts ListUsersOptions) ([]*model.User, int64, error)
}

// RequestStore persists swap requests.
type RequestStore interface {
	Create(ctx context.Context, req *model.SwapRequest) error
	Get(ctx context.Context, id string) (*model.SwapRequest, error)
	Update(ctx context.Context, req *model.SwapRequest) error
	ListByParticipant(ctx context.Context, userID string) ([]*model.SwapRequest, error)
}

// NotificationStore persists inbox entries.
type NotificationStore interface {
	Create(ctx context.Context, n *model.Notification) error
	Get(ctx context.Context, id string) (*model.Notification, error)
	Update(ctx context.Context, n *model.Notification) error
	List(ctx context.Context, opts ListNotificationsOptions) ([]*model.Notification, int64, error)
}
