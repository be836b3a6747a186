package screen

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kart-io/skillswap/internal/session"
	"github.com/kart-io/skillswap/internal/store"
)

// recordingToaster captures toasts for assertions.
type recordingToaster struct {
	mu     sync.Mutex
	toasts []recordedToast
}

type recordedToast struct {
	Message string
	Level   ToastLevel
}

func (r *recordingToaster) Show(message string, level ToastLevel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, recordedToast{Message: message, Level: level})
}

func (r *recordingToaster) last() (recordedToast, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.toasts) == 0 {
		return recordedToast{}, false
	}
	return r.toasts[len(r.toasts)-1], true
}

func (r *recordingToaster) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.toasts)
}

// loggedInSession returns a session signed in as the seeded demo user.
func loggedInSession(t *testing.T, f store.Factory) *session.Session {
	t.Helper()
	alex, err := f.Users().Get(context.Background(), store.SeedUserAlex)
	require.NoError(t, err)
	sess := session.New(session.NewMemoryKV())
	require.NoError(t, sess.Login("test-token", alex))
	return sess
}

func seededFactory(t *testing.T) store.Factory {
	t.Helper()
	f := store.NewMemory()
	require.NoError(t, store.Seed(context.Background(), f))
	return f
}
