package screen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/internal/session"
	"github.com/kart-io/skillswap/internal/store"
	"github.com/kart-io/skillswap/internal/swap"
	"github.com/kart-io/skillswap/pkg/utils/errors"
)

const seedNotificationMarc = "01JGB4NT000000000000000001"

func newInbox(t *testing.T) (*NotificationsScreen, store.Factory, *recordingToaster) {
	t.Helper()
	f := seededFactory(t)
	toast := &recordingToaster{}
	s := NewNotificationsScreen(f, swap.New(), loggedInSession(t, f), toast)
	return s, f, toast
}

func TestNotificationsScreen_Load(t *testing.T) {
	s, _, _ := newInbox(t)
	ctx := context.Background()

	page, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Total)
	assert.Len(t, page.Items, 3, "first page holds three entries")
	assert.Equal(t, 2, page.TotalPages)

	// 标签计数
	assert.Equal(t, int64(4), page.Counts["all"])
	assert.Equal(t, int64(2), page.Counts["pending"])
	assert.Equal(t, int64(1), page.Counts["accepted"])
	assert.Equal(t, int64(1), page.Counts["rejected"])

	// 最新的通知排在最前
	assert.Equal(t, seedNotificationMarc, page.Items[0].ID)
}

func TestNotificationsScreen_FilterResetsPage(t *testing.T) {
	s, _, _ := newInbox(t)
	ctx := context.Background()

	s.SetPage(2)
	s.SetFilter("pending")
	page, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, int64(2), page.Total)
	for _, n := range page.Items {
		assert.Equal(t, model.StatusPending, n.Status)
	}
}

func TestNotificationsScreen_AcceptDrivesLifecycle(t *testing.T) {
	s, f, toast := newInbox(t)
	ctx := context.Background()

	require.NoError(t, s.Accept(ctx, seedNotificationMarc))

	n, err := f.Notifications().Get(ctx, seedNotificationMarc)
	require.NoError(t, err)
	assert.Equal(t, model.StatusAccepted, n.Status)

	// 背后的交换请求同步推进
	req, err := f.Requests().Get(ctx, store.SeedRequestInbox)
	require.NoError(t, err)
	assert.Equal(t, model.StatusAccepted, req.Status)

	last, _ := toast.last()
	assert.Equal(t, "Request accepted", last.Message)
}

func TestNotificationsScreen_Reject(t *testing.T) {
	s, f, _ := newInbox(t)
	ctx := context.Background()

	require.NoError(t, s.Reject(ctx, seedNotificationMarc))

	req, err := f.Requests().Get(ctx, store.SeedRequestInbox)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, req.Status)
}

func TestNotificationsScreen_ResolveGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("已处理的通知不能再操作", func(t *testing.T) {
		s, _, _ := newInbox(t)
		require.NoError(t, s.Accept(ctx, seedNotificationMarc))
		err := s.Accept(ctx, seedNotificationMarc)
		assert.True(t, errors.IsCode(err, errors.ErrInvalidTransition.Code))
	})

	t.Run("别人的通知被拒绝", func(t *testing.T) {
		f := seededFactory(t)
		marc, err := f.Users().Get(ctx, store.SeedUserMarc)
		require.NoError(t, err)
		sess := session.New(session.NewMemoryKV())
		require.NoError(t, sess.Login("tok", marc))

		s := NewNotificationsScreen(f, swap.New(), sess, &recordingToaster{})
		err = s.Accept(ctx, seedNotificationMarc)
		assert.True(t, errors.IsCode(err, errors.ErrForbidden.Code))
	})

	t.Run("未登录", func(t *testing.T) {
		f := seededFactory(t)
		s := NewNotificationsScreen(f, swap.New(), session.New(session.NewMemoryKV()), &recordingToaster{})
		_, err := s.Load(ctx)
		assert.True(t, errors.IsCode(err, errors.ErrUnauthorized.Code))
	})
}
