package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/pkg/utils/errors"
)

func seededMemory(t *testing.T) Factory {
	t.Helper()
	f := NewMemory()
	require.NoError(t, Seed(context.Background(), f))
	return f
}

func TestUserStore_CreateAndGet(t *testing.T) {
	f := NewMemory()
	ctx := context.Background()

	user := &model.User{
		ID: "01JGBTEST00000000000000001", Email: "new@example.com",
		FirstName: "New", LastName: "User", IsPublic: true,
	}
	require.NoError(t, f.Users().Create(ctx, user))

	got, err := f.Users().Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email)

	byEmail, err := f.Users().GetByEmail(ctx, "NEW@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID, "email lookup is case-insensitive")

	_, err = f.Users().Get(ctx, "missing")
	assert.True(t, errors.IsCode(err, errors.ErrUserNotFound.Code))
}

func TestUserStore_DuplicateEmail(t *testing.T) {
	f := NewMemory()
	ctx := context.Background()

	first := &model.User{ID: "01JGBTEST00000000000000001", Email: "dup@example.com"}
	require.NoError(t, f.Users().Create(ctx, first))

	second := &model.User{ID: "01JGBTEST00000000000000002", Email: "dup@example.com"}
	err := f.Users().Create(ctx, second)
	assert.True(t, errors.IsCode(err, errors.ErrEmailTaken.Code))
}

func TestUserStore_List(t *testing.T) {
	f := seededMemory(t)
	ctx := context.Background()

	t.Run("默认返回全部公开用户", func(t *testing.T) {
		users, total, err := f.Users().List(ctx, ListUsersOptions{})
		require.NoError(t, err)
		assert.Equal(t, int64(10), total)
		assert.Len(t, users, 10)
	})

	t.Run("按可用时间过滤", func(t *testing.T) {
		users, total, err := f.Users().List(ctx, ListUsersOptions{Availability: "Evenings"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		for _, u := range users {
			assert.Equal(t, "Evenings", u.Availability)
		}
	})

	t.Run("搜索匹配技能", func(t *testing.T) {
		users, _, err := f.Users().List(ctx, ListUsersOptions{Search: "machine learning"})
		require.NoError(t, err)
		require.NotEmpty(t, users)
		found := false
		for _, u := range users {
			if u.ID == SeedUserDavid {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("搜索匹配姓名", func(t *testing.T) {
		users, _, err := f.Users().List(ctx, ListUsersOptions{Search: "emma"})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, SeedUserEmma, users[0].ID)
	})

	t.Run("排除当前用户", func(t *testing.T) {
		_, total, err := f.Users().List(ctx, ListUsersOptions{ExcludeID: SeedUserAlex})
		require.NoError(t, err)
		assert.Equal(t, int64(9), total)
	})

	t.Run("分页", func(t *testing.T) {
		page1, total, err := f.Users().List(ctx, ListUsersOptions{Offset: 0, Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(10), total)
		require.Len(t, page1, 3)

		page2, _, err := f.Users().List(ctx, ListUsersOptions{Offset: 3, Limit: 3})
		require.NoError(t, err)
		require.Len(t, page2, 3)
		assert.NotEqual(t, page1[0].ID, page2[0].ID)

		// 稳定排序：两次调用返回同样的第一页
		again, _, err := f.Users().List(ctx, ListUsersOptions{Offset: 0, Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, page1[0].ID, again[0].ID)
	})

	t.Run("超出范围的偏移返回空页", func(t *testing.T) {
		users, total, err := f.Users().List(ctx, ListUsersOptions{Offset: 100, Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(10), total)
		assert.Empty(t, users)
	})

	t.Run("私密用户不出现在目录中", func(t *testing.T) {
		private := &model.User{
			ID: "01JGBTEST00000000000000003", Email: "hidden@example.com",
			FirstName: "Hidden", IsPublic: false,
		}
		require.NoError(t, f.Users().Create(ctx, private))
		users, _, err := f.Users().List(ctx, ListUsersOptions{Search: "hidden"})
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestRequestStore_CRUD(t *testing.T) {
	f := seededMemory(t)
	ctx := context.Background()

	req, err := f.Requests().Get(ctx, SeedRequestPending)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, req.Status)

	req.Status = model.StatusAccepted
	require.NoError(t, f.Requests().Update(ctx, req))
	got, err := f.Requests().Get(ctx, SeedRequestPending)
	require.NoError(t, err)
	assert.Equal(t, model.StatusAccepted, got.Status)

	_, err = f.Requests().Get(ctx, "missing")
	assert.True(t, errors.IsCode(err, errors.ErrRequestNotFound.Code))

	// Marc 参与了三个种子请求
	list, err := f.Requests().ListByParticipant(ctx, SeedUserMarc)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestNotificationStore_List(t *testing.T) {
	f := seededMemory(t)
	ctx := context.Background()

	t.Run("全部通知按时间倒序", func(t *testing.T) {
		items, total, err := f.Notifications().List(ctx, ListNotificationsOptions{RecipientID: SeedUserAlex})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		require.Len(t, items, 4)
		for i := 1; i < len(items); i++ {
			assert.False(t, items[i].CreatedAt.After(items[i-1].CreatedAt))
		}
	})

	t.Run("按状态过滤", func(t *testing.T) {
		items, total, err := f.Notifications().List(ctx, ListNotificationsOptions{
			RecipientID: SeedUserAlex, Status: "pending",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, n := range items {
			assert.Equal(t, model.StatusPending, n.Status)
		}
	})

	t.Run("其他用户的收件箱为空", func(t *testing.T) {
		_, total, err := f.Notifications().List(ctx, ListNotificationsOptions{RecipientID: SeedUserMarc})
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("状态更新可见", func(t *testing.T) {
		n, err := f.Notifications().Get(ctx, "01JGB4NT000000000000000001")
		require.NoError(t, err)
		n.Status = model.StatusAccepted
		require.NoError(t, f.Notifications().Update(ctx, n))

		items, _, err := f.Notifications().List(ctx, ListNotificationsOptions{
			RecipientID: SeedUserAlex, Status: "accepted",
		})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})
}

func TestSeed_CompletedRequestHasFeedback(t *testing.T) {
	f := seededMemory(t)

	req, err := f.Requests().Get(context.Background(), SeedRequestCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, req.Status)
	require.NotNil(t, req.CompletedAt)
	assert.True(t, req.CompletedAt.After(time.Time{}))
	require.NotNil(t, req.Feedback)
	assert.Equal(t, 5, req.Feedback.Rating)
	assert.True(t, req.FeedbackGiven)
}
