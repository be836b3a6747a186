package swap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/pkg/utils/errors"
)

const (
	requesterID = "01HZXREQUESTER0000000000AA"
	providerID  = "01HZXPROVIDER00000000000BB"
	strangerID  = "01HZXSTRANGER00000000000CC"
)

func newRequest(status model.Status) *model.SwapRequest {
	return &model.SwapRequest{
		ID:             "01HZXSWAPREQ000000000000DD",
		RequesterID:    requesterID,
		ProviderID:     providerID,
		RequestedSkill: "Guitar Lessons",
		OfferedSkill:   "Spanish Tutoring",
		Status:         status,
		CreatedAt:      time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLifecycle_Accept(t *testing.T) {
	tests := []struct {
		name    string
		status  model.Status
		actorID string
		wantErr *errors.Errno
	}{
		{"提供方接受待处理请求", model.StatusPending, providerID, nil},
		{"请求方不能接受自己的请求", model.StatusPending, requesterID, errors.ErrInvalidTransition},
		{"非参与者被拒绝", model.StatusPending, strangerID, errors.ErrNotParticipant},
		{"已接受的请求不能再次接受", model.StatusAccepted, providerID, errors.ErrInvalidTransition},
		{"已拒绝是终态", model.StatusRejected, providerID, errors.ErrInvalidTransition},
		{"已完成是终态", model.StatusCompleted, providerID, errors.ErrInvalidTransition},
	}

	l := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(tt.status)
			err := l.Accept(req, tt.actorID)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, tt.wantErr.Code))
				assert.Equal(t, tt.status, req.Status, "failed transition must not mutate state")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.StatusAccepted, req.Status)
		})
	}
}

func TestLifecycle_Reject(t *testing.T) {
	l := New()

	t.Run("提供方拒绝待处理请求", func(t *testing.T) {
		req := newRequest(model.StatusPending)
		require.NoError(t, l.Reject(req, providerID))
		assert.Equal(t, model.StatusRejected, req.Status)
		assert.True(t, req.Status.IsTerminal())
	})

	t.Run("请求方不能拒绝", func(t *testing.T) {
		req := newRequest(model.StatusPending)
		err := l.Reject(req, requesterID)
		assert.True(t, errors.IsCode(err, errors.ErrInvalidTransition.Code))
	})

	// 被拒绝的请求不能复活
	t.Run("拒绝后不能接受", func(t *testing.T) {
		req := newRequest(model.StatusPending)
		require.NoError(t, l.Reject(req, providerID))
		err := l.Accept(req, providerID)
		assert.True(t, errors.IsCode(err, errors.ErrInvalidTransition.Code))
		assert.Equal(t, model.StatusRejected, req.Status)
	})
}

func TestLifecycle_Complete(t *testing.T) {
	fixed := time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC)
	l := New(WithClock(func() time.Time { return fixed }))

	t.Run("任一参与者都可以完成", func(t *testing.T) {
		for _, actor := range []string{requesterID, providerID} {
			req := newRequest(model.StatusAccepted)
			require.NoError(t, l.Complete(req, actor))
			assert.Equal(t, model.StatusCompleted, req.Status)
			require.NotNil(t, req.CompletedAt)
			assert.Equal(t, fixed, *req.CompletedAt)
		}
	})

	t.Run("待处理的请求不能直接完成", func(t *testing.T) {
		req := newRequest(model.StatusPending)
		err := l.Complete(req, providerID)
		assert.True(t, errors.IsCode(err, errors.ErrInvalidTransition.Code))
		assert.Nil(t, req.CompletedAt)
	})

	t.Run("非参与者被拒绝", func(t *testing.T) {
		req := newRequest(model.StatusAccepted)
		err := l.Complete(req, strangerID)
		assert.True(t, errors.IsCode(err, errors.ErrNotParticipant.Code))
	})
}

// Full happy path: pending -> accepted -> completed -> feedback.
func TestLifecycle_FullFlow(t *testing.T) {
	fixed := time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC)
	l := New(WithClock(func() time.Time { return fixed }))
	req := newRequest(model.StatusPending)

	require.NoError(t, l.Accept(req, providerID))
	require.NoError(t, l.Complete(req, requesterID))
	require.NoError(t, l.SubmitFeedback(req, requesterID, 5, "Great teacher!"))

	assert.Equal(t, model.StatusCompleted, req.Status)
	require.NotNil(t, req.Feedback)
	assert.Equal(t, 5, req.Feedback.Rating)
	assert.Equal(t, "Great teacher!", req.Feedback.Comment)
	assert.True(t, req.FeedbackGiven)
}

func TestLifecycle_SubmitFeedback(t *testing.T) {
	l := New()

	tests := []struct {
		name    string
		status  model.Status
		actorID string
		rating  int
		wantErr *errors.Errno
	}{
		{"完成后请求方可评价", model.StatusCompleted, requesterID, 4, nil},
		{"完成后提供方可评价", model.StatusCompleted, providerID, 1, nil},
		{"评分为零无效", model.StatusCompleted, requesterID, 0, errors.ErrInvalidRating},
		{"评分超过五无效", model.StatusCompleted, requesterID, 6, errors.ErrInvalidRating},
		{"未完成的请求不能评价", model.StatusAccepted, requesterID, 5, errors.ErrInvalidTransition},
		{"非参与者不能评价", model.StatusCompleted, strangerID, 5, errors.ErrNotParticipant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(tt.status)
			err := l.SubmitFeedback(req, tt.actorID, tt.rating, "")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, tt.wantErr.Code))
				assert.Nil(t, req.Feedback)
				assert.False(t, req.FeedbackGiven)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, req.Feedback)
			assert.Equal(t, tt.rating, req.Feedback.Rating)
		})
	}

	t.Run("重复评价被拒绝", func(t *testing.T) {
		req := newRequest(model.StatusCompleted)
		require.NoError(t, l.SubmitFeedback(req, requesterID, 3, "ok"))
		err := l.SubmitFeedback(req, providerID, 5, "again")
		assert.True(t, errors.IsCode(err, errors.ErrFeedbackSubmitted.Code))
		// 第一次的评价保持不变
		assert.Equal(t, 3, req.Feedback.Rating)
		assert.Equal(t, "ok", req.Feedback.Comment)
	})
}

func TestLifecycle_SkipFeedback(t *testing.T) {
	l := New()

	t.Run("跳过评价保持完成状态", func(t *testing.T) {
		req := newRequest(model.StatusCompleted)
		require.NoError(t, l.SkipFeedback(req, requesterID))
		assert.Equal(t, model.StatusCompleted, req.Status)
		assert.Nil(t, req.Feedback)
	})

	t.Run("未完成不能跳过", func(t *testing.T) {
		req := newRequest(model.StatusPending)
		err := l.SkipFeedback(req, requesterID)
		assert.True(t, errors.IsCode(err, errors.ErrInvalidTransition.Code))
	})

	t.Run("非参与者不能跳过", func(t *testing.T) {
		req := newRequest(model.StatusCompleted)
		err := l.SkipFeedback(req, strangerID)
		assert.True(t, errors.IsCode(err, errors.ErrNotParticipant.Code))
	})
}
