package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
)

func TestMakeCode(t *testing.T) {
	tests := []struct {
		name     string
		service  int
		category int
		sequence int
		want     int
	}{
		{name: "通用错误", service: 0, category: 1, sequence: 0, want: 1000},
		{name: "认证服务", service: 20, category: 2, sequence: 1, want: 2002001},
		{name: "交换生命周期", service: 21, category: 5, sequence: 1, want: 2105001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MakeCode(tt.service, tt.category, tt.sequence))

			service, category, sequence := ParseCode(tt.want)
			assert.Equal(t, tt.service, service)
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.sequence, sequence)
		})
	}
}

func TestErrno_WithMessage(t *testing.T) {
	e := ErrBadRequest.WithMessage("email is required")

	// WithMessage 不能修改注册的原始错误
	assert.Equal(t, "Bad request", ErrBadRequest.MessageEN)
	assert.Equal(t, "email is required", e.MessageEN)
	assert.Equal(t, ErrBadRequest.Code, e.Code)
	assert.Equal(t, http.StatusBadRequest, e.HTTPStatus())
	assert.True(t, stderrors.Is(e, ErrBadRequest))
}

func TestErrno_WithCause(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")
	e := ErrDatabase.WithCause(cause)

	assert.Equal(t, cause, e.Unwrap())
	assert.Equal(t, cause.Error(), e.Detail())
	assert.Contains(t, e.Error(), "connection refused")
	assert.Empty(t, ErrDatabase.Detail())
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	// Errno 原样透传
	assert.Equal(t, ErrInvalidTransition, FromError(ErrInvalidTransition))

	// 普通错误包装为 ErrInternal
	wrapped := FromError(stderrors.New("boom"))
	assert.Equal(t, ErrInternal.Code, wrapped.Code)
	assert.Equal(t, "boom", wrapped.Detail())
}

func TestSwapCodes_Registered(t *testing.T) {
	for _, e := range []*Errno{ErrInvalidTransition, ErrNotParticipant, ErrFeedbackSubmitted, ErrInvalidRating, ErrRequestNotFound} {
		got, ok := Lookup(e.Code)
		assert.True(t, ok)
		assert.Equal(t, e, got)
	}

	assert.Equal(t, http.StatusConflict, ErrInvalidTransition.HTTPStatus())
	assert.Equal(t, codes.FailedPrecondition, ErrInvalidTransition.GRPCStatus())
	assert.Equal(t, http.StatusForbidden, ErrNotParticipant.HTTPStatus())
}
