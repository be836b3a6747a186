package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/pkg/utils/httpclient"
)

func newTestClient(handler http.Handler) (*Client, func()) {
	srv := httptest.NewServer(handler)
	c := New(srv.URL, WithHTTPClient(httpclient.NewClient(2*time.Second, 0)))
	return c, srv.Close
}

func TestClient_SignIn(t *testing.T) {
	c, done := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/signin", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-abc","token_type":"bearer","user":{"id":"u1","email":"sarah@example.com","first_name":"Sarah","last_name":"Chen"}}`))
	}))
	defer done()

	resp, err := c.SignIn(context.Background(), &model.SignInRequest{
		Email:    "sarah@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Sarah", resp.User.FirstName)
}

func TestClient_SignIn_InvalidCredentials(t *testing.T) {
	c, done := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid email or password","detail":"no user for email"}`))
	}))
	defer done()

	_, err := c.SignIn(context.Background(), &model.SignInRequest{
		Email:    "nobody@example.com",
		Password: "wrong",
	})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
	assert.Equal(t, "no user for email", apiErr.Detail)
	assert.False(t, apiErr.IsNetwork())
}

func TestClient_NetworkFailure(t *testing.T) {
	// 指向已关闭的服务器模拟连接失败
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, WithHTTPClient(httpclient.NewClient(time.Second, 0)))
	_, err := c.SignIn(context.Background(), &model.SignInRequest{Email: "a@b.co", Password: "x"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNetwork())
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, NetworkErrorMessage, apiErr.Message)
	assert.Error(t, apiErr.Unwrap())
}

func TestClient_UnparseableErrorBody(t *testing.T) {
	c, done := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer done()

	_, err := c.ForgotPassword(context.Background(), &model.ForgotPasswordRequest{Email: "a@b.co"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestClient_FetchRequest(t *testing.T) {
	var gotAuth string
	c, done := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/api/requests/req-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"req-1","requester_id":"u1","provider_id":"u2","requested_skill":"Guitar Lessons","offered_skill":"Spanish Tutoring","status":"pending"}`))
	}))
	defer done()

	c.token = func() string { return "tok-xyz" }

	req, err := c.FetchRequest(context.Background(), "req-1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-xyz", gotAuth)
	assert.Equal(t, model.StatusPending, req.Status)
	assert.Equal(t, "Guitar Lessons", req.RequestedSkill)
}

func TestClient_FetchRequest_NotFound(t *testing.T) {
	c, done := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Request not found"}`))
	}))
	defer done()

	_, err := c.FetchRequest(context.Background(), "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Request not found", apiErr.Message)
}
