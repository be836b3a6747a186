// Package apiclient is the thin REST client for the skillswap backend. It
// owns serialization and error normalization; callers get typed responses or
// an *APIError, never a raw *http.Response.
package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/pkg/utils/httpclient"
	"github.com/kart-io/skillswap/pkg/utils/json"
)

const (
	defaultTimeout = 10 * time.Second
	defaultRetries = 2
)

// Client talks to the skillswap API.
type Client struct {
	baseURL string
	http    *httpclient.Client
	token   func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *httpclient.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTokenSource sets a provider for the bearer token attached to
// authenticated calls.
func WithTokenSource(fn func() string) Option {
	return func(c *Client) { c.token = fn }
}

// New creates a Client for the API at baseURL (no trailing slash).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    httpclient.NewClient(defaultTimeout, defaultRetries),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SignUp registers a new account and returns the issued credentials.
func (c *Client) SignUp(ctx context.Context, req *model.SignUpRequest) (*model.AuthResponse, error) {
	var out model.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignIn exchanges credentials for a token.
func (c *Client) SignIn(ctx context.Context, req *model.SignInRequest) (*model.AuthResponse, error) {
	var out model.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signin", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword requests a reset email. The response message is the same
// whether or not the address exists.
func (c *Client) ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) (*model.MessageResponse, error) {
	var out model.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/forgot-password", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword sets a new password using a reset token.
func (c *Client) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) (*model.MessageResponse, error) {
	var out model.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/reset-password", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchRequest loads one swap request by id.
func (c *Client) FetchRequest(ctx context.Context, id string) (*model.SwapRequest, error) {
	var out model.SwapRequest
	if err := c.do(ctx, http.MethodGet, "/api/requests/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.DoRequest(req)
	if err != nil {
		return NetworkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return NetworkError(err)
	}

	if resp.StatusCode >= 400 {
		return parseError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: "Unexpected response from server."}
	}
	return nil
}
