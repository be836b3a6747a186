// Package biz holds the business logic of the skillswap API server.
package biz

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/kart-io/logger"
	"golang.org/x/crypto/bcrypt"

	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/internal/store"
	"github.com/kart-io/skillswap/pkg/utils/errors"
	"github.com/kart-io/skillswap/pkg/utils/id"
)

const resetTokenTTL = 30 * time.Minute

// ForgotPasswordMessage is returned for every forgot-password request so the
// endpoint cannot be used to probe which emails exist.
const ForgotPasswordMessage = "If the email exists, a reset link has been sent."

// AuthService implements sign-up, sign-in and the password-reset flow.
type AuthService struct {
	store     store.Factory
	jwtSecret []byte
	tokenTTL  time.Duration

	mu          sync.Mutex
	resetTokens map[string]resetToken
}

type resetToken struct {
	userID    string
	expiresAt time.Time
}

// NewAuthService creates an AuthService signing tokens with secret.
func NewAuthService(f store.Factory, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		store:       f,
		jwtSecret:   []byte(secret),
		tokenTTL:    tokenTTL,
		resetTokens: make(map[string]resetToken),
	}
}

// SignUp creates an account and signs the new user in.
func (s *AuthService) SignUp(ctx context.Context, req *model.SignUpRequest) (*model.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.ErrInternal.WithCause(err)
	}

	now := time.Now().UnixMilli()
	user := &model.User{
		ID:        id.NewID(),
		Email:     req.Email,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsPublic:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}
	return s.issue(user)
}

// SignIn verifies the credentials and returns a token. Every failure maps to
// the same invalid-credentials error.
func (s *AuthService) SignIn(ctx context.Context, req *model.SignInRequest) (*model.AuthResponse, error) {
	user, err := s.store.Users().GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *AuthService) issue(user *model.User) (*model.AuthResponse, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, errors.ErrInternal.WithCause(err)
	}
	return &model.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

// Authenticate validates a bearer token and returns the user id it names.
func (s *AuthService) Authenticate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", errors.ErrInvalidToken
	}
	return claims.Subject, nil
}

// ForgotPassword issues a reset token when the email exists. The caller
// always gets the same message either way; the token itself only goes to the
// log since there is no mailer.
func (s *AuthService) ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) *model.MessageResponse {
	user, err := s.store.Users().GetByEmail(ctx, req.Email)
	if err == nil {
		token := id.NewID()
		s.mu.Lock()
		s.resetTokens[token] = resetToken{
			userID:    user.ID,
			expiresAt: time.Now().Add(resetTokenTTL),
		}
		s.mu.Unlock()
		logger.Infow("password reset token issued", "email", req.Email, "token", token)
	}
	return &model.MessageResponse{Message: ForgotPasswordMessage}
}

// ResetPassword redeems a reset token. Tokens are single-use.
func (s *AuthService) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) (*model.MessageResponse, error) {
	s.mu.Lock()
	rt, ok := s.resetTokens[req.Token]
	if ok {
		delete(s.resetTokens, req.Token)
	}
	s.mu.Unlock()

	if !ok || time.Now().After(rt.expiresAt) {
		return nil, errors.ErrResetTokenInvalid
	}

	user, err := s.store.Users().Get(ctx, rt.userID)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.ErrInternal.WithCause(err)
	}
	user.Password = string(hash)
	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: "Password has been reset."}, nil
}
