package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/kart-io/skillswap/internal/apiserver/biz"
	"github.com/kart-io/skillswap/internal/model"
)

// AuthHandler handles the /api/auth endpoints.
type AuthHandler struct {
	svc *biz.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc *biz.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// SignUp handles POST /api/auth/signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req model.SignUpRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.SignUp(c.Request.Context(), &req)
	if err != nil {
		logger.Warnf("Sign up failed for %s: %v", req.Email, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SignIn handles POST /api/auth/signin.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req model.SignInRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.SignIn(c.Request.Context(), &req)
	if err != nil {
		logger.Warnf("Sign in failed for %s: %v", req.Email, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ForgotPassword handles POST /api/auth/forgot-password.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req model.ForgotPasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.ForgotPassword(c.Request.Context(), &req))
}

// ResetPassword handles POST /api/auth/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.ResetPassword(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
