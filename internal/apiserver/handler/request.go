package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/kart-io/skillswap/internal/apiserver/biz"
	"github.com/kart-io/skillswap/internal/model"
)

// RequestHandler handles the /api/requests endpoints.
type RequestHandler struct {
	svc *biz.RequestService
}

// NewRequestHandler creates a RequestHandler.
func NewRequestHandler(svc *biz.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

// Create handles POST /api/requests.
func (h *RequestHandler) Create(c *gin.Context) {
	var req biz.CreateRequestInput
	if !bindAndValidate(c, &req) {
		return
	}

	created, err := h.svc.Create(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		logger.Warnf("Create request failed: %v", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Get handles GET /api/requests/:id.
func (h *RequestHandler) Get(c *gin.Context) {
	req, err := h.svc.Get(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// ListMine handles GET /api/requests.
func (h *RequestHandler) ListMine(c *gin.Context) {
	reqs, err := h.svc.ListMine(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// Accept handles POST /api/requests/:id/accept.
func (h *RequestHandler) Accept(c *gin.Context) {
	h.transition(c, h.svc.Accept)
}

// Reject handles POST /api/requests/:id/reject.
func (h *RequestHandler) Reject(c *gin.Context) {
	h.transition(c, h.svc.Reject)
}

// Complete handles POST /api/requests/:id/complete.
func (h *RequestHandler) Complete(c *gin.Context) {
	h.transition(c, h.svc.Complete)
}

func (h *RequestHandler) transition(c *gin.Context, apply func(context.Context, string, string) (*model.SwapRequest, error)) {
	req, err := apply(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// feedbackInput is the body of the feedback endpoint.
type feedbackInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=1024"`
}

// SubmitFeedback handles POST /api/requests/:id/feedback.
func (h *RequestHandler) SubmitFeedback(c *gin.Context) {
	var in feedbackInput
	if !bindAndValidate(c, &in) {
		return
	}

	req, err := h.svc.SubmitFeedback(c.Request.Context(), c.Param("id"), currentUserID(c), in.Rating, in.Comment)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}
