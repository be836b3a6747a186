package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kart-io/skillswap/internal/apiserver/biz"
	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/internal/store"
	"github.com/kart-io/skillswap/pkg/utils/errors"
	"github.com/kart-io/skillswap/pkg/utils/response"
)

// UserHandler handles the /api/users endpoints.
type UserHandler struct {
	svc *biz.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc *biz.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List handles GET /api/users: the paged member directory.
// Query: search, availability, page (1-based), page_size.
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "3"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 3
	}

	users, total, err := h.svc.List(c.Request.Context(), store.ListUsersOptions{
		Search:       c.Query("search"),
		Availability: c.Query("availability"),
		ExcludeID:    currentUserID(c),
		Offset:       (page - 1) * pageSize,
		Limit:        pageSize,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.PageData{
		List:       users,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	})
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.svc.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe handles PUT /api/users/me.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req model.User
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.ErrBadRequest.WithCause(err))
		return
	}

	user, err := h.svc.UpdateProfile(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Get handles GET /api/users/:id: a public profile view.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if !user.IsPublic && user.ID != currentUserID(c) {
		writeError(c, errors.ErrUserNotFound)
		return
	}
	c.JSON(http.StatusOK, user)
}
