package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kart-io/skillswap/internal/apiserver/biz"
	"github.com/kart-io/skillswap/pkg/utils/response"
)

// NotificationHandler handles the /api/notifications endpoints.
type NotificationHandler struct {
	svc *biz.NotificationService
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc *biz.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List handles GET /api/notifications: the caller's inbox.
// Query: status (all|pending|accepted|rejected), page, page_size.
func (h *NotificationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "3"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 3
	}

	items, total, err := h.svc.List(
		c.Request.Context(),
		currentUserID(c),
		c.DefaultQuery("status", "all"),
		(page-1)*pageSize,
		pageSize,
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.PageData{
		List:       items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	})
}
