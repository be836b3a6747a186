package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kart-io/skillswap/internal/apiserver/biz"
	"github.com/kart-io/skillswap/pkg/utils/errors"
)

// userIDKey is the gin context key carrying the authenticated user's id.
const userIDKey = "userID"

// Auth rejects requests without a valid bearer token and stores the caller's
// user id in the context.
func Auth(svc *biz.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(c, errors.ErrUnauthorized)
			return
		}
		userID, err := svc.Authenticate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(c, err)
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID returns the authenticated user's id set by Auth.
func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
