// Package handler exposes the HTTP surface of the skillswap API server.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/skillswap/pkg/utils/errors"
	"github.com/kart-io/skillswap/pkg/utils/validator"
)

// writeError renders an error as the flat JSON body the clients parse:
// message for display, detail for diagnostics, code for programmatic checks.
func writeError(c *gin.Context, err error) {
	e := errors.FromError(err)
	body := gin.H{
		"code":    e.Code,
		"message": e.MessageEN,
	}
	if detail := e.Detail(); detail != "" {
		body["detail"] = detail
	}
	c.AbortWithStatusJSON(e.HTTPStatus(), body)
}

// bindAndValidate decodes the JSON body into req and runs the global
// validator over it. A false return means the response is already written.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		writeError(c, errors.ErrBadRequest.WithCause(err))
		return false
	}
	if verrs := validator.Global().Struct(req); verrs.HasErrors() {
		writeError(c, errors.ErrValidationFailed.WithMessage(verrs.First()))
		return false
	}
	return true
}
