package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/example/marketplace/internal/domain/error"
	"github.com/example/marketplace/internal/infrastructure/adapter/api/dto"
)

// respondError maps a domain error onto the wire: the HTTP status comes from
// the error taxonomy, the body carries the stable error code and message
func respondError(c *gin.Context, err error) {
	c.JSON(domainerr.HTTPStatus(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(domainerr.HTTPStatus(domainerr.ErrNotFound), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrNotFound),
			Message: "Invalid " + name + " parameter",
		})
		return 0, false
	}
	return id, true
}
