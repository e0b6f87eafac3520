package v1

import (
	"errors"
	"io"
	"strconv"

	"recruitment-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into dst. An empty body leaves dst
// zero-valued so the usecase reports the missing fields.
func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return apperror.BadRequest("Invalid request body")
	}
	return nil
}

func candidateIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.BadRequest("Invalid candidate id")
	}
	return id, nil
}
