package validation

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/pribehari/forms-api/internal/apperr"
)

// Bind decodes the JSON body into out. An empty body is treated as {} so
// every field takes its zero value; a malformed body is a validation error.
func Bind(c *gin.Context, out interface{}) error {
	if err := c.ShouldBindJSON(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperr.Validation(MsgInvalidBody)
	}
	return nil
}
