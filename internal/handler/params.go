package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/activity-catalog-api/pkg/errors"
)

// pathID coerces a path parameter to an integer id. Non-numeric input is a
// validation error. A number outside the int64 range cannot match any row, so
// it is reported with the notFound message.
func pathID(c *gin.Context, name, kind, notFound string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, appErrors.Clone(appErrors.ErrNotFound, notFound)
		}
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid "+kind+" id")
	}
	return id, nil
}
