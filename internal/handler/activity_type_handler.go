package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/activity-catalog-api/internal/dto"
	"github.com/noah-isme/activity-catalog-api/pkg/response"
)

type activityTypeService interface {
	List(ctx context.Context) ([]dto.ActivityTypeBasic, error)
	Get(ctx context.Context, id int64) (*dto.ActivityTypeFull, error)
}

// ActivityTypeHandler exposes activity type endpoints.
type ActivityTypeHandler struct {
	types activityTypeService
}

// NewActivityTypeHandler builds a new handler.
func NewActivityTypeHandler(types activityTypeService) *ActivityTypeHandler {
	return &ActivityTypeHandler{types: types}
}

// List godoc
// @Summary List activity types
// @Tags Activity Types
// @Produce json
// @Success 200 {array} dto.ActivityTypeBasic
// @Router /activity-types/ [get]
func (h *ActivityTypeHandler) List(c *gin.Context) {
	types, err := h.types.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, types)
}

// Get godoc
// @Summary Get activity type with its activities
// @Tags Activity Types
// @Produce json
// @Param id path int true "Activity type ID"
// @Success 200 {object} dto.ActivityTypeFull
// @Failure 404 {object} errors.Error
// @Router /activity-types/{id} [get]
func (h *ActivityTypeHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id", "activity type", "Activity type not found")
	if err != nil {
		response.Error(c, err)
		return
	}
	activityType, err := h.types.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, activityType)
}
