package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/activity-catalog-api/internal/dto"
	"github.com/noah-isme/activity-catalog-api/pkg/response"
)

type activityService interface {
	List(ctx context.Context) ([]dto.ActivityList, error)
	ListHighlighted(ctx context.Context) ([]dto.ActivityList, error)
	Get(ctx context.Context, id int64) (*dto.ActivityDetail, error)
}

// ActivityHandler exposes activity endpoints.
type ActivityHandler struct {
	activities activityService
}

// NewActivityHandler builds a new handler.
func NewActivityHandler(activities activityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// List godoc
// @Summary List activities
// @Tags Activities
// @Produce json
// @Success 200 {array} dto.ActivityList
// @Router /activities/ [get]
func (h *ActivityHandler) List(c *gin.Context) {
	activities, err := h.activities.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, activities)
}

// Highlighted godoc
// @Summary List highlighted activities
// @Tags Activities
// @Produce json
// @Success 200 {array} dto.ActivityList
// @Router /activities/highlighted/ [get]
func (h *ActivityHandler) Highlighted(c *gin.Context) {
	activities, err := h.activities.ListHighlighted(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, activities)
}

// Get godoc
// @Summary Get activity detail with responsible and teaching teachers
// @Tags Activities
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} dto.ActivityDetail
// @Failure 404 {object} errors.Error
// @Router /activities/{id} [get]
func (h *ActivityHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id", "activity", "Activity not found")
	if err != nil {
		response.Error(c, err)
		return
	}
	activity, err := h.activities.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, activity)
}
