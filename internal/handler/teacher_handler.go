package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/activity-catalog-api/internal/dto"
	"github.com/noah-isme/activity-catalog-api/pkg/response"
)

type teacherService interface {
	List(ctx context.Context) ([]dto.TeacherList, error)
	Get(ctx context.Context, id int64) (*dto.TeacherDetail, error)
}

// TeacherHandler wires teacher services to HTTP routes.
type TeacherHandler struct {
	teachers teacherService
}

// NewTeacherHandler constructs a new TeacherHandler.
func NewTeacherHandler(teachers teacherService) *TeacherHandler {
	return &TeacherHandler{teachers: teachers}
}

// List godoc
// @Summary List teachers
// @Tags Teachers
// @Produce json
// @Success 200 {array} dto.TeacherList
// @Router /teachers/ [get]
func (h *TeacherHandler) List(c *gin.Context) {
	teachers, err := h.teachers.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, teachers)
}

// Get godoc
// @Summary Get teacher detail with teaching and responsible activities
// @Tags Teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.TeacherDetail
// @Failure 404 {object} errors.Error
// @Router /teachers/{id} [get]
func (h *TeacherHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id", "teacher", "Teacher not found")
	if err != nil {
		response.Error(c, err)
		return
	}
	teacher, err := h.teachers.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, teacher)
}
