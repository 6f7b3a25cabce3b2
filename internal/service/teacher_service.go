package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/activity-catalog-api/internal/dto"
	"github.com/noah-isme/activity-catalog-api/internal/models"
	appErrors "github.com/noah-isme/activity-catalog-api/pkg/errors"
)

type teacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
}

type teacherActivityRepository interface {
	ListByTeacher(ctx context.Context, role models.TeacherRole, teacherID int64) ([]models.Activity, error)
}

// TeacherService serves teacher list and detail projections.
type TeacherService struct {
	teachers   teacherRepository
	activities teacherActivityRepository
	metrics    queryObserver
	logger     *zap.Logger
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(teachers teacherRepository, activities teacherActivityRepository, metrics queryObserver, logger *zap.Logger) *TeacherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{teachers: teachers, activities: activities, metrics: metrics, logger: logger}
}

// List returns every teacher in the list shape.
func (s *TeacherService) List(ctx context.Context) ([]dto.TeacherList, error) {
	start := time.Now()
	teachers, err := s.teachers.List(ctx)
	observe(s.metrics, "teachers.list", start, err)
	if err != nil {
		s.logger.Error("list teachers", zap.Error(err))
		return nil, internalError(err, "failed to list teachers")
	}
	return toTeacherLists(teachers), nil
}

// Get returns a teacher with both activity sets resolved.
func (s *TeacherService) Get(ctx context.Context, id int64) (*dto.TeacherDetail, error) {
	start := time.Now()
	teacher, err := s.teachers.FindByID(ctx, id)
	observe(s.metrics, "teachers.find_by_id", start, err)
	if err != nil {
		err = lookupError(err, "Teacher not found", "failed to load teacher")
		if !appErrors.IsNotFound(err) {
			s.logger.Error("load teacher", zap.Int64("teacher_id", id), zap.Error(err))
		}
		return nil, err
	}

	linked := make(map[models.TeacherRole][]models.Activity, len(models.TeacherRoles))
	for _, role := range models.TeacherRoles {
		start = time.Now()
		activities, err := s.activities.ListByTeacher(ctx, role, id)
		observe(s.metrics, "activities.list_by_teacher."+string(role), start, err)
		if err != nil {
			s.logger.Error("load teacher activities", zap.Int64("teacher_id", id), zap.String("role", string(role)), zap.Error(err))
			return nil, internalError(err, "failed to load teacher activities")
		}
		linked[role] = activities
	}

	detail := toTeacherDetail(*teacher, linked[models.RoleTeaching], linked[models.RoleResponsible])
	return &detail, nil
}
