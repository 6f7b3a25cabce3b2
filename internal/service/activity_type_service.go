package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/activity-catalog-api/internal/dto"
	"github.com/noah-isme/activity-catalog-api/internal/models"
	appErrors "github.com/noah-isme/activity-catalog-api/pkg/errors"
)

type activityTypeRepository interface {
	List(ctx context.Context) ([]models.ActivityType, error)
	FindByID(ctx context.Context, id int64) (*models.ActivityType, error)
}

type typeActivityRepository interface {
	ListByType(ctx context.Context, typeID int64) ([]models.Activity, error)
}

// ActivityTypeService serves activity type projections.
type ActivityTypeService struct {
	types      activityTypeRepository
	activities typeActivityRepository
	teachers   activityTeacherRepository
	metrics    queryObserver
	logger     *zap.Logger
}

// NewActivityTypeService constructs an ActivityTypeService.
func NewActivityTypeService(types activityTypeRepository, activities typeActivityRepository, teachers activityTeacherRepository, metrics queryObserver, logger *zap.Logger) *ActivityTypeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityTypeService{types: types, activities: activities, teachers: teachers, metrics: metrics, logger: logger}
}

// List returns every activity type in the basic shape.
func (s *ActivityTypeService) List(ctx context.Context) ([]dto.ActivityTypeBasic, error) {
	start := time.Now()
	types, err := s.types.List(ctx)
	observe(s.metrics, "activity_types.list", start, err)
	if err != nil {
		s.logger.Error("list activity types", zap.Error(err))
		return nil, internalError(err, "failed to list activity types")
	}
	return toActivityTypeBasics(types), nil
}

// Get returns an activity type with its activities, each carrying both teacher
// sets. The number of queries does not grow with the number of activities.
func (s *ActivityTypeService) Get(ctx context.Context, id int64) (*dto.ActivityTypeFull, error) {
	start := time.Now()
	activityType, err := s.types.FindByID(ctx, id)
	observe(s.metrics, "activity_types.find_by_id", start, err)
	if err != nil {
		err = lookupError(err, "Activity type not found", "failed to load activity type")
		if !appErrors.IsNotFound(err) {
			s.logger.Error("load activity type", zap.Int64("activity_type_id", id), zap.Error(err))
		}
		return nil, err
	}

	start = time.Now()
	activities, err := s.activities.ListByType(ctx, id)
	observe(s.metrics, "activities.list_by_type", start, err)
	if err != nil {
		s.logger.Error("load activity type activities", zap.Int64("activity_type_id", id), zap.Error(err))
		return nil, internalError(err, "failed to load activity type activities")
	}

	sets, err := loadTeacherSets(ctx, s.teachers, s.metrics, activityIDs(activities))
	if err != nil {
		s.logger.Error("load activity type teachers", zap.Int64("activity_type_id", id), zap.Error(err))
		return nil, internalError(err, "failed to load activity teachers")
	}

	full := toActivityTypeFull(*activityType, activities, sets)
	return &full, nil
}
