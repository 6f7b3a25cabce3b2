package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/activity-catalog-api/internal/dto"
	"github.com/noah-isme/activity-catalog-api/internal/models"
	appErrors "github.com/noah-isme/activity-catalog-api/pkg/errors"
)

type activityRepository interface {
	List(ctx context.Context) ([]models.Activity, error)
	ListHighlighted(ctx context.Context) ([]models.Activity, error)
	FindByID(ctx context.Context, id int64) (*models.Activity, error)
}

// ActivityService serves activity list and detail projections.
type ActivityService struct {
	activities activityRepository
	teachers   activityTeacherRepository
	metrics    queryObserver
	logger     *zap.Logger
}

// NewActivityService constructs an ActivityService.
func NewActivityService(activities activityRepository, teachers activityTeacherRepository, metrics queryObserver, logger *zap.Logger) *ActivityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{activities: activities, teachers: teachers, metrics: metrics, logger: logger}
}

// List returns every activity in the list shape.
func (s *ActivityService) List(ctx context.Context) ([]dto.ActivityList, error) {
	start := time.Now()
	activities, err := s.activities.List(ctx)
	observe(s.metrics, "activities.list", start, err)
	if err != nil {
		s.logger.Error("list activities", zap.Error(err))
		return nil, internalError(err, "failed to list activities")
	}
	return toActivityLists(activities), nil
}

// ListHighlighted returns highlighted activities in the list shape.
func (s *ActivityService) ListHighlighted(ctx context.Context) ([]dto.ActivityList, error) {
	start := time.Now()
	activities, err := s.activities.ListHighlighted(ctx)
	observe(s.metrics, "activities.list_highlighted", start, err)
	if err != nil {
		s.logger.Error("list highlighted activities", zap.Error(err))
		return nil, internalError(err, "failed to list highlighted activities")
	}
	return toActivityLists(activities), nil
}

// Get returns an activity with both teacher sets resolved.
func (s *ActivityService) Get(ctx context.Context, id int64) (*dto.ActivityDetail, error) {
	start := time.Now()
	activity, err := s.activities.FindByID(ctx, id)
	observe(s.metrics, "activities.find_by_id", start, err)
	if err != nil {
		err = lookupError(err, "Activity not found", "failed to load activity")
		if !appErrors.IsNotFound(err) {
			s.logger.Error("load activity", zap.Int64("activity_id", id), zap.Error(err))
		}
		return nil, err
	}

	sets, err := loadTeacherSets(ctx, s.teachers, s.metrics, []int64{activity.ID})
	if err != nil {
		s.logger.Error("load activity teachers", zap.Int64("activity_id", id), zap.Error(err))
		return nil, internalError(err, "failed to load activity teachers")
	}

	detail := toActivityDetail(*activity, sets)
	return &detail, nil
}
