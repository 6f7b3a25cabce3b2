package service

import (
	"context"
	"time"

	"github.com/noah-isme/activity-catalog-api/internal/models"
)

type activityTeacherRepository interface {
	ListByActivities(ctx context.Context, role models.TeacherRole, activityIDs []int64) ([]models.ActivityTeacher, error)
}

// teacherSets holds both association sets for a batch of activities, keyed by
// role and then by activity id.
type teacherSets map[models.TeacherRole]map[int64][]models.Teacher

func (s teacherSets) forActivity(role models.TeacherRole, activityID int64) []models.Teacher {
	return s[role][activityID]
}

// loadTeacherSets issues one query per role regardless of how many activities
// are passed in, and none at all for an empty batch.
func loadTeacherSets(ctx context.Context, repo activityTeacherRepository, obs queryObserver, activityIDs []int64) (teacherSets, error) {
	sets := make(teacherSets, len(models.TeacherRoles))
	if len(activityIDs) == 0 {
		return sets, nil
	}
	for _, role := range models.TeacherRoles {
		start := time.Now()
		rows, err := repo.ListByActivities(ctx, role, activityIDs)
		observe(obs, "teachers.list_by_activities."+string(role), start, err)
		if err != nil {
			return nil, err
		}
		byActivity := make(map[int64][]models.Teacher, len(activityIDs))
		for _, row := range rows {
			byActivity[row.ActivityID] = append(byActivity[row.ActivityID], row.Teacher)
		}
		sets[role] = byActivity
	}
	return sets, nil
}

func activityIDs(activities []models.Activity) []int64 {
	ids := make([]int64, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.ID)
	}
	return ids
}
