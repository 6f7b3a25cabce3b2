package service

import (
	"github.com/noah-isme/activity-catalog-api/internal/dto"
	"github.com/noah-isme/activity-catalog-api/internal/models"
)

// Projections from persisted rows to response shapes. Nested collections are
// always non-nil so they serialise as [] rather than null.

func toTeacherList(t models.Teacher) dto.TeacherList {
	return dto.TeacherList{
		ID:            t.ID,
		FirstName:     t.FirstName,
		ImageURL:      t.ImageURL,
		PositionTitle: t.PositionTitle,
	}
}

func toTeacherLists(teachers []models.Teacher) []dto.TeacherList {
	out := make([]dto.TeacherList, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, toTeacherList(t))
	}
	return out
}

func toTeacherForActivity(t models.Teacher) dto.TeacherForActivity {
	return dto.TeacherForActivity{
		ID:            t.ID,
		FirstName:     t.FirstName,
		PositionTitle: t.PositionTitle,
	}
}

func toTeachersForActivity(teachers []models.Teacher) []dto.TeacherForActivity {
	out := make([]dto.TeacherForActivity, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, toTeacherForActivity(t))
	}
	return out
}

func toTeacherDetail(t models.Teacher, teaching, responsible []models.Activity) dto.TeacherDetail {
	imageURL := t.ImageURL
	return dto.TeacherDetail{
		ID:                    t.ID,
		FirstName:             t.FirstName,
		PositionTitle:         t.PositionTitle,
		Bio:                   t.Bio,
		Email:                 t.Email,
		ImageURL:              &imageURL,
		TeachingActivities:    toActivityLists(teaching),
		ResponsibleActivities: toActivityLists(responsible),
	}
}

func toActivityList(a models.Activity) dto.ActivityList {
	return dto.ActivityList{
		ID:             a.ID,
		Title:          a.Title,
		ActivityType:   a.ActivityType,
		ImageURL:       a.ImageURL,
		Location:       a.Location,
		IsHighlighted:  a.IsHighlighted,
		ExpertiseLevel: a.ExpertiseLevel,
	}
}

func toActivityLists(activities []models.Activity) []dto.ActivityList {
	out := make([]dto.ActivityList, 0, len(activities))
	for _, a := range activities {
		out = append(out, toActivityList(a))
	}
	return out
}

func toActivityDetail(a models.Activity, set teacherSets) dto.ActivityDetail {
	return dto.ActivityDetail{
		ID:                  a.ID,
		Title:               a.Title,
		Description:         a.Description,
		ImageURL:            a.ImageURL,
		ActivityType:        a.ActivityType,
		ActivityTypeID:      a.ActivityTypeID,
		Capacity:            a.Capacity,
		Price:               a.Price,
		Schedule:            a.Schedule,
		ExpertiseLevel:      a.ExpertiseLevel,
		IsHighlighted:       a.IsHighlighted,
		Location:            a.Location,
		ResponsibleTeachers: toTeachersForActivity(set.forActivity(models.RoleResponsible, a.ID)),
		TeachingTeachers:    toTeachersForActivity(set.forActivity(models.RoleTeaching, a.ID)),
	}
}

func toActivityTypeBasic(t models.ActivityType) dto.ActivityTypeBasic {
	return dto.ActivityTypeBasic{
		ID:               t.ID,
		Typename:         t.Typename,
		ShortDescription: t.ShortDescription,
		ImageURL:         t.ImageURL,
	}
}

func toActivityTypeBasics(types []models.ActivityType) []dto.ActivityTypeBasic {
	out := make([]dto.ActivityTypeBasic, 0, len(types))
	for _, t := range types {
		out = append(out, toActivityTypeBasic(t))
	}
	return out
}

func toActivityTypeFull(t models.ActivityType, activities []models.Activity, set teacherSets) dto.ActivityTypeFull {
	details := make([]dto.ActivityDetail, 0, len(activities))
	for _, a := range activities {
		details = append(details, toActivityDetail(a, set))
	}
	return dto.ActivityTypeFull{
		ID:               t.ID,
		Typename:         t.Typename,
		ShortDescription: t.ShortDescription,
		ImageURL:         t.ImageURL,
		LongDescription:  t.LongDescription,
		Benefits:         t.Benefits,
		Activities:       details,
	}
}
