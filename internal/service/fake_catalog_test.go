package service

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/noah-isme/activity-catalog-api/internal/models"
)

// fakeCatalog is an in-memory stand-in for every catalog repository.
type fakeCatalog struct {
	teachers    map[int64]models.Teacher
	types       map[int64]models.ActivityType
	activities  map[int64]models.Activity
	responsible map[int64][]int64 // activity id -> teacher ids
	teaching    map[int64][]int64

	err error

	mu    sync.Mutex
	calls map[string]int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		teachers:    map[int64]models.Teacher{},
		types:       map[int64]models.ActivityType{},
		activities:  map[int64]models.Activity{},
		responsible: map[int64][]int64{},
		teaching:    map[int64][]int64{},
		calls:       map[string]int{},
	}
}

// seedYoga loads the Yoga / Morning Flow scenario.
func seedYoga() *fakeCatalog {
	f := newFakeCatalog()
	f.types[1] = models.ActivityType{ID: 1, Typename: "Yoga"}
	f.types[2] = models.ActivityType{ID: 2, Typename: "Pilates"}
	f.addActivity(models.Activity{ID: 10, Title: "Morning Flow", ActivityTypeID: 1, IsHighlighted: true, Price: 15, Location: "Studio A"})
	f.addActivity(models.Activity{ID: 11, Title: "Evening Stretch", ActivityTypeID: 1, Location: "Studio B"})
	f.addActivity(models.Activity{ID: 12, Title: "Core Basics", ActivityTypeID: 2, IsHighlighted: true, Location: "Studio C"})
	f.teachers[5] = models.Teacher{ID: 5, FirstName: "Cleo", PositionTitle: "Instructor", Email: "cleo@example.com", ImageURL: "cleo.png"}
	f.teachers[6] = models.Teacher{ID: 6, FirstName: "Dan", PositionTitle: "Head", Email: "dan@example.com", ImageURL: "dan.png"}
	f.teaching[10] = []int64{5}
	f.responsible[10] = []int64{6}
	f.responsible[11] = []int64{5, 6}
	return f
}

func (f *fakeCatalog) addActivity(a models.Activity) {
	a.ActivityType = f.types[a.ActivityTypeID].Typename
	f.activities[a.ID] = a
}

func (f *fakeCatalog) hit(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeCatalog) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeCatalog) sortedActivities(keep func(models.Activity) bool) []models.Activity {
	var out []models.Activity
	for _, a := range f.activities {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeCatalog) junction(role models.TeacherRole) map[int64][]int64 {
	if role == models.RoleResponsible {
		return f.responsible
	}
	return f.teaching
}

// teacherRepository

func (f *fakeCatalog) List(ctx context.Context) ([]models.Teacher, error) {
	f.hit("teachers.list")
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Teacher
	for _, t := range f.teachers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCatalog) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	f.hit("teachers.find")
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.teachers[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &t, nil
}

func (f *fakeCatalog) ListByActivities(ctx context.Context, role models.TeacherRole, ids []int64) ([]models.ActivityTeacher, error) {
	f.hit("teachers.by_activities")
	if f.err != nil {
		return nil, f.err
	}
	var out []models.ActivityTeacher
	for _, id := range ids {
		for _, tid := range f.junction(role)[id] {
			out = append(out, models.ActivityTeacher{ActivityID: id, Teacher: f.teachers[tid]})
		}
	}
	return out, nil
}

// fakeActivities adapts fakeCatalog to the activity repository method set,
// which reuses the List/FindByID names.
type fakeActivities struct{ *fakeCatalog }

func (f fakeActivities) List(ctx context.Context) ([]models.Activity, error) {
	f.hit("activities.list")
	if f.err != nil {
		return nil, f.err
	}
	return f.sortedActivities(func(models.Activity) bool { return true }), nil
}

func (f fakeActivities) ListHighlighted(ctx context.Context) ([]models.Activity, error) {
	f.hit("activities.highlighted")
	if f.err != nil {
		return nil, f.err
	}
	return f.sortedActivities(func(a models.Activity) bool { return a.IsHighlighted }), nil
}

func (f fakeActivities) FindByID(ctx context.Context, id int64) (*models.Activity, error) {
	f.hit("activities.find")
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.activities[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &a, nil
}

func (f fakeActivities) ListByType(ctx context.Context, typeID int64) ([]models.Activity, error) {
	f.hit("activities.by_type")
	if f.err != nil {
		return nil, f.err
	}
	return f.sortedActivities(func(a models.Activity) bool { return a.ActivityTypeID == typeID }), nil
}

func (f fakeActivities) ListByTeacher(ctx context.Context, role models.TeacherRole, teacherID int64) ([]models.Activity, error) {
	f.hit("activities.by_teacher")
	if f.err != nil {
		return nil, f.err
	}
	junction := f.junction(role)
	return f.sortedActivities(func(a models.Activity) bool {
		for _, tid := range junction[a.ID] {
			if tid == teacherID {
				return true
			}
		}
		return false
	}), nil
}

type fakeTypes struct{ *fakeCatalog }

func (f fakeTypes) List(ctx context.Context) ([]models.ActivityType, error) {
	f.hit("types.list")
	if f.err != nil {
		return nil, f.err
	}
	var out []models.ActivityType
	for _, t := range f.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f fakeTypes) FindByID(ctx context.Context, id int64) (*models.ActivityType, error) {
	f.hit("types.find")
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.types[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &t, nil
}

type recordingObserver struct {
	mu     sync.Mutex
	labels []string
	failed int
}

func (r *recordingObserver) ObserveDBQuery(label string, _ time.Duration, failed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.labels = append(r.labels, label)
	if failed {
		r.failed++
	}
}
