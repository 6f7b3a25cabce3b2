package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/activity-catalog-api/internal/models"
	appErrors "github.com/noah-isme/activity-catalog-api/pkg/errors"
)

func newActivityTypeServiceFor(f *fakeCatalog) *ActivityTypeService {
	return NewActivityTypeService(fakeTypes{f}, fakeActivities{f}, f, nil, zap.NewNop())
}

func TestActivityTypeServiceList(t *testing.T) {
	desc := "Breath and movement"
	f := seedYoga()
	f.types[1] = models.ActivityType{ID: 1, Typename: "Yoga", ShortDescription: &desc}
	svc := newActivityTypeServiceFor(f)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].ShortDescription)
	assert.Equal(t, desc, *list[0].ShortDescription)
	assert.Nil(t, list[1].ShortDescription)
}

func TestActivityTypeServiceGetResolvesTwoLevels(t *testing.T) {
	f := seedYoga()
	svc := newActivityTypeServiceFor(f)

	full, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Yoga", full.Typename)
	require.Len(t, full.Activities, 2)

	first := full.Activities[0]
	assert.Equal(t, int64(10), first.ID)
	assert.Equal(t, "Yoga", first.ActivityType)
	require.Len(t, first.TeachingTeachers, 1)
	require.Len(t, first.ResponsibleTeachers, 1)

	second := full.Activities[1]
	assert.Equal(t, int64(11), second.ID)
	assert.Len(t, second.ResponsibleTeachers, 2)
	assert.Empty(t, second.TeachingTeachers)

	// type lookup + activities + one query per role
	assert.Equal(t, 4, f.totalCalls())
}

func TestActivityTypeServiceRoundTripsWithActivityDetail(t *testing.T) {
	f := seedYoga()
	types := newActivityTypeServiceFor(f)
	activities := newActivityServiceFor(f)

	full, err := types.Get(context.Background(), 1)
	require.NoError(t, err)
	for _, nested := range full.Activities {
		direct, err := activities.Get(context.Background(), nested.ID)
		require.NoError(t, err)
		assert.Equal(t, nested, *direct)
		assert.Equal(t, full.Typename, direct.ActivityType)
	}
}

func TestActivityTypeServiceGetWithoutActivities(t *testing.T) {
	f := seedYoga()
	f.types[3] = models.ActivityType{ID: 3, Typename: "Meditation"}
	obs := &recordingObserver{}
	svc := NewActivityTypeService(fakeTypes{f}, fakeActivities{f}, f, obs, zap.NewNop())

	full, err := svc.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, full.Activities)
	assert.Empty(t, full.Activities)
	assert.Equal(t, []string{"activity_types.find_by_id", "activities.list_by_type"}, obs.labels)
}

func TestActivityTypeServiceGetNotFound(t *testing.T) {
	svc := newActivityTypeServiceFor(seedYoga())

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Activity type not found", appErr.Message)
}
