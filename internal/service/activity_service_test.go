package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/activity-catalog-api/pkg/errors"
)

func newActivityServiceFor(f *fakeCatalog) *ActivityService {
	return NewActivityService(fakeActivities{f}, f, nil, zap.NewNop())
}

func TestActivityServiceHighlightedIsSubsetOfList(t *testing.T) {
	svc := newActivityServiceFor(seedYoga())
	ctx := context.Background()

	all, err := svc.List(ctx)
	require.NoError(t, err)
	highlighted, err := svc.ListHighlighted(ctx)
	require.NoError(t, err)

	expected := map[int64]bool{}
	for _, a := range all {
		if a.IsHighlighted {
			expected[a.ID] = true
		}
	}
	require.Len(t, highlighted, len(expected))
	for _, a := range highlighted {
		assert.True(t, a.IsHighlighted)
		assert.True(t, expected[a.ID])
	}
}

func TestActivityServiceGetMorningFlow(t *testing.T) {
	svc := newActivityServiceFor(seedYoga())

	detail, err := svc.Get(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Yoga", detail.ActivityType)
	assert.Equal(t, int64(1), detail.ActivityTypeID)
	assert.True(t, detail.IsHighlighted)
	assert.Nil(t, detail.ImageURL)

	require.Len(t, detail.TeachingTeachers, 1)
	assert.Equal(t, int64(5), detail.TeachingTeachers[0].ID)
	require.Len(t, detail.ResponsibleTeachers, 1)
	assert.Equal(t, "Dan", detail.ResponsibleTeachers[0].FirstName)
}

func TestActivityServiceGetWithoutTeachersHasEmptySets(t *testing.T) {
	svc := newActivityServiceFor(seedYoga())

	detail, err := svc.Get(context.Background(), 12)
	require.NoError(t, err)
	assert.NotNil(t, detail.ResponsibleTeachers)
	assert.NotNil(t, detail.TeachingTeachers)
	assert.Empty(t, detail.TeachingTeachers)
}

func TestActivityServiceGetNotFound(t *testing.T) {
	svc := newActivityServiceFor(seedYoga())

	_, err := svc.Get(context.Background(), 999)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Activity not found", appErr.Message)
}

func TestActivityServiceListFailure(t *testing.T) {
	f := seedYoga()
	f.err = errors.New("timeout")
	svc := newActivityServiceFor(f)

	_, err := svc.ListHighlighted(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, appErrors.FromError(err).Status)
}
