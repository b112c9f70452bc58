package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v4ld3m4rjr/spravattus2/internal/models"
)

type fakeSeriesStore struct {
	rows []models.DailyResponse
}

func (f *fakeSeriesStore) ListDailyRange(_ context.Context, userID string, from, to time.Time) ([]models.DailyResponse, error) {
	var out []models.DailyResponse
	for _, r := range f.rows {
		if r.UserID == userID && !r.ResponseDate.Before(from) && !r.ResponseDate.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func intp(v int) *int { return &v }

func TestDailySeriesIsAllNullsWhenEmpty(t *testing.T) {
	svc := NewDashboardService(&fakeSeriesStore{})

	points, err := svc.BuildDailySeries(context.Background(), "u1",
		time.Date(2024, time.March, 30, 0, 0, 0, 0, time.UTC), 30)
	require.NoError(t, err)
	require.Len(t, points, 30)

	assert.Equal(t, "2024-03-01", points[0].Date)
	assert.Equal(t, "2024-03-30", points[29].Date)
	for _, p := range points {
		assert.Nil(t, p.Mood)
		assert.Nil(t, p.Anxiety)
	}
}

func TestDailySeriesPlacesRecordsAndFillsGaps(t *testing.T) {
	store := &fakeSeriesStore{rows: []models.DailyResponse{
		{
			UserID:       "u1",
			ResponseDate: time.Date(2024, time.March, 28, 0, 0, 0, 0, time.UTC),
			Mood:         intp(7),
			Anxiety:      intp(2),
		},
		{
			UserID:       "u1",
			ResponseDate: time.Date(2024, time.March, 30, 0, 0, 0, 0, time.UTC),
			Mood:         intp(4),
		},
		// Other users never leak into the series.
		{
			UserID:       "u2",
			ResponseDate: time.Date(2024, time.March, 29, 0, 0, 0, 0, time.UTC),
			Mood:         intp(9),
		},
	}}
	svc := NewDashboardService(store)

	points, err := svc.BuildDailySeries(context.Background(), "u1",
		time.Date(2024, time.March, 30, 15, 42, 0, 0, time.UTC), 5)
	require.NoError(t, err)
	require.Len(t, points, 5)

	assert.Equal(t, "2024-03-26", points[0].Date)
	assert.Nil(t, points[0].Mood)
	require.NotNil(t, points[2].Mood)
	assert.Equal(t, 7, *points[2].Mood)
	assert.Equal(t, 2, *points[2].Anxiety)
	assert.Nil(t, points[3].Mood, "another user's record leaves the slot null")
	require.NotNil(t, points[4].Mood)
	assert.Equal(t, 4, *points[4].Mood)
	assert.Nil(t, points[4].Anxiety, "record with no anxiety answer keeps it null")
}

func TestDailySeriesDefaultsToThirtyDays(t *testing.T) {
	svc := NewDashboardService(&fakeSeriesStore{})
	points, err := svc.BuildDailySeries(context.Background(), "u1", time.Now().UTC(), 0)
	require.NoError(t, err)
	assert.Len(t, points, 30)
}
