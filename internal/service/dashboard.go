package service

import (
	"context"
	"time"

	"github.com/v4ld3m4rjr/spravattus2/internal/models"
	"github.com/v4ld3m4rjr/spravattus2/internal/period"
)

const dateLayout = "2006-01-02"

type DailySeriesStore interface {
	ListDailyRange(ctx context.Context, userID string, from, to time.Time) ([]models.DailyResponse, error)
}

type DashboardService struct {
	Store DailySeriesStore
}

func NewDashboardService(store DailySeriesStore) *DashboardService {
	return &DashboardService{Store: store}
}

type SeriesPoint struct {
	Date    string `json:"date"`
	Mood    *int   `json:"mood"`
	Anxiety *int   `json:"anxiety"`
}

// BuildDailySeries returns exactly days entries ending at windowEnd,
// ascending by date. Dates without a stored record carry null mood and
// anxiety so the chart keeps its full x axis.
func (s *DashboardService) BuildDailySeries(ctx context.Context, userID string, windowEnd time.Time, days int) ([]SeriesPoint, error) {
	if days <= 0 {
		days = 30
	}
	end := period.Anchor(period.Daily, windowEnd)
	start := end.AddDate(0, 0, -(days - 1))

	rows, err := s.Store.ListDailyRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]models.DailyResponse, len(rows))
	for _, r := range rows {
		byDate[r.ResponseDate.Format(dateLayout)] = r
	}

	points := make([]SeriesPoint, 0, days)
	for i := 0; i < days; i++ {
		key := start.AddDate(0, 0, i).Format(dateLayout)
		p := SeriesPoint{Date: key}
		if r, ok := byDate[key]; ok {
			p.Mood = r.Mood
			p.Anxiety = r.Anxiety
		}
		points = append(points, p)
	}
	return points, nil
}
