package service

import (
	"context"

	"github.com/v4ld3m4rjr/spravattus2/internal/export"
	"github.com/v4ld3m4rjr/spravattus2/internal/models"
)

type ExportStore interface {
	ListDailyByUser(ctx context.Context, userID string) ([]models.DailyResponse, error)
	ListWeeklyByUser(ctx context.Context, userID string) ([]models.WeeklyResponse, error)
	ListMonthlyByUser(ctx context.Context, userID string) ([]models.MonthlyResponse, error)
	ListQuarterlyByUser(ctx context.Context, userID string) ([]models.QuarterlyResponse, error)
}

type ExportService struct {
	Store ExportStore
}

func NewExportService(store ExportStore) *ExportService {
	return &ExportService{Store: store}
}

// Bundle gathers everything the user has recorded, ascending by date
// within each granularity.
func (s *ExportService) Bundle(ctx context.Context, userID string) (export.Data, error) {
	var data export.Data
	var err error
	if data.Daily, err = s.Store.ListDailyByUser(ctx, userID); err != nil {
		return export.Data{}, err
	}
	if data.Weekly, err = s.Store.ListWeeklyByUser(ctx, userID); err != nil {
		return export.Data{}, err
	}
	if data.Monthly, err = s.Store.ListMonthlyByUser(ctx, userID); err != nil {
		return export.Data{}, err
	}
	if data.Quarterly, err = s.Store.ListQuarterlyByUser(ctx, userID); err != nil {
		return export.Data{}, err
	}
	return data, nil
}
