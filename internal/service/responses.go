package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/v4ld3m4rjr/spravattus2/internal/models"
	"github.com/v4ld3m4rjr/spravattus2/internal/period"
	"github.com/v4ld3m4rjr/spravattus2/internal/scoring"
)

// ResponseStore is the slice of the repository the questionnaire flows
// use. Saves are atomic upserts keyed on (user, bucket anchor).
type ResponseStore interface {
	GetDailyResponse(ctx context.Context, userID string, date time.Time) (*models.DailyResponse, error)
	SaveDailyResponse(ctx context.Context, d *models.DailyResponse) error
	GetWeeklyResponse(ctx context.Context, userID string, date time.Time) (*models.WeeklyResponse, error)
	SaveWeeklyResponse(ctx context.Context, w *models.WeeklyResponse) error
	GetMonthlyResponse(ctx context.Context, userID string, date time.Time) (*models.MonthlyResponse, error)
	SaveMonthlyResponse(ctx context.Context, m *models.MonthlyResponse) error
	GetQuarterlyResponse(ctx context.Context, userID string, date time.Time) (*models.QuarterlyResponse, error)
	SaveQuarterlyResponse(ctx context.Context, q *models.QuarterlyResponse) error
}

type ResponseService struct {
	Store ResponseStore
}

func NewResponseService(store ResponseStore) *ResponseService {
	return &ResponseService{Store: store}
}

// DailyInput carries the daily form fields. Totals do not apply here;
// every field is independently optional.
type DailyInput struct {
	SleepQuality       *int     `json:"sleep_quality"`
	SleepHours         *float64 `json:"sleep_hours"`
	Mood               *int     `json:"mood"`
	Anxiety            *int     `json:"anxiety"`
	StressScore        *int     `json:"stress_score"`
	RestingHR          *int     `json:"resting_hr"`
	HRV                *int     `json:"hrv"`
	DepressedMood      *int     `json:"depressed_mood"`
	Euphoria           *int     `json:"euphoria"`
	Irritability       *int     `json:"irritability"`
	Obsessions         *int     `json:"obsessions"`
	SensorySensitivity *int     `json:"sensory_sensitivity"`
	SocialMasking      *int     `json:"social_masking"`
	SuicideRisk        *int     `json:"suicide_risk"`
	SpravattoSessions  *int     `json:"spravatto_sessions"`
	MedicationsTaken   bool     `json:"medications_taken"`
	ExercisesPerformed bool     `json:"exercises_performed"`
	Notes              *string  `json:"notes"`
}

// WeeklyInput carries only the answer maps. Client-supplied totals are
// ignored by construction; the server recomputes them.
type WeeklyInput struct {
	PHQ9 map[string]int `json:"phq9_scores"`
	GAD7 map[string]int `json:"gad7_scores"`
	ASRM map[string]int `json:"asrm_scores"`
}

type MonthlyInput struct {
	EQ5D5L map[string]int `json:"eq5d5l_scores"`
	YBOCS  map[string]int `json:"ybocs_scores"`
	FAST   map[string]int `json:"fast_scores"`
}

type QuarterlyInput struct {
	CATQ   map[string]int `json:"catq_scores"`
	RAADSR map[string]int `json:"raadsr_scores"`
}

func (s *ResponseService) GetDaily(ctx context.Context, userID string, day time.Time) (*models.DailyResponse, error) {
	return s.Store.GetDailyResponse(ctx, userID, period.Anchor(period.Daily, day))
}

func (s *ResponseService) SaveDaily(ctx context.Context, userID string, day time.Time, in DailyInput) (*models.DailyResponse, error) {
	if in.SleepHours != nil && (math.IsNaN(*in.SleepHours) || math.IsInf(*in.SleepHours, 0)) {
		return nil, fmt.Errorf("%w: sleep_hours must be finite", ErrValidation)
	}
	d := &models.DailyResponse{
		UserID:             userID,
		ResponseDate:       period.Anchor(period.Daily, day),
		SleepQuality:       in.SleepQuality,
		SleepHours:         in.SleepHours,
		Mood:               in.Mood,
		Anxiety:            in.Anxiety,
		StressScore:        in.StressScore,
		RestingHR:          in.RestingHR,
		HRV:                in.HRV,
		DepressedMood:      in.DepressedMood,
		Euphoria:           in.Euphoria,
		Irritability:       in.Irritability,
		Obsessions:         in.Obsessions,
		SensorySensitivity: in.SensorySensitivity,
		SocialMasking:      in.SocialMasking,
		SuicideRisk:        in.SuicideRisk,
		SpravattoSessions:  in.SpravattoSessions,
		MedicationsTaken:   in.MedicationsTaken,
		ExercisesPerformed: in.ExercisesPerformed,
		Notes:              in.Notes,
	}
	if err := s.Store.SaveDailyResponse(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *ResponseService) GetWeekly(ctx context.Context, userID string, day time.Time) (*models.WeeklyResponse, error) {
	return s.Store.GetWeeklyResponse(ctx, userID, period.Anchor(period.Weekly, day))
}

func (s *ResponseService) SaveWeekly(ctx context.Context, userID string, day time.Time, in WeeklyInput) (*models.WeeklyResponse, error) {
	if err := validateInstruments(map[scoring.Instrument]map[string]int{
		scoring.PHQ9: in.PHQ9,
		scoring.GAD7: in.GAD7,
		scoring.ASRM: in.ASRM,
	}); err != nil {
		return nil, err
	}
	w := &models.WeeklyResponse{
		UserID:       userID,
		ResponseDate: period.Anchor(period.Weekly, day),
		PHQ9Scores:   orEmpty(in.PHQ9),
		GAD7Scores:   orEmpty(in.GAD7),
		ASRMScores:   orEmpty(in.ASRM),
		PHQ9Total:    scoring.Total(in.PHQ9),
		GAD7Total:    scoring.Total(in.GAD7),
		ASRMTotal:    scoring.Total(in.ASRM),
	}
	if err := s.Store.SaveWeeklyResponse(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *ResponseService) GetMonthly(ctx context.Context, userID string, day time.Time) (*models.MonthlyResponse, error) {
	return s.Store.GetMonthlyResponse(ctx, userID, period.Anchor(period.Monthly, day))
}

func (s *ResponseService) SaveMonthly(ctx context.Context, userID string, day time.Time, in MonthlyInput) (*models.MonthlyResponse, error) {
	if err := validateInstruments(map[scoring.Instrument]map[string]int{
		scoring.EQ5D5L: in.EQ5D5L,
		scoring.YBOCS:  in.YBOCS,
		scoring.FAST:   in.FAST,
	}); err != nil {
		return nil, err
	}
	m := &models.MonthlyResponse{
		UserID:       userID,
		ResponseDate: period.Anchor(period.Monthly, day),
		EQ5D5LScores: orEmpty(in.EQ5D5L),
		YBOCSScores:  orEmpty(in.YBOCS),
		FASTScores:   orEmpty(in.FAST),
		EQ5D5LTotal:  scoring.Total(in.EQ5D5L),
		YBOCSTotal:   scoring.Total(in.YBOCS),
		FASTTotal:    scoring.Total(in.FAST),
	}
	if err := s.Store.SaveMonthlyResponse(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ResponseService) GetQuarterly(ctx context.Context, userID string, day time.Time) (*models.QuarterlyResponse, error) {
	return s.Store.GetQuarterlyResponse(ctx, userID, period.Anchor(period.Quarterly, day))
}

func (s *ResponseService) SaveQuarterly(ctx context.Context, userID string, day time.Time, in QuarterlyInput) (*models.QuarterlyResponse, error) {
	if err := validateInstruments(map[scoring.Instrument]map[string]int{
		scoring.CATQ:   in.CATQ,
		scoring.RAADSR: in.RAADSR,
	}); err != nil {
		return nil, err
	}
	q := &models.QuarterlyResponse{
		UserID:       userID,
		ResponseDate: period.Anchor(period.Quarterly, day),
		CATQScores:   orEmpty(in.CATQ),
		RAADSRScores: orEmpty(in.RAADSR),
		CATQTotal:    scoring.Total(in.CATQ),
		RAADSRTotal:  scoring.Total(in.RAADSR),
	}
	if err := s.Store.SaveQuarterlyResponse(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func validateInstruments(byInstrument map[scoring.Instrument]map[string]int) error {
	for in, answers := range byInstrument {
		if err := in.Validate(answers); err != nil {
			return fmt.Errorf("%w: %s", ErrValidation, err)
		}
	}
	return nil
}

// orEmpty keeps stored score maps non-nil so an absent instrument round
// trips as {} rather than null.
func orEmpty(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}
