package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/v4ld3m4rjr/spravattus2/internal/models"
)

// The save paths use a single conditional upsert keyed on
// (user_id, response_date) so that "one record per user per bucket" holds
// atomically at the store. The DO UPDATE branch re-asserts ownership via
// the user_id predicate even though the conflict target already matched it.

func (r *Repo) GetDailyResponse(ctx context.Context, userID string, date time.Time) (*models.DailyResponse, error) {
	d := models.DailyResponse{UserID: userID}
	err := r.Pool.QueryRow(ctx, `SELECT id, response_date, sleep_quality, sleep_hours, mood, anxiety, stress_score,
			resting_hr, hrv, depressed_mood, euphoria, irritability, obsessions, sensory_sensitivity,
			social_masking, suicide_risk, spravatto_sessions, medications_taken, exercises_performed, notes,
			created_at, updated_at
		FROM daily_responses WHERE user_id=$1 AND response_date=$2`, userID, date).
		Scan(&d.ID, &d.ResponseDate, &d.SleepQuality, &d.SleepHours, &d.Mood, &d.Anxiety, &d.StressScore,
			&d.RestingHR, &d.HRV, &d.DepressedMood, &d.Euphoria, &d.Irritability, &d.Obsessions, &d.SensorySensitivity,
			&d.SocialMasking, &d.SuicideRisk, &d.SpravattoSessions, &d.MedicationsTaken, &d.ExercisesPerformed, &d.Notes,
			&d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repo) SaveDailyResponse(ctx context.Context, d *models.DailyResponse) error {
	return r.Pool.QueryRow(ctx, `INSERT INTO daily_responses
			(user_id, response_date, sleep_quality, sleep_hours, mood, anxiety, stress_score,
			 resting_hr, hrv, depressed_mood, euphoria, irritability, obsessions, sensory_sensitivity,
			 social_masking, suicide_risk, spravatto_sessions, medications_taken, exercises_performed, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
		ON CONFLICT (user_id, response_date) DO UPDATE SET
			sleep_quality=EXCLUDED.sleep_quality, sleep_hours=EXCLUDED.sleep_hours, mood=EXCLUDED.mood,
			anxiety=EXCLUDED.anxiety, stress_score=EXCLUDED.stress_score, resting_hr=EXCLUDED.resting_hr,
			hrv=EXCLUDED.hrv, depressed_mood=EXCLUDED.depressed_mood, euphoria=EXCLUDED.euphoria,
			irritability=EXCLUDED.irritability, obsessions=EXCLUDED.obsessions,
			sensory_sensitivity=EXCLUDED.sensory_sensitivity, social_masking=EXCLUDED.social_masking,
			suicide_risk=EXCLUDED.suicide_risk, spravatto_sessions=EXCLUDED.spravatto_sessions,
			medications_taken=EXCLUDED.medications_taken, exercises_performed=EXCLUDED.exercises_performed,
			notes=EXCLUDED.notes, updated_at=now()
		WHERE daily_responses.user_id = EXCLUDED.user_id
		RETURNING id, created_at, updated_at`,
		d.UserID, d.ResponseDate, d.SleepQuality, d.SleepHours, d.Mood, d.Anxiety, d.StressScore,
		d.RestingHR, d.HRV, d.DepressedMood, d.Euphoria, d.Irritability, d.Obsessions, d.SensorySensitivity,
		d.SocialMasking, d.SuicideRisk, d.SpravattoSessions, d.MedicationsTaken, d.ExercisesPerformed, d.Notes).
		Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

func (r *Repo) ListDailyRange(ctx context.Context, userID string, from, to time.Time) ([]models.DailyResponse, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, response_date, sleep_quality, sleep_hours, mood, anxiety, stress_score,
			resting_hr, hrv, depressed_mood, euphoria, irritability, obsessions, sensory_sensitivity,
			social_masking, suicide_risk, spravatto_sessions, medications_taken, exercises_performed, notes,
			created_at, updated_at
		FROM daily_responses WHERE user_id=$1 AND response_date >= $2 AND response_date <= $3
		ORDER BY response_date ASC`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []models.DailyResponse
	for rows.Next() {
		d := models.DailyResponse{UserID: userID}
		if err := rows.Scan(&d.ID, &d.ResponseDate, &d.SleepQuality, &d.SleepHours, &d.Mood, &d.Anxiety, &d.StressScore,
			&d.RestingHR, &d.HRV, &d.DepressedMood, &d.Euphoria, &d.Irritability, &d.Obsessions, &d.SensorySensitivity,
			&d.SocialMasking, &d.SuicideRisk, &d.SpravattoSessions, &d.MedicationsTaken, &d.ExercisesPerformed, &d.Notes,
			&d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, rows.Err()
}

func (r *Repo) ListDailyByUser(ctx context.Context, userID string) ([]models.DailyResponse, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, response_date, sleep_quality, sleep_hours, mood, anxiety, stress_score,
			resting_hr, hrv, depressed_mood, euphoria, irritability, obsessions, sensory_sensitivity,
			social_masking, suicide_risk, spravatto_sessions, medications_taken, exercises_performed, notes,
			created_at, updated_at
		FROM daily_responses WHERE user_id=$1 ORDER BY response_date ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []models.DailyResponse
	for rows.Next() {
		d := models.DailyResponse{UserID: userID}
		if err := rows.Scan(&d.ID, &d.ResponseDate, &d.SleepQuality, &d.SleepHours, &d.Mood, &d.Anxiety, &d.StressScore,
			&d.RestingHR, &d.HRV, &d.DepressedMood, &d.Euphoria, &d.Irritability, &d.Obsessions, &d.SensorySensitivity,
			&d.SocialMasking, &d.SuicideRisk, &d.SpravattoSessions, &d.MedicationsTaken, &d.ExercisesPerformed, &d.Notes,
			&d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, rows.Err()
}

func (r *Repo) GetWeeklyResponse(ctx context.Context, userID string, date time.Time) (*models.WeeklyResponse, error) {
	w := models.WeeklyResponse{UserID: userID}
	err := r.Pool.QueryRow(ctx, `SELECT id, response_date, phq9_scores, gad7_scores, asrm_scores,
			phq9_total, gad7_total, asrm_total, created_at, updated_at
		FROM weekly_responses WHERE user_id=$1 AND response_date=$2`, userID, date).
		Scan(&w.ID, &w.ResponseDate, &w.PHQ9Scores, &w.GAD7Scores, &w.ASRMScores,
			&w.PHQ9Total, &w.GAD7Total, &w.ASRMTotal, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repo) SaveWeeklyResponse(ctx context.Context, w *models.WeeklyResponse) error {
	return r.Pool.QueryRow(ctx, `INSERT INTO weekly_responses
			(user_id, response_date, phq9_scores, gad7_scores, asrm_scores, phq9_total, gad7_total, asrm_total)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (user_id, response_date) DO UPDATE SET
			phq9_scores=EXCLUDED.phq9_scores, gad7_scores=EXCLUDED.gad7_scores, asrm_scores=EXCLUDED.asrm_scores,
			phq9_total=EXCLUDED.phq9_total, gad7_total=EXCLUDED.gad7_total, asrm_total=EXCLUDED.asrm_total,
			updated_at=now()
		WHERE weekly_responses.user_id = EXCLUDED.user_id
		RETURNING id, created_at, updated_at`,
		w.UserID, w.ResponseDate, w.PHQ9Scores, w.GAD7Scores, w.ASRMScores, w.PHQ9Total, w.GAD7Total, w.ASRMTotal).
		Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
}

func (r *Repo) ListWeeklyByUser(ctx context.Context, userID string) ([]models.WeeklyResponse, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, response_date, phq9_scores, gad7_scores, asrm_scores,
			phq9_total, gad7_total, asrm_total, created_at, updated_at
		FROM weekly_responses WHERE user_id=$1 ORDER BY response_date ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []models.WeeklyResponse
	for rows.Next() {
		w := models.WeeklyResponse{UserID: userID}
		if err := rows.Scan(&w.ID, &w.ResponseDate, &w.PHQ9Scores, &w.GAD7Scores, &w.ASRMScores,
			&w.PHQ9Total, &w.GAD7Total, &w.ASRMTotal, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, w)
	}
	return res, rows.Err()
}

func (r *Repo) GetMonthlyResponse(ctx context.Context, userID string, date time.Time) (*models.MonthlyResponse, error) {
	m := models.MonthlyResponse{UserID: userID}
	err := r.Pool.QueryRow(ctx, `SELECT id, response_date, eq5d5l_scores, ybocs_scores, fast_scores,
			eq5d5l_total, ybocs_total, fast_total, created_at, updated_at
		FROM monthly_responses WHERE user_id=$1 AND response_date=$2`, userID, date).
		Scan(&m.ID, &m.ResponseDate, &m.EQ5D5LScores, &m.YBOCSScores, &m.FASTScores,
			&m.EQ5D5LTotal, &m.YBOCSTotal, &m.FASTTotal, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repo) SaveMonthlyResponse(ctx context.Context, m *models.MonthlyResponse) error {
	return r.Pool.QueryRow(ctx, `INSERT INTO monthly_responses
			(user_id, response_date, eq5d5l_scores, ybocs_scores, fast_scores, eq5d5l_total, ybocs_total, fast_total)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (user_id, response_date) DO UPDATE SET
			eq5d5l_scores=EXCLUDED.eq5d5l_scores, ybocs_scores=EXCLUDED.ybocs_scores, fast_scores=EXCLUDED.fast_scores,
			eq5d5l_total=EXCLUDED.eq5d5l_total, ybocs_total=EXCLUDED.ybocs_total, fast_total=EXCLUDED.fast_total,
			updated_at=now()
		WHERE monthly_responses.user_id = EXCLUDED.user_id
		RETURNING id, created_at, updated_at`,
		m.UserID, m.ResponseDate, m.EQ5D5LScores, m.YBOCSScores, m.FASTScores, m.EQ5D5LTotal, m.YBOCSTotal, m.FASTTotal).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *Repo) ListMonthlyByUser(ctx context.Context, userID string) ([]models.MonthlyResponse, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, response_date, eq5d5l_scores, ybocs_scores, fast_scores,
			eq5d5l_total, ybocs_total, fast_total, created_at, updated_at
		FROM monthly_responses WHERE user_id=$1 ORDER BY response_date ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []models.MonthlyResponse
	for rows.Next() {
		m := models.MonthlyResponse{UserID: userID}
		if err := rows.Scan(&m.ID, &m.ResponseDate, &m.EQ5D5LScores, &m.YBOCSScores, &m.FASTScores,
			&m.EQ5D5LTotal, &m.YBOCSTotal, &m.FASTTotal, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

func (r *Repo) GetQuarterlyResponse(ctx context.Context, userID string, date time.Time) (*models.QuarterlyResponse, error) {
	q := models.QuarterlyResponse{UserID: userID}
	err := r.Pool.QueryRow(ctx, `SELECT id, response_date, catq_scores, raadsr_scores,
			catq_total, raadsr_total, created_at, updated_at
		FROM quarterly_responses WHERE user_id=$1 AND response_date=$2`, userID, date).
		Scan(&q.ID, &q.ResponseDate, &q.CATQScores, &q.RAADSRScores,
			&q.CATQTotal, &q.RAADSRTotal, &q.CreatedAt, &q.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *Repo) SaveQuarterlyResponse(ctx context.Context, q *models.QuarterlyResponse) error {
	return r.Pool.QueryRow(ctx, `INSERT INTO quarterly_responses
			(user_id, response_date, catq_scores, raadsr_scores, catq_total, raadsr_total)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (user_id, response_date) DO UPDATE SET
			catq_scores=EXCLUDED.catq_scores, raadsr_scores=EXCLUDED.raadsr_scores,
			catq_total=EXCLUDED.catq_total, raadsr_total=EXCLUDED.raadsr_total,
			updated_at=now()
		WHERE quarterly_responses.user_id = EXCLUDED.user_id
		RETURNING id, created_at, updated_at`,
		q.UserID, q.ResponseDate, q.CATQScores, q.RAADSRScores, q.CATQTotal, q.RAADSRTotal).
		Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
}

func (r *Repo) ListQuarterlyByUser(ctx context.Context, userID string) ([]models.QuarterlyResponse, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, response_date, catq_scores, raadsr_scores,
			catq_total, raadsr_total, created_at, updated_at
		FROM quarterly_responses WHERE user_id=$1 ORDER BY response_date ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []models.QuarterlyResponse
	for rows.Next() {
		q := models.QuarterlyResponse{UserID: userID}
		if err := rows.Scan(&q.ID, &q.ResponseDate, &q.CATQScores, &q.RAADSRScores,
			&q.CATQTotal, &q.RAADSRTotal, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, q)
	}
	return res, rows.Err()
}
