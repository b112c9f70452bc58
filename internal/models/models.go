package models

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

type Profile struct {
	UserID    string    `json:"user_id"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DailyResponse is one day's check-in. Every field is independently
// optional; a half-filled form is a valid record.
type DailyResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	ResponseDate       time.Time `json:"response_date"`
	SleepQuality       *int      `json:"sleep_quality"`
	SleepHours         *float64  `json:"sleep_hours"`
	Mood               *int      `json:"mood"`
	Anxiety            *int      `json:"anxiety"`
	StressScore        *int      `json:"stress_score"`
	RestingHR          *int      `json:"resting_hr"`
	HRV                *int      `json:"hrv"`
	DepressedMood      *int      `json:"depressed_mood"`
	Euphoria           *int      `json:"euphoria"`
	Irritability       *int      `json:"irritability"`
	Obsessions         *int      `json:"obsessions"`
	SensorySensitivity *int      `json:"sensory_sensitivity"`
	SocialMasking      *int      `json:"social_masking"`
	SuicideRisk        *int      `json:"suicide_risk"`
	SpravattoSessions  *int      `json:"spravatto_sessions"`
	MedicationsTaken   bool      `json:"medications_taken"`
	ExercisesPerformed bool      `json:"exercises_performed"`
	Notes              *string   `json:"notes"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// WeeklyResponse holds the three weekly instruments keyed by question id
// (q1..qN) plus their derived totals. Totals are recomputed from the maps
// on every save.
type WeeklyResponse struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	ResponseDate time.Time      `json:"response_date"`
	PHQ9Scores   map[string]int `json:"phq9_scores"`
	GAD7Scores   map[string]int `json:"gad7_scores"`
	ASRMScores   map[string]int `json:"asrm_scores"`
	PHQ9Total    int            `json:"phq9_total"`
	GAD7Total    int            `json:"gad7_total"`
	ASRMTotal    int            `json:"asrm_total"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type MonthlyResponse struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	ResponseDate time.Time      `json:"response_date"`
	EQ5D5LScores map[string]int `json:"eq5d5l_scores"`
	YBOCSScores  map[string]int `json:"ybocs_scores"`
	FASTScores   map[string]int `json:"fast_scores"`
	EQ5D5LTotal  int            `json:"eq5d5l_total"`
	YBOCSTotal   int            `json:"ybocs_total"`
	FASTTotal    int            `json:"fast_total"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type QuarterlyResponse struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	ResponseDate time.Time      `json:"response_date"`
	CATQScores   map[string]int `json:"catq_scores"`
	RAADSRScores map[string]int `json:"raadsr_scores"`
	CATQTotal    int            `json:"catq_total"`
	RAADSRTotal  int            `json:"raadsr_total"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// UserSheet maps a user to a spreadsheet provisioned at the external
// provider.
type UserSheet struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SheetID   string    `json:"sheet_id"`
	SheetName string    `json:"sheet_name"`
	CreatedAt time.Time `json:"created_at"`
}
