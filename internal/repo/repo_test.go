package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/v4ld3m4rjr/spravattus2/internal/models"
)

func setupTestRepo(t *testing.T) (*Repo, func()) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()
	schema := fmt.Sprintf("test_%d", time.Now().UnixNano())
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, fmt.Sprintf("SET search_path TO %s", schema))
		return err
	}
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	_, err = pool.Exec(ctx, fmt.Sprintf("CREATE SCHEMA %s", schema))
	if err != nil {
		pool.Close()
		t.Fatalf("create schema: %v", err)
	}
	if err := createTestTables(ctx, pool); err != nil {
		pool.Close()
		t.Fatalf("create tables: %v", err)
	}
	repo := New(pool)
	return repo, func() {
		_, _ = pool.Exec(ctx, fmt.Sprintf("DROP SCHEMA %s CASCADE", schema))
		pool.Close()
	}
}

func createTestTables(ctx context.Context, pool *pgxpool.Pool) error {
	queries := []string{
		`CREATE TABLE users (id uuid PRIMARY KEY DEFAULT gen_random_uuid(), email text, password_hash text, created_at timestamptz DEFAULT now(), updated_at timestamptz DEFAULT now())`,
		`CREATE TABLE sessions (id uuid PRIMARY KEY DEFAULT gen_random_uuid(), user_id uuid, token text, expires_at timestamptz, created_at timestamptz DEFAULT now())`,
		`CREATE TABLE profiles (user_id uuid PRIMARY KEY, first_name text, last_name text, updated_at timestamptz DEFAULT now())`,
		`CREATE TABLE daily_responses (id uuid PRIMARY KEY DEFAULT gen_random_uuid(), user_id uuid, response_date date, sleep_quality int, sleep_hours numeric(4,1), mood int, anxiety int, stress_score int, resting_hr int, hrv int, depressed_mood int, euphoria int, irritability int, obsessions int, sensory_sensitivity int, social_masking int, suicide_risk int, spravatto_sessions int, medications_taken boolean DEFAULT false, exercises_performed boolean DEFAULT false, notes text, created_at timestamptz DEFAULT now(), updated_at timestamptz DEFAULT now(), UNIQUE (user_id, response_date))`,
		`CREATE TABLE weekly_responses (id uuid PRIMARY KEY DEFAULT gen_random_uuid(), user_id uuid, response_date date, phq9_scores jsonb DEFAULT '{}'::jsonb, gad7_scores jsonb DEFAULT '{}'::jsonb, asrm_scores jsonb DEFAULT '{}'::jsonb, phq9_total int DEFAULT 0, gad7_total int DEFAULT 0, asrm_total int DEFAULT 0, created_at timestamptz DEFAULT now(), updated_at timestamptz DEFAULT now(), UNIQUE (user_id, response_date))`,
		`CREATE TABLE monthly_responses (id uuid PRIMARY KEY DEFAULT gen_random_uuid(), user_id uuid, response_date date, eq5d5l_scores jsonb DEFAULT '{}'::jsonb, ybocs_scores jsonb DEFAULT '{}'::jsonb, fast_scores jsonb DEFAULT '{}'::jsonb, eq5d5l_total int DEFAULT 0, ybocs_total int DEFAULT 0, fast_total int DEFAULT 0, created_at timestamptz DEFAULT now(), updated_at timestamptz DEFAULT now(), UNIQUE (user_id, response_date))`,
		`CREATE TABLE quarterly_responses (id uuid PRIMARY KEY DEFAULT gen_random_uuid(), user_id uuid, response_date date, catq_scores jsonb DEFAULT '{}'::jsonb, raadsr_scores jsonb DEFAULT '{}'::jsonb, catq_total int DEFAULT 0, raadsr_total int DEFAULT 0, created_at timestamptz DEFAULT now(), updated_at timestamptz DEFAULT now(), UNIQUE (user_id, response_date))`,
		`CREATE TABLE user_sheets (id uuid PRIMARY KEY, user_id uuid, sheet_id text, sheet_name text, created_at timestamptz DEFAULT now())`,
	}
	for _, query := range queries {
		if _, err := pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

func createTestUser(t *testing.T, r *Repo, email string) string {
	t.Helper()
	id, err := r.CreateUser(context.Background(), email, "x")
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	return id
}

func intPtr(v int) *int { return &v }

func TestSaveDailyResponseUpsertsSingleRow(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	userID := createTestUser(t, repo, "a@b.com")
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	first := &models.DailyResponse{UserID: userID, ResponseDate: date, Mood: intPtr(4), Anxiety: intPtr(8)}
	if err := repo.SaveDailyResponse(ctx, first); err != nil {
		t.Fatalf("first save: %v", err)
	}
	second := &models.DailyResponse{UserID: userID, ResponseDate: date, Mood: intPtr(7)}
	if err := repo.SaveDailyResponse(ctx, second); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected one row, got two ids %s and %s", first.ID, second.ID)
	}

	var count int
	if err := repo.Pool.QueryRow(ctx, `SELECT count(*) FROM daily_responses WHERE user_id=$1`, userID).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}

	got, err := repo.GetDailyResponse(ctx, userID, date)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Mood == nil || *got.Mood != 7 {
		t.Fatalf("expected second payload's mood, got %v", got.Mood)
	}
	if got.Anxiety != nil {
		t.Fatalf("expected anxiety cleared by second payload, got %v", *got.Anxiety)
	}
}

func TestGetDailyResponseNotFound(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	userID := createTestUser(t, repo, "c@d.com")
	_, err := repo.GetDailyResponse(context.Background(), userID, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWeeklyResponseScoresRoundTrip(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	userID := createTestUser(t, repo, "e@f.com")
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	w := &models.WeeklyResponse{
		UserID:       userID,
		ResponseDate: date,
		PHQ9Scores:   map[string]int{"q1": 2, "q2": 3},
		GAD7Scores:   map[string]int{"q1": 1},
		ASRMScores:   map[string]int{},
		PHQ9Total:    5,
		GAD7Total:    1,
	}
	if err := repo.SaveWeeklyResponse(ctx, w); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetWeeklyResponse(ctx, userID, date)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PHQ9Scores["q2"] != 3 || got.PHQ9Total != 5 || got.GAD7Total != 1 {
		t.Fatalf("unexpected round trip: %+v", got)
	}
}

func TestListDailyRangeOrderedAndScoped(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	userID := createTestUser(t, repo, "g@h.com")
	otherID := createTestUser(t, repo, "i@j.com")

	for _, day := range []int{12, 10, 14} {
		d := &models.DailyResponse{UserID: userID, ResponseDate: time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC), Mood: intPtr(day)}
		if err := repo.SaveDailyResponse(ctx, d); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	other := &models.DailyResponse{UserID: otherID, ResponseDate: time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)}
	if err := repo.SaveDailyResponse(ctx, other); err != nil {
		t.Fatalf("save other: %v", err)
	}

	rows, err := repo.ListDailyRange(ctx, userID,
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows for owner, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if !rows[i-1].ResponseDate.Before(rows[i].ResponseDate) {
			t.Fatalf("rows not ascending at %d", i)
		}
	}
}

func TestDeleteUserSheetScopedToOwner(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	ownerID := createTestUser(t, repo, "k@l.com")
	strangerID := createTestUser(t, repo, "m@n.com")

	sheet := &models.UserSheet{ID: uuid.NewString(), UserID: ownerID, SheetID: "ext-1", SheetName: "Export"}
	if err := repo.InsertUserSheet(ctx, sheet); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := repo.DeleteUserSheet(ctx, sheet.ID, strangerID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for stranger, got %v", err)
	}
	if err := repo.DeleteUserSheet(ctx, sheet.ID, ownerID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}

	sheets, err := repo.ListUserSheets(ctx, ownerID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sheets) != 0 {
		t.Fatalf("expected no sheets, got %d", len(sheets))
	}
}
