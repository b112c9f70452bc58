package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/v4ld3m4rjr/spravattus2/internal/models"
)

var ErrNotFound = errors.New("not found")

type Repo struct {
	Pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

func (r *Repo) CreateUser(ctx context.Context, email, passwordHash string) (string, error) {
	var id string
	err := r.Pool.QueryRow(ctx, `INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id`, email, passwordHash).Scan(&id)
	return id, err
}

func (r *Repo) GetUserByEmail(ctx context.Context, email string) (string, string, error) {
	var id, hash string
	err := r.Pool.QueryRow(ctx, `SELECT id, password_hash FROM users WHERE email=$1`, email).Scan(&id, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", "", ErrNotFound
	}
	return id, hash, err
}

func (r *Repo) GetUserByID(ctx context.Context, userID string) (string, string, error) {
	var id, email string
	err := r.Pool.QueryRow(ctx, `SELECT id, email FROM users WHERE id=$1`, userID).Scan(&id, &email)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", "", ErrNotFound
	}
	return id, email, err
}

func (r *Repo) CreateSession(ctx context.Context, userID, token string, expiresAt time.Time) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO sessions (user_id, token, expires_at) VALUES ($1, $2, $3)`, userID, token, expiresAt)
	return err
}

func (r *Repo) CreateProfile(ctx context.Context, userID string) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO profiles (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
	return err
}

func (r *Repo) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	p := models.Profile{UserID: userID}
	err := r.Pool.QueryRow(ctx, `SELECT first_name, last_name, updated_at FROM profiles WHERE user_id=$1`, userID).
		Scan(&p.FirstName, &p.LastName, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) UpdateProfile(ctx context.Context, userID string, firstName, lastName *string) (*models.Profile, error) {
	p := models.Profile{UserID: userID, FirstName: firstName, LastName: lastName}
	err := r.Pool.QueryRow(ctx, `UPDATE profiles SET first_name=$1, last_name=$2, updated_at=now() WHERE user_id=$3 RETURNING updated_at`,
		firstName, lastName, userID).Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) InsertUserSheet(ctx context.Context, s *models.UserSheet) error {
	return r.Pool.QueryRow(ctx, `INSERT INTO user_sheets (id, user_id, sheet_id, sheet_name) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		s.ID, s.UserID, s.SheetID, s.SheetName).Scan(&s.CreatedAt)
}

func (r *Repo) ListUserSheets(ctx context.Context, userID string) ([]models.UserSheet, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, sheet_id, sheet_name, created_at FROM user_sheets WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []models.UserSheet
	for rows.Next() {
		s := models.UserSheet{UserID: userID}
		if err := rows.Scan(&s.ID, &s.SheetID, &s.SheetName, &s.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

// DeleteUserSheet removes the mapping row scoped to its owner. A row
// belonging to another user is indistinguishable from a missing row.
func (r *Repo) DeleteUserSheet(ctx context.Context, id, userID string) error {
	cmd, err := r.Pool.Exec(ctx, `DELETE FROM user_sheets WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
