package service

import (
	"context"
	"errors"
	"time"

	"github.com/v4ld3m4rjr/spravattus2/internal/models"
	"github.com/v4ld3m4rjr/spravattus2/internal/repo"
)

type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, firstName, lastName *string) (*models.Profile, error)
	CreateProfile(ctx context.Context, userID string) error
	GetUserByID(ctx context.Context, userID string) (string, string, error)
}

type ProfileService struct {
	Store ProfileStore
}

func NewProfileService(store ProfileStore) *ProfileService {
	return &ProfileService{Store: store}
}

// Get returns the user's profile, creating the row first if the account
// predates profile seeding.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	p, err := s.Store.GetProfile(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		if err := s.Store.CreateProfile(ctx, userID); err != nil {
			return nil, err
		}
		return &models.Profile{UserID: userID, UpdatedAt: time.Now().UTC()}, nil
	}
	return p, err
}

func (s *ProfileService) Update(ctx context.Context, userID string, firstName, lastName *string) (*models.Profile, error) {
	p, err := s.Store.UpdateProfile(ctx, userID, firstName, lastName)
	if errors.Is(err, repo.ErrNotFound) {
		if err := s.Store.CreateProfile(ctx, userID); err != nil {
			return nil, err
		}
		return s.Store.UpdateProfile(ctx, userID, firstName, lastName)
	}
	return p, err
}

type Account struct {
	ID      string          `json:"id"`
	Email   string          `json:"email"`
	Profile *models.Profile `json:"profile"`
}

// Me assembles the authenticated user's identity plus profile.
func (s *ProfileService) Me(ctx context.Context, userID string) (*Account, error) {
	id, email, err := s.Store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Account{ID: id, Email: email, Profile: profile}, nil
}
