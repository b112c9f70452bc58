// Package service holds the use cases behind the HTTP handlers. Every
// operation takes the acting user's id explicitly; nothing here reads
// ambient session state.
package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/v4ld3m4rjr/spravattus2/internal/auth"
)

// ErrValidation marks input rejected before it reaches the record store.
var ErrValidation = errors.New("invalid input")

// AccountStore is the slice of the repository the account flows use.
type AccountStore interface {
	CreateUser(ctx context.Context, email, passwordHash string) (string, error)
	GetUserByEmail(ctx context.Context, email string) (string, string, error)
	CreateSession(ctx context.Context, userID, token string, expiresAt time.Time) error
	CreateProfile(ctx context.Context, userID string) error
}

type AccountService struct {
	Store      AccountStore
	Auth       *auth.Manager
	RefreshTTL time.Duration
}

func NewAccountService(store AccountStore, authManager *auth.Manager) *AccountService {
	return &AccountService{Store: store, Auth: authManager, RefreshTTL: 7 * 24 * time.Hour}
}

// Register creates the user and seeds an empty profile row so the first
// profile read never misses.
func (s *AccountService) Register(ctx context.Context, email, password string) (string, error) {
	hash, err := s.Auth.HashPassword(password)
	if err != nil {
		return "", err
	}
	userID, err := s.Store.CreateUser(ctx, email, hash)
	if err != nil {
		return "", err
	}
	if err := s.Store.CreateProfile(ctx, userID); err != nil {
		return "", err
	}
	return userID, nil
}

func (s *AccountService) Login(ctx context.Context, email, password string) (string, string, error) {
	userID, hash, err := s.Store.GetUserByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}
	if err := s.Auth.ComparePassword(hash, password); err != nil {
		return "", "", errors.New("invalid credentials")
	}
	accessToken, err := s.Auth.GenerateToken(userID)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := s.generateRefreshToken()
	if err != nil {
		return "", "", err
	}
	if err := s.Store.CreateSession(ctx, userID, refreshToken, time.Now().Add(s.RefreshTTL)); err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (s *AccountService) generateRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
