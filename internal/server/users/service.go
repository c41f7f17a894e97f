package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/homelab-dashboard/internal/common"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/auth"
	"github.com/dmitrijs2005/homelab-dashboard/internal/server/config"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	jwtAlgorithm          string
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.JWTSecret),
		jwtAlgorithm:          cfg.JWTAlgorithm,
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// TokenValidityDuration exposes the configured session lifetime so the HTTP
// layer can align the cookie max-age with the token expiry.
func (s *Service) TokenValidityDuration() time.Duration {
	return s.tokenValidityDuration
}

// Register validates the credentials, hashes the password and persists a new
// user. The duplicate check before Create is best-effort; the unique
// constraint in the store resolves the concurrent-registration race.
func (s *Service) Register(ctx context.Context, username string, password string) (*User, error) {

	if username == "" || password == "" {
		return nil, common.ErrorValidation
	}
	if len(password) < MinPasswordLength {
		return nil, common.ErrorValidation
	}

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking username: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login checks the credentials and issues a signed session token. Unknown
// usernames and wrong passwords both yield ErrorUnauthorized so the response
// does not reveal which accounts exist.
func (s *Service) Login(ctx context.Context, username string, password string) (string, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.jwtAlgorithm, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// GetByID resolves a verified token's user id to the current account row.
func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	return user, nil
}
