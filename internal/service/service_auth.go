// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Hariharan097/phishing-detection/internal/config"
	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/internal/store"
	"github.com/Hariharan097/phishing-detection/internal/utils"
	"github.com/Hariharan097/phishing-detection/models"
)

type authService struct {
	users  store.UserRepository
	app    config.App
	admin  config.Admin
	logger *logger.Logger
}

// NewAuthService creates the account and token service backed by the given
// user repository.
func NewAuthService(users store.UserRepository, app config.App, admin config.Admin, log *logger.Logger) AuthService {
	return &authService{
		users:  users,
		app:    app,
		admin:  admin,
		logger: log,
	}
}

// Register creates a new account in the pending state. New signups never get
// elevated privileges; role and status are fixed server-side.
func (s *authService) Register(ctx context.Context, fullName, username, password string) (models.User, error) {
	fullName = strings.TrimSpace(fullName)
	username = strings.TrimSpace(username)
	if fullName == "" || username == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password for user `%s`: %w", username, err)
	}

	user := models.User{
		FullName:     fullName,
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleUser,
		Status:       models.StatusPending,
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered, awaiting approval")
	return created, nil
}

// Authenticate verifies credentials and then the account status gate.
//
// An unknown username and a wrong password both fail with
// ErrInvalidCredentials. The password check runs even for pending and blocked
// accounts, so the status errors never leak whether a password was correct
// for a foreign account.
func (s *authService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		return models.User{}, ErrInvalidCredentials
	}

	switch user.Status {
	case models.StatusActive:
		return user, nil
	case models.StatusPending:
		return models.User{}, ErrPendingApproval
	case models.StatusBlocked:
		return models.User{}, ErrBlocked
	default:
		return models.User{}, fmt.Errorf("user `%s` has unknown status `%s`", username, user.Status)
	}
}

// EnsureAdmin creates the configured bootstrap administrator on first start.
// When the username already exists nothing is changed, so a redeploy with the
// same configuration is a no-op. Without configured credentials the bootstrap
// is skipped entirely.
func (s *authService) EnsureAdmin(ctx context.Context) error {
	if s.admin.Username == "" {
		return nil
	}

	_, err := s.users.FindUserByUsername(ctx, s.admin.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("error checking for bootstrap admin: %w", err)
	}

	hash, err := utils.HashPassword(s.admin.Password)
	if err != nil {
		return fmt.Errorf("error hashing bootstrap admin password: %w", err)
	}

	fullName := s.admin.FullName
	if fullName == "" {
		fullName = s.admin.Username
	}

	admin := models.User{
		FullName:     fullName,
		Username:     s.admin.Username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Status:       models.StatusActive,
	}

	created, err := s.users.CreateUser(ctx, admin)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			return nil
		}
		return fmt.Errorf("error creating bootstrap admin: %w", err)
	}

	s.logger.Info().Str("username", created.Username).Msg("bootstrap administrator created")
	return nil
}

// CreateToken issues a signed API bearer token for the given user.
func (s *authService) CreateToken(_ context.Context, user models.User) (string, error) {
	token, err := utils.GenerateJWTToken(
		s.app.TokenIssuer,
		user.Username,
		string(user.Role),
		s.app.TokenDuration,
		s.app.TokenSignKey,
	)
	if err != nil {
		s.logger.Error().Err(err).Str("username", user.Username).Msg("failed to sign API token")
		return "", ErrTokenCreationFailed
	}

	return token, nil
}

// ParseToken validates an API bearer token and returns its claims.
func (s *authService) ParseToken(_ context.Context, tokenString string) (*utils.APIClaims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, s.app.TokenSignKey, s.app.TokenIssuer)
	if err != nil {
		return nil, ErrTokenIsExpiredOrInvalid
	}

	return claims, nil
}
