// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package service

import (
	"context"

	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/internal/store"
	"github.com/Hariharan097/phishing-detection/models"
	"golang.org/x/sync/errgroup"
)

type adminService struct {
	users   store.UserRepository
	history store.HistoryRepository
	logger  *logger.Logger
}

// NewAdminService creates the moderation service over the user and history
// repositories.
func NewAdminService(users store.UserRepository, history store.HistoryRepository, log *logger.Logger) AdminService {
	return &adminService{
		users:   users,
		history: history,
		logger:  log,
	}
}

// Approve activates a pending account. Approving an account that is already
// active or blocked leaves it unchanged, so a double-submitted approval form
// cannot corrupt the state machine.
func (s *adminService) Approve(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if user.Status != models.StatusPending {
		return user, nil
	}

	if err := s.users.UpdateStatus(ctx, userID, models.StatusActive); err != nil {
		return models.User{}, err
	}

	user.Status = models.StatusActive
	s.logger.Info().Str("username", user.Username).Msg("user approved")
	return user, nil
}

// ToggleBlock flips an account between active and blocked. A blocked account
// returns to active, never to pending. Pending accounts are left untouched;
// they must be approved first.
func (s *adminService) ToggleBlock(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	var next models.Status
	switch user.Status {
	case models.StatusActive:
		next = models.StatusBlocked
	case models.StatusBlocked:
		next = models.StatusActive
	default:
		return user, nil
	}

	if err := s.users.UpdateStatus(ctx, userID, next); err != nil {
		return models.User{}, err
	}

	user.Status = next
	s.logger.Info().
		Str("username", user.Username).
		Str("status", string(next)).
		Msg("user block state toggled")
	return user, nil
}

// ToggleRole flips an account between the user and admin roles. Demotion is
// symmetric with promotion; a demoted admin keeps their account and history.
func (s *adminService) ToggleRole(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	next := models.RoleUser
	if user.Role == models.RoleUser {
		next = models.RoleAdmin
	}

	if err := s.users.UpdateRole(ctx, userID, next); err != nil {
		return models.User{}, err
	}

	user.Role = next
	s.logger.Info().
		Str("username", user.Username).
		Str("role", string(next)).
		Msg("user role toggled")
	return user, nil
}

// ListUsers returns all accounts in signup order.
func (s *adminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.ListUsers(ctx)
}

// Stats gathers the dashboard counters. The three counts are independent
// queries, so they run concurrently.
func (s *adminService) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.TotalUsers, err = s.users.CountUsers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalChecks, err = s.history.CountRecords(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.PhishingCount, err = s.history.CountByLabel(ctx, models.LabelPhishing)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.Stats{}, err
	}

	return stats, nil
}
