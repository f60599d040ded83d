// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package service

import (
	"context"

	"github.com/Hariharan097/phishing-detection/internal/utils"
	"github.com/Hariharan097/phishing-detection/models"
)

// AuthService handles account registration, credential verification, the
// admin bootstrap, and API token lifecycle.
type AuthService interface {
	// Register creates a new account with role=user, status=pending.
	// Fails with ErrInvalidDataProvided on empty fields and with
	// store.ErrUsernameTaken when the username is already registered.
	Register(ctx context.Context, fullName, username, password string) (models.User, error)

	// Authenticate verifies credentials and the account status gate.
	// Fails with ErrInvalidCredentials, ErrPendingApproval or ErrBlocked.
	Authenticate(ctx context.Context, username, password string) (models.User, error)

	// EnsureAdmin creates the configured bootstrap administrator if no
	// account with that username exists yet. Idempotent.
	EnsureAdmin(ctx context.Context) error

	// CreateToken issues a signed API bearer token for the given user.
	CreateToken(ctx context.Context, user models.User) (string, error)

	// ParseToken validates an API bearer token and returns its claims.
	// Fails with ErrTokenIsExpiredOrInvalid on any validation failure.
	ParseToken(ctx context.Context, tokenString string) (*utils.APIClaims, error)
}

// PredictionService classifies URLs and records the outcome.
type PredictionService interface {
	// Classify normalizes and encodes the URL, runs the classifier, and
	// returns the labeled prediction. Fails with ErrEmptyURL on empty input
	// and ErrModelFailure when inference fails.
	Classify(ctx context.Context, rawURL string) (models.Prediction, error)
}

// HistoryService persists and queries per-user prediction history.
type HistoryService interface {
	// Record appends one immutable history entry for the given user.
	Record(ctx context.Context, username string, prediction models.Prediction) (models.HistoryRecord, error)

	// ListByUser returns one page of the user's history, newest first.
	ListByUser(ctx context.Context, username string, page int) (models.HistoryPage, error)

	// ListAll returns one page of history across all users, newest first.
	ListAll(ctx context.Context, page int) (models.HistoryPage, error)

	// LabelCounts returns the user's prediction outcome distribution.
	LabelCounts(ctx context.Context, username string) (models.LabelCounts, error)
}

// AdminService implements the moderation workflow over user accounts.
type AdminService interface {
	// Approve transitions a pending account to active. Approving an
	// already-active account is a no-op.
	Approve(ctx context.Context, userID int64) (models.User, error)

	// ToggleBlock flips an account between active and blocked. Pending
	// accounts are left untouched.
	ToggleBlock(ctx context.Context, userID int64) (models.User, error)

	// ToggleRole flips an account between user and admin.
	ToggleRole(ctx context.Context, userID int64) (models.User, error)

	// ListUsers returns all accounts in signup order.
	ListUsers(ctx context.Context) ([]models.User, error)

	// Stats returns the aggregate counters for the dashboard.
	Stats(ctx context.Context) (models.Stats, error)
}
