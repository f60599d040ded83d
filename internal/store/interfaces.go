// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package store

import (
	"context"

	"github.com/Hariharan097/phishing-detection/models"
)

// UserRepository is the data-access contract for the users table.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Fails with ErrUsernameTaken when the username is
	// already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks an account up by its unique username.
	// Fails with ErrUserNotFound when no such account exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID looks an account up by its internal ID.
	// Fails with ErrUserNotFound when no such account exists.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// ListUsers returns all accounts ordered by creation time.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateStatus sets the status of the account with the given ID.
	// Fails with ErrUserNotFound when the account does not exist.
	UpdateStatus(ctx context.Context, id int64, status models.Status) error

	// UpdateRole sets the role of the account with the given ID.
	// Fails with ErrUserNotFound when the account does not exist.
	UpdateRole(ctx context.Context, id int64, role models.Role) error

	// CountUsers returns the total number of accounts.
	CountUsers(ctx context.Context) (int64, error)
}

// HistoryRepository is the data-access contract for the history table.
// Records are append-only: there is no update or delete.
type HistoryRepository interface {
	// SaveRecord persists one prediction outcome.
	SaveRecord(ctx context.Context, record models.HistoryRecord) (models.HistoryRecord, error)

	// ListByUsername returns one page of a user's records ordered by
	// creation time descending, plus the total record count for that user.
	ListByUsername(ctx context.Context, username string, page, pageSize int) ([]models.HistoryRecord, int64, error)

	// ListAll is the admin variant of ListByUsername across all users.
	ListAll(ctx context.Context, page, pageSize int) ([]models.HistoryRecord, int64, error)

	// CountRecords returns the total number of history records.
	CountRecords(ctx context.Context) (int64, error)

	// CountByLabel returns the number of records carrying the given label.
	CountByLabel(ctx context.Context, label models.Label) (int64, error)

	// CountByUsernameAndLabel returns the number of one user's records
	// carrying the given label.
	CountByUsernameAndLabel(ctx context.Context, username string, label models.Label) (int64, error)
}
