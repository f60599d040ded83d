// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/sethvargo/go-retry"
)

// isUniqueViolation reports whether err is a unique constraint violation
// from either supported backend. Repositories map it to [ErrUsernameTaken].
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	return isPostgresUniqueViolation(err) || isSQLiteUniqueViolation(err)
}

// pingWithRetry verifies the connection with a bounded fibonacci backoff.
// Startup is the only place allowed to block on the database; a backend that
// never answers still fails within the retry budget.
func pingWithRetry(ctx context.Context, conn *sql.DB, log *logger.Logger) error {
	backoff := retry.WithMaxRetries(5, retry.NewFibonacci(500*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := conn.PingContext(ctx); err != nil {
			log.Warn().Err(err).Msg("database ping failed, retrying")
			return retry.RetryableError(err)
		}
		return nil
	})
}
