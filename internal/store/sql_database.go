// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package store

import (
	"database/sql"

	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/migrations"
	"github.com/Masterminds/squirrel"
)

// DB wraps the shared *sql.DB connection with everything the repositories
// need to stay backend-agnostic: a squirrel statement builder configured with
// the right placeholder format, and the migration dialect.
type DB struct {
	*sql.DB
	builder squirrel.StatementBuilderType
	dialect migrations.Dialect
	logger  *logger.Logger
}

// Migrate applies all pending schema migrations for this connection's
// dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
