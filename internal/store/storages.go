// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

// Package store implements persistence for accounts and prediction history
// over a relational database. Two backends are supported, selected by DSN: a
// local SQLite file (the default) and PostgreSQL via the pgx stdlib driver.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/Hariharan097/phishing-detection/internal/config"
	"github.com/Hariharan097/phishing-detection/internal/logger"
)

// Storages bundles all repositories behind a single constructor so main
// wires persistence with one call.
type Storages struct {
	UserRepository    UserRepository
	HistoryRepository HistoryRepository

	db *DB
}

// NewStorages opens the database selected by the DSN, applies pending
// migrations, and constructs the repositories.
//
// A DSN starting with "postgres://" or "postgresql://" opens PostgreSQL;
// anything else is treated as a SQLite file path.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		HistoryRepository: NewHistoryRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}
