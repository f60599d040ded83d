// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package workers

import (
	"context"
	"time"

	"github.com/Hariharan097/phishing-detection/internal/logger"
)

// SessionPurger is the part of the session store the janitor needs.
type SessionPurger interface {
	PurgeExpired() int
}

// SessionJanitor periodically removes expired sessions from the in-memory
// session store. Expired sessions are also rejected lazily on use; the
// janitor only keeps the map from growing with sessions nobody touches
// again.
type SessionJanitor struct {
	sessions SessionPurger
	interval time.Duration
	logger   *logger.Logger
}

// NewSessionJanitor creates a janitor sweeping at the given interval.
func NewSessionJanitor(sessions SessionPurger, interval time.Duration, log *logger.Logger) *SessionJanitor {
	return &SessionJanitor{
		sessions: sessions,
		interval: interval,
		logger:   log,
	}
}

// Run sweeps the session store on every tick until the context is cancelled.
func (j *SessionJanitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("session janitor stopped")
			return
		case <-ticker.C:
			if purged := j.sessions.PurgeExpired(); purged > 0 {
				j.logger.Debug().Int("purged", purged).Msg("expired sessions removed")
			}
		}
	}
}
