// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

// Package session implements the process-wide session table behind the
// browser login flow.
//
// Sessions are keyed by an opaque random token. The value handed to the
// client is "token.signature" where the signature is an HMAC-SHA256 over the
// token with the configured session sign key, so a cookie cannot be forged
// without the secret even though the token itself carries no state.
package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/internal/utils"
	"github.com/Hariharan097/phishing-detection/models"
	"github.com/google/uuid"
)

var (
	// ErrNoSession is returned when a cookie references no live session:
	// unknown token, expired entry, or a session deleted by logout.
	ErrNoSession = errors.New("no active session")

	// ErrBadCookie is returned when the cookie value is structurally invalid
	// or its signature does not verify. Treated the same as ErrNoSession by
	// callers but logged separately, since it indicates tampering.
	ErrBadCookie = errors.New("invalid session cookie")
)

// Store is an in-memory session table safe for concurrent use. It is owned
// by main and injected into the HTTP layer and the janitor worker; there is
// no package-level instance.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]models.Session

	signKey string
	ttl     time.Duration
	logger  *logger.Logger

	// now is replaceable in tests.
	now func() time.Time
}

// NewStore constructs a session store. ttl controls how long a session
// created by Create remains valid.
func NewStore(signKey string, ttl time.Duration, log *logger.Logger) *Store {
	return &Store{
		sessions: make(map[string]models.Session),
		signKey:  signKey,
		ttl:      ttl,
		logger:   log,
		now:      time.Now,
	}
}

// Create registers a new session for the given user and returns the signed
// cookie value to hand to the client.
func (s *Store) Create(username string, role models.Role) string {
	token := uuid.NewString()
	sess := models.Session{
		Token:     token,
		Username:  username,
		Role:      role,
		ExpiresAt: s.now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()

	return token + "." + utils.HashString(token, s.signKey)
}

// Resolve verifies a cookie value and returns the live session behind it.
//
// Returns ErrBadCookie when the value is malformed or the signature fails,
// and ErrNoSession when the token is unknown or the session has expired.
// Expired entries are removed on sight rather than waiting for the janitor.
func (s *Store) Resolve(cookieValue string) (models.Session, error) {
	token, signature, found := strings.Cut(cookieValue, ".")
	if !found || token == "" {
		return models.Session{}, ErrBadCookie
	}

	if !utils.VerifyHMAC(token, signature, s.signKey) {
		s.logger.Warn().Msg("session cookie signature mismatch")
		return models.Session{}, ErrBadCookie
	}

	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return models.Session{}, ErrNoSession
	}

	if sess.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return models.Session{}, ErrNoSession
	}

	return sess, nil
}

// Delete removes the session behind a cookie value. Unknown or malformed
// values are a no-op: logout never fails.
func (s *Store) Delete(cookieValue string) {
	token, _, found := strings.Cut(cookieValue, ".")
	if !found {
		return
	}

	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// PurgeExpired removes all expired sessions and returns how many were
// dropped. Called periodically by the janitor worker.
func (s *Store) PurgeExpired() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for token, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, token)
			purged++
		}
	}

	return purged
}

// Len returns the number of live entries, expired or not. Used by tests and
// the janitor's log line.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
