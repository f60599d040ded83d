// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package models

import "time"

// Session is the server-side state behind one authenticated browser session.
// The Token is an opaque random identifier; the signed cookie handed to the
// client carries the token plus an HMAC signature.
type Session struct {
	Token    string
	Username string
	Role     Role

	// ExpiresAt is the absolute expiry time. Expired sessions are treated as
	// absent and eventually purged by the janitor worker.
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// IsAdmin reports whether the session belongs to an administrator.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
