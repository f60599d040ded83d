// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or inconsistent.
var (
	// ErrMissingSessionSignKey indicates that no session signing secret was
	// provided by any configuration source. The application refuses to start
	// rather than fall back to a hard-coded key.
	ErrMissingSessionSignKey = errors.New("session sign key is required")

	// ErrInvalidAdminBootstrap indicates that an admin bootstrap username was
	// configured without a password.
	ErrInvalidAdminBootstrap = errors.New("admin bootstrap requires both username and password")
)
