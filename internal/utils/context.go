// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package utils

// ctxKey is the private type for context keys defined by this package,
// preventing collisions with keys from other packages.
type ctxKey string

// SessionCtxKey is the context key under which the authentication middleware
// stores the resolved models.Session for downstream handlers.
const SessionCtxKey ctxKey = "session"
