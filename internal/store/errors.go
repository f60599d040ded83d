// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because an account with the same username already exists. The
	// database's unique constraint is the authority here, which closes the
	// race between concurrent signups with the same username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned when a query expected to match exactly one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrHistoryNotSaved is returned when a history INSERT completes without
	// error but affects zero rows, indicating nothing was actually persisted.
	ErrHistoryNotSaved = errors.New("history record was not saved")
)

// Low-level database operation errors. Repository methods wrap these around
// driver errors so handlers can surface a uniform storage failure without
// inspecting driver internals.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for a reason other than a mapped domain condition.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
