// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package service

import "errors"

// Authentication errors. InvalidCredentials deliberately covers both an
// unknown username and a wrong password so the login form cannot be used to
// probe which usernames exist.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrPendingApproval is returned when the credentials are correct but
	// the account has not been approved by an administrator yet.
	ErrPendingApproval = errors.New("account is pending approval")

	// ErrBlocked is returned when the credentials are correct but the
	// account has been blocked by an administrator.
	ErrBlocked = errors.New("account is blocked")
)

// Input validation errors recovered locally and shown inline on forms.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrEmptyURL is returned by Classify when the submitted URL is empty
	// after trimming.
	ErrEmptyURL = errors.New("empty url provided")
)

var (
	// ErrModelFailure wraps any error raised by the classifier during
	// inference. Handlers surface it as a generic inline message; it never
	// crashes the process.
	ErrModelFailure = errors.New("classifier failure")

	// ErrTokenCreationFailed is returned when signing an API token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises all API token validation
	// failures so callers need not inspect low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
