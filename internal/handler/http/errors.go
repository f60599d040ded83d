// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when an API request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrInvalidAuthorizationHeader is returned when the header value does
	// not follow the "<scheme> <token>" format.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrEmptyToken is returned when the bearer token part is empty.
	ErrEmptyToken = errors.New("empty token")
)
