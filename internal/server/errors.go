// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package server

import "errors"

var errNoServerAddress = errors.New("no http server address configured")
