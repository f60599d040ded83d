// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

// Package config loads the application configuration from environment
// variables, command-line flags and an optional JSON file, merging all
// sources into a single validated StructuredConfig.
package config
