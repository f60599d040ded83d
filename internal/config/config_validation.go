// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package config

import "time"

// Fallbacks applied after merging when the corresponding value was not set
// by any source. The session sign key deliberately has no default.
const (
	defaultHTTPAddress          = "0.0.0.0:8080"
	defaultDSN                  = "phishing.db"
	defaultModelPath            = "model/phishing_model.json"
	defaultSessionTTL           = 24 * time.Hour
	defaultTokenDuration        = time.Hour
	defaultTokenIssuer          = "phishing-detection"
	defaultRequestTimeout       = 30 * time.Second
	defaultSessionSweepInterval = 5 * time.Minute
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}
	if cfg.Storage.Model.Path == "" {
		cfg.Storage.Model.Path = defaultModelPath
	}
	if cfg.App.SessionTTL == 0 {
		cfg.App.SessionTTL = defaultSessionTTL
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = cfg.App.SessionSignKey
	}
	if cfg.Workers.SessionSweepInterval == 0 {
		cfg.Workers.SessionSweepInterval = defaultSessionSweepInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The session sign key is required and must come from configuration; there
// is no built-in fallback for it.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionSignKey == "" {
		return ErrMissingSessionSignKey
	}

	if cfg.Admin.Username != "" && cfg.Admin.Password == "" {
		return ErrInvalidAdminBootstrap
	}

	return nil
}
