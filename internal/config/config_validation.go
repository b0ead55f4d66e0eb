// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. It must run after
// applyDefaults.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if _, err := cfg.Server.TrustedProxyPrefixes(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if cfg.App.Environment != EnvironmentDevelopment && cfg.App.Environment != EnvironmentProduction {
		return ErrInvalidAppConfigs
	}

	// session and token keys are either explicit or derived from the
	// service-role key
	if cfg.Auth.ServiceRoleKey == "" && (cfg.Auth.SessionSecret == "" || cfg.Auth.TokenSignKey == "") {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.OTPAttemptsMode != AttemptsModeOutstanding && cfg.Auth.OTPAttemptsMode != AttemptsModeMatching {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.OTPMaxAttempts < 1 || cfg.Auth.OTPTTL <= 0 || cfg.Auth.SessionTTL <= 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
