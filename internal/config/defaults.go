package config

import "time"

const (
	defaultHTTPAddress     = "0.0.0.0:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultOTPTTL          = 10 * time.Minute
	defaultOTPMaxAttempts  = 3
	defaultOTPCleanup      = time.Hour
	defaultSessionTTL      = 8 * time.Hour
	defaultAccessTokenTTL  = time.Hour
	defaultRefreshTokenTTL = 7 * 24 * time.Hour
	defaultTokenIssuer     = "chronos"
	defaultOTPRateLimit    = 10
	defaultOTPRateWindow   = time.Minute
	defaultAdapterTimeout  = 10 * time.Second
	defaultLogLevel        = "debug"
)

// applyDefaults fills every zero-valued setting that has a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Environment == "" {
		cfg.App.Environment = EnvironmentDevelopment
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.OTPRateLimit == 0 {
		cfg.Server.OTPRateLimit = defaultOTPRateLimit
	}
	if cfg.Server.OTPRateWindow == 0 {
		cfg.Server.OTPRateWindow = defaultOTPRateWindow
	}

	if cfg.Auth.OTPTTL == 0 {
		cfg.Auth.OTPTTL = defaultOTPTTL
	}
	if cfg.Auth.OTPMaxAttempts == 0 {
		cfg.Auth.OTPMaxAttempts = defaultOTPMaxAttempts
	}
	if cfg.Auth.OTPCleanupInterval == 0 {
		cfg.Auth.OTPCleanupInterval = defaultOTPCleanup
	}
	if cfg.Auth.OTPAttemptsMode == "" {
		cfg.Auth.OTPAttemptsMode = AttemptsModeOutstanding
	}
	if cfg.Auth.SessionTTL == 0 {
		cfg.Auth.SessionTTL = defaultSessionTTL
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.RefreshTokenTTL == 0 {
		cfg.Auth.RefreshTokenTTL = defaultRefreshTokenTTL
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}

	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
}
