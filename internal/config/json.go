package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file. Durations accept both strings ("10m") and nanosecond
// numbers.
type StructuredJSONConfig struct {
	App struct {
		Environment string `json:"environment"`
		Version     string `json:"version"`
		SiteURL     string `json:"site_url"`
		AuthBypass  bool   `json:"auth_bypass"`
		LogLevel    string `json:"log_level"`
	} `json:"app,omitempty"`

	Auth struct {
		PublicKey       string   `json:"public_key"`
		ServiceRoleKey  string   `json:"service_role_key"`
		SessionSecret   string   `json:"session_secret"`
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		OTPTTL          Duration `json:"otp_ttl"`
		OTPMaxAttempts  int      `json:"otp_max_attempts"`
		OTPAttemptsMode string   `json:"otp_attempts_mode"`
		SessionTTL      Duration `json:"session_ttl"`
		AccessTokenTTL  Duration `json:"access_token_ttl"`
		RefreshTokenTTL Duration `json:"refresh_token_ttl"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN         string `json:"dsn"`
			AutoMigrate bool   `json:"auto_migrate"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		OTPRateLimit   int      `json:"otp_rate_limit"`
		OTPRateWindow  Duration `json:"otp_rate_window"`
		TrustedProxies []string `json:"trusted_proxies"`
	} `json:"server,omitempty"`

	Adapter struct {
		OTPRelayURL    string   `json:"otp_relay_url"`
		OTPRelayToken  string   `json:"otp_relay_token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Environment: jsonCfg.App.Environment,
			Version:     jsonCfg.App.Version,
			SiteURL:     jsonCfg.App.SiteURL,
			AuthBypass:  jsonCfg.App.AuthBypass,
			LogLevel:    jsonCfg.App.LogLevel,
		},
		Auth: Auth{
			PublicKey:       jsonCfg.Auth.PublicKey,
			ServiceRoleKey:  jsonCfg.Auth.ServiceRoleKey,
			SessionSecret:   jsonCfg.Auth.SessionSecret,
			TokenSignKey:    jsonCfg.Auth.TokenSignKey,
			TokenIssuer:     jsonCfg.Auth.TokenIssuer,
			OTPTTL:          time.Duration(jsonCfg.Auth.OTPTTL),
			OTPMaxAttempts:  jsonCfg.Auth.OTPMaxAttempts,
			OTPAttemptsMode: jsonCfg.Auth.OTPAttemptsMode,
			SessionTTL:      time.Duration(jsonCfg.Auth.SessionTTL),
			AccessTokenTTL:  time.Duration(jsonCfg.Auth.AccessTokenTTL),
			RefreshTokenTTL: time.Duration(jsonCfg.Auth.RefreshTokenTTL),
		},
		Storage: Storage{
			DB: DB{
				DSN:         jsonCfg.Storage.DB.DSN,
				AutoMigrate: jsonCfg.Storage.DB.AutoMigrate,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			OTPRateLimit:   jsonCfg.Server.OTPRateLimit,
			OTPRateWindow:  time.Duration(jsonCfg.Server.OTPRateWindow),
			TrustedProxies: jsonCfg.Server.TrustedProxies,
		},
		Adapter: Adapter{
			OTPRelayURL:    jsonCfg.Adapter.OTPRelayURL,
			OTPRelayToken:  jsonCfg.Adapter.OTPRelayToken,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
